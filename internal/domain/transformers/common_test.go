package transformers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cloak.dev/pkg/cloak/internal/adapter"
	"cloak.dev/pkg/cloak/internal/domain"
	m "cloak.dev/pkg/cloak/internal/model"
)

// policyFor enables one transformer for every unit.
func policyFor(name string, custom map[string]string) m.Policy {
	return m.Policy{
		GlobalInclusions: []string{"*"},
		Transformers: map[string]m.TransformerPolicy{
			name: {Enabled: true, Custom: custom},
		},
	}
}

func newContext(image m.Image) *domain.Context {
	return domain.NewContext(domain.BuildHierarchy(image), adapter.NewYAMLCodec())
}

func method(name, descriptor string, code ...*m.Instruction) *m.Method {
	return &m.Method{Name: name, Descriptor: descriptor, Instructions: code}
}

func invoke(owner, name, descriptor string) *m.Instruction {
	return &m.Instruction{Op: m.OpInvokeVirtual, Owner: owner, Name: name, Descriptor: descriptor}
}

func TestDefault(t *testing.T) {
	names := make([]string, 0, 4)
	for _, transformer := range Default() {
		names = append(names, transformer.Name())
	}

	assert.Equal(t, []string{MarkerName, FieldsName, MethodsName, StringsName}, names)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"main", "run"}, splitList(" main, ,run ,"))
	assert.Empty(t, splitList(""))
}

func TestEligibleUnits(t *testing.T) {
	image := m.NewImage(&m.Unit{Name: "b/B"}, &m.Unit{Name: "a/A"}, &m.Unit{Name: "c/C"})

	policy := policyFor(FieldsName, nil)
	tp := policy.Transformers[FieldsName]
	tp.Exclusions = []string{"c/*"}
	policy.Transformers[FieldsName] = tp

	units := eligibleUnits(image, FieldsName, policy)

	names := make([]string, 0, len(units))
	for _, unit := range units {
		names = append(names, unit.Name)
	}

	assert.Equal(t, []string{"a/A", "b/B"}, names)
}
