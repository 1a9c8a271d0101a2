package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "cloak.dev/pkg/cloak/internal/model"
)

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		name    string
		unit    string
		pattern string
		want    bool
	}{
		{"match all", "com/example/Foo", "*", true},
		{"empty pattern", "com/example/Foo", "", false},
		{"blank pattern", "com/example/Foo", "   ", false},
		{"exact", "com/example/Foo", "com/example/Foo", true},
		{"exact mismatch", "com/example/Foo", "com/example/Bar", false},
		{"exact with marker", "com/example/Foo", "^com/example/Foo", true},
		{"exact marker is not a prefix", "com/example/FooBar", "^com/example/Foo", false},
		{"dotted exact", "com/example/Foo", "com.example.Foo", true},
		{"package wildcard direct child", "com/example/Foo", "com/example/**", true},
		{"package wildcard nested", "com/example/sub/Foo", "com/example/**", true},
		{"package wildcard sibling package", "com/examples/Foo", "com/example/**", false},
		{"package wildcard the package itself", "com/example", "com/example/**", false},
		{"dotted package wildcard", "com/example/Foo", "com.example.**", true},
		{"root wildcard", "Foo", "/**", true},
		{"surrounding spaces", "com/example/Foo", "  com/example/**  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchPattern(tt.unit, tt.pattern))
		})
	}
}

func TestEligible_Precedence(t *testing.T) {
	const transformer = "methods"

	tests := []struct {
		name   string
		policy m.Policy
		unit   string
		want   bool
	}{
		{
			name: "globally excluded, transformer included",
			policy: m.Policy{
				GlobalExclusions: []string{"com/example/**"},
				Transformers: map[string]m.TransformerPolicy{
					transformer: {Inclusions: []string{"com/example/Keep"}},
				},
			},
			unit: "com/example/Keep",
			want: true,
		},
		{
			name: "globally excluded, not transformer included",
			policy: m.Policy{
				GlobalExclusions: []string{"com/example/**"},
				Transformers: map[string]m.TransformerPolicy{
					transformer: {Inclusions: []string{"com/example/Keep"}},
				},
			},
			unit: "com/example/Other",
			want: false,
		},
		{
			name: "globally excluded and globally included, exclusion wins",
			policy: m.Policy{
				GlobalInclusions: []string{"*"},
				GlobalExclusions: []string{"com/example/**"},
			},
			unit: "com/example/Other",
			want: false,
		},
		{
			name: "globally included, transformer excluded",
			policy: m.Policy{
				GlobalInclusions: []string{"*"},
				Transformers: map[string]m.TransformerPolicy{
					transformer: {Exclusions: []string{"com/example/Api"}},
				},
			},
			unit: "com/example/Api",
			want: false,
		},
		{
			name: "globally included, transformer excluded and included",
			policy: m.Policy{
				GlobalInclusions: []string{"*"},
				Transformers: map[string]m.TransformerPolicy{
					transformer: {
						Inclusions: []string{"com/example/Api"},
						Exclusions: []string{"com/example/Api"},
					},
				},
			},
			unit: "com/example/Api",
			want: false,
		},
		{
			name: "globally included only",
			policy: m.Policy{
				GlobalInclusions: []string{"com/example/**"},
			},
			unit: "com/example/Service",
			want: true,
		},
		{
			name: "no global match, transformer included",
			policy: m.Policy{
				Transformers: map[string]m.TransformerPolicy{
					transformer: {Inclusions: []string{"org/lib/**"}},
				},
			},
			unit: "org/lib/Util",
			want: true,
		},
		{
			name: "no global match, transformer included and excluded",
			policy: m.Policy{
				Transformers: map[string]m.TransformerPolicy{
					transformer: {
						Inclusions: []string{"org/lib/**"},
						Exclusions: []string{"org/lib/Util"},
					},
				},
			},
			unit: "org/lib/Util",
			want: false,
		},
		{
			name:   "nothing configured",
			policy: m.Policy{},
			unit:   "com/example/Foo",
			want:   false,
		},
		{
			name: "other transformer's lists are ignored",
			policy: m.Policy{
				GlobalInclusions: []string{"*"},
				Transformers: map[string]m.TransformerPolicy{
					"fields": {Exclusions: []string{"*"}},
				},
			},
			unit: "com/example/Foo",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Eligible(tt.unit, transformer, tt.policy))
		})
	}
}

func TestEligible_Idempotent(t *testing.T) {
	policy := m.Policy{
		GlobalInclusions: []string{"com/**"},
		GlobalExclusions: []string{"com/example/**"},
		Transformers: map[string]m.TransformerPolicy{
			"methods": {Inclusions: []string{"com/example/Keep"}},
		},
	}

	for _, unit := range []string{"com/example/Keep", "com/example/Other", "com/other/Foo", "org/Foo"} {
		first := Eligible(unit, "methods", policy)
		second := Eligible(unit, "methods", policy)
		assert.Equal(t, first, second, unit)
	}
}
