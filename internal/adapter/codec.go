package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	m "cloak.dev/pkg/cloak/internal/model"
)

// UnitSuffix is the entry suffix of YAML-encoded units.
const UnitSuffix = ".unit.yaml"

// ErrInvalidUnit is returned when a unit fails structural validation.
var ErrInvalidUnit = errors.New("invalid unit")

// Codec converts between the container representation of a unit and the
// in-memory model.
type Codec interface {
	// Suffix is the entry name suffix identifying units this codec owns.
	Suffix() string
	Decode(data []byte) (*m.Unit, error)
	Encode(unit *m.Unit) ([]byte, error)
}

// IsUnitEntry returns a predicate matching entry names owned by codec.
func IsUnitEntry(codec Codec) func(name string) bool {
	suffix := codec.Suffix()

	return func(name string) bool {
		return strings.HasSuffix(name, suffix)
	}
}

// EntryName returns the container entry name for a unit.
func EntryName(codec Codec, unitName string) string {
	return unitName + codec.Suffix()
}

// YAMLCodec stores one unit per YAML document.
type YAMLCodec struct{}

// NewYAMLCodec constructs a YAMLCodec.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Suffix implements Codec.
func (c *YAMLCodec) Suffix() string {
	return UnitSuffix
}

// Decode implements Codec. Unknown keys are rejected.
func (c *YAMLCodec) Decode(data []byte) (*m.Unit, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var unit m.Unit
	if err := decoder.Decode(&unit); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidUnit, err)
	}

	if err := ValidateUnit(&unit); err != nil {
		return nil, err
	}

	return &unit, nil
}

// Encode implements Codec. The unit is validated first so a broken
// transformation never reaches the output container.
func (c *YAMLCodec) Encode(unit *m.Unit) ([]byte, error) {
	if err := ValidateUnit(unit); err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(unit); err != nil {
		return nil, fmt.Errorf("failed to encode unit %s: %w", unit.Name, err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode unit %s: %w", unit.Name, err)
	}

	return buf.Bytes(), nil
}

// ValidateUnit checks the structural well-formedness of a unit: names and
// descriptors are present and parse, member instructions are complete, labels
// are unique and every jump targets a defined label.
func ValidateUnit(unit *m.Unit) error {
	if unit == nil || unit.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidUnit)
	}

	for _, field := range unit.Fields {
		if field.Name == "" {
			return invalid(unit, "field without name")
		}

		if !ValidFieldDescriptor(field.Descriptor) {
			return invalid(unit, "field %s has malformed descriptor %q", field.Name, field.Descriptor)
		}
	}

	for _, method := range unit.Methods {
		if method.Name == "" {
			return invalid(unit, "method without name")
		}

		if !ValidMethodDescriptor(method.Descriptor) {
			return invalid(unit, "method %s has malformed descriptor %q", method.Name, method.Descriptor)
		}

		if err := validateCode(unit, method); err != nil {
			return err
		}
	}

	return nil
}

func validateCode(unit *m.Unit, method *m.Method) error {
	labels := make(map[string]struct{})

	for _, insn := range method.Instructions {
		if insn == nil || insn.Op == "" {
			return invalid(unit, "method %s contains an empty instruction", method.Name)
		}

		if insn.Op != m.OpLabel {
			continue
		}

		if insn.Label == "" {
			return invalid(unit, "method %s declares an unnamed label", method.Name)
		}

		if _, dup := labels[insn.Label]; dup {
			return invalid(unit, "method %s declares label %s twice", method.Name, insn.Label)
		}

		labels[insn.Label] = struct{}{}
	}

	for idx, insn := range method.Instructions {
		switch {
		case insn.IsJump():
			if _, ok := labels[insn.Label]; !ok {
				return invalid(unit, "method %s instruction %d jumps to undefined label %s", method.Name, idx, insn.Label)
			}
		case insn.IsFieldAccess():
			if insn.Owner == "" || insn.Name == "" || !ValidFieldDescriptor(insn.Descriptor) {
				return invalid(unit, "method %s instruction %d (%s) has an incomplete field reference", method.Name, idx, insn.Op)
			}
		case insn.IsInvoke():
			if insn.Owner == "" || insn.Name == "" || !ValidMethodDescriptor(insn.Descriptor) {
				return invalid(unit, "method %s instruction %d (%s) has an incomplete method reference", method.Name, idx, insn.Op)
			}
		case insn.Op == m.OpLdc || insn.Op == m.OpLdc2W:
			if insn.Const == nil {
				return invalid(unit, "method %s instruction %d (%s) has no constant", method.Name, idx, insn.Op)
			}
		}
	}

	return nil
}

func invalid(unit *m.Unit, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidUnit, unit.Name, fmt.Sprintf(format, args...))
}

// ValidFieldDescriptor reports whether s is exactly one field type.
func ValidFieldDescriptor(s string) bool {
	end, ok := parseFieldType(s, 0)
	return ok && end == len(s)
}

// ValidMethodDescriptor reports whether s is a method descriptor of the
// form "(params)ret" where ret may be V.
func ValidMethodDescriptor(s string) bool {
	if !strings.HasPrefix(s, "(") {
		return false
	}

	pos := 1
	for pos < len(s) && s[pos] != ')' {
		next, ok := parseFieldType(s, pos)
		if !ok {
			return false
		}

		pos = next
	}

	if pos >= len(s) {
		return false
	}

	pos++

	if s[pos:] == "V" {
		return true
	}

	end, ok := parseFieldType(s, pos)

	return ok && end == len(s)
}

func parseFieldType(s string, pos int) (int, bool) {
	if pos >= len(s) {
		return pos, false
	}

	switch s[pos] {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z':
		return pos + 1, true
	case 'L':
		end := strings.IndexByte(s[pos:], ';')
		if end <= 1 {
			return pos, false
		}

		return pos + end + 1, true
	case '[':
		return parseFieldType(s, pos+1)
	default:
		return pos, false
	}
}
