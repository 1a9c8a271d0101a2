package transformers

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"unicode/utf16"

	"cloak.dev/pkg/cloak/internal/domain"
	m "cloak.dev/pkg/cloak/internal/model"
)

// Custom settings understood by the string transformer.
const (
	DecoderUnitKey = "decoder-unit"
	MinLengthKey   = "min-length"
)

// defaultMinLength is the shortest literal worth a decoder call.
const defaultMinLength = 4

// Strings replaces string literal loads with an encrypted literal, its key
// and a call to a decoder unit injected once per run.
type Strings struct {
	keys func() int32
}

// StringsOption customizes the string transformer.
type StringsOption func(*Strings)

// WithKeySource sets the generator of per-literal keys.
func WithKeySource(keys func() int32) StringsOption {
	return func(s *Strings) {
		s.keys = keys
	}
}

// NewStrings creates the literal encryption transformer.
func NewStrings(options ...StringsOption) *Strings {
	s := &Strings{
		keys: func() int32 { return int32(rand.Uint32()) },
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Name implements domain.Transformer.
func (t *Strings) Name() string {
	return StringsName
}

// Transform implements domain.Transformer.
func (t *Strings) Transform(ctx context.Context, image m.Image, policy m.Policy, tc *domain.Context) error {
	decoder, err := t.injectDecoder(image, policy, tc)
	if err != nil {
		return err
	}

	entry, err := decoderEntryPoint(decoder)
	if err != nil {
		return err
	}

	minLength := t.minLength(policy, tc)
	total := 0

	for _, unit := range eligibleUnits(image, t.Name(), policy) {
		if err := ctx.Err(); err != nil {
			return err
		}

		if unit == decoder {
			continue
		}

		for _, method := range unit.Methods {
			var count int

			method.Instructions, count = t.encryptLiterals(method.Instructions, decoder.Name, entry.Name, minLength)
			total += count
		}
	}

	tc.AddEncrypted(total)
	tc.Logger().Info("encrypted string literals", "literals", total, "decoder", decoder.Name)

	return nil
}

// injectDecoder adds the decoder unit to the image on the first call of the
// run and returns it on every call.
func (t *Strings) injectDecoder(image m.Image, policy m.Policy, tc *domain.Context) (*m.Unit, error) {
	configured, _ := policy.Setting(t.Name(), DecoderUnitKey)

	decoder, injected, err := tc.InjectDecoder(func() (*m.Unit, error) {
		spec, err := newDecoderSpec(configured, tc.Namer())
		if err != nil {
			return nil, fmt.Errorf("name decoder unit: %w", err)
		}

		unit := buildDecoderUnit(spec)

		if encoder := tc.Encoder(); encoder != nil {
			if _, err := encoder.Encode(unit); err != nil {
				return nil, fmt.Errorf("encode decoder unit %s: %w", unit.Name, err)
			}
		}

		if !image.Add(unit) {
			return nil, fmt.Errorf("decoder unit %s collides with an existing unit", unit.Name)
		}

		tc.ProtectField(spec.unit, spec.field)
		tc.ProtectMethod(spec.unit, spec.method)

		return unit, nil
	})
	if err != nil {
		return nil, err
	}

	if injected {
		tc.Logger().Debug("injected decoder unit", "unit", decoder.Name)
	}

	return decoder, nil
}

func (t *Strings) minLength(policy m.Policy, tc *domain.Context) int {
	value, ok := policy.Setting(t.Name(), MinLengthKey)
	if !ok {
		return defaultMinLength
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		tc.Logger().Warn("ignoring invalid setting", "transformer", t.Name(), "key", MinLengthKey, "value", value)
		return defaultMinLength
	}

	return n
}

// encryptLiterals returns the instruction sequence with every long enough
// string load replaced by: load ciphertext, load key, invoke decoder.
func (t *Strings) encryptLiterals(code []*m.Instruction, decoderUnit, decoderMethod string, minLength int) ([]*m.Instruction, int) {
	out := make([]*m.Instruction, 0, len(code))
	count := 0

	for _, insn := range code {
		literal, ok := insn.StringConstant()
		if !ok || literalLength(literal) < minLength {
			out = append(out, insn)
			continue
		}

		key := t.keys()

		out = append(out,
			&m.Instruction{Op: m.OpLdc, Const: m.StringConst(Encrypt(literal, key))},
			&m.Instruction{Op: m.OpLdc, Const: m.IntConst(key)},
			&m.Instruction{Op: m.OpInvokeStatic, Owner: decoderUnit, Name: decoderMethod, Descriptor: DecryptDescriptor},
		)
		count++
	}

	return out, count
}

// literalLength counts UTF-16 code units, the length the target runtime
// reports for a string.
func literalLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}
