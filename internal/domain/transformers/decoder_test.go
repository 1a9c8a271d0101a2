package transformers

import (
	"encoding/base64"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "cloak.dev/pkg/cloak/internal/model"
)

// stringObject is a java/lang/String between new and <init>.
type stringObject struct {
	value string
}

type base64Decoder struct{}

// stackMachine executes the instruction subset the decoder unit is built
// from, with int32, int64, []int8 and []int64 standing in for the operand
// types.
type stackMachine struct {
	t       *testing.T
	statics map[string]any
}

func newStackMachine(t *testing.T) *stackMachine {
	return &stackMachine{
		t:       t,
		statics: map[string]any{charsetsClass + ".UTF_8": "UTF-8"},
	}
}

func (s *stackMachine) run(method *m.Method, args ...any) any {
	s.t.Helper()

	labels := make(map[string]int)
	for pc, insn := range method.Instructions {
		if insn.Op == m.OpLabel {
			labels[insn.Label] = pc
		}
	}

	locals := make([]any, 8)
	copy(locals, args)

	var stack []any

	push := func(v any) { stack = append(stack, v) }
	pop := func() any {
		require.NotEmpty(s.t, stack, "operand stack underflow in %s", method.Name)
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		return v
	}
	popInt := func() int32 { return pop().(int32) }

	jump := func(label string) int {
		pc, ok := labels[label]
		require.True(s.t, ok, "unknown label %s", label)

		return pc
	}

	for pc := 0; pc < len(method.Instructions); pc++ {
		insn := method.Instructions[pc]

		switch insn.Op {
		case m.OpLabel, m.OpNop:
		case m.OpIConst0:
			push(int32(0))
		case m.OpIConst1:
			push(int32(1))
		case m.OpIConst2:
			push(int32(2))
		case m.OpIConst3:
			push(int32(3))
		case m.OpIConst4:
			push(int32(4))
		case m.OpBIPush, m.OpSIPush:
			push(int32(insn.Operands[0]))
		case m.OpLdc2W:
			push(insn.Const.Long)
		case m.OpILoad, m.OpALoad:
			push(locals[insn.Operands[0]])
		case m.OpIStore, m.OpAStore:
			locals[insn.Operands[0]] = pop()
		case m.OpNewArray:
			require.Equal(s.t, m.ArrayTypeLong, insn.Operands[0])
			push(make([]int64, popInt()))
		case m.OpLAStore:
			value := pop().(int64)
			index := popInt()
			pop().([]int64)[index] = value
		case m.OpLALoad:
			index := popInt()
			push(pop().([]int64)[index])
		case m.OpBALoad:
			index := popInt()
			push(int32(pop().([]int8)[index]))
		case m.OpBAStore:
			value := popInt()
			index := popInt()
			pop().([]int8)[index] = int8(value)
		case m.OpArrayLength:
			push(int32(len(pop().([]int8))))
		case m.OpDup:
			v := pop()
			push(v)
			push(v)
		case m.OpIXor:
			b, a := popInt(), popInt()
			push(a ^ b)
		case m.OpIAnd:
			b, a := popInt(), popInt()
			push(a & b)
		case m.OpIRem:
			b, a := popInt(), popInt()
			push(a % b)
		case m.OpIMul:
			b, a := popInt(), popInt()
			push(a * b)
		case m.OpLUShr:
			shift := popInt()
			value := pop().(int64)
			push(int64(uint64(value) >> (uint32(shift) & 63)))
		case m.OpL2I:
			push(int32(pop().(int64)))
		case m.OpI2B:
			push(int32(int8(popInt())))
		case m.OpIInc:
			slot := insn.Operands[0]
			locals[slot] = locals[slot].(int32) + int32(insn.Operands[1])
		case m.OpIfICmpGE:
			b, a := popInt(), popInt()
			if a >= b {
				pc = jump(insn.Label)
			}
		case m.OpGoto:
			pc = jump(insn.Label)
		case m.OpGetStatic:
			value, ok := s.statics[insn.Owner+"."+insn.Name]
			require.True(s.t, ok, "static %s.%s read before it was set", insn.Owner, insn.Name)
			push(value)
		case m.OpPutStatic:
			s.statics[insn.Owner+"."+insn.Name] = pop()
		case m.OpNew:
			require.Equal(s.t, stringClass, insn.Owner)
			push(&stringObject{})
		case m.OpInvokeStatic:
			require.Equal(s.t, base64Class+".getDecoder", insn.Owner+"."+insn.Name)
			push(base64Decoder{})
		case m.OpInvokeVirtual:
			require.Equal(s.t, base64DecoderType+".decode", insn.Owner+"."+insn.Name)
			text := pop().(string)
			_ = pop().(base64Decoder)

			raw, err := base64.StdEncoding.DecodeString(text)
			require.NoError(s.t, err)

			data := make([]int8, len(raw))
			for i, b := range raw {
				data[i] = int8(b)
			}

			push(data)
		case m.OpInvokeSpecial:
			require.Equal(s.t, stringClass+"."+m.ConstructorName, insn.Owner+"."+insn.Name)
			require.Equal(s.t, "UTF-8", pop())
			data := pop().([]int8)
			target := pop().(*stringObject)

			raw := make([]byte, len(data))
			for i, b := range data {
				raw[i] = byte(b)
			}

			target.value = string(raw)
		case m.OpReturn:
			return nil
		case m.OpAReturn:
			v := pop()
			if str, ok := v.(*stringObject); ok {
				return str.value
			}

			return v
		default:
			s.t.Fatalf("unsupported opcode %s in %s", insn.Op, method.Name)
		}
	}

	s.t.Fatalf("%s fell off the end of its code", method.Name)

	return nil
}

func TestDecoderUnit_InvertsEncrypt(t *testing.T) {
	spec := decoderSpec{unit: "app/D", method: "d", field: "k"}
	unit := buildDecoderUnit(spec)

	clinit := unit.FindMethod(m.StaticInitializerName, "()V")
	require.NotNil(t, clinit)

	decrypt, err := decoderEntryPoint(unit)
	require.NoError(t, err)

	machine := newStackMachine(t)
	machine.run(clinit)
	assert.Equal(t, Magic[:], machine.statics["app/D.k"])

	literals := []string{
		"",
		"hello world",
		"é✓😀 mixed width",
		strings.Repeat("wrap past 255 bytes ", 20),
	}
	keys := []int32{0, 5, -1, 0x7F3A12C4, math.MinInt32}

	for _, literal := range literals {
		for _, key := range keys {
			got := machine.run(decrypt, Encrypt(literal, key), key)
			assert.Equal(t, literal, got, "key %d", key)
		}
	}
}
