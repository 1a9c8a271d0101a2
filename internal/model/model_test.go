package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImage(t *testing.T) {
	image := NewImage(&Unit{Name: "b/B"}, &Unit{Name: "a/A"})

	assert.False(t, image.Add(&Unit{Name: "a/A"}))
	assert.True(t, image.Add(&Unit{Name: "c/C"}))
	assert.Equal(t, []string{"a/A", "b/B", "c/C"}, image.Names())
	assert.Equal(t, "a/A", image.Sorted()[0].Name)
}

func TestPolicy(t *testing.T) {
	var empty Policy
	assert.False(t, empty.Enabled("strings"))

	_, ok := empty.Setting("strings", "min-length")
	assert.False(t, ok)

	policy := Policy{Transformers: map[string]TransformerPolicy{
		"strings": {Enabled: true, Order: 3, Custom: map[string]string{"min-length": "6"}},
	}}

	assert.True(t, policy.Enabled("strings"))
	assert.Equal(t, 3, policy.Transformer("strings").Order)

	value, ok := policy.Setting("strings", "min-length")
	assert.True(t, ok)
	assert.Equal(t, "6", value)
}

func TestInstructionKinds(t *testing.T) {
	tests := []struct {
		insn   Instruction
		field  bool
		invoke bool
		jump   bool
	}{
		{insn: Instruction{Op: OpGetField}, field: true},
		{insn: Instruction{Op: OpPutStatic}, field: true},
		{insn: Instruction{Op: OpInvokeIface}, invoke: true},
		{insn: Instruction{Op: OpGoto, Label: "l"}, jump: true},
		{insn: Instruction{Op: OpLabel, Label: "l"}},
		{insn: Instruction{Op: OpNop}},
	}

	for _, tt := range tests {
		t.Run(string(tt.insn.Op), func(t *testing.T) {
			assert.Equal(t, tt.field, tt.insn.IsFieldAccess())
			assert.Equal(t, tt.invoke, tt.insn.IsInvoke())
			assert.Equal(t, tt.jump, tt.insn.IsJump())
		})
	}
}

func TestStringConstant(t *testing.T) {
	s, ok := (&Instruction{Op: OpLdc, Const: StringConst("x")}).StringConstant()
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	_, ok = (&Instruction{Op: OpLdc, Const: IntConst(1)}).StringConstant()
	assert.False(t, ok)

	_, ok = (&Instruction{Op: OpLdc2W, Const: LongConst(1)}).StringConstant()
	assert.False(t, ok)
}

func TestMemberFlags(t *testing.T) {
	assert.True(t, (&Field{Access: AccSynthetic}).IsSynthetic())
	assert.True(t, (&Field{Access: AccEnum | AccStatic}).IsEnumConstant())
	assert.True(t, (&Method{Name: ConstructorName}).IsInitializer())
	assert.True(t, (&Method{Access: AccNative}).IsNative())

	unit := &Unit{Fields: []*Field{{Name: "f", Descriptor: "I"}}, Methods: []*Method{{Name: "m", Descriptor: "()V"}}}
	assert.NotNil(t, unit.FindField("f", "I"))
	assert.Nil(t, unit.FindField("f", "J"))
	assert.NotNil(t, unit.FindMethod("m", "()V"))
	assert.False(t, unit.HasSuper())
}
