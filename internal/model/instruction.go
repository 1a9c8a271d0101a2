package model

// Opcode is the mnemonic of an instruction.
type Opcode string

// Opcodes the pipeline inspects or emits. Any other mnemonic is carried
// through untouched.
const (
	OpNop           Opcode = "nop"
	OpLabel         Opcode = "label"
	OpIConst0       Opcode = "iconst_0"
	OpIConst1       Opcode = "iconst_1"
	OpIConst2       Opcode = "iconst_2"
	OpIConst3       Opcode = "iconst_3"
	OpIConst4       Opcode = "iconst_4"
	OpBIPush        Opcode = "bipush"
	OpSIPush        Opcode = "sipush"
	OpLdc           Opcode = "ldc"
	OpLdc2W         Opcode = "ldc2_w"
	OpILoad         Opcode = "iload"
	OpALoad         Opcode = "aload"
	OpIStore        Opcode = "istore"
	OpAStore        Opcode = "astore"
	OpBALoad        Opcode = "baload"
	OpLALoad        Opcode = "laload"
	OpBAStore       Opcode = "bastore"
	OpLAStore       Opcode = "lastore"
	OpDup           Opcode = "dup"
	OpIXor          Opcode = "ixor"
	OpIAnd          Opcode = "iand"
	OpIRem          Opcode = "irem"
	OpIMul          Opcode = "imul"
	OpLUShr         Opcode = "lushr"
	OpL2I           Opcode = "l2i"
	OpI2B           Opcode = "i2b"
	OpIInc          Opcode = "iinc"
	OpIfICmpGE      Opcode = "if_icmpge"
	OpGoto          Opcode = "goto"
	OpReturn        Opcode = "return"
	OpAReturn       Opcode = "areturn"
	OpArrayLength   Opcode = "arraylength"
	OpNew           Opcode = "new"
	OpNewArray      Opcode = "newarray"
	OpGetStatic     Opcode = "getstatic"
	OpPutStatic     Opcode = "putstatic"
	OpGetField      Opcode = "getfield"
	OpPutField      Opcode = "putfield"
	OpInvokeVirtual Opcode = "invokevirtual"
	OpInvokeSpecial Opcode = "invokespecial"
	OpInvokeStatic  Opcode = "invokestatic"
	OpInvokeIface   Opcode = "invokeinterface"
)

// ArrayTypeLong is the newarray operand for long[].
const ArrayTypeLong = 11

// Instruction is one element of a method's instruction sequence.
//
// Member instructions carry Owner, Name and Descriptor; constant loads carry
// Const; local-variable and immediate instructions carry Operands; jumps and
// label markers carry Label; new carries the instantiated type in Owner.
type Instruction struct {
	Op         Opcode    `yaml:"op"`
	Owner      string    `yaml:"owner,omitempty"`
	Name       string    `yaml:"name,omitempty"`
	Descriptor string    `yaml:"desc,omitempty"`
	Interface  bool      `yaml:"itf,omitempty"`
	Const      *Constant `yaml:"const,omitempty"`
	Operands   []int     `yaml:"args,omitempty"`
	Label      string    `yaml:"label,omitempty"`
}

// IsFieldAccess reports whether the instruction reads or writes a field.
func (i *Instruction) IsFieldAccess() bool {
	switch i.Op {
	case OpGetField, OpPutField, OpGetStatic, OpPutStatic:
		return true
	default:
		return false
	}
}

// IsInvoke reports whether the instruction invokes a method.
func (i *Instruction) IsInvoke() bool {
	switch i.Op {
	case OpInvokeVirtual, OpInvokeSpecial, OpInvokeStatic, OpInvokeIface:
		return true
	default:
		return false
	}
}

// IsJump reports whether the instruction transfers control to a label.
func (i *Instruction) IsJump() bool {
	return i.Op != OpLabel && i.Label != ""
}

// StringConstant returns the string operand of a constant load.
func (i *Instruction) StringConstant() (string, bool) {
	if i.Op != OpLdc || i.Const == nil || i.Const.Kind != ConstString {
		return "", false
	}

	return i.Const.String, true
}

// ConstKind tags the type of a Constant.
type ConstKind string

// Constant kinds.
const (
	ConstString ConstKind = "string"
	ConstInt    ConstKind = "int"
	ConstLong   ConstKind = "long"
)

// Constant is a literal operand.
type Constant struct {
	Kind   ConstKind `yaml:"kind"`
	String string    `yaml:"string,omitempty"`
	Int    int32     `yaml:"int,omitempty"`
	Long   int64     `yaml:"long,omitempty"`
}

// StringConst builds a string constant.
func StringConst(s string) *Constant {
	return &Constant{Kind: ConstString, String: s}
}

// IntConst builds a 32-bit integer constant.
func IntConst(v int32) *Constant {
	return &Constant{Kind: ConstInt, Int: v}
}

// LongConst builds a 64-bit integer constant.
func LongConst(v int64) *Constant {
	return &Constant{Kind: ConstLong, Long: v}
}
