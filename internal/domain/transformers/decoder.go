package transformers

import (
	"fmt"

	"cloak.dev/pkg/cloak/internal/domain"
	m "cloak.dev/pkg/cloak/internal/model"
)

// DecryptDescriptor is the descriptor of the injected decode routine:
// (text string, key int) -> string.
const DecryptDescriptor = "(Ljava/lang/String;I)Ljava/lang/String;"

const (
	magicDescriptor   = "[J"
	byteArrayDesc     = "[B"
	stringClass       = "java/lang/String"
	base64Class       = "java/util/Base64"
	base64DecoderType = "java/util/Base64$Decoder"
	charsetsClass     = "java/nio/charset/StandardCharsets"
)

// decoderSpec names the parts of the synthesized decoder unit.
type decoderSpec struct {
	unit   string
	method string
	field  string
}

// buildDecoderUnit synthesizes the runtime decoder: a plain object holding
// the magic constants in a private static long array and one public static
// method reversing Encrypt.
func buildDecoderUnit(spec decoderSpec) *m.Unit {
	return &m.Unit{
		Name:   spec.unit,
		Super:  m.RootTypeName,
		Access: m.AccPublic | m.AccSuper | m.AccFinal | m.AccSynthetic,
		Fields: []*m.Field{{
			Name:       spec.field,
			Descriptor: magicDescriptor,
			Access:     m.AccPrivate | m.AccStatic | m.AccFinal | m.AccSynthetic,
		}},
		Methods: []*m.Method{
			constructor(),
			staticInitializer(spec),
			decryptMethod(spec),
		},
	}
}

func constructor() *m.Method {
	return &m.Method{
		Name:       m.ConstructorName,
		Descriptor: "()V",
		Access:     m.AccPrivate,
		Instructions: []*m.Instruction{
			{Op: m.OpALoad, Operands: []int{0}},
			{Op: m.OpInvokeSpecial, Owner: m.RootTypeName, Name: m.ConstructorName, Descriptor: "()V"},
			{Op: m.OpReturn},
		},
	}
}

func staticInitializer(spec decoderSpec) *m.Method {
	code := []*m.Instruction{
		{Op: m.OpIConst3},
		{Op: m.OpNewArray, Operands: []int{m.ArrayTypeLong}},
	}

	indexes := []m.Opcode{m.OpIConst0, m.OpIConst1, m.OpIConst2}
	for i, value := range Magic {
		code = append(code,
			&m.Instruction{Op: m.OpDup},
			&m.Instruction{Op: indexes[i]},
			&m.Instruction{Op: m.OpLdc2W, Const: m.LongConst(value)},
			&m.Instruction{Op: m.OpLAStore},
		)
	}

	code = append(code,
		&m.Instruction{Op: m.OpPutStatic, Owner: spec.unit, Name: spec.field, Descriptor: magicDescriptor},
		&m.Instruction{Op: m.OpReturn},
	)

	return &m.Method{
		Name:         m.StaticInitializerName,
		Descriptor:   "()V",
		Access:       m.AccStatic,
		Instructions: code,
	}
}

// decryptMethod emits:
//
//	byte[] b = Base64.getDecoder().decode(text);
//	for (int i = 0; i < b.length; i++)
//	    b[i] = (byte) (b[i] ^ key ^ (int) ((MAGIC[i % 3] >>> (i % 4 * 8)) & 0xFF) ^ (i & 0xFF));
//	return new String(b, StandardCharsets.UTF_8);
//
// Locals: 0 text, 1 key, 2 b, 3 i.
func decryptMethod(spec decoderSpec) *m.Method {
	const (
		loop = "loop"
		done = "done"
	)

	code := []*m.Instruction{
		{Op: m.OpInvokeStatic, Owner: base64Class, Name: "getDecoder", Descriptor: "()L" + base64DecoderType + ";"},
		{Op: m.OpALoad, Operands: []int{0}},
		{Op: m.OpInvokeVirtual, Owner: base64DecoderType, Name: "decode", Descriptor: "(Ljava/lang/String;)" + byteArrayDesc},
		{Op: m.OpAStore, Operands: []int{2}},
		{Op: m.OpIConst0},
		{Op: m.OpIStore, Operands: []int{3}},

		{Op: m.OpLabel, Label: loop},
		{Op: m.OpILoad, Operands: []int{3}},
		{Op: m.OpALoad, Operands: []int{2}},
		{Op: m.OpArrayLength},
		{Op: m.OpIfICmpGE, Label: done},

		// target slot b[i]
		{Op: m.OpALoad, Operands: []int{2}},
		{Op: m.OpILoad, Operands: []int{3}},

		// b[i] ^ key
		{Op: m.OpALoad, Operands: []int{2}},
		{Op: m.OpILoad, Operands: []int{3}},
		{Op: m.OpBALoad},
		{Op: m.OpILoad, Operands: []int{1}},
		{Op: m.OpIXor},

		// ^ ((MAGIC[i % 3] >>> (i % 4 * 8)) & 0xFF)
		{Op: m.OpGetStatic, Owner: spec.unit, Name: spec.field, Descriptor: magicDescriptor},
		{Op: m.OpILoad, Operands: []int{3}},
		{Op: m.OpIConst3},
		{Op: m.OpIRem},
		{Op: m.OpLALoad},
		{Op: m.OpILoad, Operands: []int{3}},
		{Op: m.OpIConst4},
		{Op: m.OpIRem},
		{Op: m.OpBIPush, Operands: []int{8}},
		{Op: m.OpIMul},
		{Op: m.OpLUShr},
		{Op: m.OpL2I},
		{Op: m.OpSIPush, Operands: []int{0xFF}},
		{Op: m.OpIAnd},
		{Op: m.OpIXor},

		// ^ (i & 0xFF)
		{Op: m.OpILoad, Operands: []int{3}},
		{Op: m.OpSIPush, Operands: []int{0xFF}},
		{Op: m.OpIAnd},
		{Op: m.OpIXor},

		{Op: m.OpI2B},
		{Op: m.OpBAStore},
		{Op: m.OpIInc, Operands: []int{3, 1}},
		{Op: m.OpGoto, Label: loop},

		{Op: m.OpLabel, Label: done},
		{Op: m.OpNew, Owner: stringClass},
		{Op: m.OpDup},
		{Op: m.OpALoad, Operands: []int{2}},
		{Op: m.OpGetStatic, Owner: charsetsClass, Name: "UTF_8", Descriptor: "Ljava/nio/charset/Charset;"},
		{Op: m.OpInvokeSpecial, Owner: stringClass, Name: m.ConstructorName, Descriptor: "(" + byteArrayDesc + "Ljava/nio/charset/Charset;)V"},
		{Op: m.OpAReturn},
	}

	return &m.Method{
		Name:         spec.method,
		Descriptor:   DecryptDescriptor,
		Access:       m.AccPublic | m.AccStatic,
		Instructions: code,
	}
}

// decoderEntryPoint returns the decode routine of an injected decoder unit.
func decoderEntryPoint(unit *m.Unit) (*m.Method, error) {
	for _, method := range unit.Methods {
		if method.Descriptor == DecryptDescriptor && method.Access&m.AccStatic != 0 {
			return method, nil
		}
	}

	return nil, fmt.Errorf("decoder unit %s has no %s routine", unit.Name, DecryptDescriptor)
}

// newDecoderSpec picks the decoder's unit, method and field names. An
// explicitly configured unit name is used as is.
func newDecoderSpec(configuredUnit string, namer *domain.Namer) (decoderSpec, error) {
	spec := decoderSpec{unit: configuredUnit}

	var err error

	if spec.unit == "" {
		if spec.unit, err = namer.Next("decoder"); err != nil {
			return spec, err
		}
	}

	if spec.method, err = namer.Next("decrypt"); err != nil {
		return spec, err
	}

	if spec.field, err = namer.Next("magic"); err != nil {
		return spec, err
	}

	return spec, nil
}
