package adapter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "cloak.dev/pkg/cloak/internal/model"
)

const sampleUnit = `name: com/example/Greeter
super: java/lang/Object
access: 1
fields:
  - name: greeting
    desc: Ljava/lang/String;
    access: 2
methods:
  - name: greet
    desc: ()Ljava/lang/String;
    access: 1
    code:
      - op: label
        label: start
      - op: aload
        args: [0]
      - op: getfield
        owner: com/example/Greeter
        name: greeting
        desc: Ljava/lang/String;
      - op: ifnull
        label: start
      - op: ldc
        const:
          kind: string
          string: hello world
      - op: areturn
`

func TestYAMLCodec_Decode(t *testing.T) {
	codec := NewYAMLCodec()

	unit, err := codec.Decode([]byte(sampleUnit))
	require.NoError(t, err)

	assert.Equal(t, "com/example/Greeter", unit.Name)
	assert.Equal(t, "java/lang/Object", unit.Super)
	require.Len(t, unit.Fields, 1)
	require.Len(t, unit.Methods, 1)

	code := unit.Methods[0].Instructions
	require.Len(t, code, 6)
	assert.True(t, code[2].IsFieldAccess())
	assert.True(t, code[3].IsJump())

	s, ok := code[4].StringConstant()
	assert.True(t, ok)
	assert.Equal(t, "hello world", s)
}

func TestYAMLCodec_EncodeDecode(t *testing.T) {
	codec := NewYAMLCodec()

	unit, err := codec.Decode([]byte(sampleUnit))
	require.NoError(t, err)

	data, err := codec.Encode(unit)
	require.NoError(t, err)

	again, err := codec.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, unit, again)
}

func TestYAMLCodec_DecodeRejectsUnknownKeys(t *testing.T) {
	_, err := NewYAMLCodec().Decode([]byte("name: a/A\nbogus: true\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidUnit))
}

func TestValidateUnit(t *testing.T) {
	tests := []struct {
		name    string
		unit    *m.Unit
		wantErr bool
	}{
		{
			name: "valid",
			unit: &m.Unit{Name: "a/A", Methods: []*m.Method{{Name: "run", Descriptor: "(I[Ljava/lang/String;)V"}}},
		},
		{
			name:    "missing name",
			unit:    &m.Unit{},
			wantErr: true,
		},
		{
			name:    "bad field descriptor",
			unit:    &m.Unit{Name: "a/A", Fields: []*m.Field{{Name: "x", Descriptor: "Q"}}},
			wantErr: true,
		},
		{
			name:    "bad method descriptor",
			unit:    &m.Unit{Name: "a/A", Methods: []*m.Method{{Name: "run", Descriptor: "(I"}}},
			wantErr: true,
		},
		{
			name: "undefined jump target",
			unit: &m.Unit{Name: "a/A", Methods: []*m.Method{{
				Name: "run", Descriptor: "()V",
				Instructions: []*m.Instruction{{Op: m.OpGoto, Label: "nowhere"}},
			}}},
			wantErr: true,
		},
		{
			name: "duplicate label",
			unit: &m.Unit{Name: "a/A", Methods: []*m.Method{{
				Name: "run", Descriptor: "()V",
				Instructions: []*m.Instruction{{Op: m.OpLabel, Label: "l"}, {Op: m.OpLabel, Label: "l"}},
			}}},
			wantErr: true,
		},
		{
			name: "incomplete invoke",
			unit: &m.Unit{Name: "a/A", Methods: []*m.Method{{
				Name: "run", Descriptor: "()V",
				Instructions: []*m.Instruction{{Op: m.OpInvokeStatic, Owner: "a/A", Descriptor: "()V"}},
			}}},
			wantErr: true,
		},
		{
			name: "ldc without constant",
			unit: &m.Unit{Name: "a/A", Methods: []*m.Method{{
				Name: "run", Descriptor: "()V",
				Instructions: []*m.Instruction{{Op: m.OpLdc}},
			}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUnit(tt.unit)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidUnit)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestDescriptors(t *testing.T) {
	for _, desc := range []string{"I", "J", "[J", "[[Ljava/lang/String;", "Lcom/example/Foo;"} {
		assert.True(t, ValidFieldDescriptor(desc), desc)
	}

	for _, desc := range []string{"", "V", "L;", "Ljava/lang/String", "II", "["} {
		assert.False(t, ValidFieldDescriptor(desc), desc)
	}

	for _, desc := range []string{"()V", "(Ljava/lang/String;I)Ljava/lang/String;", "([Ljava/lang/String;)V", "(JJ)[B"} {
		assert.True(t, ValidMethodDescriptor(desc), desc)
	}

	for _, desc := range []string{"", "V", "()", "(V)V", "()VV", "(I"} {
		assert.False(t, ValidMethodDescriptor(desc), desc)
	}
}

func TestUnitEntryHelpers(t *testing.T) {
	codec := NewYAMLCodec()

	assert.Equal(t, "com/example/Foo.unit.yaml", EntryName(codec, "com/example/Foo"))
	assert.True(t, IsUnitEntry(codec)("com/example/Foo.unit.yaml"))
	assert.False(t, IsUnitEntry(codec)("META-INF/MANIFEST.MF"))
}
