// Package model defines the data structures shared by the obfuscation pipeline.
package model

// Access flags carried by units and members. Values follow the class file format.
const (
	AccPublic    uint16 = 0x0001
	AccPrivate   uint16 = 0x0002
	AccProtected uint16 = 0x0004
	AccStatic    uint16 = 0x0008
	AccFinal     uint16 = 0x0010
	AccSuper     uint16 = 0x0020
	AccBridge    uint16 = 0x0040
	AccNative    uint16 = 0x0100
	AccAbstract  uint16 = 0x0400
	AccSynthetic uint16 = 0x1000
	AccEnum      uint16 = 0x4000
)

// Names reserved for initializers.
const (
	ConstructorName       = "<init>"
	StaticInitializerName = "<clinit>"
	RootTypeName          = "java/lang/Object"
)

// Unit is one class definition of the program image. Names use the internal
// form with '/' as the package separator (e.g. "com/example/Foo").
type Unit struct {
	Name        string    `yaml:"name"`
	Super       string    `yaml:"super,omitempty"`
	Access      uint16    `yaml:"access,omitempty"`
	Fields      []*Field  `yaml:"fields,omitempty"`
	Methods     []*Method `yaml:"methods,omitempty"`
	Annotations []string  `yaml:"annotations,omitempty"`
}

// HasSuper reports whether the unit declares a supertype.
func (u *Unit) HasSuper() bool {
	return u.Super != ""
}

// Field is a field declaration.
type Field struct {
	Name       string    `yaml:"name"`
	Descriptor string    `yaml:"desc"`
	Access     uint16    `yaml:"access,omitempty"`
	Value      *Constant `yaml:"value,omitempty"`
}

// IsSynthetic reports whether the field was generated by the compiler.
func (f *Field) IsSynthetic() bool {
	return f.Access&AccSynthetic != 0
}

// IsEnumConstant reports whether the field backs an enum constant.
func (f *Field) IsEnumConstant() bool {
	return f.Access&AccEnum != 0
}

// Method is a method declaration together with its instruction sequence.
type Method struct {
	Name         string         `yaml:"name"`
	Descriptor   string         `yaml:"desc"`
	Access       uint16         `yaml:"access,omitempty"`
	Annotations  []string       `yaml:"annotations,omitempty"`
	Instructions []*Instruction `yaml:"code,omitempty"`
}

// IsInitializer reports whether the method is a constructor or static initializer.
func (m *Method) IsInitializer() bool {
	return m.Name == ConstructorName || m.Name == StaticInitializerName
}

// IsNative reports whether the method is bound to native code.
func (m *Method) IsNative() bool {
	return m.Access&AccNative != 0
}

// FindField returns the field declared with the given name and descriptor.
func (u *Unit) FindField(name, descriptor string) *Field {
	for _, f := range u.Fields {
		if f.Name == name && f.Descriptor == descriptor {
			return f
		}
	}

	return nil
}

// FindMethod returns the method declared with the given name and descriptor.
func (u *Unit) FindMethod(name, descriptor string) *Method {
	for _, m := range u.Methods {
		if m.Name == name && m.Descriptor == descriptor {
			return m
		}
	}

	return nil
}
