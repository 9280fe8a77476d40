package types

// Kind describes the kind of a primitive type.
type Kind int

const (
	Invalid Kind = iota // invalid kind

	Boolean
	Char
	Float
	Double
	Byte
	Short
	Int
	Long

	// Void is only valid as a return type.
	Void
)

// Basic represents a primitive type (or void).
type Basic struct {
	typ
	kind  Kind
	slots int
	name  string
}

// Kind returns the kind of the primitive type.
func (b *Basic) Kind() Kind {
	return b.kind
}

// Name returns the name of the primitive type.
func (b *Basic) Name() string {
	return b.name
}

// Slots implements Type.
func (b *Basic) Slots() int {
	return b.slots
}

// String implements Type.
func (b *Basic) String() string {
	return b.name
}

// Typ holds the canonical primitive types, indexed by Kind.
// Typ[Invalid] is nil, representing an invalid type.
var Typ = []*Basic{
	Invalid: nil,
	Boolean: {kind: Boolean, slots: 1, name: "boolean"},
	Char:    {kind: Char, slots: 1, name: "char"},
	Float:   {kind: Float, slots: 1, name: "float"},
	Double:  {kind: Double, slots: 2, name: "double"},
	Byte:    {kind: Byte, slots: 1, name: "byte"},
	Short:   {kind: Short, slots: 1, name: "short"},
	Int:     {kind: Int, slots: 1, name: "int"},
	Long:    {kind: Long, slots: 2, name: "long"},
	Void:    {kind: Void, slots: 0, name: "void"},
}

// KindForTag returns the primitive kind for a descriptor tag character.
// It returns Invalid for tags that do not name a primitive type.
func KindForTag(tag byte) Kind {
	switch tag {
	case 'Z':
		return Boolean
	case 'C':
		return Char
	case 'F':
		return Float
	case 'D':
		return Double
	case 'B':
		return Byte
	case 'S':
		return Short
	case 'I':
		return Int
	case 'J':
		return Long
	case 'V':
		return Void
	}
	return Invalid
}
