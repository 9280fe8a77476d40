// Package descriptor implements element-at-a-time scanning of method
// descriptors. A descriptor encodes a method's parameter and return types
// as text, e.g. "(ILjava/lang/String;)V". The scanner yields one structural
// element per call without resolving any class names; resolution is the
// caller's concern.
package descriptor

import "fmt"

// ElemKind classifies a structural element of a descriptor.
type ElemKind uint

const (
	Primitive ElemKind = iota // B, C, D, F, I, J, S, Z, and V at return
	Array                     // one or more '[' followed by a component type
	Reference                 // L<name>; or Q<name>;
)

// String returns a human-readable name for the element kind.
func (k ElemKind) String() string {
	switch k {
	case Primitive:
		return "primitive"
	case Array:
		return "array"
	case Reference:
		return "reference"
	}
	return fmt.Sprintf("ElemKind(%d)", uint(k))
}

// Element is one structural element of a method descriptor.
//
// For Primitive elements, Tag holds the primitive tag character. For
// Reference elements, ClassName holds the binary class name and Tag is
// 'L' or 'Q'. For Array elements, Dims counts the leading '[' characters
// and Tag/ClassName describe the component type.
type Element struct {
	Kind      ElemKind
	Tag       byte   // tag character: primitive tag, 'L', or 'Q'
	ClassName string // binary class name (Reference, or Array of references)
	Dims      int    // array dimensions (0 unless Kind == Array)
	Text      string // raw element text as it appears in the descriptor

	// ValueNotNull reports that a Reference element was written with the
	// 'Q' tag: a value type statically known to be never null.
	ValueNotNull bool

	// AtReturn reports that this element is the return-type element.
	AtReturn bool
}
