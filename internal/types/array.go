package types

import "strings"

// Array represents an array type: one or more dimensions over an element
// type. The element type of a reference array is an unresolved placeholder
// until some caller resolves the class explicitly; array construction never
// triggers resolution.
type Array struct {
	typ
	elem Type
	dims int
}

// NewArray creates a new array type with the given element type and
// dimension count.
func NewArray(elem Type, dims int) *Array {
	return &Array{elem: elem, dims: dims}
}

// Elem returns the array element type.
func (a *Array) Elem() Type {
	return a.elem
}

// Dims returns the number of array dimensions.
func (a *Array) Dims() int {
	return a.dims
}

// Slots implements Type. Arrays are references and occupy one slot.
func (a *Array) Slots() int {
	return 1
}

// String implements Type.
func (a *Array) String() string {
	return a.elem.String() + strings.Repeat("[]", a.dims)
}
