// Package types implements the type model consumed by the signature layer:
// primitive, array, and reference types, plus the never-null decorator for
// value types. Types are compared by identity; loaded and placeholder types
// are interned by their producers so that identity comparison is meaningful.
package types

// Type is the interface implemented by all types.
type Type interface {
	// Slots returns the number of argument slots a value of this type
	// occupies: 2 for long and double, 0 for void, 1 otherwise.
	Slots() int

	// String returns a human-readable representation of the type.
	String() string

	// aType is a marker method to restrict implementations to this package.
	aType()
}

// typ is a base struct for all type implementations.
type typ struct{}

func (typ) aType() {}
