package types

import "fmt"

// NeverNull decorates a loaded value type with the statically-known fact
// that it is never null. The decoration is separate from the base type's
// identity: a wrapped type is a distinct instance, and identity-sensitive
// consumers compare the unwrapped base.
type NeverNull struct {
	typ
	base Type
}

// Wrap decorates base with the never-null property.
// base must be a loaded value type and must not already be wrapped;
// a violation is a broken invariant upstream and panics.
func Wrap(base Type) Type {
	if IsNeverNull(base) {
		panic(fmt.Sprintf("types: %s is already never-null wrapped", base))
	}
	if !IsValue(base) {
		panic(fmt.Sprintf("types: never-null wrapper requires a loaded value type, got %s", base))
	}
	return &NeverNull{base: base}
}

// Unwrap returns the wrapped base type.
func (t *NeverNull) Unwrap() Type {
	return t.base
}

// Slots implements Type.
func (t *NeverNull) Slots() int {
	return t.base.Slots()
}

// String implements Type.
func (t *NeverNull) String() string {
	return t.base.String() + "!"
}
