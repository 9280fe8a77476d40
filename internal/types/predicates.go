package types

// Identical reports whether x and y are the identical type instance.
// Interning by the producing table (loaded classes, placeholders, arrays,
// the Typ table) makes pointer identity the correct comparison.
func Identical(x, y Type) bool {
	return x != nil && x == y
}

// Unwrap returns the base type of a never-null wrapped type.
// For all other types it returns the type itself.
func Unwrap(t Type) Type {
	if w, ok := t.(*NeverNull); ok {
		return w.base
	}
	return t
}

// IsNeverNull reports whether t carries the never-null decoration.
func IsNeverNull(t Type) bool {
	_, ok := t.(*NeverNull)
	return ok
}

// IsValue reports whether t is a loaded value type.
// Unresolved placeholders report false: the property is not yet known.
func IsValue(t Type) bool {
	inst, ok := t.(*Instance)
	return ok && inst.IsValue()
}

// IsPrimitive reports whether t is a primitive type (including void).
func IsPrimitive(t Type) bool {
	_, ok := t.(*Basic)
	return ok
}

// IsReference reports whether t is a reference type (instance or array),
// looking through the never-null wrapper.
func IsReference(t Type) bool {
	switch Unwrap(t).(type) {
	case *Instance, *Array:
		return true
	}
	return false
}

// IsUnresolved reports whether t is a placeholder for a class not yet
// loaded, looking through the never-null wrapper.
func IsUnresolved(t Type) bool {
	inst, ok := Unwrap(t).(*Instance)
	return ok && !inst.IsLoaded()
}
