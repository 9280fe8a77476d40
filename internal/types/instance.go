package types

// Instance represents a reference type: a class named in a descriptor.
// A loaded Instance carries its value-class property; an unresolved
// Instance is a placeholder standing in for a class not yet loaded.
//
// Instances are interned by the class table that produces them, so two
// resolutions of the same name within one table yield the same pointer.
type Instance struct {
	typ
	name   string
	value  bool // loaded value class
	loaded bool
}

// NewInstance creates a loaded reference type.
func NewInstance(name string, value bool) *Instance {
	return &Instance{name: name, value: value, loaded: true}
}

// NewUnresolved creates an unresolved placeholder for the given class name.
func NewUnresolved(name string) *Instance {
	return &Instance{name: name}
}

// Name returns the binary class name.
func (t *Instance) Name() string {
	return t.name
}

// IsLoaded reports whether the class has been loaded.
func (t *Instance) IsLoaded() bool {
	return t.loaded
}

// IsValue reports whether this is a loaded value class.
// It is always false for unresolved placeholders.
func (t *Instance) IsValue() bool {
	return t.loaded && t.value
}

// Slots implements Type.
func (t *Instance) Slots() int {
	return 1
}

// String implements Type.
func (t *Instance) String() string {
	return t.name
}
