package types

import (
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/pkg/errors"

	"github.com/iwanowww/valhalla/internal/descriptor"
)

// arrays interns array types by their raw descriptor text so that two
// scans of the same element yield the identical Type instance.
var arrays = cmap.New[*Array]()

// FromElement returns the Type for a primitive or array descriptor element.
// Reference elements resolve through the class table, not here; passing one
// is an error. An element the model cannot classify is a grammar violation
// upstream and is also reported as an error.
func FromElement(elem descriptor.Element) (Type, error) {
	switch elem.Kind {
	case descriptor.Primitive:
		kind := KindForTag(elem.Tag)
		if kind == Invalid {
			return nil, errors.Errorf("types: unrecognized primitive tag %q", elem.Tag)
		}
		return Typ[kind], nil

	case descriptor.Array:
		if a, ok := arrays.Get(elem.Text); ok {
			return a, nil
		}
		var elemType Type
		if elem.ClassName != "" {
			elemType = NewUnresolved(elem.ClassName)
		} else {
			kind := KindForTag(elem.Tag)
			if kind == Invalid || kind == Void {
				return nil, errors.Errorf("types: invalid array element tag %q", elem.Tag)
			}
			elemType = Typ[kind]
		}
		a := NewArray(elemType, elem.Dims)
		return arrays.Upsert(elem.Text, a, keepExisting), nil

	case descriptor.Reference:
		return nil, errors.Errorf("types: reference element %s must resolve through the class table", elem.Text)
	}
	return nil, errors.Errorf("types: unclassifiable element kind %s", elem.Kind)
}

// keepExisting is an upsert callback that preserves the first interned value.
func keepExisting(exist bool, cur, nw *Array) *Array {
	if exist {
		return cur
	}
	return nw
}
