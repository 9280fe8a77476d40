// Package sig models a compiled method's signature: the ordered parameter
// types plus the return type, resolved against an accessing context. A
// Signature is built once, is immutable afterwards, and is safe for
// unsynchronized concurrent reads.
package sig

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/iwanowww/valhalla/internal/descriptor"
	"github.com/iwanowww/valhalla/internal/resolve"
	"github.com/iwanowww/valhalla/internal/types"
)

// Signature is the resolved form of a method descriptor.
//
// The stored type sequence has count+1 elements: indices 0..count-1 are the
// parameters in declaration order and index count is the return type, each
// possibly never-null wrapped. count and size cover parameters only.
type Signature struct {
	ctx    *resolve.Context
	symbol string
	types  []types.Type
	count  int // parameter count, excludes return
	size   int // parameter slot count, excludes return
}

// New builds a Signature by scanning the descriptor one element at a time.
// Primitive and array elements come straight from the type model; reference
// elements resolve through r without triggering class loading. A grammar
// violation aborts construction.
func New(r *resolve.Resolver, ctx *resolve.Context, desc string) (*Signature, error) {
	stream, err := descriptor.New(desc)
	if err != nil {
		return nil, err
	}

	s := &Signature{ctx: ctx, symbol: desc, types: make([]types.Type, 0, 8)}
	for {
		elem, err := stream.Next()
		if err != nil {
			return nil, errors.Wrap(err, "malformed method descriptor")
		}

		var t types.Type
		if elem.Kind == descriptor.Reference {
			t = r.ResolveClass(ctx, elem.ClassName, false)
		} else {
			t, err = types.FromElement(elem)
			if err != nil {
				return nil, errors.Wrap(err, "malformed method descriptor")
			}
		}
		s.types = append(s.types, wrapIfNeverNull(t, elem.ValueNotNull))

		if elem.AtReturn {
			// The return element is stored but excluded from count and size.
			break
		}
		s.size += t.Slots()
		s.count++
	}
	return s, nil
}

// FromMethodType builds a Signature from an already-resolved method type,
// bypassing descriptor scanning. The result is interchangeable with New for
// every caller of the query surface.
func FromMethodType(ctx *resolve.Context, desc string, mt MethodType) *Signature {
	s := &Signature{
		ctx:    ctx,
		symbol: desc,
		count:  mt.ParamCount(),
		size:   mt.ParamSlotCount(),
	}
	s.types = make([]types.Type, 0, s.count+1)
	for i := 0; i < s.count; i++ {
		t, neverNull := mt.ParamAt(i)
		s.types = append(s.types, wrapIfNeverNull(t, neverNull))
	}
	t, neverNull := mt.ReturnType()
	s.types = append(s.types, wrapIfNeverNull(t, neverNull))
	return s
}

// wrapIfNeverNull applies the never-null decoration when the element is so
// tagged and the type is a loaded value type. An unresolved placeholder is
// left bare: whether it is a value type is not yet known.
func wrapIfNeverNull(t types.Type, neverNull bool) types.Type {
	if neverNull && types.IsValue(t) {
		return types.Wrap(t)
	}
	return t
}

// Count returns the number of parameters, excluding the return type.
func (s *Signature) Count() int {
	return s.count
}

// Size returns the total parameter slot count, excluding the return type.
func (s *Signature) Size() int {
	return s.size
}

// Symbol returns the raw descriptor text.
func (s *Signature) Symbol() string {
	return s.symbol
}

// ReturnType returns the base (unwrapped) return type.
func (s *Signature) ReturnType() types.Type {
	return types.Unwrap(s.types[s.count])
}

// TypeAt returns the base (unwrapped) type of the i'th parameter.
// It reports false when i is outside [0, Count()).
func (s *Signature) TypeAt(i int) (types.Type, bool) {
	if i < 0 || i >= s.count {
		return nil, false
	}
	return types.Unwrap(s.types[i]), true
}

// MustTypeAt is like TypeAt but panics on an out-of-range index.
func (s *Signature) MustTypeAt(i int) types.Type {
	t, ok := s.TypeAt(i)
	if !ok {
		panic(fmt.Sprintf("sig: parameter index %d out of range [0, %d)", i, s.count))
	}
	return t
}

// ReturnsNeverNull reports whether the return value is statically known to
// be never null.
func (s *Signature) ReturnsNeverNull() bool {
	return types.IsNeverNull(s.types[s.count])
}

// MaybeReturnsNeverNull reports whether the return value is statically
// known to be never null, or the return class is not yet loaded while the
// raw descriptor tags it as a never-null value type. The weaker answer is
// used only while the precise one is not yet knowable.
func (s *Signature) MaybeReturnsNeverNull() bool {
	ret := s.types[s.count]
	if types.IsNeverNull(ret) {
		return true
	}
	return types.IsUnresolved(ret) && descriptor.ReturnsValue(s.symbol)
}

// NeverNullAt reports whether the i'th parameter is statically known to be
// never null. It reports false in the second result when i is outside
// [0, Count()).
func (s *Signature) NeverNullAt(i int) (neverNull, ok bool) {
	if i < 0 || i >= s.count {
		return false, false
	}
	return types.IsNeverNull(s.types[i]), true
}

// MustNeverNullAt is like NeverNullAt but panics on an out-of-range index.
func (s *Signature) MustNeverNullAt(i int) bool {
	neverNull, ok := s.NeverNullAt(i)
	if !ok {
		panic(fmt.Sprintf("sig: parameter index %d out of range [0, %d)", i, s.count))
	}
	return neverNull
}

// Equals reports whether two Signatures denote the same resolved signature:
// equal descriptor text and the identical resolved type instance at every
// parameter index and at the return. The accessing contexts need not match.
func (s *Signature) Equals(other *Signature) bool {
	if other == nil {
		return false
	}
	if s.symbol != other.symbol {
		return false
	}
	// Equal descriptor text implies equal element counts.
	for i := 0; i < s.count; i++ {
		if !types.Identical(types.Unwrap(s.types[i]), types.Unwrap(other.types[i])) {
			return false
		}
	}
	return types.Identical(s.ReturnType(), other.ReturnType())
}

// String returns a diagnostic rendering combining the descriptor and the
// accessing context.
func (s *Signature) String() string {
	accessor := "<none>"
	if s.ctx != nil && s.ctx.Accessor() != nil {
		accessor = s.ctx.Accessor().Name()
	}
	return fmt.Sprintf("<signature %s of %s>", s.symbol, accessor)
}
