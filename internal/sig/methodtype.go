package sig

import "github.com/iwanowww/valhalla/internal/types"

// MethodType supplies parameter and return types that are already resolved,
// e.g. from a dynamically computed call site. It is the alternate
// construction source for Signatures, bypassing descriptor scanning.
type MethodType interface {
	// ParamCount returns the number of parameters.
	ParamCount() int

	// ParamSlotCount returns the total parameter slot count.
	ParamSlotCount() int

	// ParamAt returns the i'th parameter type and its never-null flag.
	// i must be in [0, ParamCount()).
	ParamAt(i int) (types.Type, bool)

	// ReturnType returns the return type and its never-null flag.
	ReturnType() (types.Type, bool)
}

// Param is one element of a resolved method type.
type Param struct {
	Type      types.Type
	NeverNull bool
}

// ResolvedMethodType is a MethodType backed by explicit parameter and
// return entries.
type ResolvedMethodType struct {
	params []Param
	ret    Param
	slots  int
}

// NewResolvedMethodType creates a ResolvedMethodType from its parameters
// (in declaration order) and return entry.
func NewResolvedMethodType(params []Param, ret Param) *ResolvedMethodType {
	slots := 0
	for _, p := range params {
		slots += p.Type.Slots()
	}
	return &ResolvedMethodType{params: params, ret: ret, slots: slots}
}

// ParamCount implements MethodType.
func (m *ResolvedMethodType) ParamCount() int {
	return len(m.params)
}

// ParamSlotCount implements MethodType.
func (m *ResolvedMethodType) ParamSlotCount() int {
	return m.slots
}

// ParamAt implements MethodType.
func (m *ResolvedMethodType) ParamAt(i int) (types.Type, bool) {
	p := m.params[i]
	return p.Type, p.NeverNull
}

// ReturnType implements MethodType.
func (m *ResolvedMethodType) ReturnType() (types.Type, bool) {
	return m.ret.Type, m.ret.NeverNull
}
