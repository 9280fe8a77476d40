// Package resolve turns symbolic class names into concrete types. It owns
// the process-wide class table shared by all compilation requests and the
// per-request accessing context threaded through signature construction.
package resolve

import (
	cmap "github.com/orcaman/concurrent-map/v2"
	"golang.org/x/exp/slices"

	"github.com/iwanowww/valhalla/internal/types"
)

// ClassInfo describes a class produced by a Loader.
type ClassInfo struct {
	Name  string
	Value bool // value class
}

// Loader loads a class by name on demand. It reports false when the class
// cannot be loaded; the cause stays internal to the loader.
type Loader func(name string) (ClassInfo, bool)

// ClassTable is the shared name-to-type table. Loaded classes and
// unresolved placeholders are both interned, so repeated resolution of the
// same name yields the identical Type instance. All methods are safe for
// concurrent use.
type ClassTable struct {
	classes      cmap.ConcurrentMap[string, *types.Instance]
	placeholders cmap.ConcurrentMap[string, *types.Instance]
	loader       Loader
}

// NewClassTable creates an empty class table.
func NewClassTable() *ClassTable {
	return &ClassTable{
		classes:      cmap.New[*types.Instance](),
		placeholders: cmap.New[*types.Instance](),
	}
}

// SetLoader installs the load-on-demand callback.
func (t *ClassTable) SetLoader(l Loader) {
	t.loader = l
}

// Define interns a loaded class. The first definition of a name is
// canonical; later definitions return the existing instance.
func (t *ClassTable) Define(name string, value bool) *types.Instance {
	return t.classes.Upsert(name, types.NewInstance(name, value), keepFirst)
}

// Lookup returns the loaded class for name, if any.
func (t *ClassTable) Lookup(name string) (*types.Instance, bool) {
	return t.classes.Get(name)
}

// Placeholder interns and returns the unresolved placeholder for name.
func (t *ClassTable) Placeholder(name string) *types.Instance {
	return t.placeholders.Upsert(name, types.NewUnresolved(name), keepFirst)
}

// Names returns the names of all loaded classes, sorted.
func (t *ClassTable) Names() []string {
	names := t.classes.Keys()
	slices.Sort(names)
	return names
}

// load attempts to load name through the installed loader.
func (t *ClassTable) load(name string) (*types.Instance, bool) {
	if t.loader == nil {
		return nil, false
	}
	info, ok := t.loader(name)
	if !ok {
		return nil, false
	}
	return t.Define(name, info.Value), true
}

// keepFirst is an upsert callback that preserves the first interned value.
func keepFirst(exist bool, cur, nw *types.Instance) *types.Instance {
	if exist {
		return cur
	}
	return nw
}
