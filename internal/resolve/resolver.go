package resolve

import (
	"log/slog"

	"github.com/iwanowww/valhalla/internal/types"
)

// Resolver resolves symbolic class names against a shared class table.
// Resolution never fails: a name that cannot be resolved yields an interned
// unresolved placeholder, and loader-internal errors stay internal.
type Resolver struct {
	table *ClassTable
	log   *slog.Logger
}

// NewResolver creates a resolver over the given table.
func NewResolver(table *ClassTable, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{table: table, log: logger}
}

// Table returns the underlying class table.
func (r *Resolver) Table() *ClassTable {
	return r.table
}

// ResolveClass resolves name within the given accessing context.
// Loading is attempted only when allowLoading is set and a loader is
// installed; otherwise an unloaded class resolves to its placeholder.
func (r *Resolver) ResolveClass(ctx *Context, name string, allowLoading bool) types.Type {
	if ctx != nil {
		if t, ok := ctx.Pool().lookup(name); ok {
			return t
		}
	}

	inst, ok := r.table.Lookup(name)
	if !ok && allowLoading {
		inst, ok = r.table.load(name)
		if ok {
			r.log.Debug("class loaded", "class", name)
		}
	}
	if !ok {
		r.log.Debug("class unresolved", "class", name, "allowLoading", allowLoading)
		return r.table.Placeholder(name)
	}

	if ctx != nil {
		ctx.Pool().record(name, inst)
	}
	return inst
}
