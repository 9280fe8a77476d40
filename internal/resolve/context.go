package resolve

import (
	"sync"

	"github.com/iwanowww/valhalla/internal/types"
)

// Context is the accessing context for resolution: the class on whose
// behalf names are resolved, plus that class's constant-pool cache. It is
// passed explicitly to every construction and resolution call.
type Context struct {
	accessor *types.Instance
	pool     *ConstantPool
}

// NewContext creates a context for the given accessing class.
// A nil accessor is permitted for callers without a class scope.
func NewContext(accessor *types.Instance) *Context {
	return &Context{accessor: accessor, pool: NewConstantPool()}
}

// Accessor returns the accessing class, or nil.
func (c *Context) Accessor() *types.Instance {
	return c.accessor
}

// Pool returns the context's constant-pool cache.
func (c *Context) Pool() *ConstantPool {
	return c.pool
}

// ConstantPool caches per-class resolution results so repeated references
// from the same class skip the shared table. Only loaded types are cached;
// placeholders are not, so a later class load stays visible.
type ConstantPool struct {
	mu    sync.RWMutex
	cache map[string]types.Type
}

// NewConstantPool creates an empty constant-pool cache.
func NewConstantPool() *ConstantPool {
	return &ConstantPool{cache: make(map[string]types.Type)}
}

func (p *ConstantPool) lookup(name string) (types.Type, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	t, ok := p.cache[name]
	return t, ok
}

func (p *ConstantPool) record(name string, t types.Type) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache[name] = t
}
