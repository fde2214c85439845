// Package pool wraps sync.Pool with a typed API for the parser's per-parse
// scratch space. Pooling covers only transient buffers; parse results are
// built fresh every invocation.
package pool

import "sync"

// Pool is a generic, type-safe object pool. The optional reset function
// runs before each reuse.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// New creates a pool backed by the given factory.
func New[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any { return factory() },
		},
	}
}

// NewWithReset creates a pool whose objects are reset before reuse.
func NewWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := New(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool, creating one when empty.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object for reuse. Nil objects are dropped.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}
