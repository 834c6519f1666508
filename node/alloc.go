package node

import "sync"

// Allocator supplies the backing storage for a node's pair of children.
// Children of an internal node are always materialized together (spec
// §9: "reserves children in pairs... right = left + 1"); in Go this is a
// contiguous two-element array rather than pointer arithmetic, and an
// Allocator decides where that array's memory comes from.
//
// Go has no placement-new hook into array construction, so an Allocator
// cannot change *how* the two Node values are built, only *where the
// memory for them is sourced from* (fresh heap allocation, or a recycled
// slot from a pool). FreePair is called when a full subtree collapses
// back to a single leaf and the pair is no longer reachable.
type Allocator[V, A any] interface {
	AllocPair() (*[2]Node[V, A], error)
	FreePair(*[2]Node[V, A])
}

// DefaultAllocator is the zero-configuration Allocator: every pair is a
// fresh heap allocation and FreePair is a no-op, leaving reclamation to
// the garbage collector. This is the Go analogue of spec §9's fallback
// guidance for languages without custom allocator generics: Go *does*
// support parameterizing Tree over an Allocator interface, so the
// parameter is kept, but DefaultAllocator is what a caller gets without
// opting into anything fancier.
type DefaultAllocator[V, A any] struct{}

func (DefaultAllocator[V, A]) AllocPair() (*[2]Node[V, A], error) {
	return &[2]Node[V, A]{}, nil
}

func (DefaultAllocator[V, A]) FreePair(*[2]Node[V, A]) {}

// PoolAllocator recycles node pairs through a sync.Pool, the idiomatic
// Go stand-in for a benchmark-oriented arena allocator. Safe for
// concurrent use by multiple trees sharing one pool, though any single
// Tree built on it remains subject to the single-threaded access model
// of spec §5.
type PoolAllocator[V, A any] struct {
	pool sync.Pool
}

// NewPoolAllocator returns a PoolAllocator ready for use.
func NewPoolAllocator[V, A any]() *PoolAllocator[V, A] {
	p := &PoolAllocator[V, A]{}
	p.pool.New = func() any { return &[2]Node[V, A]{} }
	return p
}

func (p *PoolAllocator[V, A]) AllocPair() (*[2]Node[V, A], error) {
	pair := p.pool.Get().(*[2]Node[V, A])
	*pair = [2]Node[V, A]{}
	return pair, nil
}

func (p *PoolAllocator[V, A]) FreePair(pair *[2]Node[V, A]) {
	p.pool.Put(pair)
}
