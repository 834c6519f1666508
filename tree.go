// Package dyntree implements a generic dynamic segment tree: an
// in-memory mapping from a contiguous range of integer keys [begin,
// end) to values of a user-supplied type, supporting range updates,
// range assignment, point queries, and range aggregation queries.
//
// The tree is "dynamic" in the sense that it is grown lazily: a
// subtree whose whole span is covered by one Set collapses into a
// single leaf (leaves that merely hold equal values are not merged), so
// memory consumption tracks the number of distinct contiguous runs
// rather than the size of the key range. This makes
// the structure practical for enormous key spans (e.g. [-10^9, 10^9))
// that would be infeasible for an array-backed segment tree.
//
// A Tree is configured at construction time, via Config, with which of
// the four operations it supports: Set and Get are always available;
// Update requires a Config.Updater; RangeGet requires a
// Config.Aggregator. Calling a capability that was not configured
// returns ErrUpdateDisabled or ErrRangeGetDisabled rather than
// panicking or failing to compile, matching how this module's own
// teacher resolves the identical "optional per-tree capability"
// tension (see DESIGN.md).
package dyntree

import (
	"golang.org/x/exp/constraints"

	"github.com/npillmayer/dyntree/node"
)

// Tree is a dynamic segment tree over [begin, end).
//
// K is the integer key type. V is the value type stored per key. Agg is
// the aggregate type RangeGet produces (ignored when no Aggregator is
// configured). A is the update operator's argument type (struct{} for
// a nullary operator, ignored when no Updater is configured).
type Tree[K constraints.Integer, V, Agg, A any] struct {
	cfg        Config[K, V, Agg, A]
	root       *node.Node[V, A]
	begin, end K
	alloc      node.Allocator[V, A]
}

// New constructs a Tree spanning [begin, end), filled uniformly with v0.
func New[K constraints.Integer, V, Agg, A any](begin, end K, v0 V, cfg Config[K, V, Agg, A]) (*Tree[K, V, Agg, A], error) {
	if err := cfg.validate(begin, end); err != nil {
		return nil, err
	}
	alloc := cfg.Allocator
	if alloc == nil {
		alloc = node.DefaultAllocator[V, A]{}
	}
	return &Tree[K, V, Agg, A]{
		cfg:   cfg,
		root:  node.NewLeaf[V, A](v0),
		begin: begin,
		end:   end,
		alloc: alloc,
	}, nil
}

// Begin returns the tree's lower key bound (inclusive).
func (t *Tree[K, V, Agg, A]) Begin() K { return t.begin }

// End returns the tree's upper key bound (exclusive).
func (t *Tree[K, V, Agg, A]) End() K { return t.end }

// guardEmptyRange reports whether [b, e) is empty. Set and Update treat
// an empty range as a silent no-op rather than returning ErrEmptyRange
// to the caller, but the guard is still traced so the no-op remains
// observable during debugging.
func guardEmptyRange[K constraints.Integer](b, e K) bool {
	if b >= e {
		T().Debugf("%v", ErrEmptyRange)
		return true
	}
	return false
}

// Set assigns v to every key in [b, e). A no-op when b >= e. Portions
// of [b, e) outside [begin, end) are ignored.
func (t *Tree[K, V, Agg, A]) Set(b, e K, v V) error {
	if guardEmptyRange(b, e) {
		return nil
	}
	return setImpl(t.root, t.alloc, t.cfg.Updater, b, e, t.begin, t.end, v)
}

// Update applies the configured Updater pointwise over [b, e). A no-op
// when b >= e. Returns ErrUpdateDisabled if the tree has no Updater.
func (t *Tree[K, V, Agg, A]) Update(b, e K, arg A) error {
	if t.cfg.Updater == nil {
		return ErrUpdateDisabled
	}
	if guardEmptyRange(b, e) {
		return nil
	}
	return updateImpl(t.root, t.alloc, t.cfg.Updater, b, e, t.begin, t.end, arg)
}

// Get returns the value at key k, or an OutOfRangeError wrapping
// ErrOutOfRange when k is outside [begin, end).
func (t *Tree[K, V, Agg, A]) Get(k K) (V, error) {
	var zero V
	if k < t.begin || k >= t.end {
		return zero, OutOfRangeError[K]{Key: k, Begin: t.begin, End: t.end}
	}
	return getImpl(t.root, t.cfg.Updater, k, t.begin, t.end), nil
}

// RangeGet aggregates the Init-lifted leaf values over [b, e) using
// Combine. Returns ErrRangeGetDisabled if the tree has no Aggregator.
// Behavior is unspecified (spec.md §4.1) when [b, e) is not contained
// in [begin, end) or b >= e; callers must clip.
func (t *Tree[K, V, Agg, A]) RangeGet(b, e K) (Agg, error) {
	var zero Agg
	if t.cfg.Aggregator == nil {
		return zero, ErrRangeGetDisabled
	}
	return rangeGetImpl(t.root, t.alloc, t.cfg.Updater, t.cfg.Aggregator, b, e, t.begin, t.end)
}

// Clone returns a deep, disjoint copy of t: mutating the clone never
// affects t and vice versa (spec.md §8 "Copy disjointness").
func (t *Tree[K, V, Agg, A]) Clone() (*Tree[K, V, Agg, A], error) {
	clonedRoot, err := t.root.Clone(t.alloc)
	if err != nil {
		return nil, err
	}
	return &Tree[K, V, Agg, A]{
		cfg:   t.cfg,
		root:  clonedRoot,
		begin: t.begin,
		end:   t.end,
		alloc: t.alloc,
	}, nil
}
