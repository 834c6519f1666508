package dyntree

import (
	"golang.org/x/exp/constraints"

	"github.com/npillmayer/dyntree/node"
)

// Updater is the update-variation capability (spec.md §4.4): applying
// an operator U pointwise over a subtree. A is the update argument
// type. For a nullary operator (no argument, e.g. arithmetic negation),
// instantiate A as struct{} and ignore the second parameter.
type Updater[V, A any] interface {
	Apply(v V, arg A) V
}

// UpdaterFunc adapts a bare function to Updater, the same
// function-type-implements-interface idiom the corpus already uses
// (e.g. cockroachdb/cockroach's interval.Overlapper, stdlib's
// http.HandlerFunc).
type UpdaterFunc[V, A any] func(V, A) V

func (f UpdaterFunc[V, A]) Apply(v V, arg A) V { return f(v, arg) }

// Aggregator is the range-get variation capability (spec.md §4.5): a
// segment initializer I lifting a single value into an aggregate, and a
// combiner C merging two aggregates across a split point. Both forms
// spec.md allows — border-free and border-aware — are expressed as one
// shape here; a border-free combiner or initializer is simply a closure
// that ignores its lb/mid/re (or lb/le) parameters.
type Aggregator[K constraints.Integer, V, Agg any] interface {
	// Init lifts the value of a uniformly-filled leaf span [lb, le) into
	// an aggregate.
	Init(v V, lb, le K) Agg
	// Combine merges the aggregate of [lb, mid) with that of [mid, re)
	// into the aggregate of [lb, re). lb, mid, re are clipped to the
	// caller's query range, not the node's own span.
	Combine(l, r Agg, lb, mid, re K) Agg
}

// AggregatorFuncs adapts a pair of closures to Aggregator.
type AggregatorFuncs[K constraints.Integer, V, Agg any] struct {
	InitFunc    func(v V, lb, le K) Agg
	CombineFunc func(l, r Agg, lb, mid, re K) Agg
}

func (a AggregatorFuncs[K, V, Agg]) Init(v V, lb, le K) Agg {
	return a.InitFunc(v, lb, le)
}

func (a AggregatorFuncs[K, V, Agg]) Combine(l, r Agg, lb, mid, re K) Agg {
	return a.CombineFunc(l, r, lb, mid, re)
}

// SimpleCombiner builds an AggregatorFuncs.CombineFunc from a
// border-free combiner C(l, r) -> Agg, spec.md §4.5's first combiner
// form.
func SimpleCombiner[K constraints.Integer, Agg any](c func(l, r Agg) Agg) func(Agg, Agg, K, K, K) Agg {
	return func(l, r Agg, _, _, _ K) Agg { return c(l, r) }
}

// SimpleInitializer builds an AggregatorFuncs.InitFunc from a
// border-free initializer I(v) -> Agg, spec.md §4.5's first
// initializer form.
func SimpleInitializer[K constraints.Integer, V, Agg any](i func(v V) Agg) func(V, K, K) Agg {
	return func(v V, _, _ K) Agg { return i(v) }
}

// Config configures a Tree at construction time. Updater and Aggregator
// are both optional (nil means "not configured"); nothing else in
// Config requires validation, since every other piece of state is
// either supplied directly to New or derived at construction time.
//
// Combiner and initializer being one interface value rather than two
// independently-nilable fields removes, by construction, the
// misconfiguration spec.md §4.1 guards against in the source with a
// pair of `requires` clauses ("combiner and initializer must either
// both be absent... or both present").
type Config[K constraints.Integer, V, Agg, A any] struct {
	Updater    Updater[V, A]
	Aggregator Aggregator[K, V, Agg]
	// Allocator supplies node-pair storage (node.DefaultAllocator is used
	// when left nil).
	Allocator node.Allocator[V, A]
}

func (cfg Config[K, V, Agg, A]) validate(begin, end K) error {
	if begin > end {
		return ErrInvalidConfig
	}
	return nil
}
