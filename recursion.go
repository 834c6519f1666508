package dyntree

import (
	"golang.org/x/exp/constraints"

	"github.com/npillmayer/dyntree/node"
)

// setImpl is the recursive walk behind Set (spec.md §4.3 "set"). updater
// may be nil when the tree has no update operator configured, in which
// case the sift step is skipped (spec.md §4.3 step 4: "call sift(U) on
// the current node (if update is enabled)").
func setImpl[K constraints.Integer, V, A any](
	n *node.Node[V, A], alloc node.Allocator[V, A], updater Updater[V, A],
	b, e, cb, ce K, v V,
) error {
	T().Debugf("called setImpl([%v,%v), curr=[%v,%v))", b, e, cb, ce)
	if cb >= e || ce <= b {
		return nil
	}
	if b <= cb && ce <= e {
		T().Debugf("setImpl: [%v,%v) fully covers [%v,%v), collapsing to leaf", b, e, cb, ce)
		n.SetValue(alloc, v)
		return nil
	}
	if n.IsLeaf() {
		if err := n.InitChildren(alloc); err != nil {
			return err
		}
	}
	mid := cb + (ce-cb)/2
	if updater != nil {
		n.Sift(updater.Apply)
	}
	if mid > b {
		if err := setImpl(n.Left(), alloc, updater, b, e, cb, mid, v); err != nil {
			return err
		}
	}
	if mid < e {
		if err := setImpl(n.Right(), alloc, updater, b, e, mid, ce, v); err != nil {
			return err
		}
	}
	return nil
}

// updateImpl is the recursive walk behind Update (spec.md §4.3 "update").
func updateImpl[K constraints.Integer, V, A any](
	n *node.Node[V, A], alloc node.Allocator[V, A], updater Updater[V, A],
	b, e, cb, ce K, arg A,
) error {
	T().Debugf("called updateImpl([%v,%v), curr=[%v,%v))", b, e, cb, ce)
	if cb >= e || ce <= b {
		return nil
	}
	if b <= cb && ce <= e {
		n.ApplyUpdate(updater.Apply, arg)
		return nil
	}
	if n.IsLeaf() {
		if err := n.InitChildren(alloc); err != nil {
			return err
		}
	}
	mid := cb + (ce-cb)/2
	n.Sift(updater.Apply)
	if mid > b {
		if err := updateImpl(n.Left(), alloc, updater, b, e, cb, mid, arg); err != nil {
			return err
		}
	}
	if mid < e {
		if err := updateImpl(n.Right(), alloc, updater, b, e, mid, ce, arg); err != nil {
			return err
		}
	}
	return nil
}

// getImpl is the recursive walk behind Get (spec.md §4.3 "point-get").
// Precondition: k is already known to lie within [cb, ce).
func getImpl[K constraints.Integer, V, A any](
	n *node.Node[V, A], updater Updater[V, A], k, cb, ce K,
) V {
	T().Debugf("called getImpl(%v, curr=[%v,%v))", k, cb, ce)
	for !n.IsLeaf() {
		if updater != nil {
			n.Sift(updater.Apply)
		}
		mid := cb + (ce-cb)/2
		if k >= mid {
			n, cb = n.Right(), mid
		} else {
			n, ce = n.Left(), mid
		}
	}
	return n.Value()
}

// rangeGetImpl is the recursive walk behind RangeGet (spec.md §4.3
// "range-get"). It may materialize children via InitChildren on a leaf
// straddling the query boundary (spec.md §4.3's documented side effect
// on tree topology).
func rangeGetImpl[K constraints.Integer, V, Agg, A any](
	n *node.Node[V, A], alloc node.Allocator[V, A], updater Updater[V, A], agg Aggregator[K, V, Agg],
	b, e, cb, ce K,
) (Agg, error) {
	T().Debugf("called rangeGetImpl([%v,%v), curr=[%v,%v))", b, e, cb, ce)
	var zero Agg
	if b <= cb && ce <= e && n.IsLeaf() {
		return agg.Init(n.Value(), cb, ce), nil
	}
	if n.IsLeaf() {
		if err := n.InitChildren(alloc); err != nil {
			return zero, err
		}
	}
	if updater != nil {
		n.Sift(updater.Apply)
	}
	mid := cb + (ce-cb)/2

	if b >= mid {
		return rangeGetImpl(n.Right(), alloc, updater, agg, b, e, mid, ce)
	}
	if e <= mid {
		return rangeGetImpl(n.Left(), alloc, updater, agg, b, e, cb, mid)
	}

	l, err := rangeGetImpl(n.Left(), alloc, updater, agg, b, e, cb, mid)
	if err != nil {
		return zero, err
	}
	r, err := rangeGetImpl(n.Right(), alloc, updater, agg, b, e, mid, ce)
	if err != nil {
		return zero, err
	}
	lb, re := cb, ce
	if b > lb {
		lb = b
	}
	if e < re {
		re = e
	}
	return agg.Combine(l, r, lb, mid, re), nil
}
