package node

import (
	"errors"
	"testing"
)

func addUpdater(v, arg int) int { return v + arg }

func TestNewLeafIsLeaf(t *testing.T) {
	n := NewLeaf[int, int](42)
	if !n.IsLeaf() {
		t.Fatalf("expected fresh node to be a leaf")
	}
	if got := n.Value(); got != 42 {
		t.Fatalf("Value() = %d, want 42", got)
	}
}

func TestInitChildrenCopiesValueToBoth(t *testing.T) {
	n := NewLeaf[int, int](7)
	alloc := DefaultAllocator[int, int]{}
	if err := n.InitChildren(alloc); err != nil {
		t.Fatalf("InitChildren: %v", err)
	}
	if n.IsLeaf() {
		t.Fatalf("expected internal node after InitChildren")
	}
	if got := n.Left().Value(); got != 7 {
		t.Fatalf("left value = %d, want 7", got)
	}
	if got := n.Right().Value(); got != 7 {
		t.Fatalf("right value = %d, want 7", got)
	}
}

type failingAllocator[V, A any] struct{}

func (failingAllocator[V, A]) AllocPair() (*[2]Node[V, A], error) {
	return nil, errors.New("out of memory")
}
func (failingAllocator[V, A]) FreePair(*[2]Node[V, A]) {}

func TestInitChildrenFailureLeavesLeafIntact(t *testing.T) {
	n := NewLeaf[int, int](99)
	err := n.InitChildren(failingAllocator[int, int]{})
	if err == nil {
		t.Fatalf("expected allocation error")
	}
	if !errors.Is(err, ErrAllocationFailure) {
		t.Fatalf("expected ErrAllocationFailure, got %v", err)
	}
	if !n.IsLeaf() {
		t.Fatalf("node must remain a leaf after a failed InitChildren")
	}
	if got := n.Value(); got != 99 {
		t.Fatalf("value corrupted after failed InitChildren: got %d, want 99", got)
	}
}

func TestSetValueCollapsesAndClearsPending(t *testing.T) {
	n := NewLeaf[int, int](1)
	alloc := DefaultAllocator[int, int]{}
	if err := n.InitChildren(alloc); err != nil {
		t.Fatalf("InitChildren: %v", err)
	}
	n.SetPending(5)
	n.SetValue(alloc, 100)
	if !n.IsLeaf() {
		t.Fatalf("expected leaf after SetValue collapse")
	}
	if got := n.Value(); got != 100 {
		t.Fatalf("Value() = %d, want 100", got)
	}
	if n.pending != nil {
		t.Fatalf("pending update survived the SetValue collapse")
	}
}

func TestApplyUpdateLeafAppliesDirectly(t *testing.T) {
	n := NewLeaf[int, int](10)
	n.ApplyUpdate(addUpdater, 5)
	if got := n.Value(); got != 15 {
		t.Fatalf("Value() = %d, want 15", got)
	}
}

func TestApplyUpdateInternalPushesOldPendingBeforeStoringNew(t *testing.T) {
	n := NewLeaf[int, int](0)
	alloc := DefaultAllocator[int, int]{}
	if err := n.InitChildren(alloc); err != nil {
		t.Fatalf("InitChildren: %v", err)
	}
	n.ApplyUpdate(addUpdater, 3)
	if arg, ok := n.Pending(); !ok || arg != 3 {
		t.Fatalf("pending = (%d,%v), want (3,true)", arg, ok)
	}
	if got := n.Left().Value(); got != 0 {
		t.Fatalf("left value mutated before pushdown: got %d", got)
	}

	n.ApplyUpdate(addUpdater, 4)
	if arg, ok := n.Pending(); !ok || arg != 4 {
		t.Fatalf("pending after second update = (%d,%v), want (4,true)", arg, ok)
	}
	if got := n.Left().Value(); got != 3 {
		t.Fatalf("left value after pushdown = %d, want 3", got)
	}
	if got := n.Right().Value(); got != 3 {
		t.Fatalf("right value after pushdown = %d, want 3", got)
	}
}

func TestSiftPushesPendingToBothChildrenAndClearsSlot(t *testing.T) {
	n := NewLeaf[int, int](2)
	alloc := DefaultAllocator[int, int]{}
	if err := n.InitChildren(alloc); err != nil {
		t.Fatalf("InitChildren: %v", err)
	}
	n.SetPending(6)
	n.Sift(addUpdater)
	if _, ok := n.Pending(); ok {
		t.Fatalf("expected pending slot cleared after Sift")
	}
	if got := n.Left().Value(); got != 8 {
		t.Fatalf("left value = %d, want 8", got)
	}
	if got := n.Right().Value(); got != 8 {
		t.Fatalf("right value = %d, want 8", got)
	}
}

func TestSiftNoopWithoutPending(t *testing.T) {
	n := NewLeaf[int, int](2)
	alloc := DefaultAllocator[int, int]{}
	if err := n.InitChildren(alloc); err != nil {
		t.Fatalf("InitChildren: %v", err)
	}
	n.Sift(addUpdater)
	if got := n.Left().Value(); got != 2 {
		t.Fatalf("left value changed by a no-op sift: got %d", got)
	}
}

func TestNullaryPendingDegeneratesToBooleanFlag(t *testing.T) {
	negate := func(v int, _ struct{}) int { return -v }
	n := NewLeaf[int, struct{}](5)
	alloc := DefaultAllocator[int, struct{}]{}
	if err := n.InitChildren(alloc); err != nil {
		t.Fatalf("InitChildren: %v", err)
	}
	n.ApplyUpdate(negate, struct{}{})
	if _, ok := n.Pending(); !ok {
		t.Fatalf("expected a pending nullary update")
	}
	n.Sift(negate)
	if got := n.Left().Value(); got != -5 {
		t.Fatalf("left value = %d, want -5", got)
	}
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	n := NewLeaf[int, int](1)
	alloc := DefaultAllocator[int, int]{}
	if err := n.InitChildren(alloc); err != nil {
		t.Fatalf("InitChildren: %v", err)
	}
	n.SetPending(9)

	clone, err := n.Clone(alloc)
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	clone.Sift(addUpdater)
	if arg, ok := n.Pending(); !ok || arg != 9 {
		t.Fatalf("original pending mutated by sifting the clone: (%d,%v)", arg, ok)
	}
	if got := clone.Left().Value(); got != 10 {
		t.Fatalf("clone left value = %d, want 10", got)
	}
}

func TestPoolAllocatorRecyclesPairs(t *testing.T) {
	pool := NewPoolAllocator[int, int]()
	n := NewLeaf[int, int](1)
	if err := n.InitChildren(pool); err != nil {
		t.Fatalf("InitChildren: %v", err)
	}
	n.SetValue(pool, 2)
	if !n.IsLeaf() {
		t.Fatalf("expected collapse back to leaf")
	}

	n2 := NewLeaf[int, int](3)
	if err := n2.InitChildren(pool); err != nil {
		t.Fatalf("InitChildren after recycle: %v", err)
	}
	if got := n2.Left().Value(); got != 3 {
		t.Fatalf("recycled pair not reset: left = %d, want 3", got)
	}
}
