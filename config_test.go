package dyntree

import "testing"

func TestUpdaterFuncAdaptsPlainFunction(t *testing.T) {
	var u Updater[int, int] = UpdaterFunc[int, int](func(v, arg int) int { return v * arg })
	if got := u.Apply(3, 4); got != 12 {
		t.Fatalf("Apply(3,4) = %d, want 12", got)
	}
}

func TestAggregatorFuncsAdaptsClosurePair(t *testing.T) {
	combine := SimpleCombiner[int](func(l, r int) int {
		if l > r {
			return l
		}
		return r
	})
	init := SimpleInitializer[int, int](func(v int) int { return v })
	agg := AggregatorFuncs[int, int, int]{InitFunc: init, CombineFunc: combine}

	var a Aggregator[int, int, int] = agg
	l := a.Init(3, 0, 5)
	r := a.Init(7, 5, 9)
	if got := a.Combine(l, r, 0, 5, 9); got != 7 {
		t.Fatalf("Combine(3,7) = %d, want 7 (max)", got)
	}
}

func TestConfigValidateRejectsInvertedBounds(t *testing.T) {
	cfg := Config[int, int, int, int]{}
	if err := cfg.validate(5, 5); err != nil {
		t.Fatalf("validate(5,5) should allow an empty range: %v", err)
	}
	if err := cfg.validate(5, 4); err == nil {
		t.Fatalf("validate(5,4) should reject begin > end")
	}
}
