package dyntree

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is wrapped by Get when the key falls outside [begin, end).
	ErrOutOfRange = errors.New("dyntree: key out of range")
	// ErrEmptyRange is an internal guard for a degenerate [b, e) with
	// b >= e. It is never surfaced as a Set/Update failure; those calls
	// treat an empty range as a no-op (spec.md §4.1), but guardEmptyRange
	// traces it through ErrEmptyRange so the no-op is still observable.
	ErrEmptyRange = errors.New("dyntree: begin must be < end")
	// ErrUpdateDisabled is returned by Update when the Tree was built
	// without an Updater.
	ErrUpdateDisabled = errors.New("dyntree: update operator not configured")
	// ErrRangeGetDisabled is returned by RangeGet when the Tree was built
	// without an Aggregator.
	ErrRangeGetDisabled = errors.New("dyntree: range-get not configured")
	// ErrInvalidConfig signals an invalid tree configuration or construction
	// argument.
	ErrInvalidConfig = errors.New("dyntree: invalid configuration")
)

// OutOfRangeError reports the offending key together with the tree's
// bounds, as spec.md §7.1 requires. It unwraps to ErrOutOfRange.
type OutOfRangeError[K any] struct {
	Key, Begin, End K
}

func (e OutOfRangeError[K]) Error() string {
	return fmt.Sprintf("dyntree: key %v out of range [%v, %v)", e.Key, e.Begin, e.End)
}

func (e OutOfRangeError[K]) Unwrap() error {
	return ErrOutOfRange
}
