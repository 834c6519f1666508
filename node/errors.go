package node

import "errors"

// ErrAllocationFailure wraps an error returned from an Allocator; both
// InitChildren and Clone return it when AllocPair fails. InitChildren
// leaves the node as an untouched leaf when this occurs.
var ErrAllocationFailure = errors.New("dyntree/node: allocation failed")
