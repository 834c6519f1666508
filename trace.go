package dyntree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer, exactly as the teacher's own
// package-level tracer accessor does. recursion.go's setImpl,
// updateImpl, getImpl, and rangeGetImpl emit Debugf calls through it on
// entry during descent; node.Node's Sift/ApplyUpdate/InitChildren are
// not traced themselves, since the node package cannot import this
// package's tracer without an import cycle (dyntree already imports
// node).
func T() tracing.Trace {
	return gtrace.CoreTracer
}
