package dyntree

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/npillmayer/dyntree/node"
)

// DOT writes a Graphviz DOT rendering of t's current node topology to w,
// for debugging: it shows exactly which subtrees are collapsed to leaves
// and which carry a pending update, without triggering any further
// materialization itself.
func (t *Tree[K, V, Agg, A]) DOT(w io.Writer) error {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := map[*node.Node[V, A]]int{}
	next := 1
	idOf := func(n *node.Node[V, A]) int {
		if id, ok := ids[n]; ok {
			return id
		}
		ids[n] = next
		next++
		return ids[n]
	}

	var nodelist, edgelist strings.Builder
	var walk func(n *node.Node[V, A], cb, ce K)
	walk = func(n *node.Node[V, A], cb, ce K) {
		id := idOf(n)
		if n.IsLeaf() {
			fmt.Fprintf(&nodelist, "\t%d [label=\"[%v,%v)\\n%v\" shape=box style=filled fillcolor=\"#a3d7e4\"];\n",
				id, cb, ce, n.Value())
			return
		}
		_, pending := n.Pending()
		style := "shape=circle style=filled fillcolor=\"#dddddd\""
		if pending {
			style = "shape=circle style=filled fillcolor=\"#f4c542\""
		}
		fmt.Fprintf(&nodelist, "\t%d [label=\"[%v,%v)\" %s];\n", id, cb, ce, style)
		mid := cb + (ce-cb)/2
		left, right := n.Left(), n.Right()
		fmt.Fprintf(&edgelist, "\t%d -> %d;\n", id, idOf(left))
		fmt.Fprintf(&edgelist, "\t%d -> %d;\n", id, idOf(right))
		walk(left, cb, mid)
		walk(right, mid, ce)
	}
	walk(t.root, t.begin, t.end)

	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
	return nil
}

// Sprint renders t's current topology as an indented, colorized console
// tree: leaves in cyan, internal nodes with a pending update in yellow,
// plain internal nodes uncolored. Intended for debugging and tests, not
// for parsing.
func (t *Tree[K, V, Agg, A]) Sprint() string {
	var b strings.Builder
	var walk func(n *node.Node[V, A], cb, ce K, depth int)
	leaf := color.New(color.FgCyan)
	pendingStyle := color.New(color.FgYellow, color.Bold)
	walk = func(n *node.Node[V, A], cb, ce K, depth int) {
		indent := strings.Repeat("  ", depth)
		if n.IsLeaf() {
			b.WriteString(indent)
			leaf.Fprintf(&b, "[%v,%v) = %v\n", cb, ce, n.Value())
			return
		}
		b.WriteString(indent)
		if _, ok := n.Pending(); ok {
			pendingStyle.Fprintf(&b, "[%v,%v) *pending*\n", cb, ce)
		} else {
			fmt.Fprintf(&b, "[%v,%v)\n", cb, ce)
		}
		mid := cb + (ce-cb)/2
		walk(n.Left(), cb, mid, depth+1)
		walk(n.Right(), mid, ce, depth+1)
	}
	walk(t.root, t.begin, t.end, 0)
	return b.String()
}
