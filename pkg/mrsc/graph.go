package mrsc

import (
	"fmt"
	"strings"
)

// Graph is a finite residual graph of configurations. It is really a tree:
// a Back node does not point at the ancestor it folds to — it only records
// the configuration — so the semantics of a fold is positional, recoverable
// from the History along the path that produced the node, not from a
// pointer stored in the graph itself.
type Graph[C any] interface {
	isGraph()
}

// BackNode is a leaf meaning "this configuration folds to some ancestor".
type BackNode[C any] struct {
	Conf C
}

func (BackNode[C]) isGraph() {}

// ForthNode is a node with a configuration and an ordered, non-empty list of
// child graphs. Drivers never produce a ForthNode with zero children — a
// dead end becomes "no graph" instead — but the type does not enforce that;
// it is a caller contract, not a structural invariant.
type ForthNode[C any] struct {
	Conf     C
	Children []Graph[C]
}

func (ForthNode[C]) isGraph() {}

// Back constructs a Back leaf.
func Back[C any](c C) Graph[C] {
	return BackNode[C]{Conf: c}
}

// Forth constructs a Forth node over the given children, in order.
func Forth[C any](c C, children []Graph[C]) Graph[C] {
	return ForthNode[C]{Conf: c, Children: children}
}

// GraphSize counts the nodes in g: one for the node itself, plus the size of
// every child.
func GraphSize[C any](g Graph[C]) int {
	switch n := g.(type) {
	case BackNode[C]:
		return 1
	case ForthNode[C]:
		size := 1
		for _, child := range n.Children {
			size += GraphSize(child)
		}
		return size
	default:
		panic(fmt.Sprintf("mrsc: unknown Graph variant %T", g))
	}
}

// GraphPrettyPrinter renders g as an indented tree. Each node is printed on
// its own line prefixed by "|__" and indented by two spaces per depth level;
// before every child an extra separator line "|" is emitted at the child's
// indent. A Back node carries a trailing "*".
func GraphPrettyPrinter[C any](g Graph[C]) string {
	var sb strings.Builder
	graphPrettyPrinterLoop(&sb, g, 0)
	return sb.String()
}

func graphPrettyPrinterLoop[C any](sb *strings.Builder, g Graph[C], indent int) {
	ind := strings.Repeat(" ", indent)
	switch n := g.(type) {
	case BackNode[C]:
		fmt.Fprintf(sb, "%s|__%v*", ind, n.Conf)
	case ForthNode[C]:
		fmt.Fprintf(sb, "%s|__%v", ind, n.Conf)
		for _, child := range n.Children {
			fmt.Fprintf(sb, "\n  %s|", ind)
			sb.WriteString("\n")
			graphPrettyPrinterLoop(sb, child, indent+2)
		}
	default:
		panic(fmt.Sprintf("mrsc: unknown Graph variant %T", g))
	}
}
