package mrsc

// LazyGraph denotes a finite set of Graph values without necessarily having
// built them. Its denotation is given by Unroll:
//
//   - EmptyNode denotes the empty set.
//   - StopNode(c) denotes the singleton {Back(c)}.
//   - BuildNode(c, alts) denotes
//     { Forth(c, [g1, ..., gn]) | (l1,...,ln) ∈ alts, gi ∈ ⟦li⟧ } — the union
//     over alternatives of the Cartesian product of each alternative's
//     per-child unroll.
type LazyGraph[C any] interface {
	isLazyGraph()
}

// EmptyNode denotes the empty set of graphs.
type EmptyNode[C any] struct{}

func (EmptyNode[C]) isLazyGraph() {}

// StopNode denotes the singleton set containing a single Back leaf.
type StopNode[C any] struct {
	Conf C
}

func (StopNode[C]) isLazyGraph() {}

// BuildNode denotes the graphs obtainable by picking one alternative and
// combining one graph from each child lazy graph in that alternative.
// Alternatives is an ordered list of alternatives; each alternative is an
// ordered list of child lazy graphs.
type BuildNode[C any] struct {
	Conf         C
	Alternatives [][]LazyGraph[C]
}

func (BuildNode[C]) isLazyGraph() {}

// LEmpty constructs the empty lazy graph.
func LEmpty[C any]() LazyGraph[C] {
	return EmptyNode[C]{}
}

// LStop constructs the singleton-Back lazy graph.
func LStop[C any](c C) LazyGraph[C] {
	return StopNode[C]{Conf: c}
}

// LBuild constructs a lazy graph over the given alternatives.
func LBuild[C any](c C, alternatives [][]LazyGraph[C]) LazyGraph[C] {
	return BuildNode[C]{Conf: c, Alternatives: alternatives}
}

func isLEmpty[C any](l LazyGraph[C]) bool {
	_, ok := l.(EmptyNode[C])
	return ok
}
