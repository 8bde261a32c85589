package mrsc

import "github.com/gitrdm/staged-mrsc/internal/thunk"

// LazyGraph8 is the potentially-infinite counterpart of LazyGraph: the same
// three shapes, but a Build8Node's alternatives are produced by a memoized
// thunk instead of being stored directly. Its denotation under Unroll is
// identical to LazyGraph's once the thunk is forced; the difference is
// purely operational — a LazyGraph8 may be infinite, and must be consumed
// by something that forces only the subtrees it actually needs (PruneGraph8,
// CleanBadConf8, CleanEmpty8, Prune).
type LazyGraph8[C any] interface {
	isLazyGraph8()
}

// Empty8Node denotes the empty set of graphs.
type Empty8Node[C any] struct{}

func (Empty8Node[C]) isLazyGraph8() {}

// Stop8Node denotes the singleton set containing a single Back leaf.
type Stop8Node[C any] struct {
	Conf C
}

func (Stop8Node[C]) isLazyGraph8() {}

// Build8Node is a node whose alternatives are deferred behind a thunk.Cell,
// so that an infinite subtree is only expanded as far as a consumer forces
// it.
type Build8Node[C any] struct {
	Conf         C
	Alternatives *thunk.Cell[[][]LazyGraph8[C]]
}

func (Build8Node[C]) isLazyGraph8() {}

// Empty8 constructs the empty infinite lazy graph.
func Empty8[C any]() LazyGraph8[C] {
	return Empty8Node[C]{}
}

// Stop8 constructs the singleton-Back infinite lazy graph.
func Stop8[C any](c C) LazyGraph8[C] {
	return Stop8Node[C]{Conf: c}
}

// Build8 constructs an infinite lazy graph whose alternatives are produced
// on demand by produce, which runs at most once.
func Build8[C any](c C, produce func() [][]LazyGraph8[C]) LazyGraph8[C] {
	return Build8Node[C]{Conf: c, Alternatives: thunk.New(produce)}
}

func isL8Empty[C any](l LazyGraph8[C]) bool {
	_, ok := l.(Empty8Node[C])
	return ok
}
