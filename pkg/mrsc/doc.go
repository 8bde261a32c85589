// Package mrsc provides a generic, world-agnostic engine for staged
// multi-result supercompilation.
//
// Given a "world of supercompilation" (ScWorld) and a starting configuration,
// the package enumerates — lazily, and without ever materializing the full
// set — every residual graph of configurations a non-deterministic
// supercompiler could produce. The enumeration is staged in three layers:
//
//   - NaiveMRSC builds the set of residual graphs eagerly. It is the
//     reference denotation and exists mainly to state what the other two
//     layers must agree with.
//   - LazyMRSC builds a LazyGraph: the same search, with the Cartesian
//     product of children deferred to Unroll instead of computed up front.
//   - BuildGraph8 builds a LazyGraph8: a potentially infinite lazy graph
//     whose children are produced by a memoized, on-demand thunk. Consumers
//     such as PruneGraph8 or Prune collapse it back down to a finite
//     LazyGraph by applying the world's whistle (IsDangerous) to the
//     on-demand history.
//
// On top of LazyGraph, a catalogue of cleaners (CleanEmpty, CleanBadConf,
// CleanEmptyAndBad, CleanMinSize) and statistics (LengthUnroll, SizeUnroll)
// work directly on the staged representation, which is polynomial in the
// size of the lazy graph rather than in the — generally exponentially
// larger — size of its unrolled set of graphs.
//
// The package never inspects a configuration's value; every configuration
// predicate (folding, the whistle, decomposition) is delegated to the
// caller's ScWorld implementation.
package mrsc
