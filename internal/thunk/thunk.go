// Package thunk provides a single-evaluation, memoized deferred computation
// cell. It is the Go rendition of the Rust source's `lazy_st::Lazy<T>` cells
// used to back `Build8` nodes in a `LazyGraph8`: the producer runs at most
// once, the first observation caches the result, and every later observation
// returns the cached value without re-running the producer.
package thunk

import "sync"

// Cell holds a deferred computation of type T. The zero value is not usable;
// construct one with New. A Cell is safe for concurrent use, though nothing
// here relies on that — callers are single-threaded and the memoization is
// about avoiding recomputation, not about synchronizing goroutines.
type Cell[T any] struct {
	once    sync.Once
	produce func() T
	value   T
}

// New wraps a producer function in a Cell. The producer is not invoked until
// the first call to Force.
func New[T any](produce func() T) *Cell[T] {
	return &Cell[T]{produce: produce}
}

// Of returns a Cell that is already evaluated to v, with no producer to run.
// Useful for terminal nodes that have no children thunk to defer.
func Of[T any](v T) *Cell[T] {
	c := &Cell[T]{value: v}
	c.once.Do(func() {}) // mark as already forced
	return c
}

// Force returns the cell's value, running the producer on the first call
// and the cached value on every subsequent call.
func (c *Cell[T]) Force() T {
	c.once.Do(func() {
		if c.produce != nil {
			c.value = c.produce()
			c.produce = nil
		}
	})
	return c.value
}
