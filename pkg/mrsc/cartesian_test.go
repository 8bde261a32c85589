package mrsc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gitrdm/staged-mrsc/pkg/mrsc"
)

// TestCartesianEnumeratesInLexicographicOrder mirrors spec.md §8.E / the
// Rust source's test_cartesian: the rightmost index varies fastest.
func TestCartesianEnumeratesInLexicographicOrder(t *testing.T) {
	xs := []int{1, 2}
	ys := []int{10, 20, 30}
	zs := []int{100, 200}

	got := mrsc.Cartesian([][]int{xs, ys, zs})

	want := [][]int{
		{1, 10, 100}, {1, 10, 200},
		{1, 20, 100}, {1, 20, 200},
		{1, 30, 100}, {1, 30, 200},
		{2, 10, 100}, {2, 10, 200},
		{2, 20, 100}, {2, 20, 200},
		{2, 30, 100}, {2, 30, 200},
	}
	assert.Equal(t, want, got)
}

// TestCartesianEmptyInnerListGivesEmptyResult verifies the "any empty inner
// list collapses the whole product" rule.
func TestCartesianEmptyInnerListGivesEmptyResult(t *testing.T) {
	got := mrsc.Cartesian([][]int{{1, 2}, {}, {100, 200}})
	assert.Empty(t, got)
}

// TestCartesianOfNoListsIsOneEmptyTuple verifies the base-case convention
// Cartesian(nil) == [[]].
func TestCartesianOfNoListsIsOneEmptyTuple(t *testing.T) {
	got := mrsc.Cartesian[int](nil)
	assert.Equal(t, [][]int{{}}, got)
}
