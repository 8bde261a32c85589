package mrsc_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/gitrdm/staged-mrsc/pkg/mrsc"
)

func diffOpts() cmp.Option {
	return cmpopts.EquateEmpty()
}

// gs3 is the expected result set from spec.md §8.B, driving mockWorld from
// configuration 0.
func gs3() []mrsc.Graph[int] {
	back := mrsc.Back[int]
	forth := mrsc.Forth[int]
	return []mrsc.Graph[int]{
		forth(0, []mrsc.Graph[int]{forth(1, []mrsc.Graph[int]{forth(2, []mrsc.Graph[int]{back(0), back(1)})})}),
		forth(0, []mrsc.Graph[int]{forth(1, []mrsc.Graph[int]{forth(2, []mrsc.Graph[int]{back(1)})})}),
		forth(0, []mrsc.Graph[int]{forth(1, []mrsc.Graph[int]{forth(2, []mrsc.Graph[int]{forth(3, []mrsc.Graph[int]{back(0), back(2)})})})}),
		forth(0, []mrsc.Graph[int]{forth(1, []mrsc.Graph[int]{forth(2, []mrsc.Graph[int]{forth(3, []mrsc.Graph[int]{back(2)})})})}),
	}
}

// TestNaiveMRSC mirrors the Rust source's test_naive_mrsc.
func TestNaiveMRSC(t *testing.T) {
	got := mrsc.NaiveMRSC[int](mockWorld{}, 0)
	if diff := cmp.Diff(gs3(), got, diffOpts()); diff != "" {
		t.Errorf("NaiveMRSC mismatch (-want +got):\n%s", diff)
	}
}

// TestLazyMRSCUnrollsToNaiveMRSC is spec.md testable property 1:
// Unroll(LazyMRSC(s, c)) == NaiveMRSC(s, c).
func TestLazyMRSCUnrollsToNaiveMRSC(t *testing.T) {
	got := mrsc.Unroll(mrsc.LazyMRSC[int](mockWorld{}, 0))
	if diff := cmp.Diff(gs3(), got, diffOpts()); diff != "" {
		t.Errorf("Unroll(LazyMRSC) mismatch (-want +got):\n%s", diff)
	}
}

// TestBuildGraph8PrunesToLazyMRSC is spec.md testable property 2:
// PruneGraph8(s, BuildGraph8(s, c)) == LazyMRSC(s, c), as LazyGraphs.
func TestBuildGraph8PrunesToLazyMRSC(t *testing.T) {
	w := mockWorld{}
	want := mrsc.LazyMRSC[int](w, 0)
	got := mrsc.PruneGraph8[int](w, mrsc.BuildGraph8[int](w, 0))
	if diff := cmp.Diff(want, got, diffOpts()); diff != "" {
		t.Errorf("PruneGraph8(BuildGraph8) mismatch (-want +got):\n%s", diff)
	}
}

// TestPruneAgreesWithPruneGraph8 checks the fused Prune gives the same
// denotation (via Unroll) as PruneGraph8: the alternatives Prune drops
// before recursing contain an Empty8 child and so contribute no graphs.
func TestPruneAgreesWithPruneGraph8(t *testing.T) {
	w := mockWorld{}
	wantUnroll := mrsc.Unroll(mrsc.PruneGraph8[int](w, mrsc.BuildGraph8[int](w, 0)))
	gotUnroll := mrsc.Unroll(mrsc.Prune[int](w, mrsc.BuildGraph8[int](w, 0)))
	if diff := cmp.Diff(wantUnroll, gotUnroll, diffOpts()); diff != "" {
		t.Errorf("Prune vs PruneGraph8 unroll mismatch (-want +got):\n%s", diff)
	}
}

// TestCleanMinSizeOnLazyMRSC mirrors the Rust source's test_min_size_cl.
func TestCleanMinSizeOnLazyMRSC(t *testing.T) {
	w := mockWorld{}
	l := mrsc.LazyMRSC[int](w, 0)
	got := mrsc.Unroll(mrsc.CleanMinSize(l))

	want := []mrsc.Graph[int]{
		mrsc.Forth(0, []mrsc.Graph[int]{
			mrsc.Forth(1, []mrsc.Graph[int]{
				mrsc.Forth(2, []mrsc.Graph[int]{mrsc.Back[int](1)}),
			}),
		}),
	}
	assert.Equal(t, want, got)
}
