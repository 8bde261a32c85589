package mrsc_test

import "github.com/gitrdm/staged-mrsc/pkg/mrsc"

// mockWorld is the toy ScWorld from spec.md §8.B: configurations are plain
// integers, folding is equality, the whistle fires once the history grows
// past three configurations, and develop produces up to three alternatives —
// two one-step reductions (gated on c >= 2) and an always-present increment.
type mockWorld struct{}

func (mockWorld) IsFoldableTo(a, b int) bool {
	return a == b
}

func (mockWorld) IsDangerous(h mrsc.History[int]) bool {
	return h.Len() > 3
}

func (mockWorld) Develop(c int) [][]int {
	var alts [][]int
	if c >= 2 {
		alts = append(alts, []int{0, c - 1}, []int{c - 1})
	}
	alts = append(alts, []int{c + 1})
	return alts
}
