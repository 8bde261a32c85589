package mrsc

import "fmt"

// FilterBadConf keeps only the graphs in gs that contain no configuration
// for which bad reports true. It is the unstaged counterpart of
// CleanBadConf: for monotone bad, Unroll(CleanBadConf(bad, l)) and
// FilterBadConf(bad, Unroll(l)) agree once both are passed through
// CleanEmpty / the empty-alternative filtering FilterBadConf performs
// implicitly by dropping whole graphs.
func FilterBadConf[C any](bad func(C) bool, gs []Graph[C]) []Graph[C] {
	kept := make([]Graph[C], 0, len(gs))
	for _, g := range gs {
		if !badGraph(bad, g) {
			kept = append(kept, g)
		}
	}
	return kept
}

func badGraph[C any](bad func(C) bool, g Graph[C]) bool {
	switch n := g.(type) {
	case BackNode[C]:
		return bad(n.Conf)
	case ForthNode[C]:
		if bad(n.Conf) {
			return true
		}
		for _, child := range n.Children {
			if badGraph(bad, child) {
				return true
			}
		}
		return false
	default:
		panic(fmt.Sprintf("mrsc: unknown Graph variant %T", g))
	}
}
