package mrsc

import "fmt"

// CleanBadConf8 is the LazyGraph8 analogue of CleanBadConf. The cleaned
// children are themselves produced by a thunk, so an infinite subtree stays
// productive — nothing beyond the node currently being inspected is forced.
func CleanBadConf8[C any](bad func(C) bool, l LazyGraph8[C]) LazyGraph8[C] {
	switch n := l.(type) {
	case Empty8Node[C]:
		return Empty8[C]()
	case Stop8Node[C]:
		if bad(n.Conf) {
			return Empty8[C]()
		}
		return Stop8(n.Conf)
	case Build8Node[C]:
		if bad(n.Conf) {
			return Empty8[C]()
		}
		return Build8(n.Conf, func() [][]LazyGraph8[C] {
			alts := n.Alternatives.Force()
			cleaned := make([][]LazyGraph8[C], len(alts))
			for i, alt := range alts {
				cleanedAlt := make([]LazyGraph8[C], len(alt))
				for j, child := range alt {
					cleanedAlt[j] = CleanBadConf8(bad, child)
				}
				cleaned[i] = cleanedAlt
			}
			return cleaned
		})
	default:
		panic(fmt.Sprintf("mrsc: unknown LazyGraph8 variant %T", l))
	}
}

// CleanEmpty8 removes alternatives that already contain an Empty8 child. It
// is deliberately weaker than CleanEmpty: it never collapses a Build8Node
// with no surviving alternatives down to Empty8, because doing so would
// force the thunk merely to decide there was nothing left — breaking
// productivity on a subtree that might be infinite. Any such collapse is
// left to CleanEmpty, run after the graph has been pruned to a finite
// LazyGraph.
func CleanEmpty8[C any](l LazyGraph8[C]) LazyGraph8[C] {
	switch n := l.(type) {
	case Empty8Node[C]:
		return Empty8[C]()
	case Stop8Node[C]:
		return Stop8(n.Conf)
	case Build8Node[C]:
		return Build8(n.Conf, func() [][]LazyGraph8[C] {
			alts := n.Alternatives.Force()
			var kept [][]LazyGraph8[C]
			for _, alt := range alts {
				cleanedAlt := make([]LazyGraph8[C], len(alt))
				hasEmpty := false
				for i, child := range alt {
					c := CleanEmpty8(child)
					if isL8Empty(c) {
						hasEmpty = true
					}
					cleanedAlt[i] = c
				}
				if !hasEmpty {
					kept = append(kept, cleanedAlt)
				}
			}
			return kept
		})
	default:
		panic(fmt.Sprintf("mrsc: unknown LazyGraph8 variant %T", l))
	}
}
