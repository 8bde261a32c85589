package mrsc

import "fmt"

// PruneGraph8 collapses a LazyGraph8 down to a finite LazyGraph by applying
// w's whistle to the history of ancestor configurations accumulated along
// the way. On a Build8Node where the whistle fires, it returns Empty without
// forcing the thunk; otherwise it forces the thunk and recurses into every
// child with the current configuration pushed onto the history.
//
// PruneGraph8(w, BuildGraph8(w, c0)) denotes the same LazyGraph as
// LazyMRSC(w, c0), regardless of whether BuildGraph8 itself also checks the
// whistle — the two checks are redundant, not contradictory.
func PruneGraph8[C any](w ScWorld[C], l LazyGraph8[C]) LazyGraph[C] {
	return pruneGraph8Loop(w, NewHistory[C](), l)
}

func pruneGraph8Loop[C any](w ScWorld[C], h History[C], l LazyGraph8[C]) LazyGraph[C] {
	switch n := l.(type) {
	case Empty8Node[C]:
		return LEmpty[C]()
	case Stop8Node[C]:
		return LStop(n.Conf)
	case Build8Node[C]:
		if w.IsDangerous(h) {
			return LEmpty[C]()
		}
		h1 := h.Cons(n.Conf)
		alts := n.Alternatives.Force()
		cleaned := make([][]LazyGraph[C], len(alts))
		for i, alt := range alts {
			cleanedAlt := make([]LazyGraph[C], len(alt))
			for j, child := range alt {
				cleanedAlt[j] = pruneGraph8Loop(w, h1, child)
			}
			cleaned[i] = cleanedAlt
		}
		return LBuild(n.Conf, cleaned)
	default:
		panic(fmt.Sprintf("mrsc: unknown LazyGraph8 variant %T", l))
	}
}

// Prune is the fused form of PruneGraph8 ∘ CleanEmpty8: alternatives
// containing an Empty8 child are dropped before recursing into them, so dead
// branches are never explored in the first place.
func Prune[C any](w ScWorld[C], l LazyGraph8[C]) LazyGraph[C] {
	return pruneLoop(w, NewHistory[C](), l)
}

func pruneLoop[C any](w ScWorld[C], h History[C], l LazyGraph8[C]) LazyGraph[C] {
	switch n := l.(type) {
	case Empty8Node[C]:
		return LEmpty[C]()
	case Stop8Node[C]:
		return LStop(n.Conf)
	case Build8Node[C]:
		if w.IsDangerous(h) {
			return LEmpty[C]()
		}
		h1 := h.Cons(n.Conf)
		alts := n.Alternatives.Force()
		var cleaned [][]LazyGraph[C]
		for _, alt := range alts {
			if alternativeHasEmpty8(alt) {
				continue
			}
			cleanedAlt := make([]LazyGraph[C], len(alt))
			for i, child := range alt {
				cleanedAlt[i] = pruneLoop(w, h1, child)
			}
			cleaned = append(cleaned, cleanedAlt)
		}
		return LBuild(n.Conf, cleaned)
	default:
		panic(fmt.Sprintf("mrsc: unknown LazyGraph8 variant %T", l))
	}
}

func alternativeHasEmpty8[C any](alt []LazyGraph8[C]) bool {
	for _, child := range alt {
		if isL8Empty(child) {
			return true
		}
	}
	return false
}
