package mrsc

import "fmt"

// A cleaner is a function LazyGraph[C] -> LazyGraph[C] whose unrolled result
// is a subset of the input's unrolled result. Cleaners compose: running one
// cleaner's output through another still shrinks (or preserves) the
// denotation.

// CleanEmpty removes subtrees that denote the empty set of graphs: it drops
// any alternative whose cleaned children contain an Empty, and collapses a
// BuildNode with no surviving alternatives to Empty. It is idempotent and
// meaning-preserving — ⟦CleanEmpty(l)⟧ = ⟦l⟧.
func CleanEmpty[C any](l LazyGraph[C]) LazyGraph[C] {
	switch n := l.(type) {
	case EmptyNode[C]:
		return LEmpty[C]()
	case StopNode[C]:
		return LStop(n.Conf)
	case BuildNode[C]:
		return cleanEmptyBuild(n.Conf, cleanEmptyAlternatives(n.Alternatives))
	default:
		panic(fmt.Sprintf("mrsc: unknown LazyGraph variant %T", l))
	}
}

func cleanEmptyBuild[C any](c C, alts [][]LazyGraph[C]) LazyGraph[C] {
	if len(alts) == 0 {
		return LEmpty[C]()
	}
	return LBuild(c, alts)
}

func cleanEmptyAlternatives[C any](alts [][]LazyGraph[C]) [][]LazyGraph[C] {
	var kept [][]LazyGraph[C]
	for _, alt := range alts {
		if cleaned, ok := cleanEmptyAlternative(alt); ok {
			kept = append(kept, cleaned)
		}
	}
	return kept
}

func cleanEmptyAlternative[C any](alt []LazyGraph[C]) ([]LazyGraph[C], bool) {
	cleaned := make([]LazyGraph[C], len(alt))
	for i, child := range alt {
		c := CleanEmpty(child)
		if isLEmpty(c) {
			return nil, false
		}
		cleaned[i] = c
	}
	return cleaned, true
}

// CleanBadConf removes graphs that contain any configuration for which bad
// reports true. bad must be monotone: a single bad configuration taints the
// whole graph it appears in, which is what lets CleanBadConf act purely
// top-down instead of inspecting subtrees it has already decided to discard.
// It does not prune the resulting empty alternatives; follow with CleanEmpty
// for that (see CleanEmptyAndBad).
func CleanBadConf[C any](bad func(C) bool, l LazyGraph[C]) LazyGraph[C] {
	switch n := l.(type) {
	case EmptyNode[C]:
		return LEmpty[C]()
	case StopNode[C]:
		if bad(n.Conf) {
			return LEmpty[C]()
		}
		return LStop(n.Conf)
	case BuildNode[C]:
		if bad(n.Conf) {
			return LEmpty[C]()
		}
		alts := make([][]LazyGraph[C], len(n.Alternatives))
		for i, alt := range n.Alternatives {
			cleaned := make([]LazyGraph[C], len(alt))
			for j, child := range alt {
				cleaned[j] = CleanBadConf(bad, child)
			}
			alts[i] = cleaned
		}
		return LBuild(n.Conf, alts)
	default:
		panic(fmt.Sprintf("mrsc: unknown LazyGraph variant %T", l))
	}
}

// CleanEmptyAndBad is the canonical safety filter: remove bad configurations,
// then prune the empty alternatives that leaves behind.
func CleanEmptyAndBad[C any](bad func(C) bool, l LazyGraph[C]) LazyGraph[C] {
	return CleanEmpty(CleanBadConf(bad, l))
}

// size represents a node count with a saturating-at-infinity top element, as
// called for by spec.md's "no graph" case of CleanMinSize: the empty set of
// graphs has no minimum, which is modeled as the maximum representable size
// so that ordinary addition (sizeAdd) never wraps back down past it.
type size = int

const sizeInfinite size = int(^uint(0) >> 1) // math.MaxInt, without importing math for one constant

func sizeAdd(a, b size) size {
	if a == sizeInfinite || b == sizeInfinite {
		return sizeInfinite
	}
	return a + b
}

// CleanMinSize returns a lazy graph whose unroll is a singleton holding the
// smallest graph in ⟦l⟧ by node count, or Empty if ⟦l⟧ is empty. Ties keep
// the first (in alternative order) minimal alternative.
func CleanMinSize[C any](l LazyGraph[C]) LazyGraph[C] {
	_, cleaned := selMinSize(l)
	return cleaned
}

func selMinSize[C any](l LazyGraph[C]) (size, LazyGraph[C]) {
	switch n := l.(type) {
	case EmptyNode[C]:
		return sizeInfinite, LEmpty[C]()
	case StopNode[C]:
		return 1, LStop(n.Conf)
	case BuildNode[C]:
		k, alt := selMinSizeAlternatives(n.Alternatives)
		if k == sizeInfinite {
			return sizeInfinite, LEmpty[C]()
		}
		return 1 + k, LBuild(n.Conf, [][]LazyGraph[C]{alt})
	default:
		panic(fmt.Sprintf("mrsc: unknown LazyGraph variant %T", l))
	}
}

func selMinSizeAlternatives[C any](alts [][]LazyGraph[C]) (size, []LazyGraph[C]) {
	bestSize := sizeInfinite
	var bestAlt []LazyGraph[C]
	for _, alt := range alts {
		k, cleaned := selMinSizeAnd(alt)
		if k < bestSize {
			bestSize, bestAlt = k, cleaned
		}
	}
	return bestSize, bestAlt
}

func selMinSizeAnd[C any](alt []LazyGraph[C]) (size, []LazyGraph[C]) {
	total := size(0)
	cleaned := make([]LazyGraph[C], len(alt))
	for i, child := range alt {
		k, c := selMinSize(child)
		total = sizeAdd(total, k)
		cleaned[i] = c
	}
	return total, cleaned
}
