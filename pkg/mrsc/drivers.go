package mrsc

// All three drivers share one recursion skeleton on (history, configuration):
//
//  1. If c folds to something already in the history, the branch ends in a
//     Back leaf.
//  2. Else if the whistle fires, the branch contributes no graph at all.
//  3. Else, every alternative in Develop(c) is recursed into with c pushed
//     onto the history, and the per-driver combination step runs.
//
// NaiveMRSC performs the combination eagerly (Cartesian product up front);
// LazyMRSC records it for Unroll to perform later; BuildGraph8 additionally
// defers the recursion itself behind a memoized thunk.

// NaiveMRSC is the reference denotation: it returns every residual graph a
// non-deterministic supercompiler could produce from c0, computed eagerly.
// It is the specification other drivers must agree with after Unroll; for
// anything beyond toy worlds, prefer LazyMRSC or BuildGraph8, since the
// Cartesian products here are built whether or not a consumer needs them
// all.
func NaiveMRSC[C any](w ScWorld[C], c0 C) []Graph[C] {
	return naiveMRSCLoop(w, NewHistory[C](), c0)
}

func naiveMRSCLoop[C any](w ScWorld[C], h History[C], c C) []Graph[C] {
	if IsFoldableToHistory(w, c, h) {
		return []Graph[C]{Back(c)}
	}
	if w.IsDangerous(h) {
		return []Graph[C]{}
	}

	css := w.Develop(c)
	h1 := h.Cons(c)

	var graphs []Graph[C]
	for _, cs := range css {
		perChild := make([][]Graph[C], len(cs))
		for i, c1 := range cs {
			perChild[i] = naiveMRSCLoop(w, h1, c1)
		}
		for _, gs := range Cartesian(perChild) {
			graphs = append(graphs, Forth(c, gs))
		}
	}
	return graphs
}

// LazyMRSC builds a LazyGraph whose Unroll equals NaiveMRSC(w, c0) — the
// staged form of the same search, with Cartesian-product multiplication
// deferred to whoever eventually unrolls the result.
func LazyMRSC[C any](w ScWorld[C], c0 C) LazyGraph[C] {
	return lazyMRSCLoop(w, NewHistory[C](), c0)
}

func lazyMRSCLoop[C any](w ScWorld[C], h History[C], c C) LazyGraph[C] {
	if IsFoldableToHistory(w, c, h) {
		return LStop(c)
	}
	if w.IsDangerous(h) {
		return LEmpty[C]()
	}

	css := w.Develop(c)
	h1 := h.Cons(c)

	alts := make([][]LazyGraph[C], len(css))
	for i, cs := range css {
		alt := make([]LazyGraph[C], len(cs))
		for j, c1 := range cs {
			alt[j] = lazyMRSCLoop(w, h1, c1)
		}
		alts[i] = alt
	}
	return LBuild(c, alts)
}

// BuildGraph8 builds a LazyGraph8: identical to LazyMRSC except the
// alternatives of a Build8Node are produced by a thunk, so an implementation
// may omit the whistle check here and rely entirely on a later PruneGraph8
// (or Prune) to cut the search — both choices denote the same LazyGraph
// after pruning. This implementation keeps the whistle check here as well,
// so a dangerous branch becomes Empty8 directly, with no thunk created for
// it, materializing fewer thunks than omitting it.
func BuildGraph8[C any](w ScWorld[C], c0 C) LazyGraph8[C] {
	return buildGraph8Loop(w, NewHistory[C](), c0)
}

func buildGraph8Loop[C any](w ScWorld[C], h History[C], c C) LazyGraph8[C] {
	if IsFoldableToHistory(w, c, h) {
		return Stop8(c)
	}
	if w.IsDangerous(h) {
		return Empty8[C]()
	}

	h1 := h.Cons(c)
	return Build8(c, func() [][]LazyGraph8[C] {
		css := w.Develop(c)
		alts := make([][]LazyGraph8[C], len(css))
		for i, cs := range css {
			alt := make([]LazyGraph8[C], len(cs))
			for j, c1 := range cs {
				alt[j] = buildGraph8Loop(w, h1, c1)
			}
			alts[i] = alt
		}
		return alts
	})
}
