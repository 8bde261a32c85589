package mrsc

import "fmt"

// Unroll is the denotational interpreter for LazyGraph:
//
//	⟦EmptyNode⟧        = []
//	⟦StopNode(c)⟧      = [Back(c)]
//	⟦BuildNode(c,alts)⟧ = [ Forth(c, gs) | alt ∈ alts, gs ∈ Cartesian(Unroll(alt)) ]
//
// It preserves the order induced by the alternatives and by Cartesian.
func Unroll[C any](l LazyGraph[C]) []Graph[C] {
	switch n := l.(type) {
	case EmptyNode[C]:
		return []Graph[C]{}
	case StopNode[C]:
		return []Graph[C]{Back(n.Conf)}
	case BuildNode[C]:
		var graphs []Graph[C]
		for _, alt := range n.Alternatives {
			unrolled := make([][]Graph[C], len(alt))
			for i, child := range alt {
				unrolled[i] = Unroll(child)
			}
			for _, gs := range Cartesian(unrolled) {
				graphs = append(graphs, Forth(n.Conf, gs))
			}
		}
		return graphs
	default:
		panic(fmt.Sprintf("mrsc: unknown LazyGraph variant %T", l))
	}
}
