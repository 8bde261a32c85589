package mrsc

import "fmt"

// LengthUnroll computes len(Unroll(l)) directly on l, without unrolling it.
func LengthUnroll[C any](l LazyGraph[C]) int {
	switch n := l.(type) {
	case EmptyNode[C]:
		return 0
	case StopNode[C]:
		return 1
	case BuildNode[C]:
		total := 0
		for _, alt := range n.Alternatives {
			product := 1
			for _, child := range alt {
				product *= LengthUnroll(child)
			}
			total += product
		}
		return total
	default:
		panic(fmt.Sprintf("mrsc: unknown LazyGraph variant %T", l))
	}
}

// SizeUnroll computes (len(Unroll(l)), sum of GraphSize over Unroll(l))
// directly on l, without unrolling it. The per-alternative accumulation
// (sizeUnrollAlternative) folds count-multiplication and node-count
// convolution into one pass: adding a child's (k1, n1) to a running (k, n)
// updates it to (k*k1, k*n1 + k1*n), since every one of the k running
// combinations now pairs with every one of the k1 new ones, and each
// resulting graph's size is the sum of the two components it was built
// from.
func SizeUnroll[C any](l LazyGraph[C]) (int, int) {
	switch n := l.(type) {
	case EmptyNode[C]:
		return 0, 0
	case StopNode[C]:
		return 1, 1
	case BuildNode[C]:
		k, n2 := 0, 0
		for _, alt := range n.Alternatives {
			k1, n1 := sizeUnrollAlternative(alt)
			k, n2 = k+k1, n2+k1+n1
		}
		return k, n2
	default:
		panic(fmt.Sprintf("mrsc: unknown LazyGraph variant %T", l))
	}
}

func sizeUnrollAlternative[C any](alt []LazyGraph[C]) (int, int) {
	k, n := 1, 0
	for _, child := range alt {
		k1, n1 := SizeUnroll(child)
		k, n = k*k1, k*n1+k1*n
	}
	return k, n
}
