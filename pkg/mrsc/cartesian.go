package mrsc

// Cartesian returns the Cartesian product of xss: every tuple
// [x1, ..., xn] such that xi is drawn from xss[i], in lexicographic order —
// the rightmost index varies fastest.
//
// By convention Cartesian(nil) is the one-tuple [[]] (there is exactly one
// way to choose nothing from nothing); if any inner slice is empty, the
// whole product is empty.
func Cartesian[X any](xss [][]X) [][]X {
	if len(xss) == 0 {
		return [][]X{{}}
	}
	for _, xs := range xss {
		if len(xs) == 0 {
			return [][]X{}
		}
	}

	result := [][]X{{}}
	for _, xs := range xss {
		next := make([][]X, 0, len(result)*len(xs))
		for _, prefix := range result {
			for _, x := range xs {
				tuple := make([]X, len(prefix)+1)
				copy(tuple, prefix)
				tuple[len(prefix)] = x
				next = append(next, tuple)
			}
		}
		result = next
	}
	return result
}
