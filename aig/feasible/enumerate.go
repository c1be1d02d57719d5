package feasible

// FindFeasible4 exhaustively tests every strictly increasing 4-tuple of
// divisor indices and returns every tuple that is feasible. Complexity:
// O(D^4 * W) where D = len(divs), W = words per truth table. Used to
// furnish candidate inputs to exact synthesis.
func FindFeasible4(divs []TT, target TT) [][4]int {
	var out [][4]int
	d := len(divs)
	for a := 0; a < d; a++ {
		for b := a + 1; b < d; b++ {
			for c := b + 1; c < d; c++ {
				for e := c + 1; e < d; e++ {
					if Feasible4(divs[a], divs[b], divs[c], divs[e], target) {
						out = append(out, [4]int{a, b, c, e})
					}
				}
			}
		}
	}
	return out
}

// FindFeasibleK exhaustively tests every strictly increasing k-tuple of
// divisor indices (k arbitrary, unlike the k=4-specialized FindFeasible4)
// and returns every feasible tuple.
func FindFeasibleK(divs []TT, target TT, k int) [][]int {
	var out [][]int
	combo := make([]int, k)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			tuple := append([]int(nil), combo...)
			ttuple := make([]TT, k)
			for i, idx := range tuple {
				ttuple[i] = divs[idx]
			}
			if Feasible(ttuple, target) {
				out = append(out, tuple)
			}
			return
		}
		for i := start; i < len(divs); i++ {
			combo[depth] = i
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
	return out
}

// Ladder tries k = 0, 1, 2, 3, 4 in order and returns the first k with
// at least one feasible tuple, so callers (the inserter) can prefer
// smaller, cheaper SubAIGs over larger ones. ok is false if no k up to
// 4 has any feasible tuple.
func Ladder(divs []TT, target TT) (k int, tuples [][]int, ok bool) {
	if FeasibleK0(target) {
		return 0, [][]int{{}}, true
	}
	for kk := 1; kk <= 4; kk++ {
		tuples := FindFeasibleK(divs, target, kk)
		if len(tuples) > 0 {
			return kk, tuples, true
		}
	}
	return 0, nil, false
}
