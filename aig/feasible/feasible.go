package feasible

import (
	"github.com/MyskYko/fresub/aig/simulate"
)

// TT is re-exported from simulate for callers that only need the feasibility API.
type TT = simulate.TT

// Feasible reports whether target can be expressed as some function of
// divs (k = len(divs); no bound on k is checked). It accumulates 2*2^k Q-vectors,
// two per divisor-value assignment p in 0..2^k-1: qs[2p] ORs in every
// word position where the target is off and the divisors match p;
// qs[2p+1] does the same for on. target is feasible over divs iff, for
// every p, at least one of the pair is entirely zero across every word.
func Feasible(divs []TT, target TT) bool {
	k := len(divs)
	nPatterns := 1 << uint(k)
	qs := make([]uint64, 2*nPatterns)

	for word := range target {
		on := target[word]
		off := ^on
		for p := 0; p < nPatterns; p++ {
			match := ^uint64(0)
			for i := 0; i < k; i++ {
				if (p>>uint(i))&1 != 0 {
					match &= divs[i][word]
				} else {
					match &= ^divs[i][word]
				}
			}
			qs[2*p] |= off & match
			qs[2*p+1] |= on & match
		}
	}

	for p := 0; p < nPatterns; p++ {
		if qs[2*p] != 0 && qs[2*p+1] != 0 {
			return false
		}
	}
	return true
}

// Feasible4 is the k=4 case the exhaustive enumerator in enumerate.go calls.
func Feasible4(d0, d1, d2, d3 TT, target TT) bool {
	return Feasible([]TT{d0, d1, d2, d3}, target)
}

// FeasibleK0 reports whether target is constant (word-wise all-zero
// or all-ones): feasible with zero divisors.
func FeasibleK0(target TT) bool {
	return Feasible(nil, target)
}

// FeasibleK1 reports whether divisor di alone equals target or its
// complement.
func FeasibleK1(di TT, target TT) bool {
	return Feasible([]TT{di}, target)
}

// FeasibleK2 and FeasibleK3 are the pair- and triple-based reductions
// (4 and 8 assignments respectively), both instances of the same
// general Q-vector test.
func FeasibleK2(d0, d1 TT, target TT) bool {
	return Feasible([]TT{d0, d1}, target)
}

func FeasibleK3(d0, d1, d2 TT, target TT) bool {
	return Feasible([]TT{d0, d1, d2}, target)
}
