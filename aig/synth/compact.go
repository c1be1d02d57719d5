package synth

import "github.com/MyskYko/fresub/aig/simulate"

// TT is re-exported so callers don't need to import simulate directly
// just to hand synth a truth table.
type TT = simulate.TT

// CompactTruth reduces a bit-parallel target truth table to its
// 2^k-row truth table as a function of k divisor truth tables, by
// reading off, at every simulated bit position, the k divisor bits as
// a row index and the target bit as that row's value. mask marks
// which rows were actually observed; rows never produced by the
// window's own input domain are left unconstrained (mask bit 0) so
// the synthesizer is free to pick whichever value yields the smallest
// circuit. Panics if two occurrences of the same row disagree on the
// target bit, which would mean the caller's feasibility check was
// wrong.
func CompactTruth(divs []TT, target TT) (tt uint32, mask uint32) {
	for word := range target {
		for bit := 0; bit < 64; bit++ {
			row := 0
			for i, d := range divs {
				if (d[word]>>uint(bit))&1 != 0 {
					row |= 1 << uint(i)
				}
			}
			val := (target[word] >> uint(bit)) & 1
			if (mask>>uint(row))&1 == 0 {
				mask |= 1 << uint(row)
				if val != 0 {
					tt |= 1 << uint(row)
				}
			} else if uint64((tt>>uint(row))&1) != val {
				panic("synth: divisor set is not actually feasible for this target")
			}
		}
	}
	return tt, mask
}
