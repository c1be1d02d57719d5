package synth

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/MyskYko/fresub/aig"
)

// maxSynthInputs is the largest divisor-tuple size exact synthesis
// accepts, matching the feasibility ladder's k<=4 range.
const maxSynthInputs = 4

// Synthesize searches for the smallest AIG, up to maxGates two-input
// AND gates, whose output matches tt on every masked row of a k-input
// function (0 <= k <= maxSynthInputs, tt and mask as produced by
// CompactTruth). It returns nil if no such AIG exists within the
// bound. Row 0 of tt/mask corresponds to every divisor at 0; bit i of
// a row index is divisor i's value in that row.
func Synthesize(k int, tt, mask uint32, maxGates int) (*aig.SubAIG, error) {
	if k < 0 || k > maxSynthInputs {
		return nil, ErrTooManyInputs
	}
	if k == 0 {
		// No divisors to multiplex over: the target is constant.
		po := aig.ConstFalse
		if tt&1 != 0 {
			po = aig.ConstTrue
		}
		return &aig.SubAIG{NPIs: 0, PO: po}, nil
	}
	for numGates := 0; numGates <= maxGates; numGates++ {
		if sub, ok := trySynthesize(k, tt, mask, numGates); ok {
			return sub, nil
		}
	}
	return nil, nil
}

// gateBuild holds the circuit under construction for one gate count:
// each divisor's per-row constant value (a fixed bit of the row index),
// and each candidate gate's fanin selectors and per-row output literal.
type gateBuild struct {
	c      *logic.C
	k      int
	rows   int
	selA   [][]z.Lit // selA[g] is gate g's one-hot selector for fanin A
	selB   [][]z.Lit
	gate   [][]z.Lit // gate[g][row] is gate g's value at row
	divRow [][]z.Lit // divRow[i][row] is divisor i's constant value at row
}

func rowBit(row, i int) bool { return (row>>uint(i))&1 != 0 }

// candidatesAt returns, for a gate with g already-built earlier gates
// (so numSig = k+g signals available), the per-row literal and
// inverted-per-row literal of every candidate, for the given row.
func (b *gateBuild) candidatesAt(numSig, row int) []z.Lit {
	cands := make([]z.Lit, 0, 2*numSig)
	for s := 0; s < numSig; s++ {
		var lit z.Lit
		if s < b.k {
			lit = b.divRow[s][row]
		} else {
			lit = b.gate[s-b.k][row]
		}
		cands = append(cands, lit, lit.Not())
	}
	return cands
}

// muxOut builds Ors(Ands(sel[i], cand[i])...): the value selected by
// the one-hot vector sel among cand.
func muxOut(c *logic.C, sel, cand []z.Lit) z.Lit {
	terms := make([]z.Lit, len(sel))
	for i := range sel {
		terms[i] = c.Ands(sel[i], cand[i])
	}
	return c.Ors(terms...)
}

func newOneHot(c *logic.C, n int) []z.Lit {
	lits := make([]z.Lit, n)
	for i := range lits {
		lits[i] = c.Lit()
	}
	return lits
}

// addExactlyOne adds raw CNF clauses to g enforcing that exactly one
// literal of lits is true: one at-least-one clause plus pairwise
// at-most-one clauses.
func addExactlyOne(g *gini.Gini, lits []z.Lit) {
	for _, l := range lits {
		g.Add(l)
	}
	g.Add(0)
	for i := 0; i < len(lits); i++ {
		for j := i + 1; j < len(lits); j++ {
			g.Add(lits[i].Not())
			g.Add(lits[j].Not())
			g.Add(0)
		}
	}
}

func trySynthesize(k int, tt, mask uint32, numGates int) (*aig.SubAIG, bool) {
	rows := 1 << uint(k)
	c := logic.NewC()
	t := c.T()

	b := &gateBuild{c: c, k: k, rows: rows}
	b.divRow = make([][]z.Lit, k)
	for i := 0; i < k; i++ {
		b.divRow[i] = make([]z.Lit, rows)
		for r := 0; r < rows; r++ {
			if rowBit(r, i) {
				b.divRow[i][r] = t
			} else {
				b.divRow[i][r] = t.Not()
			}
		}
	}

	b.selA = make([][]z.Lit, numGates)
	b.selB = make([][]z.Lit, numGates)
	b.gate = make([][]z.Lit, numGates)
	for g := 0; g < numGates; g++ {
		numSig := k + g
		nCand := 2 * numSig
		b.selA[g] = newOneHot(c, nCand)
		b.selB[g] = newOneHot(c, nCand)
		b.gate[g] = make([]z.Lit, rows)
		for r := 0; r < rows; r++ {
			cands := b.candidatesAt(numSig, r)
			faninA := muxOut(c, b.selA[g], cands)
			faninB := muxOut(c, b.selB[g], cands)
			b.gate[g][r] = c.Ands(faninA, faninB)
		}
	}

	numSig := k + numGates
	selOut := newOneHot(c, 2*numSig)
	outRow := make([]z.Lit, rows)
	for r := 0; r < rows; r++ {
		cands := b.candidatesAt(numSig, r)
		outRow[r] = muxOut(c, selOut, cands)
	}

	sat := gini.New()
	c.ToCnf(sat)

	for g := 0; g < numGates; g++ {
		addExactlyOne(sat, b.selA[g])
		addExactlyOne(sat, b.selB[g])
	}
	addExactlyOne(sat, selOut)

	var assumptions []z.Lit
	for r := 0; r < rows; r++ {
		if (mask>>uint(r))&1 == 0 {
			continue
		}
		if (tt>>uint(r))&1 != 0 {
			assumptions = append(assumptions, outRow[r])
		} else {
			assumptions = append(assumptions, outRow[r].Not())
		}
	}
	sat.Assume(assumptions...)

	if sat.Solve() != 1 {
		return nil, false
	}

	return decode(sat, b, selOut, numGates, k), true
}

// decode reads off the satisfying one-hot selections and builds the
// corresponding SubAIG: local variable i (1<=i<=k) is divisor i-1,
// local variable k+1+g is gate g.
func decode(sat *gini.Gini, b *gateBuild, selOut []z.Lit, numGates, k int) *aig.SubAIG {
	gates := make([]aig.GatePair, numGates)
	for g := 0; g < numGates; g++ {
		numSig := k + g
		gates[g] = aig.GatePair{
			F0: decodeSelection(sat, b.selA[g], numSig),
			F1: decodeSelection(sat, b.selB[g], numSig),
		}
	}
	return &aig.SubAIG{
		NPIs:  k,
		Gates: gates,
		PO:    decodeSelection(sat, selOut, k+numGates),
	}
}

// decodeSelection maps a satisfied one-hot candidate vector back to a
// SubAIG-local literal: candidate 2*s is signal s non-inverted,
// 2*s+1 is signal s inverted; signal s<k is divisor input s+1, signal
// s>=k is gate k+1+(s-k).
func decodeSelection(sat *gini.Gini, sel []z.Lit, numSig int) aig.Lit {
	for s := 0; s < numSig; s++ {
		for inv := 0; inv < 2; inv++ {
			idx := 2*s + inv
			if sat.Value(sel[idx]) {
				return aig.MkLit(aig.Var(s+1), inv == 1)
			}
		}
	}
	return aig.ConstFalse
}
