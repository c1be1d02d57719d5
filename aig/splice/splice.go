package splice

import (
	"github.com/MyskYko/fresub/aig"
)

// Splice imports sub into g, wiring its declared inputs to divisors
// (divisors[i] supplies sub's local input i+1, non-inverted; sub's own
// polarity choices for that input are encoded in its gates' literals),
// appends sub's gates as new host gates in order, and replaces target
// with the resulting output literal via ReplaceNodeWithLit. Returns
// the host literal that now computes sub's function, i.e. the literal
// target's former fanouts now observe in its place.
func Splice(g *aig.Graph, target aig.Var, divisors []aig.Var, sub *aig.SubAIG) (aig.Lit, error) {
	if len(divisors) != sub.NPIs {
		return 0, ErrInputCount
	}

	trans := make([]aig.Lit, 1+sub.NPIs+len(sub.Gates))
	trans[0] = aig.ConstFalse
	for i, d := range divisors {
		trans[i+1] = aig.MkLit(d, false)
	}

	resolve := func(l aig.Lit) aig.Lit {
		return trans[l.Var()].IfInv(l.IsInv())
	}

	for i, gp := range sub.Gates {
		f0, f1 := resolve(gp.F0), resolve(gp.F1)
		trans[sub.NPIs+1+i] = g.CreateAnd(f0, f1)
	}

	root := resolve(sub.PO)
	if root.Var() == target {
		return root, nil
	}
	if err := g.ReplaceNodeWithLit(target, root); err != nil {
		return 0, err
	}
	return root, nil
}
