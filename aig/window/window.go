package window

import (
	"github.com/MyskYko/fresub/aig"
)

// FeasibleSet pairs a selected divisor subset (up to 4 divisors) with
// the SubAIG exact synthesis produced for it. Owned by the Window it
// was appended to; used once by aig/splice then dropped.
type FeasibleSet struct {
	Divisors []aig.Var
	Sub      *aig.SubAIG
}

// Window is the subgraph between a cut (its Inputs) and a Target gate:
// a locale for a resubstitution attempt.
//
// Nodes is the full internal node set, inclusive of Inputs and Target,
// in ascending (topological) order. Divisors is Nodes minus the
// target's MFFC minus the target's TFO restricted to Nodes — the
// signals legally available as inputs to a replacement circuit.
// MFFCSize is the upper bound on gate-count gain any rewrite of Target
// could achieve. Feasible accumulates candidate rewrites found during
// the feasibility + synthesis pass; it is mutated only by append.
type Window struct {
	Target   aig.Var
	Inputs   []aig.Var
	Nodes    []aig.Var
	Divisors []aig.Var
	MFFCSize int
	Feasible []FeasibleSet
}

// AddFeasible appends fs to w's feasible-set bag.
func (w *Window) AddFeasible(fs FeasibleSet) {
	w.Feasible = append(w.Feasible, fs)
}
