package resub

import (
	"container/heap"

	"github.com/sirupsen/logrus"

	"github.com/MyskYko/fresub/aig"
	"github.com/MyskYko/fresub/aig/feasible"
	"github.com/MyskYko/fresub/aig/mffc"
	"github.com/MyskYko/fresub/aig/parallel"
	"github.com/MyskYko/fresub/aig/simulate"
	"github.com/MyskYko/fresub/aig/splice"
	"github.com/MyskYko/fresub/aig/synth"
	"github.com/MyskYko/fresub/aig/window"
)

// candidateResult holds one window's buildCandidate outcome so that
// phase can be fanned out across aig/parallel without each worker
// touching shared state.
type candidateResult struct {
	c   *candidate
	ok  bool
	err error
}

// Run extracts every window of g, scores every feasible resubstitution
// it finds, and applies them to g in descending-gain order, mutating g
// in place. It returns aggregate Stats for CLI reporting.
func Run(g *aig.Graph, opts ...Option) (*Stats, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	stats := &Stats{}

	ex := window.NewExtractor(g, o.CutSize)
	windows, err := ex.Extract()
	if err != nil {
		return nil, err
	}
	stats.WindowsExplored = len(windows)

	var results []candidateResult
	if o.Parallelism > 0 {
		pool := parallel.New(o.Parallelism)
		results = parallel.Map(pool, windows, func(w *window.Window) candidateResult {
			c, ok, err := buildCandidate(g, w, o)
			return candidateResult{c: c, ok: ok, err: err}
		})
		pool.Close()
	} else {
		results = make([]candidateResult, len(windows))
		for i, w := range windows {
			c, ok, err := buildCandidate(g, w, o)
			results[i] = candidateResult{c: c, ok: ok, err: err}
		}
	}

	pq := make(candidatePQ, 0, len(windows))
	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		if !r.ok {
			continue
		}
		stats.CandidatesFound++
		pq = append(pq, r.c)
	}
	heap.Init(&pq)

	for pq.Len() > 0 {
		c := heap.Pop(&pq).(*candidate)
		if !revalidate(g, c) {
			stats.CandidatesStale++
			continue
		}
		if o.Logger != nil {
			o.Logger.WithFields(logrus.Fields{
				"target": c.target,
				"gain":   c.gain,
				"gates":  c.sub.NumGates(),
			}).Debug("applying resubstitution")
		}
		if _, err := splice.Splice(g, c.target, c.divisors, c.sub); err != nil {
			return nil, err
		}
		stats.CandidatesApplied++
		stats.GatesRemoved += c.gain
	}
	return stats, nil
}

// buildCandidate simulates w's divisors and target, runs the
// feasibility ladder, and tries exact synthesis at the smallest
// feasible k, keeping whichever feasible tuple yields the fewest
// gates. Returns ok=false if nothing feasible improves on w's own
// MFFC size.
func buildCandidate(g *aig.Graph, w *window.Window, o Options) (*candidate, bool, error) {
	sim, err := simulate.New(g, w.Inputs)
	if err != nil {
		return nil, false, err
	}
	sim.Simulate(w.Nodes)

	targetTT := sim.TT(w.Target)
	divTTs := make([]feasible.TT, len(w.Divisors))
	for i, d := range w.Divisors {
		divTTs[i] = sim.TT(d)
	}

	k, tuples, ok := feasible.Ladder(divTTs, targetTT)
	if !ok {
		return nil, false, nil
	}

	var best *aig.SubAIG
	var bestDivs []aig.Var
	for _, tup := range tuples {
		selDivs := make([]aig.Var, k)
		selTTs := make([]synth.TT, k)
		for i, idx := range tup {
			selDivs[i] = w.Divisors[idx]
			selTTs[i] = divTTs[idx]
		}
		tt, mask := synth.CompactTruth(selTTs, targetTT)
		sub, err := synth.Synthesize(k, tt, mask, o.MaxGates)
		if err != nil {
			return nil, false, err
		}
		if sub == nil {
			continue
		}
		w.AddFeasible(window.FeasibleSet{Divisors: selDivs, Sub: sub})
		if best == nil || sub.NumGates() < best.NumGates() {
			best, bestDivs = sub, selDivs
		}
	}
	if best == nil {
		return nil, false, nil
	}

	gain := w.MFFCSize - best.NumGates()
	if gain <= 0 {
		return nil, false, nil
	}
	return &candidate{
		target:   w.Target,
		divisors: bestDivs,
		sub:      best,
		mffcSize: w.MFFCSize,
		gain:     gain,
	}, true, nil
}

// revalidate re-checks a popped candidate's assumptions against g's
// current state: an earlier, higher-gain splice may have removed the
// target or a divisor outright, changed the target's MFFC size (in
// which case the recorded gain no longer applies and the candidate is
// stale rather than necessarily wrong), or rewired one of the
// divisors to depend on the target itself, in which case splicing the
// recorded sub would wire a combinational cycle into g.
func revalidate(g *aig.Graph, c *candidate) bool {
	if !g.IsGate(c.target) || g.IsDead(c.target) {
		return false
	}
	for _, d := range c.divisors {
		if g.IsDead(d) {
			return false
		}
	}
	deref := mffc.NewDeref(int(g.NumVars()))
	cone, err := mffc.MFFC(g, c.target, deref)
	if err != nil || cone.Len() != c.mffcSize {
		return false
	}
	for _, d := range c.divisors {
		if mffc.Reaches(g, c.target, d) {
			return false
		}
	}
	return true
}
