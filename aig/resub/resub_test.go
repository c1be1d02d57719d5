package resub

import (
	"testing"

	"container/heap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MyskYko/fresub/aig"
	"github.com/MyskYko/fresub/aig/mffc"
	"github.com/MyskYko/fresub/aig/simulate"
)

func TestCandidatePQ_PopsDescendingGain(t *testing.T) {
	pq := make(candidatePQ, 0)
	heap.Init(&pq)
	for _, gain := range []int{1, 3, 2} {
		heap.Push(&pq, &candidate{target: aig.Var(gain), gain: gain})
	}
	var order []int
	for pq.Len() > 0 {
		c := heap.Pop(&pq).(*candidate)
		order = append(order, c.gain)
	}
	assert.Equal(t, []int{3, 2, 1}, order)
}

func TestRevalidate_RejectsDeadTargetAndChangedMFFC(t *testing.T) {
	g := aig.NewGraph(3)
	l1, l2, l3 := aig.MkLit(1, false), aig.MkLit(2, false), aig.MkLit(3, false)
	q := g.CreateAnd(l1, l2)
	target := g.CreateAnd(q, l3)

	c := &candidate{target: target.Var(), divisors: []aig.Var{1, 2, 3}, mffcSize: 2}
	assert.True(t, revalidate(g, c))

	g.CreateAnd(q, l1) // q gains a second fanout: MFFC(target) shrinks to {target}
	assert.False(t, revalidate(g, c))

	require.NoError(t, g.RemoveMFFC(target.Var()))
	assert.False(t, revalidate(g, c))
}

func TestRevalidate_RejectsDeadDivisor(t *testing.T) {
	g := aig.NewGraph(3)
	l1, l2, l3 := aig.MkLit(1, false), aig.MkLit(2, false), aig.MkLit(3, false)
	extra := g.CreateAnd(l1, l2)
	q := g.CreateAnd(l1, l3)
	target := g.CreateAnd(q, l2)

	c := &candidate{target: target.Var(), divisors: []aig.Var{extra.Var()}, mffcSize: 2}
	assert.True(t, revalidate(g, c))

	require.NoError(t, g.RemoveNode(extra.Var()))
	assert.False(t, revalidate(g, c))
}

// TestRevalidate_RejectsDivisorDownstreamOfTarget builds a candidate
// whose recorded divisor has since become a descendant of its own
// target (as can happen once an unrelated, earlier-applied splice
// wires new gates between them): splicing the candidate's sub would
// make the target's own replacement depend on something that depends
// on the target, a combinational cycle, so revalidate must reject it
// even though the target, the divisor, and the target's MFFC size are
// all otherwise exactly as recorded.
func TestRevalidate_RejectsDivisorDownstreamOfTarget(t *testing.T) {
	g := aig.NewGraph(3)
	l1, l2, l3 := aig.MkLit(1, false), aig.MkLit(2, false), aig.MkLit(3, false)
	target := g.CreateAnd(l1, l2)
	downstream := g.CreateAnd(target, l3) // depends on target

	deref := mffc.NewDeref(int(g.NumVars()))
	cone, err := mffc.MFFC(g, target.Var(), deref)
	require.NoError(t, err)

	c := &candidate{target: target.Var(), divisors: []aig.Var{downstream.Var()}, mffcSize: cone.Len()}
	assert.False(t, revalidate(g, c))
}

// TestRun_EliminatesRedundantComputation builds a target computing
// a&b&c whose MFFC redundantly recomputes a&b, when a&b is already
// available from an independent divisor gate in the same window, and
// checks that Run finds and applies a gain-positive resubstitution
// reusing it, strictly reducing the region's live gate count while
// preserving the PO's function.
func TestRun_EliminatesRedundantComputation(t *testing.T) {
	g := aig.NewGraph(3)
	l1, l2, l3 := aig.MkLit(1, false), aig.MkLit(2, false), aig.MkLit(3, false)

	divP := g.CreateAnd(l1, l2) // a&b, kept alive as its own PO
	q := g.CreateAnd(l1, l2)    // a&b again, only feeds target
	target := g.CreateAnd(q, l3)
	g.AddPO(divP)
	g.AddPO(target)

	sim, err := simulate.New(g, []aig.Var{1, 2, 3})
	require.NoError(t, err)
	sim.Simulate([]aig.Var{1, 2, 3, divP.Var(), q.Var(), target.Var()})
	wantDivP, wantTarget := sim.TT(divP.Var()), sim.TT(target.Var())

	stats, err := Run(g, WithCutSize(4), WithMaxGates(2))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.CandidatesApplied, 1)
	assert.Greater(t, stats.GatesRemoved, 0)

	pos := g.POs()
	require.Len(t, pos, 2)
	sim2, err := simulate.New(g, []aig.Var{1, 2, 3})
	require.NoError(t, err)
	sim2.Simulate([]aig.Var{1, 2, 3, pos[0].Var(), pos[1].Var()})

	getTT := func(l aig.Lit) simulate.TT {
		tt := sim2.TT(l.Var())
		if !l.IsInv() {
			return tt
		}
		out := make(simulate.TT, len(tt))
		for i, w := range tt {
			out[i] = ^w
		}
		return out
	}
	assert.Equal(t, wantDivP, getTT(pos[0]))
	assert.Equal(t, wantTarget, getTT(pos[1]))
}

// TestRun_WithParallelismMatchesSequential re-runs the same scenario
// as TestRun_EliminatesRedundantComputation with the per-window
// build phase fanned out across aig/parallel, checking that
// parallelizing window scoring doesn't change the outcome.
func TestRun_WithParallelismMatchesSequential(t *testing.T) {
	g := aig.NewGraph(3)
	l1, l2, l3 := aig.MkLit(1, false), aig.MkLit(2, false), aig.MkLit(3, false)

	divP := g.CreateAnd(l1, l2)
	q := g.CreateAnd(l1, l2)
	target := g.CreateAnd(q, l3)
	g.AddPO(divP)
	g.AddPO(target)

	stats, err := Run(g, WithCutSize(4), WithMaxGates(2), WithParallelism(4))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.CandidatesApplied, 1)
	assert.Greater(t, stats.GatesRemoved, 0)
}
