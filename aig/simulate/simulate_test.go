package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MyskYko/fresub/aig"
)

// TestSimulate_SingleAndGate checks a minimal window: inputs=[1,2],
// nodes=[1,2,4], target=4=AND(1,2); TT(1)=0xAAAA..AA, TT(2)=0xCCCC..CC,
// TT(4) = TT(1) & TT(2).
func TestSimulate_SingleAndGate(t *testing.T) {
	g := aig.NewGraph(3)
	l1, l2 := aig.MkLit(1, false), aig.MkLit(2, false)
	l4 := g.CreateAnd(l1, l2)
	require.Equal(t, aig.Var(4), l4.Var())

	sim, err := New(g, []aig.Var{1, 2})
	require.NoError(t, err)
	sim.Simulate([]aig.Var{1, 2, 4})

	for _, w := range sim.TT(1) {
		assert.Equal(t, uint64(0xAAAAAAAAAAAAAAAA), w)
	}
	for _, w := range sim.TT(2) {
		assert.Equal(t, uint64(0xCCCCCCCCCCCCCCCC), w)
	}
	want := make(TT, sim.Words())
	and(want, sim.TT(1), sim.TT(2))
	assert.Equal(t, want, sim.TT(4))
}

func TestSimulate_InversionHandled(t *testing.T) {
	g := aig.NewGraph(2)
	l1, l2 := aig.MkLit(1, false), aig.MkLit(2, false)
	l3 := g.CreateAnd(l1.Neg(), l2) // AND(~1, 2)

	sim, err := New(g, []aig.Var{1, 2})
	require.NoError(t, err)
	sim.Simulate([]aig.Var{1, 2, l3.Var()})

	for i, w := range sim.TT(l3.Var()) {
		want := ^sim.TT(1)[i] & sim.TT(2)[i]
		assert.Equal(t, want, w)
	}
}

func TestInputTT_HighIndexPattern(t *testing.T) {
	// n=7 inputs: input 6 should be all-ones in word j iff bit 0 of j is set.
	tt := InputTT(6, 7)
	require.Len(t, tt, NumWords(7))
	for j, w := range tt {
		if j&1 != 0 {
			assert.Equal(t, ^uint64(0), w)
		} else {
			assert.Equal(t, uint64(0), w)
		}
	}
}

func TestNumWords(t *testing.T) {
	assert.Equal(t, 1, NumWords(1))
	assert.Equal(t, 1, NumWords(6))
	assert.Equal(t, 2, NumWords(7))
	assert.Equal(t, 16384, NumWords(20))
}
