package mffc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MyskYko/fresub/aig"
)

// buildDiamondFanin builds a small graph with a diamond-shaped fanin
// region above its PO: PIs 1,2,3; 4=AND(1,2); 5=AND(2,3); 6=AND(4,5);
// 7=AND(4,3); 8=AND(6,7); PO=8.
func buildDiamondFanin(t *testing.T) *aig.Graph {
	t.Helper()
	g := aig.NewGraph(3)
	l1, l2, l3 := aig.MkLit(1, false), aig.MkLit(2, false), aig.MkLit(3, false)
	l4 := g.CreateAnd(l1, l2)
	l5 := g.CreateAnd(l2, l3)
	l6 := g.CreateAnd(l4, l5)
	l7 := g.CreateAnd(l4, l3)
	l8 := g.CreateAnd(l6, l7)
	g.AddPO(aig.MkLit(l8.Var(), false))
	return g
}

func varSet(vs ...aig.Var) map[aig.Var]bool {
	m := make(map[aig.Var]bool, len(vs))
	for _, v := range vs {
		m[v] = true
	}
	return m
}

func TestMFFC_DiamondFaninCones(t *testing.T) {
	g := buildDiamondFanin(t)
	d := NewDeref(int(g.NumVars()))

	c6, err := MFFC(g, 6, d)
	require.NoError(t, err)
	assert.ElementsMatch(t, []aig.Var{5, 6}, c6.Vars())
	assert.True(t, d.AllZero(), "deref must be restored after MFFC")

	c8, err := MFFC(g, 8, d)
	require.NoError(t, err)
	assert.ElementsMatch(t, []aig.Var{4, 5, 6, 7, 8}, c8.Vars())
	assert.True(t, d.AllZero())
}

func TestMFFC_RejectsNonGate(t *testing.T) {
	g := buildDiamondFanin(t)
	d := NewDeref(int(g.NumVars()))
	_, err := MFFC(g, 1, d)
	assert.ErrorIs(t, err, ErrNotAGate)
}

func TestMFFCExcluding_BlocksExcludedAndItsFanin(t *testing.T) {
	g := buildDiamondFanin(t)
	d := NewDeref(int(g.NumVars()))

	// Excluding 5 from MFFC(8) should drop 5 (and nothing that only
	// 5 would have pulled in, since 5's own fanin 2,3 are PIs anyway).
	cone, err := MFFCExcluding(g, 8, d, []aig.Var{5})
	require.NoError(t, err)
	assert.False(t, cone.Has(5))
	assert.True(t, d.AllZero())
}

func TestTFOWithin_DiamondFanin(t *testing.T) {
	g := buildDiamondFanin(t)
	all := varSet(1, 2, 3, 4, 5, 6, 7, 8)

	tfo4 := TFOWithin(g, 4, all)
	assert.ElementsMatch(t, []aig.Var{4, 6, 7, 8}, tfo4.Vars())

	tfo5 := TFOWithin(g, 5, all)
	assert.ElementsMatch(t, []aig.Var{5, 6, 8}, tfo5.Vars())
}

func TestTFOWithin_RestrictsToGivenSet(t *testing.T) {
	g := buildDiamondFanin(t)
	restricted := varSet(4, 6) // excludes 7, 8 from the reachable set
	tfo := TFOWithin(g, 4, restricted)
	assert.ElementsMatch(t, []aig.Var{4, 6}, tfo.Vars())
}
