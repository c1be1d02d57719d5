package aig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDiamondFanin builds a small graph with a diamond-shaped fanin
// region: PIs 1,2,3; 4=AND(1,2); 5=AND(2,3); 6=AND(4,5); 7=AND(4,3);
// 8=AND(6,7); PO = literal for variable 8, positive polarity.
func buildDiamondFanin(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph(3)
	l1, l2, l3 := MkLit(1, false), MkLit(2, false), MkLit(3, false)
	l4 := g.CreateAnd(l1, l2)
	require.Equal(t, Var(4), l4.Var())
	l5 := g.CreateAnd(l2, l3)
	require.Equal(t, Var(5), l5.Var())
	l6 := g.CreateAnd(l4, l5)
	require.Equal(t, Var(6), l6.Var())
	l7 := g.CreateAnd(l4, l3)
	require.Equal(t, Var(7), l7.Var())
	l8 := g.CreateAnd(l6, l7)
	require.Equal(t, Var(8), l8.Var())
	g.AddPO(MkLit(8, false))
	return g
}

func TestCreateAnd_TrivialAbsorption(t *testing.T) {
	g := NewGraph(2)
	l1 := MkLit(1, false)

	assert.Equal(t, ConstFalse, g.CreateAnd(ConstFalse, l1))
	assert.Equal(t, l1, g.CreateAnd(ConstTrue, l1))
	assert.Equal(t, l1, g.CreateAnd(l1, l1))
	assert.Equal(t, ConstFalse, g.CreateAnd(l1, l1.Neg()))

	// No gate was allocated by any of the above.
	assert.Equal(t, Var(3), g.NumVars())
}

func TestCreateAnd_Canonical(t *testing.T) {
	g := NewGraph(2)
	l1, l2 := MkLit(1, false), MkLit(2, false)
	a := g.CreateAnd(l2, l1) // reversed order in the call
	require.NoError(t, g.Validate())
	assert.True(t, g.Fanin0(a.Var()) <= g.Fanin1(a.Var()))
}

func TestDiamondFanin_StructureAndLevels(t *testing.T) {
	g := buildDiamondFanin(t)
	require.NoError(t, g.Validate())

	assert.Equal(t, uint32(1), g.Level(4))
	assert.Equal(t, uint32(1), g.Level(5))
	assert.Equal(t, uint32(2), g.Level(6))
	assert.Equal(t, uint32(2), g.Level(7))
	assert.Equal(t, uint32(3), g.Level(8))

	assert.ElementsMatch(t, []Var{6, 7}, g.Fanouts(4))
	assert.ElementsMatch(t, []Var{6}, g.Fanouts(5))
}

func TestRemoveMFFC_CascadesToFanoutFreeFanins(t *testing.T) {
	g := NewGraph(2)
	l1, l2 := MkLit(1, false), MkLit(2, false)
	l3 := g.CreateAnd(l1, l2) // var 3, only used by var 4
	l4 := g.CreateAnd(l3, l2) // var 4
	g.AddPO(MkLit(4, false))

	require.NoError(t, g.RemoveMFFC(l4.Var()))
	assert.True(t, g.IsDead(4))
	assert.True(t, g.IsDead(3), "var 3 becomes fanout-free and should cascade-remove")
	assert.NoError(t, g.Validate())
}

func TestReplaceNode_PreservesPolarityAndRedirectsPOs(t *testing.T) {
	g := NewGraph(2)
	l1, l2 := MkLit(1, false), MkLit(2, false)
	l3 := g.CreateAnd(l1, l2) // var 3
	g.CreateAnd(l3.Neg(), l2) // var 4, uses ~3
	g.AddPO(MkLit(3, true))   // PO = ~3
	g.AddPO(MkLit(4, false))

	// Replace var 3 with var 1 (pretend a rewrite proved node 3 == var 1).
	// Gate 4 becomes AND(~1, 2); canonical order puts ~1 (literal 3) first.
	require.NoError(t, g.ReplaceNode(3, 1))
	require.NoError(t, g.Validate())

	assert.Equal(t, MkLit(1, true), g.POs()[0], "PO inversion preserved under redirect")
	assert.Equal(t, MkLit(1, true), g.Fanin0(4), "fanin inversion preserved under redirect")
	assert.True(t, g.IsDead(3))
}

func TestRemoveNode_Idempotent(t *testing.T) {
	g := buildDiamondFanin(t)
	require.NoError(t, g.RemoveNode(8))
	require.NoError(t, g.RemoveNode(8))
	assert.True(t, g.IsDead(8))
}

func TestRemoveNode_RejectsPI(t *testing.T) {
	g := buildDiamondFanin(t)
	err := g.RemoveNode(1)
	assert.ErrorIs(t, err, ErrNotAGate)
}
