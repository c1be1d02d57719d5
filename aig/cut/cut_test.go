package cut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MyskYko/fresub/aig"
)

func buildS1(t *testing.T) *aig.Graph {
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

func TestEnumerator_TrivialCutAlwaysPresent(t *testing.T) {
	g := buildS1(t)
	e, err := New(g, 4)
	require.NoError(t, err)
	e.Run()

	for _, v := range []aig.Var{1, 2, 3, 4, 5, 6, 7, 8} {
		found := false
		for _, c := range e.Cuts(v) {
			if len(c.Leaves) == 1 && c.Leaves[0] == v {
				found = true
			}
		}
		assert.True(t, found, "trivial cut missing for var %d", v)
	}
}

func TestEnumerator_CutsBoundedByK(t *testing.T) {
	g := buildS1(t)
	e, err := New(g, 2)
	require.NoError(t, err)
	e.Run()
	for _, c := range e.Cuts(8) {
		assert.LessOrEqual(t, len(c.Leaves), 2)
	}
}

func TestEnumerator_DominanceKeepsCutsMinimal(t *testing.T) {
	g := buildS1(t)
	e, err := New(g, 4)
	require.NoError(t, err)
	e.Run()

	cuts := e.Cuts(6) // AND(4,5)
	for i := range cuts {
		for j := range cuts {
			if i == j {
				continue
			}
			assert.False(t, cuts[i].Dominates(cuts[j]) && cuts[j].Dominates(cuts[i]),
				"no two retained cuts should be leaf-set equal")
		}
	}
}

func TestCut_DominatesIsSubsetOnLeaves(t *testing.T) {
	a := Cut{Leaves: []aig.Var{1, 2}, Sig: sigOf(1) | sigOf(2)}
	b := Cut{Leaves: []aig.Var{1, 2, 3}, Sig: sigOf(1) | sigOf(2) | sigOf(3)}
	assert.True(t, a.Dominates(b))
	assert.False(t, b.Dominates(a))
}

func TestNew_RejectsBadK(t *testing.T) {
	g := buildS1(t)
	_, err := New(g, 0)
	assert.ErrorIs(t, err, ErrBadK)
	_, err = New(g, 65)
	assert.ErrorIs(t, err, ErrBadK)
}
