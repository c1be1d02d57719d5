package mffc

import (
	"fmt"
	"sort"

	"github.com/MyskYko/fresub/aig"
)

// Deref is the transient per-pass scratch array MFFC uses instead of
// mutating the graph's real fanout counts. It must be all-zero on
// entry to MFFC and is restored to all-zero on every exit path
// (including excluded-variable bookkeeping), so one Deref can be
// shared across every window in a pass.
type Deref struct {
	arr []int32
}

// NewDeref allocates a Deref sized for a graph with n variables.
func NewDeref(n int) *Deref { return &Deref{arr: make([]int32, n)} }

// AllZero reports whether every entry is 0, for tests that check
// MFFC's restoration guarantee.
func (d *Deref) AllZero() bool {
	for _, x := range d.arr {
		if x != 0 {
			return false
		}
	}
	return true
}

// Cone is the (sorted) set of variables an MFFC or TFO query produced.
type Cone struct {
	vars map[aig.Var]bool
}

func newCone() *Cone { return &Cone{vars: make(map[aig.Var]bool)} }

// Has reports whether v is in the cone.
func (c *Cone) Has(v aig.Var) bool { return c.vars[v] }

// Len returns the number of variables in the cone.
func (c *Cone) Len() int { return len(c.vars) }

// Vars returns the cone's variables in ascending order.
func (c *Cone) Vars() []aig.Var {
	out := make([]aig.Var, 0, len(c.vars))
	for v := range c.vars {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MFFC computes the maximum fanout-free cone of root: root itself plus
// every fanin (transitively) that has no live fanout once the cone
// built so far is considered removed.
func MFFC(g *aig.Graph, root aig.Var, deref *Deref) (*Cone, error) {
	if !g.IsGate(root) {
		return nil, fmt.Errorf("MFFC(%d): %w", root, ErrNotAGate)
	}
	cone := newCone()
	touched := mffcInto(g, root, deref, cone)
	for _, v := range touched {
		deref.arr[v] = 0
	}
	return cone, nil
}

// MFFCExcluding computes MFFC(root) as if every variable in excluded
// (and transitively everything only reachable through it) could never
// enter the cone: each excluded variable's deref is temporarily forced
// permanently "over-referenced" so the fanout-free test on it (and,
// inductively, on anything whose only path into the cone runs through
// it) never succeeds.
func MFFCExcluding(g *aig.Graph, root aig.Var, deref *Deref, excluded []aig.Var) (*Cone, error) {
	for _, e := range excluded {
		deref.arr[e] = -1
	}
	cone, err := MFFC(g, root, deref)
	for _, e := range excluded {
		deref.arr[e] = 0
	}
	return cone, err
}

// mffcInto does the actual deref-counting walk and returns every
// variable whose deref entry was touched, so the caller can restore it.
func mffcInto(g *aig.Graph, root aig.Var, deref *Deref, cone *Cone) []aig.Var {
	var touched []aig.Var

	deref.arr[root] = int32(g.NumFanouts(root))
	cone.vars[root] = true

	stack := []aig.Var{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, fi := range []aig.Lit{g.Fanin0(v), g.Fanin1(v)} {
			u := fi.Var()
			if u == 0 || g.IsPI(u) {
				continue
			}
			if deref.arr[u] == 0 {
				touched = append(touched, u)
			}
			deref.arr[u]++
			if int32(g.NumFanouts(u))-deref.arr[u] == 0 && !cone.vars[u] {
				cone.vars[u] = true
				stack = append(stack, u)
			}
		}
	}
	touched = append(touched, root)
	return dedupe(touched)
}

func dedupe(vs []aig.Var) []aig.Var {
	seen := make(map[aig.Var]bool, len(vs))
	out := vs[:0]
	for _, v := range vs {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
