package aig

import "fmt"

// AppendGate appends a new gate variable with fanins (f0, f1) exactly
// as given by a trusted bulk loader (see the aiger package), without
// CreateAnd's trivial-case absorption — an AIGER file is assumed
// already free of trivial ANDs. It still canonicalizes f0 <= f1 and
// validates the topological requirement var(f0), var(f1) < new var.
// Callers must call BuildFanouts once after all gates are appended.
func (g *Graph) AppendGate(f0, f1 Lit) (Var, error) {
	if f0 > f1 {
		f0, f1 = f1, f0
	}
	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	v := Var(len(g.nodes))
	if f0.Var() >= v || f1.Var() >= v {
		return 0, fmt.Errorf("AppendGate: fanin var >= new var %d: %w", v, ErrSelfFanin)
	}
	level := 1 + max32(g.nodes[f0.Var()].level, g.nodes[f1.Var()].level)
	g.nodes = append(g.nodes, node{f0: f0, f1: f1, level: level})
	return v, nil
}

// Validate walks every live gate and checks the structural invariants
// documented on the node type: canonical fanin ordering, strict
// topological fanin ids, non-trivial fanins, consistent level, and a
// bidirectionally consistent fanout index. Intended for tests and
// defensive assertions, not the hot path.
func (g *Graph) Validate() error {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	g.muFanout.RLock()
	defer g.muFanout.RUnlock()

	expectedFanouts := make(map[Var]map[Var]bool, len(g.nodes))
	for v := range g.nodes {
		expectedFanouts[Var(v)] = map[Var]bool{}
	}

	for v := g.nPIs + 1; int(v) < len(g.nodes); v++ {
		n := g.nodes[v]
		if n.dead {
			continue
		}
		if n.f0 > n.f1 {
			return fmt.Errorf("aig: gate %d fanins not canonically ordered", v)
		}
		if n.f0.Var() >= v || n.f1.Var() >= v {
			return fmt.Errorf("aig: gate %d fanin var out of topological order", v)
		}
		if n.f0 == n.f1 || n.f0 == n.f1.Neg() {
			return fmt.Errorf("aig: gate %d has a trivial (unabsorbed) fanin pair", v)
		}
		wantLevel := 1 + max32(g.nodes[n.f0.Var()].level, g.nodes[n.f1.Var()].level)
		if n.level != wantLevel {
			return fmt.Errorf("aig: gate %d level %d, want %d", v, n.level, wantLevel)
		}
		expectedFanouts[n.f0.Var()][v] = true
		expectedFanouts[n.f1.Var()][v] = true
	}

	for v := range g.nodes {
		if g.nodes[v].dead {
			continue
		}
		got := map[Var]bool{}
		for _, fo := range g.nodes[v].fanouts {
			got[fo] = true
		}
		want := expectedFanouts[Var(v)]
		if len(got) != len(want) {
			return fmt.Errorf("aig: fanout list of %d has %d entries, want %d", v, len(got), len(want))
		}
		for fo := range want {
			if !got[fo] {
				return fmt.Errorf("aig: fanout list of %d missing %d", v, fo)
			}
		}
	}
	return nil
}
