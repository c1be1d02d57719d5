// Package aig: mutation methods on Graph.
//
// CreateAnd, RemoveNode, RemoveMFFC, and ReplaceNode are the four
// primitives every higher package (cut, mffc, window, resub, splice)
// builds on. They preserve the structural invariants documented in
// types.go's node comment on every call.
package aig

import "fmt"

// CreateAnd returns the literal for AND(a, b), sorting and absorbing
// trivial cases, or allocating a new gate. Complexity: O(1) amortized
// (O(deg) if structural hashing is disabled and a duplicate fanout
// list insertion is needed; still O(1) amortized per insertion).
func (g *Graph) CreateAnd(a, b Lit) Lit {
	if a > b {
		a, b = b, a
	}
	switch {
	case a == ConstFalse:
		return ConstFalse
	case a == ConstTrue:
		return b
	case a == b:
		return a
	case a == b.Neg():
		return ConstFalse
	}

	g.muNodes.Lock()
	if g.useHash {
		if v, ok := g.hash[[2]Lit{a, b}]; ok && !g.nodes[v].dead {
			g.muNodes.Unlock()
			return MkLit(v, false)
		}
	}

	va, vb := a.Var(), b.Var()
	level := 1 + max32(g.nodes[va].level, g.nodes[vb].level)
	v := Var(len(g.nodes))
	g.nodes = append(g.nodes, node{f0: a, f1: b, level: level})
	if g.useHash {
		g.hash[[2]Lit{a, b}] = v
	}
	g.muNodes.Unlock()

	g.muFanout.Lock()
	g.nodes[va].fanouts = append(g.nodes[va].fanouts, v)
	if vb != va {
		g.nodes[vb].fanouts = append(g.nodes[vb].fanouts, v)
	}
	g.muFanout.Unlock()

	return MkLit(v, false)
}

func max32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// RemoveNode marks v dead and removes it from its fanins' fanout
// lists. Idempotent on an already-dead node. Fails loudly on an
// out-of-range variable: that is a programmer error, not a runtime
// condition callers should branch on.
func (g *Graph) RemoveNode(v Var) error {
	g.muNodes.Lock()
	if !g.inRange(v) {
		g.muNodes.Unlock()
		return fmt.Errorf("RemoveNode(%d): %w", v, ErrBadVar)
	}
	if g.nodes[v].dead {
		g.muNodes.Unlock()
		return nil
	}
	if v <= g.nPIs {
		g.muNodes.Unlock()
		return fmt.Errorf("RemoveNode(%d): %w", v, ErrNotAGate)
	}
	f0, f1 := g.nodes[v].f0, g.nodes[v].f1
	g.nodes[v].dead = true
	g.muNodes.Unlock()

	g.muFanout.Lock()
	removeFanout(&g.nodes[f0.Var()], v)
	if f1.Var() != f0.Var() {
		removeFanout(&g.nodes[f1.Var()], v)
	}
	g.muFanout.Unlock()
	return nil
}

func removeFanout(n *node, v Var) {
	for i, fo := range n.fanouts {
		if fo == v {
			n.fanouts[i] = n.fanouts[len(n.fanouts)-1]
			n.fanouts = n.fanouts[:len(n.fanouts)-1]
			return
		}
	}
}

// RemoveMFFC removes v, then recursively removes any fanin that became
// fanout-free as a result (restricted to gate variables; PIs and the
// constant are never removed). Complexity: O(size of the removed cone).
func (g *Graph) RemoveMFFC(v Var) error {
	if err := g.preRemoveCheck(v); err != nil {
		return err
	}
	f0, f1 := g.Fanin0(v), g.Fanin1(v)
	if err := g.RemoveNode(v); err != nil {
		return err
	}
	for _, u := range []Var{f0.Var(), f1.Var()} {
		if u > g.nPIs && g.NumFanouts(u) == 0 && !g.IsDead(u) {
			if err := g.RemoveMFFC(u); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Graph) preRemoveCheck(v Var) error {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	if !g.inRange(v) {
		return fmt.Errorf("RemoveMFFC(%d): %w", v, ErrBadVar)
	}
	if g.nodes[v].dead {
		return nil
	}
	if v <= g.nPIs {
		return fmt.Errorf("RemoveMFFC(%d): %w", v, ErrNotAGate)
	}
	return nil
}

// ReplaceNode rewires every fanout of old to reference newVar instead
// (preserving each edge's inversion bit), redirects every PO literal
// on old the same way, appends old's former fanouts to newVar's fanout
// list, and finally removes old's MFFC. The caller-observed polarity
// at every rewired edge is preserved: only the variable changes, never
// the inversion bit recorded at that edge.
func (g *Graph) ReplaceNode(old Var, newVar Var) error {
	return g.ReplaceNodeWithLit(old, MkLit(newVar, false))
}

// ReplaceNodeWithLit is ReplaceNode generalized to a replacement
// literal rather than a bare variable: every rewired edge's inversion
// bit is composed (XORed) with newLit's own inversion, so old's
// former fanouts end up computing old's original function through
// whatever polarity newLit carries relative to its variable. Splicing
// a synthesized SubAIG in, whose output literal is frequently
// inverted, goes through this entry point. Levels are recomputed
// afterwards, since every rewired fanout may change level.
func (g *Graph) ReplaceNodeWithLit(old Var, newLit Lit) error {
	if err := g.preRemoveCheck(old); err != nil {
		return err
	}
	newVar := newLit.Var()
	if !g.inRange(newVar) || g.IsDead(newVar) {
		return fmt.Errorf("ReplaceNodeWithLit(%d -> %d): %w", old, newLit, ErrBadVar)
	}
	if g.IsDead(old) {
		return nil
	}
	inv := newLit.IsInv()

	fanoutsOfOld := g.Fanouts(old)

	g.muNodes.Lock()
	for _, fo := range fanoutsOfOld {
		if g.nodes[fo].f0.Var() == old {
			g.nodes[fo].f0 = MkLit(newVar, g.nodes[fo].f0.IsInv() != inv)
		}
		if g.nodes[fo].f1.Var() == old {
			g.nodes[fo].f1 = MkLit(newVar, g.nodes[fo].f1.IsInv() != inv)
		}
		g.canonicalizeFanins(fo)
	}
	for i, po := range g.pos {
		if po.Var() == old {
			g.pos[i] = MkLit(newVar, po.IsInv() != inv)
		}
	}
	g.muNodes.Unlock()

	g.muFanout.Lock()
	g.nodes[newVar].fanouts = append(g.nodes[newVar].fanouts, fanoutsOfOld...)
	g.muFanout.Unlock()

	if err := g.RemoveMFFC(old); err != nil {
		return err
	}
	g.ComputeLevels()
	return nil
}

// canonicalizeFanins restores f0 <= f1 on node v after an in-place
// fanin rewrite. Callers must hold muNodes for writing.
func (g *Graph) canonicalizeFanins(v Var) {
	if g.nodes[v].f0 > g.nodes[v].f1 {
		g.nodes[v].f0, g.nodes[v].f1 = g.nodes[v].f1, g.nodes[v].f0
	}
}

// BuildFanouts rebuilds the fanout index from scratch in topological
// order. Useful after bulk loading (e.g. the AIGER reader appends
// nodes directly and calls this once instead of paying per-gate
// fanout-list append overhead during parse).
func (g *Graph) BuildFanouts() {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	g.muFanout.Lock()
	defer g.muFanout.Unlock()

	for i := range g.nodes {
		g.nodes[i].fanouts = g.nodes[i].fanouts[:0]
	}
	for v := g.nPIs + 1; int(v) < len(g.nodes); v++ {
		if g.nodes[v].dead {
			continue
		}
		va, vb := g.nodes[v].f0.Var(), g.nodes[v].f1.Var()
		g.nodes[va].fanouts = append(g.nodes[va].fanouts, v)
		if vb != va {
			g.nodes[vb].fanouts = append(g.nodes[vb].fanouts, v)
		}
	}
}

// ComputeLevels recomputes every node's topological level in
// variable-id order (a valid topological order by construction).
func (g *Graph) ComputeLevels() {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	for v := g.nPIs + 1; int(v) < len(g.nodes); v++ {
		if g.nodes[v].dead {
			continue
		}
		f0, f1 := g.nodes[v].f0, g.nodes[v].f1
		g.nodes[v].level = 1 + max32(g.nodes[f0.Var()].level, g.nodes[f1.Var()].level)
	}
}
