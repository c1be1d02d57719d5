package mffc

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/MyskYko/fresub/aig"
)

// TFOWithin returns the transitive fanout of root via a breadth-first
// search over fanouts, restricted to the caller-supplied node set
// (root is always included). nodes is typically a window's internal
// node set; restricting the BFS to it is what makes this usable as a
// per-window query instead of a whole-graph one.
func TFOWithin(g *aig.Graph, root aig.Var, nodes map[aig.Var]bool) *Cone {
	cone := newCone()
	visited := bitset.New(uint(g.NumVars()))

	queue := []aig.Var{root}
	visited.Set(uint(root))
	cone.vars[root] = true

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, fo := range g.Fanouts(v) {
			if !nodes[fo] || visited.Test(uint(fo)) {
				continue
			}
			visited.Set(uint(fo))
			cone.vars[fo] = true
			queue = append(queue, fo)
		}
	}
	return cone
}

// Reaches reports whether target is reachable from root by a
// breadth-first search over fanouts, unrestricted by any node set,
// stopping as soon as target turns up. It answers "does root's
// transitive fanout include target" — true exactly when target is a
// descendant of root (or root itself), so target could no longer
// supply an acyclic fanin to a replacement computed for root.
func Reaches(g *aig.Graph, root, target aig.Var) bool {
	if root == target {
		return true
	}
	visited := bitset.New(uint(g.NumVars()))
	visited.Set(uint(root))
	queue := []aig.Var{root}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, fo := range g.Fanouts(v) {
			if fo == target {
				return true
			}
			if visited.Test(uint(fo)) {
				continue
			}
			visited.Set(uint(fo))
			queue = append(queue, fo)
		}
	}
	return false
}
