package cut

import (
	"math/bits"
	"sort"

	"github.com/MyskYko/fresub/aig"
)

// Cut is a bounded set of leaf variables plus a 64-bit support
// signature (one bit per leaf_id mod 64), used to accelerate the
// subset test that Dominates and the merge-time pruning rely on.
type Cut struct {
	Leaves []aig.Var // sorted ascending, length <= K
	Sig    uint64
}

func sigOf(v aig.Var) uint64 { return uint64(1) << (uint64(v) % 64) }

func trivialCut(v aig.Var) Cut {
	return Cut{Leaves: []aig.Var{v}, Sig: sigOf(v)}
}

// Dominates reports whether leaves(c) is a subset of leaves(other).
// The signature subset test is a necessary (not sufficient) condition
// and gives near-O(1) rejection before the O(|c|+|other|) leaf scan.
func (c Cut) Dominates(other Cut) bool {
	if c.Sig&^other.Sig != 0 {
		return false
	}
	if len(c.Leaves) > len(other.Leaves) {
		return false
	}
	return isSortedSubset(c.Leaves, other.Leaves)
}

// isSortedSubset reports whether every element of a appears in b, both sorted ascending.
func isSortedSubset(a, b []aig.Var) bool {
	i := 0
	for _, x := range a {
		for i < len(b) && b[i] < x {
			i++
		}
		if i >= len(b) || b[i] != x {
			return false
		}
		i++
	}
	return true
}

func mergeLeaves(a, b []aig.Var) []aig.Var {
	out := make([]aig.Var, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// Enumerator computes, per live variable, a bounded set of K-feasible
// cuts in topological (variable-id) order.
type Enumerator struct {
	g    *aig.Graph
	k    int
	cuts []map[uint64]Cut // cuts[v], keyed by a leaf-set fingerprint to dedupe identical merges; never ranged over directly, only read via keys[v]
	keys [][]uint64        // insertion order of cuts[v]'s keys, to keep output deterministic
}

// New constructs an Enumerator for graph g with maximum cut size k.
func New(g *aig.Graph, k int) (*Enumerator, error) {
	if k <= 0 || k > MaxK {
		return nil, ErrBadK
	}
	n := int(g.NumVars())
	return &Enumerator{
		g:    g,
		k:    k,
		cuts: make([]map[uint64]Cut, n),
		keys: make([][]uint64, n),
	}, nil
}

// leafKey returns a stable fingerprint for a sorted leaf slice, used
// to dedupe merges that land on the same leaf set via different fanin
// cut pairs.
func leafKey(leaves []aig.Var) uint64 {
	h := uint64(1469598103934665603) // FNV-1a offset basis
	for _, v := range leaves {
		h ^= uint64(v)
		h *= 1099511628211
	}
	return h
}

// Run computes cuts for every live variable in topological order.
func (e *Enumerator) Run() {
	nPIs := e.g.NPIs()
	n := e.g.NumVars()
	for v := aig.Var(0); v < n; v++ {
		if v != 0 && v > nPIs && !e.g.IsGate(v) {
			continue // dead gate: never produces or needs cuts
		}
		e.initNode(v)
		if v > nPIs {
			e.mergeFanins(v)
		}
		e.insert(v, trivialCut(v))
	}
}

func (e *Enumerator) initNode(v aig.Var) {
	e.cuts[v] = make(map[uint64]Cut)
	e.keys[v] = nil
}

func (e *Enumerator) mergeFanins(v aig.Var) {
	a, b := e.g.Fanin0(v).Var(), e.g.Fanin1(v).Var()
	for _, ca := range e.orderedCuts(a) {
		for _, cb := range e.orderedCuts(b) {
			sig := ca.Sig | cb.Sig
			if bits.OnesCount64(sig) > e.k && len(ca.Leaves)+len(cb.Leaves) > e.k {
				continue // cannot possibly fit even before computing the exact union
			}
			leaves := mergeLeaves(ca.Leaves, cb.Leaves)
			if len(leaves) > e.k {
				continue
			}
			e.insert(v, Cut{Leaves: leaves, Sig: sig})
		}
	}
}

// insert adds c to cuts[v] unless an existing cut dominates it, and
// removes any existing cut that c dominates.
func (e *Enumerator) insert(v aig.Var, c Cut) {
	key := leafKey(c.Leaves)
	if _, exists := e.cuts[v][key]; exists {
		return
	}
	for _, k := range e.keys[v] {
		if e.cuts[v][k].Dominates(c) {
			return
		}
	}
	kept := e.keys[v][:0]
	for _, k := range e.keys[v] {
		if !c.Dominates(e.cuts[v][k]) {
			kept = append(kept, k)
		} else {
			delete(e.cuts[v], k)
		}
	}
	e.keys[v] = append(kept, key)
	e.cuts[v][key] = c
}

// orderedCuts returns v's cuts in stable (insertion) order.
func (e *Enumerator) orderedCuts(v aig.Var) []Cut {
	out := make([]Cut, 0, len(e.keys[v]))
	for _, k := range e.keys[v] {
		out = append(out, e.cuts[v][k])
	}
	return out
}

// Cuts returns the cuts computed for v, in a stable order (sorted by
// leaf count then lexicographically), after Run has completed.
func (e *Enumerator) Cuts(v aig.Var) []Cut {
	out := e.orderedCuts(v)
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Leaves) != len(out[j].Leaves) {
			return len(out[i].Leaves) < len(out[j].Leaves)
		}
		for k := range out[i].Leaves {
			if out[i].Leaves[k] != out[j].Leaves[k] {
				return out[i].Leaves[k] < out[j].Leaves[k]
			}
		}
		return false
	})
	return out
}
