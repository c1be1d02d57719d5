// Package mffc computes Maximum Fanout-Free Cones and transitive
// fanout restricted to a node set, over an aig.Graph.
//
// MFFC(root) is the maximal set of nodes that become unreachable from
// the graph's primary outputs if root were deleted — the gate count a
// resubstitution of root can hope to save. It is computed with a
// deref-counter array rather than a mutating reference count, so an
// aborted or speculative MFFC query (as happens constantly during
// window extraction: one Deref array is reused across every window of
// a pass) never needs to roll back graph state.
//
// TFOWithin(root, nodes) is a breadth-first search over fanouts,
// restricted to a caller-supplied node set; it is used to exclude from
// a window's divisor list any signal that is itself downstream of the
// rewrite target, which would otherwise let a synthesized replacement
// depend on its own output (a combinational cycle after splicing).
//
// Reaches(root, target) is the same fanout BFS without the node-set
// restriction, for re-checking after the graph has since mutated
// whether a previously-independent divisor has become a descendant of
// a pending candidate's target.
package mffc

import "errors"

// ErrNotAGate indicates MFFC (or MFFCExcluding) was asked to treat a
// primary input, the constant, or a dead node as a gate root.
var ErrNotAGate = errors.New("mffc: root must be a gate variable")
