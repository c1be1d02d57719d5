// Package cut enumerates bounded-size cuts over an aig.Graph.
//
// For each live variable v, Cuts(v) is a bounded set of cuts of at
// most K leaves: the trivial cut {v}, plus every cut formed by merging
// a fanin-0 cut with a fanin-1 cut whose combined leaf count (or
// merged-signature popcount) does not exceed K. A cut a dominates a
// cut b when leaves(a) is a subset of leaves(b); the enumerator keeps
// only non-dominated cuts for each node, which is what bounds
// |Cuts(v)| to a small empirical constant per node.
package cut

import "errors"

// ErrBadK indicates an enumerator was constructed with K <= 0 or K > MaxK.
var ErrBadK = errors.New("cut: K out of range (want 1..64)")

// MaxK is the largest cut size the 64-bit signature scheme supports,
// imposed by one signature bit per leaf-id-mod-64 slot; callers needing
// cut sizes for exact synthesis stay well under this, typically <= 20.
const MaxK = 64
