// Package window extracts rewrite windows from an aig.Graph by
// propagating every enumerated cut's membership simultaneously in one
// topological sweep, instead of walking the graph once per cut.
//
// Each non-trivial cut enumerated by aig/cut becomes a labeled token.
// A gate's token set is the intersection of its two fanins' token
// sets (a gate lies above a cut iff both fanins do), seeded at each
// cut's own leaves. After the sweep, a cut's window is simply every
// variable whose token set contains that cut's id. This turns
// per-window extraction, which is O(cuts x nodes) if done cut-by-cut,
// into one O(total tokens) pass.
package window

import "errors"

// ErrBadTarget indicates a window was requested for a non-gate variable.
var ErrBadTarget = errors.New("window: target must be a gate variable")
