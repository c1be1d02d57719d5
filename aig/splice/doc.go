// Package splice imports a synthesized aig.SubAIG into a host
// aig.Graph in place of a resubstitution target: each of the SubAIG's
// own gates becomes a host gate (via aig.Graph.CreateAnd, so
// structural hashing and canonicalization apply exactly as they would
// to any other gate), and the target is finally redirected to the
// SubAIG's output literal via aig.Graph.ReplaceNodeWithLit.
package splice

import "errors"

// ErrInputCount is returned when a SubAIG's declared input count
// does not match the number of host literals supplied to translate it.
var ErrInputCount = errors.New("splice: SubAIG input count does not match supplied divisor literals")
