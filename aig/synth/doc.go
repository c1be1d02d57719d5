// Package synth performs SAT-based exact synthesis: given a small set
// of divisor truth tables (the "sim" vectors) and a target truth
// table (the "br" vector) that feasible.Feasible has already accepted
// as expressible over those divisors, it searches for the minimum-gate
// AIG that reproduces the target exactly, returning it as an
// aig.SubAIG ready for splicing.
//
// The search tries gate counts 0, 1, 2, ... up to a caller-supplied
// bound. For each count it builds a circuit, in github.com/go-air/gini's
// logic.C, in which every gate's two fanins are chosen among the
// divisors and earlier gates by one-hot selector variables shared
// across every row of the target's truth table; the row values
// themselves are baked in as constants. A satisfying assignment picks
// out one concrete wiring; unsatisfiability rules the gate count out
// and the search advances to the next one. The one-hot multiplexer
// construction is the standard way to phrase "pick one of several
// wires" as a Boolean circuit.
package synth

import "errors"

// ErrTooManyInputs is returned when the caller offers more divisors
// than exact synthesis is built to handle.
var ErrTooManyInputs = errors.New("synth: at most 4 divisor inputs supported")
