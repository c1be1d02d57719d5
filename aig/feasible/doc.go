// Package feasible implements the 4-resub Q-vector feasibility test:
// deciding whether a target Boolean function can be re-expressed as
// some function of at most four chosen divisor signals, without ever
// constructing that function explicitly.
//
// For a k-tuple of divisor truth tables and a target truth table,
// there are 2^k possible divisor-value assignments; feasibility holds
// iff, for every assignment, the on-set and off-set of the target
// never both occur under that assignment. The test accumulates 2*2^k
// "Q-vectors" — one OR-accumulator per (assignment, on/off) pair — in
// a single word-at-a-time pass, so it never builds the synthesized
// function itself, only tests whether one could exist.
package feasible
