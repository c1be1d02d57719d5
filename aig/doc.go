// Package aig defines the central Graph and Node types for an
// And-Inverter Graph, and provides thread-safe primitives for
// building, mutating, and querying it.
//
// A Graph is a DAG of two-input AND gates with edge inversions.
// Signals are literals: Lit encodes a Var plus an inversion bit.
// Variable 0 is the constant; variables 1..NPIs() are primary inputs;
// every other live variable is an AND gate whose two fanin literals
// reference strictly lower-numbered variables, which makes the graph
// acyclic by construction and keeps variable order a valid topological
// order across every mutation (new gates always receive a fresh,
// greater id; removal only marks a node dead, it never reuses an id).
//
// muNodes guards the node table (content and growth); muFanout guards
// the derived fanout index. Splitting the locks keeps read-only
// callers (simulation, cut enumeration) safe to run concurrently with
// each other between host mutations, even though aig/resub itself
// drives graph mutation from a single goroutine.
//
// This file declares the package's sentinel errors; Var and Lit live
// in literal.go, and node, Graph, GraphOption and NewGraph in types.go.
package aig

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrBadVar indicates a variable id is out of range or refers to a dead node.
	ErrBadVar = errors.New("aig: variable out of range or dead")

	// ErrNotAGate indicates an operation required a gate variable but got a PI or the constant.
	ErrNotAGate = errors.New("aig: variable is not a gate")

	// ErrSelfFanin indicates a gate fanin references a variable that is not strictly below the gate's own id (AppendGate returns it).
	ErrSelfFanin = errors.New("aig: gate fanins violate topological order")

	// ErrTooManyPIs indicates a PI count that would overflow the Var encoding alongside any gates.
	ErrTooManyPIs = errors.New("aig: too many primary inputs requested")
)
