package aig

// GatePair is one AND gate's two fanin literals, expressed in a
// SubAIG's own local variable numbering (0 = constant, 1..NPIs =
// the SubAIG's declared inputs, NPIs+1.. = this SubAIG's own gates),
// never the host graph's variable numbering.
type GatePair struct {
	F0, F1 Lit
}

// SubAIG is a miniature AIG produced by exact synthesis: a declared
// input count, zero or more gates in topological order (gate i's
// variable is NPIs+1+i), and a single output literal PO referencing
// the last gate (or, in the degenerate case that one input already
// equals the target function, an input literal directly; or a
// constant literal when the target is constant and NPIs is 0).
//
// Owned by the window.FeasibleSet that holds it; used once by
// aig/splice to import it into the host graph, then dropped (Go's
// garbage collector reclaims it; there is no explicit Free).
type SubAIG struct {
	NPIs  int
	Gates []GatePair
	PO    Lit
}

// NumGates returns len(s.Gates).
func (s *SubAIG) NumGates() int { return len(s.Gates) }
