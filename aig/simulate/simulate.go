package simulate

import (
	"github.com/MyskYko/fresub/aig"
)

// TT is a bit-parallel truth table: one bit per input assignment,
// packed into 64-bit words.
type TT []uint64

// basePatterns are the canonical broadcast patterns for the first six inputs.
var basePatterns = [6]uint64{
	0xAAAAAAAAAAAAAAAA,
	0xCCCCCCCCCCCCCCCC,
	0xF0F0F0F0F0F0F0F0,
	0xFF00FF00FF00FF00,
	0xFFFF0000FFFF0000,
	0xFFFFFFFF00000000,
}

// NumWords returns ceil(2^n / 64) for n inputs.
func NumWords(n int) int {
	total := uint64(1) << uint(n)
	return int((total + 63) / 64)
}

// InputTT returns the truth table for input position i (0-based) of an
// n-input window.
func InputTT(i, n int) TT {
	words := NumWords(n)
	tt := make(TT, words)
	if i < 6 {
		pat := basePatterns[i]
		for j := range tt {
			tt[j] = pat
		}
		return tt
	}
	shift := uint(i - 6)
	for j := range tt {
		if (j>>shift)&1 != 0 {
			tt[j] = ^uint64(0)
		}
	}
	return tt
}

// MaskFinal clears the don't-care high bits of the last word when n < 6
// (2^n < 64); intermediate AND operations may leave them set, which is
// harmless since they are consistently don't-care across every TT, but
// final comparisons must mask them off.
func MaskFinal(tt TT, n int) {
	if n >= 6 {
		return
	}
	bits := uint64(1) << uint(n)
	tt[0] &= bits - 1
}

func maybeNot(tt TT, inv bool, out TT) {
	if inv {
		for j := range tt {
			out[j] = ^tt[j]
		}
		return
	}
	copy(out, tt)
}

func and(dst, a, b TT) {
	for j := range dst {
		dst[j] = a[j] & b[j]
	}
}

// Simulator computes and caches truth tables for window nodes over a
// fixed, ordered input set.
type Simulator struct {
	g      *aig.Graph
	inputs []aig.Var
	n      int
	words  int
	tt     map[aig.Var]TT
}

// New constructs a Simulator whose n window inputs are inputs, in
// the given order (order matters: InputTT(i, n) is assigned to
// inputs[i]).
func New(g *aig.Graph, inputs []aig.Var) (*Simulator, error) {
	n := len(inputs)
	if n > MaxInputs {
		return nil, ErrTooManyInputs
	}
	s := &Simulator{g: g, inputs: inputs, n: n, words: NumWords(n), tt: make(map[aig.Var]TT, n)}
	for i, v := range inputs {
		s.tt[v] = InputTT(i, n)
	}
	return s, nil
}

// N returns the window's input count.
func (s *Simulator) N() int { return s.n }

// Words returns ceil(2^n / 64).
func (s *Simulator) Words() int { return s.words }

// Simulate computes truth tables for every node in nodes (topological
// order assumed; inputs are pre-seeded and skipped).
func (s *Simulator) Simulate(nodes []aig.Var) {
	a := make(TT, s.words)
	b := make(TT, s.words)
	for _, v := range nodes {
		if _, ok := s.tt[v]; ok {
			continue // already an input
		}
		f0, f1 := s.g.Fanin0(v), s.g.Fanin1(v)
		maybeNot(s.tt[f0.Var()], f0.IsInv(), a)
		maybeNot(s.tt[f1.Var()], f1.IsInv(), b)
		out := make(TT, s.words)
		and(out, a, b)
		s.tt[v] = out
	}
}

// TT returns the computed truth table for v (an input or a simulated node).
func (s *Simulator) TT(v aig.Var) TT { return s.tt[v] }
