package aiger

import (
	"bufio"
	"fmt"
	"io"

	"github.com/MyskYko/fresub/aig"
)

// gateView is the minimal read surface Write needs per live gate, in
// topological order; it matches aig.Graph's own accessors so Write
// never needs to reach into the graph's internals.
type gateView struct {
	v      aig.Var
	f0, f1 aig.Lit
}

func collectGates(g *aig.Graph) []gateView {
	var gates []gateView
	for v := g.NPIs() + 1; v < g.NumVars(); v++ {
		if g.IsDead(v) {
			continue
		}
		gates = append(gates, gateView{v: v, f0: g.Fanin0(v), f1: g.Fanin1(v)})
	}
	return gates
}

// Write emits g in binary AIGER format: header, PO literals (one per
// line), then each live gate's two fanins as base-128 delta-encoded
// varints. Dead gates are skipped and the surviving gates renumbered
// densely starting at nPIs+1, since AIGER has no notion of a dead
// variable.
func Write(w io.Writer, g *aig.Graph) error {
	return write(w, g, true)
}

// WriteASCII is Write's ASCII-format counterpart (`aag` header, three
// decimal literals per gate line), used by tests and by cmd/fresub's
// --ascii flag when asked for a human-readable file.
func WriteASCII(w io.Writer, g *aig.Graph) error {
	return write(w, g, false)
}

func write(w io.Writer, g *aig.Graph, binary bool) error {
	bw := bufio.NewWriter(w)
	gates := collectGates(g)
	renumber := make(map[aig.Var]aig.Var, len(gates))
	for i, gt := range gates {
		renumber[gt.v] = g.NPIs() + 1 + aig.Var(i)
	}
	translate := func(l aig.Lit) aig.Lit {
		v := l.Var()
		if nv, ok := renumber[v]; ok {
			return aig.MkLit(nv, l.IsInv())
		}
		return l
	}

	kw := "aig"
	if !binary {
		kw = "aag"
	}
	m := int(g.NPIs()) + len(gates)
	pos := g.POs()
	if _, err := fmt.Fprintf(bw, "%s %d %d 0 %d %d\n", kw, m, g.NPIs(), len(pos), len(gates)); err != nil {
		return err
	}
	for _, po := range pos {
		if _, err := fmt.Fprintf(bw, "%d\n", uint32(translate(po))); err != nil {
			return err
		}
	}

	for i, gt := range gates {
		v := g.NPIs() + 1 + aig.Var(i)
		f0, f1 := translate(gt.f0), translate(gt.f1)
		if f0 < f1 {
			f0, f1 = f1, f0
		}
		if binary {
			lhs := 2 * uint32(v)
			if err := writeDelta(bw, lhs-uint32(f0)); err != nil {
				return err
			}
			if err := writeDelta(bw, uint32(f0)-uint32(f1)); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", 2*v, uint32(f0), uint32(f1)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func writeDelta(bw *bufio.Writer, x uint32) error {
	for {
		b := byte(x & 0x7f)
		x >>= 7
		if x != 0 {
			b |= 0x80
		}
		if err := bw.WriteByte(b); err != nil {
			return err
		}
		if x == 0 {
			return nil
		}
	}
}
