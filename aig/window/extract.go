package window

import (
	"sort"

	"github.com/MyskYko/fresub/aig"
	"github.com/MyskYko/fresub/aig/cut"
	"github.com/MyskYko/fresub/aig/mffc"
)

// cutRecord is one globally-numbered non-trivial cut: the gate it was
// enumerated for (its window's target) and its sorted leaf set.
type cutRecord struct {
	target aig.Var
	leaves []aig.Var
}

// Extractor runs cut enumeration and simultaneous cut-ID propagation
// to produce every candidate Window in one topological sweep.
type Extractor struct {
	g *aig.Graph
	k int
}

// NewExtractor constructs an Extractor for graph g with maximum cut
// size k (forwarded to aig/cut.New).
func NewExtractor(g *aig.Graph, k int) *Extractor {
	return &Extractor{g: g, k: k}
}

// Extract computes every window in the graph. Windows are returned in
// cut-id order (the order their owning cuts were enumerated), so
// multiple windows sharing an internal node set but differing in
// target coexist side by side, per spec.
func (ex *Extractor) Extract() ([]*Window, error) {
	enumer, err := cut.New(ex.g, ex.k)
	if err != nil {
		return nil, err
	}
	enumer.Run()

	recs := ex.collectNonTrivialCuts(enumer)
	tokens := ex.propagateTokens(recs)
	nodeSets := invertTokens(tokens, len(recs))

	deref := mffc.NewDeref(int(ex.g.NumVars()))
	windows := make([]*Window, 0, len(recs))
	for cid, rec := range recs {
		w, err := ex.buildWindow(rec, nodeSets[cid], deref)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, nil
}

func (ex *Extractor) collectNonTrivialCuts(enumer *cut.Enumerator) []cutRecord {
	var recs []cutRecord
	nPIs := ex.g.NPIs()
	n := ex.g.NumVars()
	for v := nPIs + 1; v < n; v++ {
		if !ex.g.IsGate(v) {
			continue
		}
		for _, c := range enumer.Cuts(v) {
			if len(c.Leaves) > 1 {
				recs = append(recs, cutRecord{target: v, leaves: c.Leaves})
			}
		}
	}
	return recs
}

// propagateTokens seeds each cut's id at its leaves, then sweeps
// variables in ascending (topological) order, growing each gate's
// token set to the intersection of its fanins' token sets unioned
// with whatever the gate was itself seeded with.
func (ex *Extractor) propagateTokens(recs []cutRecord) [][]int {
	n := int(ex.g.NumVars())
	tokens := make([][]int, n)

	for cid, rec := range recs {
		for _, leaf := range rec.leaves {
			tokens[leaf] = append(tokens[leaf], cid)
		}
	}
	for v := range tokens {
		sort.Ints(tokens[v])
	}

	nPIs := ex.g.NPIs()
	for v := nPIs + 1; int(v) < n; v++ {
		if !ex.g.IsGate(v) {
			continue
		}
		a, b := ex.g.Fanin0(v).Var(), ex.g.Fanin1(v).Var()
		inter := sortedIntersect(tokens[a], tokens[b])
		tokens[v] = sortedUnion(tokens[v], inter)
	}
	return tokens
}

func invertTokens(tokens [][]int, numCuts int) [][]aig.Var {
	nodeSets := make([][]aig.Var, numCuts)
	for v, ids := range tokens {
		for _, cid := range ids {
			nodeSets[cid] = append(nodeSets[cid], aig.Var(v))
		}
	}
	return nodeSets
}

func (ex *Extractor) buildWindow(rec cutRecord, nodes []aig.Var, deref *mffc.Deref) (*Window, error) {
	if !ex.g.IsGate(rec.target) {
		return nil, ErrBadTarget
	}
	inputs := append([]aig.Var(nil), rec.leaves...)
	sort.Slice(inputs, func(i, j int) bool { return inputs[i] < inputs[j] })

	nodesSorted := append([]aig.Var(nil), nodes...)
	sort.Slice(nodesSorted, func(i, j int) bool { return nodesSorted[i] < nodesSorted[j] })
	nodeSet := make(map[aig.Var]bool, len(nodesSorted))
	for _, v := range nodesSorted {
		nodeSet[v] = true
	}

	mffcCone, err := mffc.MFFC(ex.g, rec.target, deref)
	if err != nil {
		return nil, err
	}
	tfoCone := mffc.TFOWithin(ex.g, rec.target, nodeSet)

	divisors := make([]aig.Var, 0, len(nodesSorted))
	for _, v := range nodesSorted {
		if !mffcCone.Has(v) && !tfoCone.Has(v) {
			divisors = append(divisors, v)
		}
	}

	return &Window{
		Target:   rec.target,
		Inputs:   inputs,
		Nodes:    nodesSorted,
		Divisors: divisors,
		MFFCSize: mffcCone.Len(),
	}, nil
}

func sortedIntersect(a, b []int) []int {
	out := make([]int, 0, minInt(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

func sortedUnion(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
