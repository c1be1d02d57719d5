package resub

import "github.com/MyskYko/fresub/aig"

// candidate is one scored, not-yet-applied resubstitution: splicing
// sub in place of target is expected to remove mffcSize gates and add
// sub.NumGates(), for a net gain of mffcSize - sub.NumGates().
type candidate struct {
	target   aig.Var
	divisors []aig.Var
	sub      *aig.SubAIG
	mffcSize int
	gain     int
}

// candidatePQ implements heap.Interface over []*candidate, ordered by
// descending gain (a max-heap).
type candidatePQ []*candidate

func (pq candidatePQ) Len() int { return len(pq) }

func (pq candidatePQ) Less(i, j int) bool {
	if pq[i].gain != pq[j].gain {
		return pq[i].gain > pq[j].gain
	}
	return pq[i].target < pq[j].target
}

func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(*candidate)) }

func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]
	return c
}
