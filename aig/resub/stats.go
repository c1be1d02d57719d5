package resub

// Stats summarizes one Run: how many windows were explored, how many
// produced a feasible gain-positive candidate, how many of those were
// actually spliced in (the rest failing revalidation because an
// earlier splice changed or removed something they depended on), and
// the total gate count removed.
type Stats struct {
	WindowsExplored   int
	CandidatesFound   int
	CandidatesStale   int
	CandidatesApplied int
	GatesRemoved      int
}
