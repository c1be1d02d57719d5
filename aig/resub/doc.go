// Package resub drives the whole resubstitution pass: it extracts
// every window, simulates each one's divisors and target, runs the
// feasibility ladder and exact synthesis to turn feasible windows into
// gain-scored candidates, and applies them to the host graph in
// descending gain order, revalidating each candidate immediately
// before it is spliced in since an earlier splice may have changed or
// removed the nodes it depends on.
//
// The candidate queue is a container/heap max-heap over a numeric
// gain field (Len/Less/Swap/Push/Pop over a slice), negated relative
// to container/heap's natural min-heap.
package resub
