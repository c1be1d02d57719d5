// Package simulate computes bit-parallel truth tables for every node
// in a window, over that window's inputs.
//
// A truth table is a []uint64 of ceil(2^n/64) words, n being the
// window's input count. The first six inputs get the six canonical
// broadcast patterns (0xAA.., 0xCC.., 0xF0.., 0xFF00.., 0xFFFF0000..,
// 0xFFFFFFFF00000000); input i >= 6 is all-ones in word j iff bit
// (i-6) of j is set. Every other node's truth table is the word-wise
// AND (with per-operand inversion) of its two fanins' truth tables,
// computed once per node in topological order.
package simulate

import "errors"

// MaxInputs bounds n: beyond 20 inputs a single truth table would need
// 2^20/64 = 16384 words per node, already large for a per-window scratch
// structure, so this package enforces 20 as a hard cap.
const MaxInputs = 20

// ErrTooManyInputs indicates a window requested more than MaxInputs inputs.
var ErrTooManyInputs = errors.New("simulate: window has more than MaxInputs inputs")
