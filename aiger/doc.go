// Package aiger reads and writes the AIGER format: ASCII (`aag`) and
// binary (`aig`) headers, PO literals, and AND-gate bodies, either as
// three plain literals per line (ASCII) or as pairs of base-128
// delta-encoded unsigned integers (binary).
//
// The graph core never imports this package; gates are appended in
// bulk via aig's own loader.go ahead of a single
// BuildFanouts/ComputeLevels pass, and round-tripping a file
// byte-for-byte (reading, writing, re-reading to the same literals)
// is one of the package's own tested properties.
package aiger

import "errors"

// ErrBadHeader is returned when a file's header line doesn't parse as
// `aag M I L O A` or `aig M I L O A`.
var ErrBadHeader = errors.New("aiger: malformed header")

// ErrLatchesUnsupported is returned when a header declares L > 0:
// sequential circuits are out of scope.
var ErrLatchesUnsupported = errors.New("aiger: latches (L > 0) are not supported")

// ErrTruncated is returned when the file ends before its header's
// declared counts are satisfied.
var ErrTruncated = errors.New("aiger: truncated file")
