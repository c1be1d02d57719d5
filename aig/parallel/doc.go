// Package parallel provides a small, fixed-size worker pool used to
// fan out per-window feasibility and synthesis work ahead of the
// (always single-threaded) gain-ordered heap phase in aig/resub. It
// deliberately has no dynamic scale-up/down: a resubstitution pass
// fans out a known, bounded batch of windows per sweep and has no
// long-lived queue whose depth would justify runtime scaling.
package parallel
