package resub

import "github.com/sirupsen/logrus"

// Options configures a Run. The zero value is not valid; use
// DefaultOptions and override with With* functions.
type Options struct {
	CutSize     int
	MaxGates    int
	Logger      *logrus.Logger
	Parallelism int
}

// Option mutates an Options in place.
type Option func(*Options)

// DefaultOptions returns the package's baseline configuration:
// 4-leaf cuts and up to 4 synthesized gates per candidate.
func DefaultOptions() Options {
	return Options{CutSize: 4, MaxGates: 4}
}

// WithCutSize overrides the cut enumerator's maximum leaf count.
func WithCutSize(k int) Option {
	return func(o *Options) { o.CutSize = k }
}

// WithMaxGates overrides the largest SubAIG exact synthesis is allowed
// to return.
func WithMaxGates(n int) Option {
	return func(o *Options) { o.MaxGates = n }
}

// WithLogger attaches a logrus.Logger that Run reports per-candidate
// tracing to at debug level. A nil logger (the default) disables
// tracing entirely.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithParallelism runs the feasibility+synthesis pass that builds
// candidates from extracted windows across n worker goroutines using
// aig/parallel.Pool. Candidates are still ordered into the heap and
// applied single-threaded once every window has been built, so this
// only affects the (otherwise embarrassingly parallel) per-window
// scoring phase. n<=0 (the default) keeps that phase sequential.
func WithParallelism(n int) Option {
	return func(o *Options) { o.Parallelism = n }
}
