package search

import (
	"math/rand"
	"time"
)

// ProgressInterval is the default number of options tried between
// progress callback invocations.
const ProgressInterval = 1 << 16

// Option configures an Engine via functional arguments, the same
// Option func(*T) shape used throughout the retrieved pack (bfs.Option,
// builder.BuilderOption) for tunables that don't belong in the
// constructor's required parameters.
type Option func(*options)

type options struct {
	rand             *rand.Rand
	progressFunc     ProgressFunc
	progressInterval int
}

func defaultOptions() options {
	return options{
		rand:             rand.New(rand.NewSource(time.Now().UnixNano())),
		progressInterval: ProgressInterval,
	}
}

// WithRand supplies the random source used to shuffle option order in
// Mode FirstOnly. Without this option, a process-seeded source is used
// (seeded once per Engine from the wall clock), matching lvlath's
// pattern of a sane default that a caller may override for
// reproducibility.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rand = r
		}
	}
}

// WithProgressFunc registers a callback invoked roughly every
// ProgressInterval (or WithProgressInterval) options tried.
func WithProgressFunc(fn ProgressFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.progressFunc = fn
		}
	}
}

// WithProgressInterval overrides how often the progress callback fires,
// measured in options tried. n <= 0 is ignored.
func WithProgressInterval(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.progressInterval = n
		}
	}
}
