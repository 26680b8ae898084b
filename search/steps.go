package search

import (
	"context"
	"errors"
	"iter"
)

var errStepsAbandoned = errors.New("search: consumer stopped iterating")

// Steps returns the events of a run over b as a sequence, for driver loops
// that prefer ranging over events to installing an observer. Breaking out of
// the loop cancels the run. The sequence is empty when b lacks an endpoint;
// check Ready first to tell that apart from a run.
func (e *Engine) Steps(ctx context.Context, b Board, opts ...Option) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		stopped := false
		observer := func(ev Event) error {
			if stopped {
				return errStepsAbandoned
			}
			if !yield(ev) {
				stopped = true
				cancel()
				return errStepsAbandoned
			}
			return nil
		}

		_, _ = e.Run(ctx, b, append(opts[:len(opts):len(opts)], WithObserver(observer))...)
	}
}
