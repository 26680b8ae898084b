package search

import "time"

// Observer receives every visualization event in order. Returning an error
// cancels the run at the current suspension point.
type Observer func(Event) error

// Option configures an Engine or a single run.
type Option func(*Options)

// Options holds the pacing and observation settings of a run.
type Options struct {
	// Observer is called at each suspension point that emits an event.
	Observer Observer

	// StepDelay pauses after a cell is marked Checking. Zero means no pause.
	StepDelay time.Duration

	// PathDelay pauses after a cell is retagged OnPath. Zero means no pause.
	PathDelay time.Duration
}

// DefaultOptions returns unpaced options without an observer.
func DefaultOptions() Options {
	return Options{}
}

// WithObserver installs fn as the event observer.
func WithObserver(fn Observer) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}

// WithStepDelay sets the pause taken after every Checking step.
func WithStepDelay(d time.Duration) Option {
	return func(o *Options) {
		if d >= 0 {
			o.StepDelay = d
		}
	}
}

// WithPathDelay sets the pause taken after every OnPath step.
func WithPathDelay(d time.Duration) Option {
	return func(o *Options) {
		if d >= 0 {
			o.PathDelay = d
		}
	}
}
