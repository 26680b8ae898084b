/*
Package search implements the depth-first backtracking path search.

The engine walks a Board from its start marker, trying neighbours in the fixed
order Right, Down, Left, Up, and stops at the first branch that reaches the end
marker. It finds a route, not necessarily the shortest one.

Every cell entering exploration is tagged Checking and reported to the observer;
the engine then pauses (a suspension point) so a renderer can draw the step.
While unwinding a successful branch each cell is retagged OnPath, reported, and
paused on again. Cells whose branches all fail end up Explored. The start and
end cells are processed like any other cell but never tagged or reported.

Cancellation is checked at every suspension point: a done context or an
observer error ends the run with StatusCancelled.
*/
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
)

// Engine runs backtracking searches. The zero value is not usable; create
// engines with New. An Engine holds no per-run state and may be shared, but a
// single board must not be searched by two runs at once.
type Engine struct {
	opts Options
}

// New creates an engine whose runs default to opts.
func New(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Engine{opts: o}
}

// walker encapsulates the state of a single run.
type walker struct {
	ctx   context.Context
	board Board
	opts  Options

	start, end grid.Coord
	visited    mapset.Set[grid.Coord]
	tags       map[grid.Coord]Tag
	route      []grid.Coord // end first, filled while unwinding
	steps      int

	stopped        error // cancellation cause
	observerFailed bool
	fault          error
}

// Run searches b from its start marker to its end marker. Options given here
// override the engine defaults for this run only.
//
// Run fails with ErrMissingEndpoint before exploring anything if either marker
// is unset. A cancelled run is not an error: it returns an Outcome with
// StatusCancelled and the cause in Outcome.Cause.
func (e *Engine) Run(ctx context.Context, b Board, opts ...Option) (*Outcome, error) {
	if err := Ready(b); err != nil {
		return nil, err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	o := e.opts
	for _, fn := range opts {
		fn(&o)
	}

	start, _ := b.Start()
	end, _ := b.End()
	w := &walker{
		ctx:     ctx,
		board:   b,
		opts:    o,
		start:   start,
		end:     end,
		visited: mapset.New[grid.Coord](),
		tags:    make(map[grid.Coord]Tag),
	}

	began := time.Now()
	found := w.search(start)
	if w.fault != nil {
		return nil, w.fault
	}

	out := w.outcome(found, time.Since(began))
	if o.Observer != nil && !w.observerFailed {
		_ = o.Observer(Event{Kind: EventCompleted, Found: out.Found, Status: out.Status})
	}
	return out, nil
}

// search reports whether the end marker is reachable from c through open,
// unvisited cells.
func (w *walker) search(c grid.Coord) bool {
	if w.halted() || !w.board.InBounds(c) {
		return false
	}
	wall, err := w.board.IsWall(c)
	if err != nil {
		w.fault = fmt.Errorf("search: checking %v: %w", c, err)
		return false
	}
	if wall || w.visited.Has(c) {
		return false
	}

	marker := c == w.start || c == w.end
	w.steps++
	if !marker {
		w.tags[c] = Checking
	}
	if !w.suspend(marker, EventChecking, c, w.opts.StepDelay) {
		return false
	}

	if c == w.end {
		w.route = append(w.route, c)
		return true
	}

	w.visited.Put(c)
	for _, d := range directions {
		if !w.search(c.Add(d)) {
			if w.halted() {
				return false
			}
			continue
		}

		// A cancelled unwind leaves ancestors Checking.
		if w.halted() {
			return false
		}
		w.route = append(w.route, c)
		if !marker {
			w.tags[c] = OnPath
			if !w.suspend(false, EventOnPath, c, w.opts.PathDelay) {
				return false
			}
		}
		return true
	}

	if !marker {
		w.tags[c] = Explored
	}
	return false
}

// suspend emits the event unless silent, then pauses for delay. It returns
// false once the run has been cancelled.
func (w *walker) suspend(silent bool, kind EventKind, c grid.Coord, delay time.Duration) bool {
	if w.halted() {
		return false
	}
	if !silent && w.opts.Observer != nil {
		if err := w.opts.Observer(Event{Kind: kind, Coord: c}); err != nil {
			w.observerFailed = true
			w.stopped = fmt.Errorf("search: observer: %w", err)
			return false
		}
	}

	if delay > 0 {
		timer := time.NewTimer(delay)
		select {
		case <-w.ctx.Done():
			timer.Stop()
		case <-timer.C:
		}
	}

	if err := w.ctx.Err(); err != nil {
		w.stopped = err
		return false
	}
	return true
}

func (w *walker) halted() bool {
	return w.stopped != nil || w.fault != nil
}
