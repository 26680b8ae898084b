package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/search"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

const (
	defaultSearchTimeout = 2 * time.Minute
	defaultIdleTTL       = time.Hour
	recordTimeout        = 2 * time.Second
)

var (
	ErrConcurrentSearch = errors.New("a search is already running on this grid")
	ErrGridBusy         = errors.New("grid is busy with a running search")
)

// workspace is one user's grid. searching is set for the whole lifetime of a run.
type workspace struct {
	mu        sync.Mutex
	grid      *grid.Grid
	searching bool
	lastUsed  atomic.Int64 // unix nanoseconds
}

// Workspaces keeps a grid per user and runs searches on them.
type Workspaces struct {
	spaces        map[uuid.UUID]*workspace
	rows, cols    int
	engine        *search.Engine
	stepDelay     time.Duration
	pathDelay     time.Duration
	searchTimeout time.Duration
	idleTTL       time.Duration
	now           func() time.Time
	lock          i.SearchLock
	runs          i.RunRepo
	logger        i.Logger
	sync.RWMutex
}

type Config struct {
	Rows, Cols    int
	StepDelay     time.Duration
	PathDelay     time.Duration
	SearchTimeout time.Duration
	IdleTTL       time.Duration // workspaces unused this long are dropped by Sweep
	Lock          i.SearchLock
	Runs          i.RunRepo // optional
	Logger        i.Logger
}

func NewWorkspaces(c *Config) (*Workspaces, error) {
	if c.Lock == nil || c.Logger == nil {
		return nil, errors.New("workspaces: lock and logger are required")
	}
	// Fail early on bad dimensions instead of on the first request.
	if _, err := grid.New(c.Rows, c.Cols); err != nil {
		return nil, err
	}

	timeout := c.SearchTimeout
	if timeout <= 0 {
		timeout = defaultSearchTimeout
	}
	idle := c.IdleTTL
	if idle <= 0 {
		idle = defaultIdleTTL
	}

	return &Workspaces{
		spaces:        make(map[uuid.UUID]*workspace),
		rows:          c.Rows,
		cols:          c.Cols,
		engine:        search.New(),
		stepDelay:     c.StepDelay,
		pathDelay:     c.PathDelay,
		searchTimeout: timeout,
		idleTTL:       idle,
		now:           time.Now,
		lock:          c.Lock,
		runs:          c.Runs,
		logger:        c.Logger,
	}, nil
}

func (w *Workspaces) Snapshot(owner uuid.UUID) *grid.Grid {
	ws := w.space(owner)
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.grid.Clone()
}

// SetWalls paints every cell in cells. Either all cells are painted or, on
// the first out-of-bounds cell, none are.
func (w *Workspaces) SetWalls(owner uuid.UUID, cells []grid.Coord, occupied bool) (*grid.Grid, error) {
	return w.edit(owner, func(g *grid.Grid) error {
		for _, c := range cells {
			if err := g.SetWall(c, occupied); err != nil {
				return fmt.Errorf("%v: %w", c, err)
			}
		}
		return nil
	})
}

func (w *Workspaces) ToggleWall(owner uuid.UUID, c grid.Coord) (*grid.Grid, error) {
	return w.edit(owner, func(g *grid.Grid) error { return g.ToggleWall(c) })
}

func (w *Workspaces) SetStart(owner uuid.UUID, c grid.Coord) (*grid.Grid, error) {
	return w.edit(owner, func(g *grid.Grid) error { return g.SetStart(c) })
}

func (w *Workspaces) SetEnd(owner uuid.UUID, c grid.Coord) (*grid.Grid, error) {
	return w.edit(owner, func(g *grid.Grid) error { return g.SetEnd(c) })
}

func (w *Workspaces) Reset(owner uuid.UUID) (*grid.Grid, error) {
	return w.edit(owner, func(g *grid.Grid) error {
		g.Reset()
		return nil
	})
}

// Carve replaces the owner's walls with a maze generated from seed.
func (w *Workspaces) Carve(owner uuid.UUID, seed int64) (*grid.Grid, error) {
	return w.edit(owner, func(g *grid.Grid) error {
		g.Carve(rand.New(rand.NewSource(seed)))
		return nil
	})
}

// edit applies fn to a copy of the owner's grid and keeps the copy only if
// fn succeeds, so a rejected edit leaves the grid untouched.
func (w *Workspaces) edit(owner uuid.UUID, fn func(*grid.Grid) error) (*grid.Grid, error) {
	ws := w.space(owner)
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.searching {
		return nil, ErrGridBusy
	}

	next := ws.grid.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	ws.grid = next

	return next.Clone(), nil
}

// RunSearch searches the owner's grid from start to end. Only one search per
// workspace may be in flight; others get ErrConcurrentSearch. The grid
// cannot be painted until the run returns.
func (w *Workspaces) RunSearch(ctx context.Context, owner uuid.UUID, paced bool, observer search.Observer) (*search.Outcome, error) {
	ws := w.space(owner)

	ws.mu.Lock()
	if ws.searching {
		ws.mu.Unlock()
		return nil, ErrConcurrentSearch
	}
	board := ws.grid.Clone()
	if err := search.Ready(board); err != nil {
		ws.mu.Unlock()
		return nil, err
	}
	ws.searching = true
	ws.mu.Unlock()

	defer func() {
		ws.mu.Lock()
		ws.searching = false
		ws.mu.Unlock()
	}()

	release, err := w.lock.Acquire(ctx, owner.String())
	if err != nil {
		if errors.Is(err, i.ErrLockHeld) {
			return nil, ErrConcurrentSearch
		}
		return nil, fmt.Errorf("acquiring search lock: %w", err)
	}
	defer release()

	ctx, cancel := context.WithTimeout(ctx, w.searchTimeout)
	defer cancel()

	opts := make([]search.Option, 0, 3)
	if observer != nil {
		opts = append(opts, search.WithObserver(observer))
	}
	if paced {
		opts = append(opts, search.WithStepDelay(w.stepDelay), search.WithPathDelay(w.pathDelay))
	}

	startedAt := time.Now().UTC()
	out, err := w.engine.Run(ctx, board, opts...)
	if err != nil {
		return nil, err
	}

	w.logger.Info(fmt.Sprintf("search for %s on %dx%d grid: %s, visited %d, route %d, took %s",
		owner, board.Rows(), board.Cols(), out.Status, out.Visited, len(out.Route), out.Duration))
	w.record(ctx, owner, board, out, startedAt)

	return out, nil
}

// record stores a summary of the run. Failures are logged, never returned.
func (w *Workspaces) record(ctx context.Context, owner uuid.UUID, board *grid.Grid, out *search.Outcome, startedAt time.Time) {
	if w.runs == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	run := &dmn.Run{
		ID:          uuid.New(),
		Owner:       owner,
		Rows:        board.Rows(),
		Cols:        board.Cols(),
		Walls:       len(board.Walls()),
		Status:      out.Status.String(),
		Found:       out.Found,
		Visited:     out.Visited,
		Steps:       out.Steps,
		RouteLength: len(out.Route),
		DurationMs:  out.Duration.Milliseconds(),
		StartedAt:   startedAt,
	}
	if err := w.runs.Save(ctx, run); err != nil {
		w.logger.Warning(fmt.Sprintf("recording search run for %s: %v", owner, err))
	}
}

// History lists the owner's most recent runs, newest first.
func (w *Workspaces) History(ctx context.Context, owner uuid.UUID, limit int) ([]*dmn.Run, error) {
	if w.runs == nil {
		return []*dmn.Run{}, nil
	}
	return w.runs.ByOwner(ctx, owner, limit)
}

func (w *Workspaces) space(owner uuid.UUID) *workspace {
	w.RLock()
	ws, ok := w.spaces[owner]
	w.RUnlock()
	if ok {
		ws.lastUsed.Store(w.now().UnixNano())
		return ws
	}

	w.Lock()
	defer w.Unlock()
	if ws, ok := w.spaces[owner]; ok {
		ws.lastUsed.Store(w.now().UnixNano())
		return ws
	}

	g, _ := grid.New(w.rows, w.cols) // dimensions validated in NewWorkspaces
	ws = &workspace{grid: g}
	ws.lastUsed.Store(w.now().UnixNano())
	w.spaces[owner] = ws
	w.logger.Info(fmt.Sprintf("created %dx%d workspace for %s", w.rows, w.cols, owner))

	return ws
}

// Sweep drops workspaces idle for longer than the configured TTL and returns
// how many were dropped. A workspace with a search in flight is kept.
func (w *Workspaces) Sweep() int {
	cutoff := w.now().Add(-w.idleTTL).UnixNano()

	w.Lock()
	defer w.Unlock()

	dropped := 0
	for owner, ws := range w.spaces {
		ws.mu.Lock()
		idle := !ws.searching && ws.lastUsed.Load() < cutoff
		ws.mu.Unlock()
		if idle {
			delete(w.spaces, owner)
			dropped++
		}
	}
	return dropped
}

// Janitor calls Sweep every interval until ctx is done.
func (w *Workspaces) Janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := w.Sweep(); n > 0 {
				w.logger.Info(fmt.Sprintf("dropped %d idle workspaces", n))
			}
		}
	}
}
