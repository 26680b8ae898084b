package search

import (
	"cmp"
	"slices"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
)

// Outcome is the final state of a run.
type Outcome struct {
	Status Status `json:"status"`
	Found  bool   `json:"found"`

	// Route lists the discovered route from start to end, both included.
	// It is empty unless Found.
	Route []grid.Coord `json:"route"`
	// Path lists the cells tagged OnPath in row-major order.
	Path []grid.Coord `json:"path"`
	// Explored lists the cells explored but not on the route, in row-major order.
	Explored []grid.Coord `json:"explored"`

	// Visited is the size of the visited set when the run ended.
	Visited int `json:"visited"`
	// Steps counts the cells that reached the Checking suspension point.
	Steps    int           `json:"steps"`
	Duration time.Duration `json:"duration"`

	// Cause holds the cancellation cause of a StatusCancelled run.
	Cause error `json:"-"`

	tags map[grid.Coord]Tag
}

func (w *walker) outcome(found bool, took time.Duration) *Outcome {
	out := &Outcome{
		Status:   StatusNotFound,
		Path:     []grid.Coord{},
		Explored: []grid.Coord{},
		Route:    []grid.Coord{},
		Visited:  w.visited.Size(),
		Steps:    w.steps,
		Duration: took,
		tags:     w.tags,
	}

	switch {
	case w.stopped != nil:
		out.Status = StatusCancelled
		out.Cause = w.stopped
	case found:
		out.Status = StatusFound
		out.Found = true
		out.Route = slices.Clone(w.route)
		slices.Reverse(out.Route)
	}

	for c, tag := range w.tags {
		if tag == OnPath {
			out.Path = append(out.Path, c)
		} else {
			// Cells still Checking only remain after cancellation.
			out.Explored = append(out.Explored, c)
		}
	}
	slices.SortFunc(out.Path, rowMajor)
	slices.SortFunc(out.Explored, rowMajor)

	return out
}

// Tag returns the final tag of c. Markers and unreached cells are Unvisited.
func (o *Outcome) Tag(c grid.Coord) Tag {
	return o.tags[c]
}

// Message is the status line shown to a user once the run ends.
func (o *Outcome) Message() string {
	switch o.Status {
	case StatusFound:
		return "Exit found, follow the marked route."
	case StatusCancelled:
		return "Search cancelled before completion."
	default:
		return "No route to the exit exists."
	}
}

// Render draws g with the outcome's tags: * on path, + explored.
func (o *Outcome) Render(g *grid.Grid) string {
	return g.Render(func(c grid.Coord) (byte, bool) {
		switch o.tags[c] {
		case OnPath:
			return '*', true
		case Explored, Checking:
			return '+', true
		}
		return 0, false
	})
}

func rowMajor(a, b grid.Coord) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Col, b.Col)
}
