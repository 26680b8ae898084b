package search

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
)

// ErrMissingEndpoint is returned when a search is requested on a board
// without both a start and an end marker.
var ErrMissingEndpoint = errors.New("search: start and end must both be set")

// directions is the fixed neighbour order: Right, Down, Left, Up.
// It biases discovered routes toward reading order.
var directions = [4]grid.Coord{grid.Right, grid.Down, grid.Left, grid.Up}

// Board is the read-only view of a grid the engine explores.
type Board interface {
	Rows() int
	Cols() int
	InBounds(grid.Coord) bool
	IsWall(grid.Coord) (bool, error)
	Start() (grid.Coord, bool)
	End() (grid.Coord, bool)
}

// Directions returns the neighbour order the search tries from every cell.
func Directions() [4]grid.Coord { return directions }

// Ready returns ErrMissingEndpoint unless b has both markers set.
func Ready(b Board) error {
	_, hasStart := b.Start()
	_, hasEnd := b.End()
	if !hasStart || !hasEnd {
		return ErrMissingEndpoint
	}
	return nil
}

// Tag classifies what the search knows about a cell.
type Tag uint8

const (
	// Unvisited marks a cell the search never reached. Markers stay Unvisited.
	Unvisited Tag = iota
	// Checking marks a cell that is on the current exploration branch.
	Checking
	// Explored marks a cell whose every branch was abandoned.
	Explored
	// OnPath marks a cell on the discovered route.
	OnPath
)

var tagNames = [...]string{"unvisited", "checking", "explored", "on_path"}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return fmt.Sprintf("tag(%d)", uint8(t))
}

// MarshalText encodes the tag by name.
func (t Tag) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// EventKind is the type of a visualization event.
type EventKind uint8

const (
	// EventChecking reports a cell entering exploration.
	EventChecking EventKind = iota + 1
	// EventOnPath reports a cell retagged as part of the route while unwinding.
	EventOnPath
	// EventCompleted is always the last event of a run.
	EventCompleted
)

var eventNames = map[EventKind]string{
	EventChecking:  "checking",
	EventOnPath:    "on_path",
	EventCompleted: "completed",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", uint8(k))
}

// MarshalText encodes the kind by name.
func (k EventKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText decodes a kind written by MarshalText.
func (k *EventKind) UnmarshalText(text []byte) error {
	v, err := parseName(eventNames, text)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Event is one step of the visualization protocol. Coord is set for
// EventChecking and EventOnPath; Found and Status for EventCompleted.
type Event struct {
	Kind   EventKind  `json:"kind"`
	Coord  grid.Coord `json:"coord"`
	Found  bool       `json:"found,omitempty"`
	Status Status     `json:"status,omitempty"`
}

// Status is the terminal state of a run.
type Status uint8

const (
	StatusNotFound Status = iota + 1
	StatusFound
	// StatusCancelled means the run stopped at a suspension point before finishing.
	StatusCancelled
)

var statusNames = map[Status]string{
	StatusNotFound:  "not_found",
	StatusFound:     "found",
	StatusCancelled: "cancelled",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a status written by MarshalText.
func (s *Status) UnmarshalText(text []byte) error {
	v, err := parseName(statusNames, text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func parseName[T comparable](names map[T]string, text []byte) (T, error) {
	for v, name := range names {
		if name == string(text) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("search: unknown name %q", text)
}
