// Package searchapi runs path searches over HTTP and streams their progress
// over a WebSocket.
package searchapi

import (
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/search"
)

// OutcomeResponse is the result of a finished run.
type OutcomeResponse struct {
	Found      bool          `json:"found"`
	Status     search.Status `json:"status"`
	Message    string        `json:"message"`
	Route      []grid.Coord  `json:"route"`
	Path       []grid.Coord  `json:"path"`
	Explored   []grid.Coord  `json:"explored"`
	Visited    int           `json:"visited"`
	Steps      int           `json:"steps"`
	DurationMs int64         `json:"duration_ms"`
}

func newOutcomeResponse(out *search.Outcome) *OutcomeResponse {
	return &OutcomeResponse{
		Found:      out.Found,
		Status:     out.Status,
		Message:    out.Message(),
		Route:      out.Route,
		Path:       out.Path,
		Explored:   out.Explored,
		Visited:    out.Visited,
		Steps:      out.Steps,
		DurationMs: out.Duration.Milliseconds(),
	}
}

// Stream frame types.
const (
	FrameEvent   = "event"
	FrameOutcome = "outcome"
	FrameError   = "error"
)

// StreamFrame is one JSON message on the search stream. Exactly one of
// Event, Outcome and Error is set, matching Type.
type StreamFrame struct {
	Type    string           `json:"type"`
	Event   *search.Event    `json:"event,omitempty"`
	Outcome *OutcomeResponse `json:"outcome,omitempty"`
	Error   string           `json:"error,omitempty"`
}
