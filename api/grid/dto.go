// Package gridapi exposes the painting operations on a user's workspace grid.
package gridapi

import (
	"github.com/beka-birhanu/vinom-pathfinder/grid"
)

// PaintRequest sets or clears walls on a batch of cells.
type PaintRequest struct {
	Cells    []grid.Coord `json:"cells" binding:"required,min=1"`
	Occupied bool         `json:"occupied"`
}

// MazeRequest carves a maze. A missing seed picks one from the clock.
type MazeRequest struct {
	Seed *int64 `json:"seed"`
}

// GridResponse is the full state of a workspace grid.
type GridResponse struct {
	Rows   int          `json:"rows"`
	Cols   int          `json:"cols"`
	Walls  []grid.Coord `json:"walls"`
	Start  *grid.Coord  `json:"start"`
	End    *grid.Coord  `json:"end"`
	Render string       `json:"render"`
	Seed   *int64       `json:"seed,omitempty"`
}

func newGridResponse(g *grid.Grid) *GridResponse {
	resp := &GridResponse{
		Rows:   g.Rows(),
		Cols:   g.Cols(),
		Walls:  g.Walls(),
		Render: g.String(),
	}
	if start, ok := g.Start(); ok {
		resp.Start = &start
	}
	if end, ok := g.End(); ok {
		resp.End = &end
	}
	return resp
}
