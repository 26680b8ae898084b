package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/search"
	"github.com/google/uuid"
)

// GridEditor exposes the painting operations on a user's workspace grid.
type GridEditor interface {
	// Snapshot returns a copy of the owner's grid, creating the workspace on
	// first use.
	Snapshot(owner uuid.UUID) *grid.Grid
	SetWalls(owner uuid.UUID, cells []grid.Coord, occupied bool) (*grid.Grid, error)
	ToggleWall(owner uuid.UUID, c grid.Coord) (*grid.Grid, error)
	SetStart(owner uuid.UUID, c grid.Coord) (*grid.Grid, error)
	SetEnd(owner uuid.UUID, c grid.Coord) (*grid.Grid, error)
	Reset(owner uuid.UUID) (*grid.Grid, error)
	Carve(owner uuid.UUID, seed int64) (*grid.Grid, error)
}

// SearchRunner starts searches on a workspace and lists past runs.
type SearchRunner interface {
	// RunSearch searches the owner's grid. When paced is true the configured
	// step delays apply; observer may be nil.
	RunSearch(ctx context.Context, owner uuid.UUID, paced bool, observer search.Observer) (*search.Outcome, error)
	History(ctx context.Context, owner uuid.UUID, limit int) ([]*dmn.Run, error)
}
