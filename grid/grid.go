/*
Package grid provides the occupancy map the path search runs on.

A Grid is a fixed-size rectangle of cells, each either Open or Wall, with an
optional start marker and an optional end marker. The markers are never placed
on the same cell and the cells they occupy are always Open: painting a wall over
a marker is ignored, and moving a marker onto a wall clears that wall.

Grid is not safe for concurrent use. Callers that share one between goroutines
guard it themselves.
*/
package grid

import (
	"errors"
	"strings"
)

const (
	// DefaultDimension is the width and height used when none is configured.
	DefaultDimension = 20
	// MaxDimension bounds both axes to keep the recursive search shallow.
	MaxDimension = 100
)

var (
	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrInvalidDimensions is returned by New for sizes outside [1, MaxDimension].
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")

	defaultStartCoord = Coord{Row: 0, Col: 0}
)

// Grid is a rows×cols occupancy map with start and end markers.
type Grid struct {
	rows, cols int
	cells      [][]Occupancy

	start    Coord
	hasStart bool
	end      Coord
	hasEnd   bool
}

// New creates a grid of the given dimensions in its reset state: every cell
// Open, start at (0,0) and end at (rows-1, cols-1).
func New(rows, cols int) (*Grid, error) {
	if min(rows, cols) <= 0 || max(rows, cols) > MaxDimension {
		return nil, ErrInvalidDimensions
	}

	cells := make([][]Occupancy, rows)
	for r := range cells {
		cells[r] = make([]Occupancy, cols)
	}

	g := &Grid{rows: rows, cols: cols, cells: cells}
	g.Reset()
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// IsWall reports whether the cell at c is a wall.
func (g *Grid) IsWall(c Coord) (bool, error) {
	if !g.InBounds(c) {
		return false, ErrOutOfBounds
	}
	return g.cells[c.Row][c.Col] == Wall, nil
}

// SetWall sets the occupancy of c. Requests targeting the start or end cell
// are ignored.
func (g *Grid) SetWall(c Coord, occupied bool) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	if g.isMarker(c) {
		return nil
	}

	g.cells[c.Row][c.Col] = Open
	if occupied {
		g.cells[c.Row][c.Col] = Wall
	}
	return nil
}

// ToggleWall flips the occupancy of c, ignoring the start and end cells.
func (g *Grid) ToggleWall(c Coord) error {
	wall, err := g.IsWall(c)
	if err != nil {
		return err
	}
	return g.SetWall(c, !wall)
}

// SetStart moves the start marker to c. The cell is forced Open and, if the
// end marker sits on c, the end marker is unset.
func (g *Grid) SetStart(c Coord) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	if g.hasEnd && g.end == c {
		g.hasEnd = false
	}

	g.cells[c.Row][c.Col] = Open
	g.start, g.hasStart = c, true
	return nil
}

// SetEnd moves the end marker to c. The cell is forced Open and, if the start
// marker sits on c, the start marker is unset.
func (g *Grid) SetEnd(c Coord) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	if g.hasStart && g.start == c {
		g.hasStart = false
	}

	g.cells[c.Row][c.Col] = Open
	g.end, g.hasEnd = c, true
	return nil
}

// Start returns the start marker and whether it is set.
func (g *Grid) Start() (Coord, bool) { return g.start, g.hasStart }

// End returns the end marker and whether it is set.
func (g *Grid) End() (Coord, bool) { return g.end, g.hasEnd }

// Reset clears every wall and restores the default markers.
func (g *Grid) Reset() {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c] = Open
		}
	}

	g.hasStart, g.hasEnd = false, false
	_ = g.SetStart(defaultStartCoord)
	_ = g.SetEnd(Coord{Row: g.rows - 1, Col: g.cols - 1})
}

// Walls lists the wall cells in row-major order.
func (g *Grid) Walls() []Coord {
	var walls []Coord
	for r := range g.cells {
		for c, occ := range g.cells[r] {
			if occ == Wall {
				walls = append(walls, Coord{Row: r, Col: c})
			}
		}
	}
	return walls
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]Occupancy, g.rows)
	for r := range cells {
		cells[r] = make([]Occupancy, g.cols)
		copy(cells[r], g.cells[r])
	}

	clone := *g
	clone.cells = cells
	return &clone
}

// String renders the grid one row per line: S start, E end, # wall, . open.
func (g *Grid) String() string {
	return g.Render(func(Coord) (byte, bool) { return 0, false })
}

// Render draws the grid like String but lets overlay pick the glyph of any
// open, non-marker cell.
func (g *Grid) Render(overlay func(Coord) (byte, bool)) string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			pos := Coord{Row: r, Col: c}
			switch {
			case g.hasStart && pos == g.start:
				sb.WriteByte('S')
			case g.hasEnd && pos == g.end:
				sb.WriteByte('E')
			case g.cells[r][c] == Wall:
				sb.WriteByte('#')
			default:
				if glyph, ok := overlay(pos); ok {
					sb.WriteByte(glyph)
				} else {
					sb.WriteByte('.')
				}
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (g *Grid) isMarker(c Coord) bool {
	return (g.hasStart && g.start == c) || (g.hasEnd && g.end == c)
}
