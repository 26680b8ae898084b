package grid

import "fmt"

// Occupancy is the state of a single grid cell.
type Occupancy uint8

const (
	// Open cells can be walked through.
	Open Occupancy = iota
	// Wall cells block movement.
	Wall
)

// String returns the lowercase name of the occupancy state.
func (o Occupancy) String() string {
	switch o {
	case Open:
		return "open"
	case Wall:
		return "wall"
	}
	return fmt.Sprintf("occupancy(%d)", uint8(o))
}

// Coord identifies a cell by its row and column.
type Coord struct {
	Row int `json:"row" bson:"row"`
	Col int `json:"col" bson:"col"`
}

// Add returns c shifted by the row and column deltas of d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Orthogonal unit steps. Diagonal movement is not supported.
var (
	Right = Coord{Row: 0, Col: 1}
	Down  = Coord{Row: 1, Col: 0}
	Left  = Coord{Row: 0, Col: -1}
	Up    = Coord{Row: -1, Col: 0}
)
