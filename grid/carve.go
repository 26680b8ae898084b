package grid

import "math/rand"

var roomSteps = []Coord{Right, Down, Left, Up}

// Carve replaces the current layout with a perfect maze generated by Wilson's
// algorithm. Cells with even row and column are rooms; the odd cells between
// two rooms are walls unless the maze connects them. The start and end
// markers are kept and joined to the nearest room.
func (g *Grid) Carve(rng *rand.Rand) {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c] = Wall
		}
	}

	rooms := g.rooms()
	visited := make(map[Coord]struct{}, len(rooms))
	first := rooms[rng.Intn(len(rooms))]
	visited[first] = struct{}{}
	g.open(first)

	for len(visited) < len(rooms) {
		start := randomUnvisitedRoom(rng, rooms, visited)
		exits := g.randomWalk(rng, start, visited)

		// Follow the last exit taken from each room; this erases the loops of the walk.
		for cell := start; ; {
			if _, done := visited[cell]; done {
				break
			}
			visited[cell] = struct{}{}
			g.open(cell)

			step := exits[cell]
			g.open(cell.Add(step))
			cell = cell.Add(step).Add(step)
		}
	}

	g.attachMarkers()
}

// rooms lists every cell with an even row and column.
func (g *Grid) rooms() []Coord {
	rooms := make([]Coord, 0, ((g.rows+1)/2)*((g.cols+1)/2))
	for r := 0; r < g.rows; r += 2 {
		for c := 0; c < g.cols; c += 2 {
			rooms = append(rooms, Coord{Row: r, Col: c})
		}
	}
	return rooms
}

// roomMoves returns the steps leading from room to an adjacent room.
func (g *Grid) roomMoves(room Coord) []Coord {
	moves := make([]Coord, 0, len(roomSteps))
	for _, step := range roomSteps {
		if g.InBounds(room.Add(step).Add(step)) {
			moves = append(moves, step)
		}
	}
	return moves
}

// randomWalk wanders from start until it reaches a visited room, recording
// the latest step taken out of every room it passes.
func (g *Grid) randomWalk(rng *rand.Rand, start Coord, visited map[Coord]struct{}) map[Coord]Coord {
	exits := make(map[Coord]Coord)
	for cell := start; ; {
		moves := g.roomMoves(cell)
		step := moves[rng.Intn(len(moves))]
		exits[cell] = step

		cell = cell.Add(step).Add(step)
		if _, included := visited[cell]; included {
			return exits
		}
	}
}

// attachMarkers opens the marker cells and a corridor from each to a room.
func (g *Grid) attachMarkers() {
	markers := []struct {
		pos Coord
		set bool
	}{{g.start, g.hasStart}, {g.end, g.hasEnd}}

	for _, m := range markers {
		if !m.set {
			continue
		}

		cell := m.pos
		g.open(cell)
		for cell.Row%2 != 0 {
			cell = cell.Add(Up)
			g.open(cell)
		}
		for cell.Col%2 != 0 {
			cell = cell.Add(Left)
			g.open(cell)
		}
	}
}

func (g *Grid) open(c Coord) {
	g.cells[c.Row][c.Col] = Open
}

func randomUnvisitedRoom(rng *rand.Rand, rooms []Coord, visited map[Coord]struct{}) Coord {
	for {
		room := rooms[rng.Intn(len(rooms))]
		if _, included := visited[room]; !included {
			return room
		}
	}
}
