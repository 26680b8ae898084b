package grid_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
)

// reachable counts the open cells connected to from, flood-filling orthogonally.
func reachable(g *grid.Grid, from grid.Coord) int {
	seen := map[grid.Coord]bool{from: true}
	queue := []grid.Coord{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range []grid.Coord{grid.Right, grid.Down, grid.Left, grid.Up} {
			next := cur.Add(d)
			if seen[next] || !g.InBounds(next) {
				continue
			}
			if wall, _ := g.IsWall(next); wall {
				continue
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}
	return len(seen)
}

func TestCarve(t *testing.T) {
	dims := [][2]int{{1, 2}, {2, 2}, {5, 5}, {20, 20}, {7, 12}}
	for _, d := range dims {
		g, err := grid.New(d[0], d[1])
		require.NoError(t, err)

		g.Carve(rand.New(rand.NewSource(42)))

		start, ok := g.Start()
		require.True(t, ok)
		end, ok := g.End()
		require.True(t, ok)

		for r := 0; r < g.Rows(); r += 2 {
			for c := 0; c < g.Cols(); c += 2 {
				wall, _ := g.IsWall(grid.Coord{Row: r, Col: c})
				assert.False(t, wall, "room (%d,%d) closed on %v", r, c, d)
			}
		}

		open := g.Rows()*g.Cols() - len(g.Walls())
		assert.Equal(t, open, reachable(g, start), "maze %v not connected", d)
		wall, _ := g.IsWall(end)
		assert.False(t, wall)
	}
}

func TestCarveIsDeterministicPerSeed(t *testing.T) {
	a, err := grid.New(11, 11)
	require.NoError(t, err)
	b := a.Clone()

	a.Carve(rand.New(rand.NewSource(7)))
	b.Carve(rand.New(rand.NewSource(7)))

	assert.Equal(t, a.String(), b.String())
	assert.NotEmpty(t, a.Walls())
}
