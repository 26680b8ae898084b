package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
)

func TestNew(t *testing.T) {
	t.Run("Rejects invalid dimensions", func(t *testing.T) {
		cases := [][2]int{{0, 5}, {5, 0}, {-1, 3}, {grid.MaxDimension + 1, 2}}
		for _, dims := range cases {
			_, err := grid.New(dims[0], dims[1])
			assert.ErrorIs(t, err, grid.ErrInvalidDimensions, "dims %v", dims)
		}
	})

	t.Run("Starts in reset state", func(t *testing.T) {
		g, err := grid.New(4, 6)
		require.NoError(t, err)

		assert.Equal(t, 4, g.Rows())
		assert.Equal(t, 6, g.Cols())
		assert.Empty(t, g.Walls())

		start, ok := g.Start()
		assert.True(t, ok)
		assert.Equal(t, grid.Coord{Row: 0, Col: 0}, start)

		end, ok := g.End()
		assert.True(t, ok)
		assert.Equal(t, grid.Coord{Row: 3, Col: 5}, end)
	})
}

func TestInBoundsAndIsWall(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)

	for _, c := range []grid.Coord{{Row: 0, Col: 0}, {Row: 2, Col: 1}, {Row: 1, Col: 0}} {
		assert.True(t, g.InBounds(c), "%v", c)
		wall, err := g.IsWall(c)
		assert.NoError(t, err)
		assert.False(t, wall)
	}

	for _, c := range []grid.Coord{{Row: -1, Col: 0}, {Row: 3, Col: 0}, {Row: 0, Col: 2}, {Row: 0, Col: -1}} {
		assert.False(t, g.InBounds(c), "%v", c)
		_, err := g.IsWall(c)
		assert.ErrorIs(t, err, grid.ErrOutOfBounds, "%v", c)
	}
}

func TestSetWall(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	t.Run("Paints and clears", func(t *testing.T) {
		c := grid.Coord{Row: 1, Col: 1}
		require.NoError(t, g.SetWall(c, true))
		wall, _ := g.IsWall(c)
		assert.True(t, wall)

		require.NoError(t, g.SetWall(c, false))
		wall, _ = g.IsWall(c)
		assert.False(t, wall)
	})

	t.Run("Ignores markers", func(t *testing.T) {
		start, _ := g.Start()
		end, _ := g.End()

		assert.NoError(t, g.SetWall(start, true))
		assert.NoError(t, g.ToggleWall(end))

		wall, _ := g.IsWall(start)
		assert.False(t, wall)
		wall, _ = g.IsWall(end)
		assert.False(t, wall)
	})

	t.Run("Rejects out of bounds", func(t *testing.T) {
		assert.ErrorIs(t, g.SetWall(grid.Coord{Row: 3, Col: 0}, true), grid.ErrOutOfBounds)
		assert.ErrorIs(t, g.ToggleWall(grid.Coord{Row: 0, Col: 9}), grid.ErrOutOfBounds)
	})

	t.Run("Toggle flips occupancy", func(t *testing.T) {
		c := grid.Coord{Row: 0, Col: 2}
		require.NoError(t, g.ToggleWall(c))
		wall, _ := g.IsWall(c)
		assert.True(t, wall)

		require.NoError(t, g.ToggleWall(c))
		wall, _ = g.IsWall(c)
		assert.False(t, wall)
	})
}

func TestMarkers(t *testing.T) {
	t.Run("Marker clears wall", func(t *testing.T) {
		g, err := grid.New(3, 3)
		require.NoError(t, err)

		c := grid.Coord{Row: 1, Col: 2}
		require.NoError(t, g.SetWall(c, true))
		require.NoError(t, g.SetStart(c))

		wall, _ := g.IsWall(c)
		assert.False(t, wall)
		start, ok := g.Start()
		assert.True(t, ok)
		assert.Equal(t, c, start)
	})

	t.Run("End over start unsets start", func(t *testing.T) {
		g, err := grid.New(3, 3)
		require.NoError(t, err)

		c := grid.Coord{Row: 1, Col: 1}
		require.NoError(t, g.SetStart(c))
		require.NoError(t, g.SetEnd(c))

		_, ok := g.Start()
		assert.False(t, ok)
		end, ok := g.End()
		assert.True(t, ok)
		assert.Equal(t, c, end)
	})

	t.Run("Start over end unsets end", func(t *testing.T) {
		g, err := grid.New(3, 3)
		require.NoError(t, err)

		c := grid.Coord{Row: 0, Col: 1}
		require.NoError(t, g.SetEnd(c))
		require.NoError(t, g.SetStart(c))

		_, ok := g.End()
		assert.False(t, ok)
		start, ok := g.Start()
		assert.True(t, ok)
		assert.Equal(t, c, start)
	})

	t.Run("Out of bounds leaves markers untouched", func(t *testing.T) {
		g, err := grid.New(3, 3)
		require.NoError(t, err)

		assert.ErrorIs(t, g.SetStart(grid.Coord{Row: -1, Col: 0}), grid.ErrOutOfBounds)
		assert.ErrorIs(t, g.SetEnd(grid.Coord{Row: 0, Col: 3}), grid.ErrOutOfBounds)

		start, _ := g.Start()
		end, _ := g.End()
		assert.Equal(t, grid.Coord{Row: 0, Col: 0}, start)
		assert.Equal(t, grid.Coord{Row: 2, Col: 2}, end)
	})
}

func TestReset(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)

	require.NoError(t, g.SetWall(grid.Coord{Row: 1, Col: 1}, true))
	require.NoError(t, g.SetWall(grid.Coord{Row: 2, Col: 3}, true))
	require.NoError(t, g.SetStart(grid.Coord{Row: 3, Col: 3}))

	g.Reset()
	once := g.String()
	g.Reset()

	assert.Equal(t, once, g.String())
	assert.Empty(t, g.Walls())
	start, _ := g.Start()
	end, ok := g.End()
	assert.True(t, ok)
	assert.Equal(t, grid.Coord{Row: 0, Col: 0}, start)
	assert.Equal(t, grid.Coord{Row: 3, Col: 3}, end)
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	clone := g.Clone()
	require.NoError(t, g.SetWall(grid.Coord{Row: 0, Col: 1}, true))

	wall, _ := clone.IsWall(grid.Coord{Row: 0, Col: 1})
	assert.False(t, wall)
	assert.Len(t, g.Walls(), 1)
}

func TestString(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)
	require.NoError(t, g.SetWall(grid.Coord{Row: 0, Col: 1}, true))

	assert.Equal(t, "S#.\n..E\n", g.String())
}
