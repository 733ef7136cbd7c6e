package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Returns a 1 x n grid in which every cell is linked to the next.
func corridor(n int) *Grid {
	g := NewGrid(1, n)
	for j := 0; j < n-1; j++ {
		g.Link(Cell(j), Cell(j+1))
	}
	return g
}

func TestDistances(t *testing.T) {
	t.Run("Corridor", func(t *testing.T) {
		g := corridor(4)
		assert.Equal(t, Distances{0, 1, 2, 3}, g.Distances(0))
		assert.Equal(t, Distances{2, 1, 0, 1}, g.Distances(2))
	})

	t.Run("Unreachable cells", func(t *testing.T) {
		g := NewGrid(2, 2)
		g.Link(0, 1)
		dists := g.Distances(0)
		assert.Equal(t, Distances{0, 1, Unreachable, Unreachable}, dists)
		d, ok := dists.To(1)
		assert.True(t, ok)
		assert.Equal(t, 1, d)
		_, ok = dists.To(3)
		assert.False(t, ok)
	})

	t.Run("Only links count", func(t *testing.T) {
		g := NewGrid(3, 3)
		// A path around the outside, skipping the center.
		ring := []Cell{0, 1, 2, 5, 8, 7, 6, 3}
		for i := 0; i < len(ring)-1; i++ {
			g.Link(ring[i], ring[i+1])
		}
		dists := g.Distances(0)
		assert.Equal(t, 7, dists[3])
		assert.Equal(t, Unreachable, dists[4])
	})

	t.Run("Each distance is one more than a linked neighbor", func(t *testing.T) {
		g := NewGrid(8, 8)
		Kruskal(g, rand.New(rand.NewSource(7)))
		Braid(g, rand.New(rand.NewSource(8)), 0.5)
		dists := g.Distances(g.Cell(3, 4))
		for c := Cell(0); int(c) < g.NumCells(); c++ {
			if dists[c] == 0 {
				continue
			}
			best := -1
			for _, l := range g.Links(c) {
				if (best < 0) || (dists[l] < best) {
					best = dists[l]
				}
			}
			assert.Equal(t, best+1, dists[c])
		}
	})

	t.Run("Max", func(t *testing.T) {
		c, d := Distances{0, 3, 1, 3, Unreachable}.Max()
		assert.Equal(t, Cell(1), c)
		assert.Equal(t, 3, d)
	})
}

func TestShortestPath(t *testing.T) {
	t.Run("Corridor", func(t *testing.T) {
		g := corridor(5)
		assert.Equal(t, []Cell{1, 2, 3, 4}, g.ShortestPath(1, 4))
		assert.Equal(t, []Cell{3, 2, 1, 0}, g.ShortestPath(3, 0))
		assert.Equal(t, []Cell{2}, g.ShortestPath(2, 2))
	})

	t.Run("No path", func(t *testing.T) {
		g := NewGrid(2, 2)
		g.Link(0, 1)
		path := g.ShortestPath(0, 3)
		assert.NotNil(t, path)
		assert.Empty(t, path)
	})

	t.Run("Ties follow link order", func(t *testing.T) {
		// Two equally short routes from 0 to 3.
		g := NewGrid(2, 2)
		g.Link(0, 1)
		g.Link(0, 2)
		g.Link(3, 2)
		g.Link(3, 1)
		assert.Equal(t, []Cell{0, 2, 3}, g.ShortestPath(0, 3))
	})

	t.Run("Length matches distance", func(t *testing.T) {
		g := NewGrid(10, 10)
		RecursiveBacktracker(g, rand.New(rand.NewSource(3)))
		Braid(g, rand.New(rand.NewSource(4)), 1)
		dists := g.Distances(0)
		for goal := Cell(0); int(goal) < g.NumCells(); goal++ {
			path := g.ShortestPath(0, goal)
			require.Len(t, path, dists[goal]+1)
			assert.Equal(t, Cell(0), path[0])
			assert.Equal(t, goal, path[len(path)-1])
			for i := 1; i < len(path); i++ {
				assert.True(t, g.IsLinked(path[i-1], path[i]))
			}
		}
	})
}

func TestFarthest(t *testing.T) {
	g := NewGrid(2, 2)
	g.Link(0, 1)
	g.Link(0, 2)
	// 1 and 2 are both at distance 1; the lower ID wins.
	assert.Equal(t, Cell(1), g.Farthest(0))
	// Nothing else is reachable from 3.
	assert.Equal(t, Cell(3), g.Farthest(3))
	assert.Equal(t, Cell(4), corridor(5).Farthest(0))
}

func TestDeadEnds(t *testing.T) {
	g := corridor(4)
	assert.Equal(t, []Cell{0, 3}, g.DeadEnds())

	g = NewGrid(6, 6)
	HuntAndKill(g, rand.New(rand.NewSource(11)))
	deadEnds := g.DeadEnds()
	for c := Cell(0); int(c) < g.NumCells(); c++ {
		assert.Equal(t, len(g.Links(c)) == 1, containsCell(deadEnds, c))
	}

	assert.Empty(t, NewGrid(3, 3).DeadEnds())
}

func containsCell(cells []Cell, c Cell) bool {
	for _, v := range cells {
		if v == c {
			return true
		}
	}
	return false
}

func TestLongestPath(t *testing.T) {
	assert.Equal(t, []Cell{0, 1, 2, 3}, corridor(4).LongestPath())
	assert.Nil(t, NewGrid(0, 0).LongestPath())
	assert.Equal(t, []Cell{0}, NewGrid(1, 1).LongestPath())

	// A small tree with three dead ends; the longest path joins the two
	// farthest apart.
	g := NewGrid(3, 3)
	g.Link(2, 1)
	g.Link(1, 0)
	g.Link(0, 3)
	g.Link(3, 6)
	g.Link(6, 7)
	g.Link(7, 8)
	g.Link(3, 4)
	g.Link(4, 5)
	path := g.LongestPath()
	assert.Equal(t, []Cell{2, 1, 0, 3, 6, 7, 8}, path)

	// On a perfect maze, nothing is farther apart than the path's ends.
	g = NewGrid(7, 9)
	Sidewinder(g, rand.New(rand.NewSource(5)))
	path = g.LongestPath()
	require.NotEmpty(t, path)
	for c := Cell(0); int(c) < g.NumCells(); c++ {
		_, farthest := g.Distances(c).Max()
		assert.LessOrEqual(t, farthest, len(path)-1)
	}
}
