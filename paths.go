package maze

import (
	"github.com/zyedidia/generic/mapset"
)

// Marks a cell in Distances that can't be reached from the starting cell.
const Unreachable = -1

// Holds the distance, in links, from some starting cell to every cell in a
// Grid, indexed by Cell. Unreached cells hold Unreachable.
type Distances []int

// Returns the distance to c, and false if c wasn't reached.
func (d Distances) To(c Cell) (int, bool) {
	if (c < 0) || (int(c) >= len(d)) {
		panic("Cell out of range of the distance table")
	}
	v := d[c]
	return v, v != Unreachable
}

// Returns the first cell, in ascending ID order, with the greatest distance,
// along with that distance. Returns -1, Unreachable if nothing was reached.
func (d Distances) Max() (Cell, int) {
	best := Cell(-1)
	bestDist := Unreachable
	for i, v := range d {
		if v > bestDist {
			best = Cell(i)
			bestDist = v
		}
	}
	return best, bestDist
}

// Computes the number of links between start and every other cell, following
// only linked passages. Works outward one frontier (cells at the same
// distance) at a time.
func (g *Grid) Distances(start Cell) Distances {
	g.mustContain(start)
	dists := make(Distances, len(g.cells))
	for i := range dists {
		dists[i] = Unreachable
	}
	dists[start] = 0
	frontier := mapset.New[Cell]()
	frontier.Put(start)
	for frontier.Size() != 0 {
		next := mapset.New[Cell]()
		frontier.Each(func(c Cell) {
			for _, l := range g.cells[c].links {
				if dists[l] != Unreachable {
					continue
				}
				dists[l] = dists[c] + 1
				next.Put(l)
			}
		})
		frontier = next
	}
	return dists
}

// Returns a shortest path of linked cells from start to goal, including both
// endpoints. Returns an empty slice if goal can't be reached from start.
//
// Where more than one neighbor is one step closer to start, the path follows
// whichever was linked first.
func (g *Grid) ShortestPath(start, goal Cell) []Cell {
	g.mustContain(goal)
	dists := g.Distances(start)
	if dists[goal] == Unreachable {
		return []Cell{}
	}

	// Walk backwards from the goal, then reverse.
	path := make([]Cell, 0, dists[goal]+1)
	current := goal
	path = append(path, current)
	for current != start {
		want := dists[current] - 1
		next := noCell
		for _, l := range g.cells[current].links {
			if dists[l] == want {
				next = l
				break
			}
		}
		if next == noCell {
			return []Cell{}
		}
		path = append(path, next)
		current = next
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Returns the cell farthest from start. Ties go to the lowest cell ID. If no
// other cell is reachable, this returns start.
func (g *Grid) Farthest(start Cell) Cell {
	dists := g.Distances(start)
	best := start
	bestDist := 0
	for i, v := range dists {
		if v > bestDist {
			best = Cell(i)
			bestDist = v
		}
	}
	return best
}

// Returns the cells with exactly one link, in ascending order.
func (g *Grid) DeadEnds() []Cell {
	toReturn := make([]Cell, 0)
	for i := range g.cells {
		if g.linkCount(Cell(i)) == 1 {
			toReturn = append(toReturn, Cell(i))
		}
	}
	return toReturn
}

// Returns a longest path through the maze, found using two passes: the cell
// farthest from cell 0, then the cell farthest from that. This is exact for
// perfect mazes, and only an approximation if the links contain cycles.
// Returns nil for a grid with no cells.
func (g *Grid) LongestPath() []Cell {
	if len(g.cells) == 0 {
		return nil
	}
	end := g.Farthest(0)
	start := g.Farthest(end)
	return g.ShortestPath(start, end)
}
