package maze

import (
	"github.com/spakin/disjoint"
)

// Produces a binary-tree maze: every cell is linked either to its north or to
// its east neighbor. The result has unbroken corridors along the top row and
// the rightmost column.
func BinaryTree(g *Grid, rng Rand) {
	g.Clear()
	choices := make([]Cell, 0, 2)
	for i := range g.cells {
		c := Cell(i)
		choices = choices[:0]
		if n, ok := g.NorthOf(c); ok {
			choices = append(choices, n)
		}
		if n, ok := g.EastOf(c); ok {
			choices = append(choices, n)
		}
		// The northeast corner has no options; it gets linked by one of its
		// neighbors instead.
		if len(choices) == 0 {
			continue
		}
		g.Link(c, sample(rng, choices))
	}
}

// Produces a sidewinder maze. Each row is split into horizontal "runs" of
// linked cells, and one random cell in every run is linked north. The top row
// is always a single run.
func Sidewinder(g *Grid, rng Rand) {
	g.Clear()
	run := make([]Cell, 0, g.cols)
	for i := 0; i < g.rows; i++ {
		run = run[:0]
		for j := 0; j < g.cols; j++ {
			c := g.Cell(i, j)
			run = append(run, c)
			east, hasEast := g.EastOf(c)
			_, hasNorth := g.NorthOf(c)
			closeRun := !hasEast || (hasNorth && flip(rng))
			if !closeRun {
				g.Link(c, east)
				continue
			}
			member := sample(rng, run)
			if north, ok := g.NorthOf(member); ok {
				g.Link(member, north)
			}
			run = run[:0]
		}
	}
}

// Returns the neighbors of c that are (or, if visited is false, aren't)
// linked to at least one cell.
func (g *Grid) neighborsByVisited(c Cell, visited bool) []Cell {
	toReturn := make([]Cell, 0, 4)
	for _, n := range g.cells[c].neighbors {
		if n == noCell {
			continue
		}
		if (g.linkCount(n) != 0) == visited {
			toReturn = append(toReturn, n)
		}
	}
	return toReturn
}

// Produces a maze using the hunt-and-kill algorithm. A random walk carves
// through unvisited cells until it gets stuck, then the grid is scanned for
// the first unvisited cell next to a visited one, which is joined to the maze
// and becomes the start of the next walk. Cells count as visited once they
// have a link.
func HuntAndKill(g *Grid, rng Rand) {
	g.Clear()
	if len(g.cells) == 0 {
		return
	}
	current := Cell(rng.Intn(len(g.cells)))
	for current != noCell {
		unvisited := g.neighborsByVisited(current, false)
		if len(unvisited) != 0 {
			next := sample(rng, unvisited)
			g.Link(current, next)
			current = next
			continue
		}
		current = g.hunt(rng)
	}
}

// The "hunt" phase of HuntAndKill. Links the first unvisited cell that has a
// visited neighbor to one of those neighbors, and returns it. Returns noCell
// if there's no such cell.
func (g *Grid) hunt(rng Rand) Cell {
	for i := range g.cells {
		c := Cell(i)
		if g.linkCount(c) != 0 {
			continue
		}
		visited := g.neighborsByVisited(c, true)
		if len(visited) == 0 {
			continue
		}
		g.Link(c, sample(rng, visited))
		return c
	}
	return noCell
}

// Produces a maze using a depth-first search with an explicit stack: carve
// into a random unvisited neighbor of the cell on top of the stack, or pop the
// stack when there are none. Tends to produce long, winding corridors.
func RecursiveBacktracker(g *Grid, rng Rand) {
	g.Clear()
	if len(g.cells) == 0 {
		return
	}
	visited := make([]bool, len(g.cells))
	start := Cell(rng.Intn(len(g.cells)))
	visited[start] = true
	stack := make([]Cell, 0, len(g.cells))
	stack = append(stack, start)
	candidates := make([]Cell, 0, 4)
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		candidates = candidates[:0]
		for _, n := range g.cells[top].neighbors {
			if (n != noCell) && !visited[n] {
				candidates = append(candidates, n)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := sample(rng, candidates)
		g.Link(top, next)
		visited[next] = true
		stack = append(stack, next)
	}
}

// Used internally by Kruskal: a pair of neighboring cells that may be
// joined.
type gridNeighborInfo struct {
	baseIndex Cell
	// Will always be either East or South, so each pair appears once.
	neighborDirection Direction
}

// Produces a maze using randomized Kruskal's algorithm: neighboring pairs of
// cells are considered in a random order, and joined whenever they aren't
// already reachable from one another.
func Kruskal(g *Grid, rng Rand) {
	g.Clear()
	if len(g.cells) == 0 {
		return
	}
	sets := make([]*disjoint.Element, len(g.cells))
	for i := range sets {
		sets[i] = disjoint.NewElement()
	}
	pairCount := (g.cols-1)*g.rows + (g.rows-1)*g.cols
	neighbors := make([]gridNeighborInfo, 0, pairCount)
	for i := range g.cells {
		c := Cell(i)
		if _, ok := g.EastOf(c); ok {
			neighbors = append(neighbors, gridNeighborInfo{c, East})
		}
		if _, ok := g.SouthOf(c); ok {
			neighbors = append(neighbors, gridNeighborInfo{c, South})
		}
	}

	for len(neighbors) != 0 {
		// Take a random pair out of the list.
		index := rng.Intn(len(neighbors))
		pair := neighbors[index]
		neighbors[index] = neighbors[len(neighbors)-1]
		neighbors = neighbors[:len(neighbors)-1]

		a := pair.baseIndex
		b, _ := g.CellTo(a, pair.neighborDirection)
		if sets[a].Find() == sets[b].Find() {
			continue
		}
		g.Link(a, b)
		disjoint.Union(sets[a], sets[b])
	}
}

// Removes dead ends by linking them to an extra neighbor, adding cycles to
// the maze. Each dead end is considered once, in random order, and is braided
// with probability p. Neighbors that are dead ends themselves are preferred,
// so that one new link can remove two dead ends.
func Braid(g *Grid, rng Rand, p float64) {
	deadEnds := g.DeadEnds()
	for i := len(deadEnds) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deadEnds[i], deadEnds[j] = deadEnds[j], deadEnds[i]
	}
	unlinked := make([]Cell, 0, 4)
	best := make([]Cell, 0, 4)
	for _, c := range deadEnds {
		// An earlier step may have already linked this cell.
		if g.linkCount(c) != 1 {
			continue
		}
		if rng.Float64() >= p {
			continue
		}
		unlinked = unlinked[:0]
		best = best[:0]
		for _, n := range g.Neighbors(c) {
			if g.IsLinked(c, n) {
				continue
			}
			unlinked = append(unlinked, n)
			if g.linkCount(n) == 1 {
				best = append(best, n)
			}
		}
		if len(best) != 0 {
			g.Link(c, sample(rng, best))
		} else if len(unlinked) != 0 {
			g.Link(c, sample(rng, unlinked))
		}
	}
}
