package maze

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strings"
)

// Identifies a single cell in a Grid. Cells are numbered row by row, so the
// cell at row i and column j has the ID i*cols + j.
type Cell int

// Used for absent neighbors.
const noCell Cell = -1

// One of the four axial directions between neighboring cells.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// All four directions, in the order used whenever a function needs to visit
// every direction.
var Directions = [4]Direction{North, South, East, West}

// Returned (wrapped) by ParseDirection for unrecognized names.
var ErrInvalidDirection = errors.New("invalid direction")

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return fmt.Sprintf("Unknown direction: %d", int(d))
}

// Converts a lowercase direction name, as returned by Direction.String(), back
// into a Direction.
func ParseDirection(name string) (Direction, error) {
	for _, d := range Directions {
		if d.String() == name {
			return d, nil
		}
	}
	return North, fmt.Errorf("%w: expected direction, got \"%s\"",
		ErrInvalidDirection, name)
}

// Holds the per-cell state of a Grid.
type gridCell struct {
	// The IDs of the cells this cell is linked to, in the order the links were
	// made. Kept as a slice rather than a map so that iteration is
	// reproducible.
	links []Cell
	// The geometric neighbors, indexed by Direction. Set once, by NewGrid.
	// noCell marks a grid boundary.
	neighbors [4]Cell
}

func (c *gridCell) linkIndex(other Cell) int {
	for i, l := range c.links {
		if l == other {
			return i
		}
	}
	return -1
}

func (c *gridCell) link(other Cell) {
	if c.linkIndex(other) >= 0 {
		return
	}
	c.links = append(c.links, other)
}

func (c *gridCell) unlink(other Cell) {
	i := c.linkIndex(other)
	if i < 0 {
		return
	}
	c.links = append(c.links[:i], c.links[i+1:]...)
}

// A rectangular grid of cells that can be used to represent a maze. In graph
// terms, each cell is a node, and a "link" between two cells is an undirected
// edge (a passage carved through the wall between them). Each cell also knows
// its fixed geometric neighbors to the north, south, east and west.
//
// A new Grid contains no links. Grids are not safe for concurrent mutation.
type Grid struct {
	rows  int
	cols  int
	cells []gridCell
}

// Returns rows*cols, or false if either dimension is negative or the product
// doesn't fit in an int.
func cellCount(rows, cols int) (int, bool) {
	if (rows < 0) || (cols < 0) {
		return 0, false
	}
	if (rows == 0) || (cols == 0) {
		return 0, true
	}
	// Check for overflow.
	if rows > math.MaxInt/cols {
		return 0, false
	}
	return rows * cols, true
}

// Returns a new Grid with the given number of rows and columns, in which no
// cell is linked to any other. Panics if either dimension is negative, or if
// the grid would have too many cells.
func NewGrid(rows, cols int) *Grid {
	count, ok := cellCount(rows, cols)
	if !ok {
		panic(fmt.Sprintf("Invalid grid dimensions: %dx%d", rows, cols))
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]gridCell, count),
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			n := &(g.cells[i*cols+j].neighbors)
			for k := range n {
				n[k] = noCell
			}
			if i > 0 {
				n[North] = g.Cell(i-1, j)
			}
			if i < (rows - 1) {
				n[South] = g.Cell(i+1, j)
			}
			if j < (cols - 1) {
				n[East] = g.Cell(i, j+1)
			}
			if j > 0 {
				n[West] = g.Cell(i, j-1)
			}
		}
	}
	return g
}

// The number of rows in the grid.
func (g *Grid) NumRows() int {
	return g.rows
}

// The number of columns in the grid.
func (g *Grid) NumCols() int {
	return g.cols
}

// The number of cells in the grid.
func (g *Grid) NumCells() int {
	return len(g.cells)
}

// Returns true if the cell ID is valid for this grid.
func (g *Grid) Contains(c Cell) bool {
	return (c >= 0) && (int(c) < len(g.cells))
}

func (g *Grid) mustContain(c Cell) {
	if !g.Contains(c) {
		panic(fmt.Sprintf("Cell %d is outside of the %dx%d grid", c, g.rows,
			g.cols))
	}
}

// Returns the cell at row i, column j. Panics if either is out of range.
func (g *Grid) Cell(i, j int) Cell {
	if (i < 0) || (j < 0) || (i >= g.rows) || (j >= g.cols) {
		panic(fmt.Sprintf("Position (%d, %d) is outside of the %dx%d grid",
			i, j, g.rows, g.cols))
	}
	return Cell(i*g.cols + j)
}

// Returns the row containing the cell.
func (g *Grid) I(c Cell) int {
	g.mustContain(c)
	return int(c) / g.cols
}

// Returns the column containing the cell.
func (g *Grid) J(c Cell) int {
	g.mustContain(c)
	return int(c) % g.cols
}

// Returns the row and column of the cell.
func (g *Grid) IJ(c Cell) (int, int) {
	g.mustContain(c)
	return int(c) / g.cols, int(c) % g.cols
}

// Links the two cells to each other. Adjacency is not checked.
func (g *Grid) Link(a, b Cell) {
	g.mustContain(a)
	g.mustContain(b)
	g.cells[a].link(b)
	g.cells[b].link(a)
}

// Removes the link between the two cells, if there is one.
func (g *Grid) Unlink(a, b Cell) {
	g.mustContain(a)
	g.mustContain(b)
	g.cells[a].unlink(b)
	g.cells[b].unlink(a)
}

// Returns the cells linked to c, in the order the links were made. The
// returned slice is a copy.
func (g *Grid) Links(c Cell) []Cell {
	g.mustContain(c)
	links := g.cells[c].links
	toReturn := make([]Cell, len(links))
	copy(toReturn, links)
	return toReturn
}

// Returns the number of links c has, without copying them.
func (g *Grid) linkCount(c Cell) int {
	return len(g.cells[c].links)
}

// Returns true if the two cells are linked.
func (g *Grid) IsLinked(a, b Cell) bool {
	g.mustContain(a)
	g.mustContain(b)
	return g.cells[a].linkIndex(b) >= 0
}

// Returns true if c is linked to its neighbor in the given direction. Returns
// false if there's no neighbor in that direction.
func (g *Grid) IsLinkedTo(c Cell, d Direction) bool {
	other, ok := g.CellTo(c, d)
	if !ok {
		return false
	}
	return g.cells[c].linkIndex(other) >= 0
}

func (g *Grid) IsLinkedNorth(c Cell) bool {
	return g.IsLinkedTo(c, North)
}

func (g *Grid) IsLinkedSouth(c Cell) bool {
	return g.IsLinkedTo(c, South)
}

func (g *Grid) IsLinkedEast(c Cell) bool {
	return g.IsLinkedTo(c, East)
}

func (g *Grid) IsLinkedWest(c Cell) bool {
	return g.IsLinkedTo(c, West)
}

// Returns the up-to-four geometric neighbors of c, in north, south, east, west
// order. Doesn't depend on which cells are linked.
func (g *Grid) Neighbors(c Cell) []Cell {
	g.mustContain(c)
	toReturn := make([]Cell, 0, 4)
	for _, n := range g.cells[c].neighbors {
		if n != noCell {
			toReturn = append(toReturn, n)
		}
	}
	return toReturn
}

// Returns the neighbor of c in the given direction. The second return value
// is false if c is on the grid boundary in that direction.
func (g *Grid) CellTo(c Cell, d Direction) (Cell, bool) {
	g.mustContain(c)
	if (d < North) || (d > West) {
		panic("Bad direction.")
	}
	n := g.cells[c].neighbors[d]
	return n, n != noCell
}

func (g *Grid) NorthOf(c Cell) (Cell, bool) {
	return g.CellTo(c, North)
}

func (g *Grid) SouthOf(c Cell) (Cell, bool) {
	return g.CellTo(c, South)
}

func (g *Grid) EastOf(c Cell) (Cell, bool) {
	return g.CellTo(c, East)
}

func (g *Grid) WestOf(c Cell) (Cell, bool) {
	return g.CellTo(c, West)
}

// Removes every link, returning the grid to its initial state. Neighbors are
// unaffected.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].links = g.cells[i].links[:0]
	}
}

// Returns the dimensions followed by a text drawing of the grid.
func (g *Grid) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Grid(%dx%d)\n", g.rows, g.cols)
	b.WriteString(DefaultTextRenderer().Render(g))
	return b.String()
}

// Renders the grid using the default image settings, without highlighting
// any cells.
func (g *Grid) ToImage() image.Image {
	return DefaultImageRenderer().Render(g, nil)
}
