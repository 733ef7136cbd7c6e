package maze

import (
	"fmt"
	"image"
	"image/color"
)

// Marks each cell of a rows x cols rectangle as alive or dead, for describing
// irregularly shaped mazes. Uses the same cell numbering as Grid.
type Mask struct {
	rows  int
	cols  int
	alive []bool
}

// Returns a new mask in which every cell is alive.
func NewMask(rows, cols int) *Mask {
	count, ok := cellCount(rows, cols)
	if !ok {
		panic(fmt.Sprintf("Invalid mask dimensions: %dx%d", rows, cols))
	}
	m := &Mask{
		rows:  rows,
		cols:  cols,
		alive: make([]bool, count),
	}
	for i := range m.alive {
		m.alive[i] = true
	}
	return m
}

// Converts a template color into whether the cell is alive. Black pixels are
// dead cells; anything else is alive.
func colorIsAlive(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return (r>>8 != 0) || (g>>8 != 0) || (b>>8 != 0)
}

// Uses a "template" image to build a mask, with one cell per pixel. Black
// pixels become dead cells, and all other pixels are live cells.
func MaskFromTemplate(templatePic image.Image) *Mask {
	bounds := templatePic.Bounds().Canon()
	m := NewMask(bounds.Dy(), bounds.Dx())
	cellIndex := 0
	for row := bounds.Min.Y; row < bounds.Max.Y; row++ {
		for col := bounds.Min.X; col < bounds.Max.X; col++ {
			m.alive[cellIndex] = colorIsAlive(templatePic.At(col, row))
			cellIndex++
		}
	}
	return m
}

func (m *Mask) NumRows() int {
	return m.rows
}

func (m *Mask) NumCols() int {
	return m.cols
}

func (m *Mask) NumCells() int {
	return len(m.alive)
}

// Returns true if the cell ID is valid for this mask.
func (m *Mask) Contains(c Cell) bool {
	return (c >= 0) && (int(c) < len(m.alive))
}

func (m *Mask) mustContain(c Cell) {
	if !m.Contains(c) {
		panic(fmt.Sprintf("Cell %d is outside of the %dx%d mask", c, m.rows,
			m.cols))
	}
}

// Returns the cell at row i, column j. Panics if either is out of range.
func (m *Mask) Cell(i, j int) Cell {
	if (i < 0) || (j < 0) || (i >= m.rows) || (j >= m.cols) {
		panic(fmt.Sprintf("Position (%d, %d) is outside of the %dx%d mask",
			i, j, m.rows, m.cols))
	}
	return Cell(i*m.cols + j)
}

func (m *Mask) I(c Cell) int {
	m.mustContain(c)
	return int(c) / m.cols
}

func (m *Mask) J(c Cell) int {
	m.mustContain(c)
	return int(c) % m.cols
}

func (m *Mask) IJ(c Cell) (int, int) {
	m.mustContain(c)
	return int(c) / m.cols, int(c) % m.cols
}

// Sets whether the cell is alive.
func (m *Mask) Set(c Cell, alive bool) {
	m.mustContain(c)
	m.alive[c] = alive
}

// Marks the cell as dead. Same as Set(c, false).
func (m *Mask) Kill(c Cell) {
	m.Set(c, false)
}

func (m *Mask) IsAlive(c Cell) bool {
	m.mustContain(c)
	return m.alive[c]
}

// Returns the number of live cells.
func (m *Mask) LiveCount() int {
	count := 0
	for _, v := range m.alive {
		if v {
			count++
		}
	}
	return count
}

// Returns the live cells in ascending order.
func (m *Mask) LiveCells() []Cell {
	toReturn := make([]Cell, 0, len(m.alive))
	for i, v := range m.alive {
		if v {
			toReturn = append(toReturn, Cell(i))
		}
	}
	return toReturn
}

// Returns a uniformly random live cell. The second return value is false only
// if no cell is alive.
func (m *Mask) RandomCell(rng Rand) (Cell, bool) {
	live := m.LiveCells()
	if len(live) == 0 {
		return noCell, false
	}
	return sample(rng, live), true
}
