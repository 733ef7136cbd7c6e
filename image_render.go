package maze

import (
	"fmt"
	"image"
	"image/color"
)

// Settings for drawing a Grid as an image. Start from DefaultImageRenderer
// and change what's needed.
type ImageRenderer struct {
	// The number of pixels across, in a square cell. Must be at least 5.
	CellSize int
	// If positive, the maze is surrounded by a border of this many pixels,
	// filled with the Background color.
	BorderWidth int
	Background  color.Color
	Wall        color.Color
	// The color used to mark highlighted cells, such as a solution path.
	Highlight color.Color
	// If set, cells that are dead in the mask are drawn blank. The mask must
	// have the same dimensions as the grid.
	Mask *Mask
}

func DefaultImageRenderer() ImageRenderer {
	return ImageRenderer{
		CellSize:    10,
		BorderWidth: 2,
		Background:  color.White,
		Wall:        color.Black,
		Highlight: color.RGBA{
			R: 230,
			G: 20,
			B: 20,
			A: 255,
		},
	}
}

// Returns an image of the grid, with the given cells highlighted. The image
// reads the grid's links each time a pixel is requested, so it reflects
// changes made to the grid after this returns. Panics if the settings are
// invalid.
func (r ImageRenderer) Render(g *Grid, highlight []Cell) image.Image {
	if r.CellSize < 5 {
		panic(fmt.Sprintf("Cell size must be at least 5 pixels, got %d",
			r.CellSize))
	}
	if (r.Mask != nil) && ((r.Mask.NumRows() != g.NumRows()) ||
		(r.Mask.NumCols() != g.NumCols())) {
		panic(fmt.Sprintf("A %dx%d mask can't be used with a %dx%d grid",
			r.Mask.NumRows(), r.Mask.NumCols(), g.NumRows(), g.NumCols()))
	}
	pic := &GridImage{
		grid:        g,
		settings:    r,
		highlighted: make([]bool, g.NumCells()),
	}
	for _, c := range highlight {
		g.mustContain(c)
		pic.highlighted[c] = true
	}
	if r.BorderWidth <= 0 {
		return pic
	}
	return AddImageBorder(pic, r.BorderWidth, r.Background)
}

// Returns the pixel coordinates of the center of the cell, in an image
// returned by Render, including the border.
func (r ImageRenderer) CellCenter(g *Grid, c Cell) image.Point {
	i, j := g.IJ(c)
	offset := r.CellSize / 2
	if r.BorderWidth > 0 {
		offset += r.BorderWidth
	}
	return image.Pt(j*r.CellSize+offset, i*r.CellSize+offset)
}

// Satisfies the image.Image interface, drawing a Grid. Create using
// ImageRenderer.Render.
type GridImage struct {
	grid        *Grid
	settings    ImageRenderer
	highlighted []bool
}

func (m *GridImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (m *GridImage) Bounds() image.Rectangle {
	size := m.settings.CellSize
	return image.Rect(0, 0, m.grid.NumCols()*size, m.grid.NumRows()*size)
}

// Holds the walls of one cell. The order is left, top, right, bottom. Each
// entry is true if the wall is there.
type cellWalls [4]bool

func (m *GridImage) wallsOf(c Cell) cellWalls {
	return cellWalls{
		!m.grid.IsLinkedWest(c),
		!m.grid.IsLinkedNorth(c),
		!m.grid.IsLinkedEast(c),
		!m.grid.IsLinkedSouth(c),
	}
}

// Corner n sits between walls n and n+1, so corners 0 through 3 are the
// top-left, top-right, bottom-right and bottom-left. A corner is drawn
// unless both of its walls are open.
func (w *cellWalls) hasCorner(n int) bool {
	return w[n%4] || w[(n+1)%4]
}

func (m *GridImage) At(x, y int) color.Color {
	size := m.settings.CellSize
	if (x < 0) || (y < 0) || (x >= m.grid.NumCols()*size) ||
		(y >= m.grid.NumRows()*size) {
		return color.Transparent
	}
	// Delegate to the cell the pixel falls into.
	c := m.grid.Cell(y/size, x/size)
	return m.cellAt(c, x%size, y%size)
}

// Returns the color of the pixel at (x, y) within the cell's square.
func (m *GridImage) cellAt(c Cell, x, y int) color.Color {
	s := &(m.settings)
	size := s.CellSize
	// Dead cells are always blank.
	if (s.Mask != nil) && !s.Mask.IsAlive(c) {
		return s.Background
	}
	walls := m.wallsOf(c)
	wallIf := func(set bool) color.Color {
		if set {
			return s.Wall
		}
		return s.Background
	}
	last := size - 1
	if x == 0 {
		if y == 0 {
			return wallIf(walls.hasCorner(0))
		}
		if y == last {
			return wallIf(walls.hasCorner(3))
		}
		return wallIf(walls[0])
	}
	if x == last {
		if y == 0 {
			return wallIf(walls.hasCorner(1))
		}
		if y == last {
			return wallIf(walls.hasCorner(2))
		}
		return wallIf(walls[2])
	}
	// Corners were handled along with the left and right walls.
	if y == 0 {
		return wallIf(walls[1])
	}
	if y == last {
		return wallIf(walls[3])
	}
	if !m.highlighted[c] {
		return s.Background
	}
	// Highlighted cells are filled, if more than two pixels away from an
	// edge.
	if (x > 1) && (x < (size - 2)) && (y > 1) && (y < (size - 2)) {
		return s.Highlight
	}
	return s.Background
}

// An image.Image that pads another image with a solid frame. The result
// always starts at (0, 0), whatever the inner image's bounds are.
type framedImage struct {
	inner image.Image
	width int
	fill  color.Color
}

func (f *framedImage) ColorModel() color.Model {
	return f.inner.ColorModel()
}

func (f *framedImage) Bounds() image.Rectangle {
	size := f.inner.Bounds().Size()
	return image.Rect(0, 0, size.X+2*f.width, size.Y+2*f.width)
}

func (f *framedImage) At(x, y int) color.Color {
	content := f.Bounds().Inset(f.width)
	p := image.Pt(x, y)
	if !p.In(content) {
		return f.fill
	}
	src := p.Sub(content.Min).Add(f.inner.Bounds().Min)
	return f.inner.At(src.X, src.Y)
}

// Returns pic surrounded by a frame of the given color, width pixels thick
// on every side.
func AddImageBorder(pic image.Image, width int, fill color.Color) image.Image {
	return &framedImage{
		inner: pic,
		width: width,
		fill:  fill,
	}
}
