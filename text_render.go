package maze

import (
	"strings"
	"unicode/utf8"
)

// Settings for drawing a Grid as ASCII text. The zero value isn't useful;
// start from DefaultTextRenderer.
type TextRenderer struct {
	// The minimum width of each cell, in characters.
	CellWidth int
	// If true, cells are widened to fit the widest label plus Margin
	// characters on either side. Cells are never narrower than CellWidth.
	AutoWidth bool
	Margin    int
}

func DefaultTextRenderer() TextRenderer {
	return TextRenderer{
		CellWidth: 3,
	}
}

// Draws the grid with empty cells.
func (r TextRenderer) Render(g *Grid) string {
	return r.RenderWith(g, func(Cell) (string, bool) {
		return "", false
	})
}

// Draws the grid, centering the label for each cell inside it. The label
// function returns false for cells that should be left empty.
func (r TextRenderer) RenderWith(g *Grid, label func(Cell) (string,
	bool)) string {
	labels := make([]string, g.NumCells())
	labelWidth := 0
	for i := range labels {
		s, ok := label(Cell(i))
		if !ok {
			continue
		}
		labels[i] = s
		if w := utf8.RuneCountInString(s); w > labelWidth {
			labelWidth = w
		}
	}
	width := r.CellWidth
	if r.AutoWidth && (labelWidth+2*r.Margin > width) {
		width = labelWidth + 2*r.Margin
	}

	var b strings.Builder
	b.WriteByte('+')
	for j := 0; j < g.NumCols(); j++ {
		writeSouthWall(&b, false, width)
	}
	for i := 0; i < g.NumRows(); i++ {
		// The row of cells, with their east walls
		b.WriteString("\n|")
		for j := 0; j < g.NumCols(); j++ {
			c := g.Cell(i, j)
			writeCentered(&b, labels[c], width)
			if g.IsLinkedEast(c) {
				b.WriteByte(' ')
			} else {
				b.WriteByte('|')
			}
		}
		// The walls below the row
		b.WriteString("\n+")
		for j := 0; j < g.NumCols(); j++ {
			writeSouthWall(&b, g.IsLinkedSouth(g.Cell(i, j)), width)
		}
	}
	b.WriteByte('\n')
	return b.String()
}

// Writes s centered in a field of the given width. Any odd space goes on the
// right. Labels wider than the field aren't truncated.
func writeCentered(b *strings.Builder, s string, width int) {
	pad := width - utf8.RuneCountInString(s)
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	b.WriteString(strings.Repeat(" ", left))
	b.WriteString(s)
	b.WriteString(strings.Repeat(" ", pad-left))
}

func writeSouthWall(b *strings.Builder, open bool, width int) {
	fill := "-"
	if open {
		fill = " "
	}
	b.WriteString(strings.Repeat(fill, width))
	b.WriteByte('+')
}
