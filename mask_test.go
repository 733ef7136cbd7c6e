package maze

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMask(t *testing.T) {
	m := NewMask(5, 6)
	assert.Equal(t, 5, m.NumRows())
	assert.Equal(t, 6, m.NumCols())
	assert.Equal(t, 30, m.NumCells())
	assert.Equal(t, 30, m.LiveCount())
	assert.Panics(t, func() { NewMask(2, -2) })
	assert.PanicsWithValue(t, fmt.Sprintf("Invalid mask dimensions: 4x%d",
		math.MaxInt/2+1), func() { NewMask(4, math.MaxInt/2+1) })
}

func TestMaskCellIndexing(t *testing.T) {
	m := NewMask(5, 6)
	assert.Equal(t, Cell(9), m.Cell(1, 3))
	assert.Equal(t, Cell(29), m.Cell(4, 5))
	for i := 0; i < m.NumRows(); i++ {
		for j := 0; j < m.NumCols(); j++ {
			c := m.Cell(i, j)
			require.True(t, m.Contains(c))
			assert.Equal(t, i, m.I(c))
			assert.Equal(t, j, m.J(c))
			gotI, gotJ := m.IJ(c)
			assert.Equal(t, i, gotI)
			assert.Equal(t, j, gotJ)
		}
	}
	assert.Panics(t, func() { m.Cell(5, 0) })
	assert.Panics(t, func() { m.IsAlive(30) })
	assert.Panics(t, func() { m.Kill(-1) })
}

func TestMaskLiveCells(t *testing.T) {
	m := NewMask(3, 3)
	assert.Equal(t, 9, m.LiveCount())

	m.Kill(4)
	assert.Equal(t, 8, m.LiveCount())
	assert.False(t, m.IsAlive(4))
	assert.Equal(t, []Cell{0, 1, 2, 3, 5, 6, 7, 8}, m.LiveCells())

	m.Set(4, true)
	assert.True(t, m.IsAlive(4))
	assert.Equal(t, 9, m.LiveCount())

	for c := Cell(0); int(c) < m.NumCells(); c++ {
		m.Set(c, false)
	}
	assert.Equal(t, 0, m.LiveCount())
	assert.Empty(t, m.LiveCells())
}

func TestMaskRandomCell(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	t.Run("Only live cells are chosen", func(t *testing.T) {
		m := NewMask(4, 4)
		for _, c := range []Cell{0, 3, 5, 6, 9, 10, 12, 15} {
			m.Kill(c)
		}
		seen := make(map[Cell]bool)
		for i := 0; i < 500; i++ {
			c, ok := m.RandomCell(rng)
			require.True(t, ok)
			require.True(t, m.IsAlive(c))
			seen[c] = true
		}
		assert.Len(t, seen, 8)
	})

	t.Run("Single live cell", func(t *testing.T) {
		m := NewMask(3, 3)
		for c := Cell(0); int(c) < m.NumCells(); c++ {
			m.Set(c, c == 5)
		}
		c, ok := m.RandomCell(rng)
		assert.True(t, ok)
		assert.Equal(t, Cell(5), c)
	})

	t.Run("No live cells", func(t *testing.T) {
		m := NewMask(2, 2)
		for c := Cell(0); int(c) < m.NumCells(); c++ {
			m.Kill(c)
		}
		_, ok := m.RandomCell(rng)
		assert.False(t, ok)
		_, ok = NewMask(0, 0).RandomCell(rng)
		assert.False(t, ok)
	})
}

func TestMaskFromTemplate(t *testing.T) {
	// Three pixels wide and two high, offset from the origin.
	pic := image.NewRGBA(image.Rect(10, 20, 13, 22))
	for y := 20; y < 22; y++ {
		for x := 10; x < 13; x++ {
			pic.Set(x, y, color.White)
		}
	}
	pic.Set(11, 20, color.Black)
	pic.Set(12, 21, color.RGBA{0, 0, 0, 255})
	pic.Set(10, 21, color.RGBA{0, 220, 0, 255})

	m := MaskFromTemplate(pic)
	assert.Equal(t, 2, m.NumRows())
	assert.Equal(t, 3, m.NumCols())
	assert.Equal(t, []Cell{0, 2, 3, 4}, m.LiveCells())
}
