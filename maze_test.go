package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupAlgorithm(t *testing.T) {
	names := AlgorithmNames()
	assert.Equal(t, []string{"binary_tree", "hunt_and_kill", "kruskal",
		"recursive_backtracker", "sidewinder"}, names)

	for _, name := range names {
		generate, e := LookupAlgorithm(name)
		require.NoError(t, e)
		g := NewGrid(4, 5)
		generate(g, rand.New(rand.NewSource(1)))
		assert.Equal(t, g.NumCells()-1, countLinks(g), name)
	}

	_, e := LookupAlgorithm("wilson")
	assert.ErrorIs(t, e, ErrUnknownAlgorithm)
}

func TestSample(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, Cell(7), sample(rng, []Cell{7}))
	assert.Panics(t, func() { sample(rng, nil) })

	seen := make(map[Cell]int)
	for i := 0; i < 1000; i++ {
		seen[sample(rng, []Cell{1, 2, 3})]++
	}
	assert.Len(t, seen, 3)
	for _, count := range seen {
		assert.Greater(t, count, 200)
	}
}
