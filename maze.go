// This defines a library for generating 2D mazes. A maze is represented as a
// Grid: a graph whose nodes are the cells of a rectangle, and whose edges are
// the "links" (passages) carved between neighboring cells. Several randomized
// algorithms are provided for carving a perfect maze into a Grid, along with
// functions for analyzing paths through it and for drawing it as text or as an
// image.Image.
package maze

import (
	"errors"
	"fmt"
	"sort"
)

// The source of randomness used by every generator. *rand.Rand from
// math/rand satisfies this; pass one created with a fixed seed to get
// reproducible mazes.
type Rand interface {
	// Returns a uniformly random int in [0, n).
	Intn(n int) int
	// Returns a uniformly random float64 in [0.0, 1.0).
	Float64() float64
}

// Returns a random element of cells, which must not be empty.
func sample(rng Rand, cells []Cell) Cell {
	if len(cells) == 0 {
		panic("Can't sample from an empty list of cells")
	}
	if len(cells) == 1 {
		return cells[0]
	}
	return cells[rng.Intn(len(cells))]
}

// Returns true or false with equal probability.
func flip(rng Rand) bool {
	return rng.Intn(2) == 0
}

// A function that carves a maze into the given Grid, replacing any links it
// already contained.
type Algorithm func(g *Grid, rng Rand)

// Returned (wrapped) by LookupAlgorithm for names it doesn't know.
var ErrUnknownAlgorithm = errors.New("unknown maze algorithm")

var algorithms = map[string]Algorithm{
	"binary_tree":           BinaryTree,
	"sidewinder":            Sidewinder,
	"hunt_and_kill":         HuntAndKill,
	"recursive_backtracker": RecursiveBacktracker,
	"kruskal":               Kruskal,
}

// Returns the generator with the given name. See AlgorithmNames for the list
// of valid names.
func LookupAlgorithm(name string) (Algorithm, error) {
	a, ok := algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%w: \"%s\"", ErrUnknownAlgorithm, name)
	}
	return a, nil
}

// Returns the names accepted by LookupAlgorithm, sorted.
func AlgorithmNames() []string {
	toReturn := make([]string, 0, len(algorithms))
	for name := range algorithms {
		toReturn = append(toReturn, name)
	}
	sort.Strings(toReturn)
	return toReturn
}
