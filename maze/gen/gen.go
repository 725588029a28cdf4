// Package gen provides the maze generation algorithms. Every generator
// mutates the grid exclusively through a maze.Recorder, so each step is
// validated, sequenced, and observable as an event stream. Generators
// draw all randomness from the supplied RNG: same grid dimensions plus
// same seed yields a byte-identical event stream.
package gen

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/hunglongtrangithub/mazest/maze"
)

// Generator carves a maze into the recorder's grid.
type Generator interface {
	// Name returns the stable identifier used in CLI flags and status
	// lines.
	Name() string
	// Generate carves the maze. It returns early with the sink's error
	// if the recorder's sink aborts, which is how cancellation reaches
	// a running algorithm.
	Generate(rec *maze.Recorder, rng *rand.Rand) error
}

var registry = map[string]Generator{}

func register(g Generator) {
	registry[g.Name()] = g
}

// ByName looks up a generator by its stable name.
func ByName(name string) (Generator, error) {
	g, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown generator %q (have %v)", name, Names())
	}
	return g, nil
}

// Names returns the registered generator names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered generator, ordered by name.
func All() []Generator {
	out := make([]Generator, 0, len(registry))
	for _, name := range Names() {
		out = append(out, registry[name])
	}
	return out
}

func randomCell(g *maze.Grid, rng *rand.Rand) maze.Cell {
	return maze.Cell{X: rng.Intn(g.Width()), Y: rng.Intn(g.Height())}
}
