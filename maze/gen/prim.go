package gen

import (
	"math/rand"

	"github.com/hunglongtrangithub/mazest/maze"
)

func init() { register(prim{}) }

// prim is randomized Prim's algorithm. Cells bordering the carved
// region are marked Frontier and picked uniformly at random; each pick
// is connected to a random already-carved neighbor. The frontier is
// kept in a slice with swap-remove so picks are O(1) and fully
// determined by the RNG.
type prim struct{}

func (prim) Name() string { return "prim" }

func (prim) Generate(rec *maze.Recorder, rng *rand.Rand) error {
	if err := rec.FillWalls(); err != nil {
		return err
	}
	g := rec.Grid()

	inFrontier := make(map[maze.Cell]bool)
	carved := make(map[maze.Cell]bool)
	var frontier []maze.Cell

	addFrontier := func(c maze.Cell) error {
		if carved[c] || inFrontier[c] {
			return nil
		}
		if err := rec.SetCell(c, maze.Frontier); err != nil {
			return err
		}
		inFrontier[c] = true
		frontier = append(frontier, c)
		return nil
	}

	start := randomCell(g, rng)
	if err := rec.SetCell(start, maze.Passage); err != nil {
		return err
	}
	carved[start] = true
	for _, n := range g.Neighbors(start) {
		if err := addFrontier(n); err != nil {
			return err
		}
	}

	for len(frontier) > 0 {
		i := rng.Intn(len(frontier))
		cur := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		delete(inFrontier, cur)

		var carvedNeighbors []maze.Cell
		for _, n := range g.Neighbors(cur) {
			if carved[n] {
				carvedNeighbors = append(carvedNeighbors, n)
			}
		}
		into := carvedNeighbors[rng.Intn(len(carvedNeighbors))]

		if err := rec.SetCell(cur, maze.Passage); err != nil {
			return err
		}
		if err := rec.CarveBetween(cur, into); err != nil {
			return err
		}
		carved[cur] = true

		for _, n := range g.Neighbors(cur) {
			if err := addFrontier(n); err != nil {
				return err
			}
		}
	}
	return nil
}
