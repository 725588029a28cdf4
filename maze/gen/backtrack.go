package gen

import (
	"math/rand"

	"github.com/hunglongtrangithub/mazest/maze"
)

func init() { register(backtracker{}) }

// backtracker is iterative randomized depth-first search. It fills the
// grid with walls, opens a random start cell, and repeatedly carves
// into a random unvisited neighbor, backtracking when boxed in. The
// explicit stack keeps large grids off the call stack.
type backtracker struct{}

func (backtracker) Name() string { return "backtracker" }

func (backtracker) Generate(rec *maze.Recorder, rng *rand.Rand) error {
	if err := rec.FillWalls(); err != nil {
		return err
	}
	g := rec.Grid()

	visited := make(map[maze.Cell]bool, g.Width()*g.Height())
	start := randomCell(g, rng)
	if err := rec.SetCell(start, maze.Passage); err != nil {
		return err
	}
	visited[start] = true

	stack := []maze.Cell{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var next []maze.Cell
		for _, n := range g.Neighbors(cur) {
			if !visited[n] {
				next = append(next, n)
			}
		}
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		chosen := next[rng.Intn(len(next))]
		if err := rec.CarveBetween(cur, chosen); err != nil {
			return err
		}
		if err := rec.SetCell(chosen, maze.Passage); err != nil {
			return err
		}
		visited[chosen] = true
		stack = append(stack, chosen)
	}
	return nil
}
