package solve

import (
	"math/rand"

	"github.com/hunglongtrangithub/mazest/maze"
)

func init() { register(astar{}) }

// astar is A* with the Manhattan distance heuristic, which is
// admissible on a 4-connected grid, so the route it finds is shortest.
type astar struct{}

func (astar) Name() string { return "astar" }

func (astar) Solve(rec *maze.Recorder, start, goal maze.Cell, _ *rand.Rand) ([]maze.Cell, bool, error) {
	return costSearch(rec, start, goal, func(c maze.Cell) int {
		return abs(c.X-goal.X) + abs(c.Y-goal.Y)
	})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
