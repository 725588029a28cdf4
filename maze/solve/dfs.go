package solve

import (
	"math/rand"

	"github.com/hunglongtrangithub/mazest/maze"
)

func init() { register(dfs{}) }

// dfs is iterative depth-first search. It finds a route, not
// necessarily a shortest one; in a perfect maze the two coincide.
type dfs struct{}

func (dfs) Name() string { return "dfs" }

func (dfs) Solve(rec *maze.Recorder, start, goal maze.Cell, _ *rand.Rand) ([]maze.Cell, bool, error) {
	g := rec.Grid()
	cameFrom := map[maze.Cell]maze.Cell{start: start}
	stack := []maze.Cell{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == goal {
			route := reconstruct(cameFrom, start, goal)
			return route, true, markRoute(rec, route)
		}
		if err := visit(rec, cur, start, goal); err != nil {
			return nil, false, err
		}
		for _, n := range open(g, cur) {
			if _, seen := cameFrom[n]; seen {
				continue
			}
			cameFrom[n] = cur
			stack = append(stack, n)
		}
	}
	return nil, false, nil
}
