package solve

import (
	"math/rand"

	"github.com/hunglongtrangithub/mazest/maze"
)

func init() { register(bfs{}) }

// bfs is breadth-first search. On a unit-weight grid it finds a
// shortest route.
type bfs struct{}

func (bfs) Name() string { return "bfs" }

func (bfs) Solve(rec *maze.Recorder, start, goal maze.Cell, _ *rand.Rand) ([]maze.Cell, bool, error) {
	g := rec.Grid()
	cameFrom := map[maze.Cell]maze.Cell{start: start}
	queue := []maze.Cell{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
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
			queue = append(queue, n)
		}
	}
	return nil, false, nil
}
