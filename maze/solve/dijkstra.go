package solve

import (
	"math/rand"

	"github.com/hunglongtrangithub/mazest/maze"
)

func init() { register(dijkstra{}) }

// dijkstra is Dijkstra's algorithm over the unit-weight cell graph:
// best-first search with a zero heuristic.
type dijkstra struct{}

func (dijkstra) Name() string { return "dijkstra" }

func (dijkstra) Solve(rec *maze.Recorder, start, goal maze.Cell, _ *rand.Rand) ([]maze.Cell, bool, error) {
	return costSearch(rec, start, goal, func(maze.Cell) int { return 0 })
}

// costSearch is best-first search with unit edge weights and a
// caller-supplied heuristic. A zero heuristic gives Dijkstra, an
// admissible one gives A*; both return a shortest route when the goal
// is reachable.
func costSearch(rec *maze.Recorder, start, goal maze.Cell, h func(maze.Cell) int) ([]maze.Cell, bool, error) {
	g := rec.Grid()
	cameFrom := map[maze.Cell]maze.Cell{start: start}
	dist := map[maze.Cell]int{start: 0}
	done := map[maze.Cell]bool{}

	var pq frontier
	pq.push(start, h(start))

	for !pq.empty() {
		cur := pq.pop()
		if done[cur] {
			continue
		}
		done[cur] = true
		if cur == goal {
			route := reconstruct(cameFrom, start, goal)
			return route, true, markRoute(rec, route)
		}
		if err := visit(rec, cur, start, goal); err != nil {
			return nil, false, err
		}
		for _, n := range open(g, cur) {
			d := dist[cur] + 1
			if old, seen := dist[n]; seen && old <= d {
				continue
			}
			dist[n] = d
			cameFrom[n] = cur
			pq.push(n, d+h(n))
		}
	}
	return nil, false, nil
}
