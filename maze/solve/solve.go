// Package solve provides the maze solving algorithms. Solvers explore
// through a maze.Recorder so every probe is visible as an event, and
// finish by either painting the route start-to-goal or emitting the
// unreachable marker. Exploration order is fully determined by the
// grid and the solver, so solved runs replay identically.
package solve

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/hunglongtrangithub/mazest/maze"
)

// Solver searches the carved maze for a route from start to goal.
type Solver interface {
	// Name returns the stable identifier used in CLI flags and status
	// lines.
	Name() string
	// Solve explores the grid and, when a route exists, marks it and
	// returns the ordered cells from start to goal inclusive. found is
	// false when the goal is unreachable; that is a valid outcome, not
	// an error. The RNG is accepted for interface symmetry with
	// generators; the bundled solvers are deterministic and ignore it.
	Solve(rec *maze.Recorder, start, goal maze.Cell, rng *rand.Rand) (route []maze.Cell, found bool, err error)
}

var registry = map[string]Solver{}

func register(s Solver) {
	registry[s.Name()] = s
}

// ByName looks up a solver by its stable name.
func ByName(name string) (Solver, error) {
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown solver %q (have %v)", name, Names())
	}
	return s, nil
}

// Names returns the registered solver names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered solver, ordered by name.
func All() []Solver {
	out := make([]Solver, 0, len(registry))
	for _, name := range Names() {
		out = append(out, registry[name])
	}
	return out
}

// open returns the neighbors of c reachable through a carved gap.
func open(g *maze.Grid, c maze.Cell) []maze.Cell {
	var out []maze.Cell
	for _, n := range g.Neighbors(c) {
		walled, err := g.WallBetween(c, n)
		if err == nil && !walled {
			out = append(out, n)
		}
	}
	return out
}

// visit marks a probed cell, leaving the start and goal markers alone.
func visit(rec *maze.Recorder, c, start, goal maze.Cell) error {
	if c == start || c == goal {
		return nil
	}
	return rec.SetCell(c, maze.Visited)
}

// markRoute paints the solution from start to goal: each intermediate
// cell plus the gap leading into it, in travel order.
func markRoute(rec *maze.Recorder, route []maze.Cell) error {
	for i := 1; i < len(route); i++ {
		if err := rec.MarkPathBetween(route[i-1], route[i]); err != nil {
			return err
		}
		if i < len(route)-1 {
			if err := rec.SetCell(route[i], maze.Path); err != nil {
				return err
			}
		}
	}
	return nil
}

// reconstruct walks the came-from links backward from goal and returns
// the route in start-to-goal order.
func reconstruct(cameFrom map[maze.Cell]maze.Cell, start, goal maze.Cell) []maze.Cell {
	route := []maze.Cell{goal}
	for cur := goal; cur != start; {
		cur = cameFrom[cur]
		route = append(route, cur)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}
