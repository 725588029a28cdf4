package gen

import (
	"math/rand"

	"github.com/hunglongtrangithub/mazest/maze"
)

func init() { register(division{}) }

// division is recursive division: start from an open field, split it
// with a wall line leaving a single doorway, then recurse into both
// halves until regions are a single cell wide or tall. Splits run
// perpendicular to the longer axis so corridors stay short.
type division struct{}

func (division) Name() string { return "division" }

func (division) Generate(rec *maze.Recorder, rng *rand.Rand) error {
	if err := rec.ClearWalls(); err != nil {
		return err
	}
	g := rec.Grid()
	return divide(rec, rng, 0, 0, g.Width()-1, g.Height()-1)
}

// divide splits the inclusive logical region [x0,x1]x[y0,y1].
func divide(rec *maze.Recorder, rng *rand.Rand, x0, y0, x1, y1 int) error {
	w, h := x1-x0+1, y1-y0+1
	if w < 2 && h < 2 {
		return nil
	}

	horizontal := h > w || (h == w && rng.Intn(2) == 0)
	if w < 2 {
		horizontal = true
	} else if h < 2 {
		horizontal = false
	}

	if horizontal {
		wy := y0 + rng.Intn(h-1) // wall sits between rows wy and wy+1
		door := x0 + rng.Intn(w)
		if err := rec.InsertWallLine(wy, x0, x1, maze.Horizontal); err != nil {
			return err
		}
		if err := rec.OpenGapAfter(maze.Cell{X: door, Y: wy}, maze.Horizontal); err != nil {
			return err
		}
		if err := divide(rec, rng, x0, y0, x1, wy); err != nil {
			return err
		}
		return divide(rec, rng, x0, wy+1, x1, y1)
	}

	wx := x0 + rng.Intn(w-1) // wall sits between columns wx and wx+1
	door := y0 + rng.Intn(h)
	if err := rec.InsertWallLine(wx, y0, y1, maze.Vertical); err != nil {
		return err
	}
	if err := rec.OpenGapAfter(maze.Cell{X: wx, Y: door}, maze.Vertical); err != nil {
		return err
	}
	if err := divide(rec, rng, x0, y0, wx, y1); err != nil {
		return err
	}
	return divide(rec, rng, wx+1, y0, x1, y1)
}
