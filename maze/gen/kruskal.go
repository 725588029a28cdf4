package gen

import (
	"math/rand"

	"github.com/hunglongtrangithub/mazest/maze"
)

func init() { register(kruskal{}) }

// kruskal is randomized Kruskal's algorithm: shuffle every interior
// wall and knock it down whenever the two cells it separates are not
// yet connected. Connectivity is tracked with a union-find using path
// compression and union by rank. The fresh grid already has every
// logical cell open and every gap walled, which is exactly Kruskal's
// starting position.
type kruskal struct{}

func (kruskal) Name() string { return "kruskal" }

type edge struct {
	a, b maze.Cell
}

func (kruskal) Generate(rec *maze.Recorder, rng *rand.Rand) error {
	g := rec.Grid()
	w, h := g.Width(), g.Height()

	edges := make([]edge, 0, 2*w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x+1 < w {
				edges = append(edges, edge{maze.Cell{X: x, Y: y}, maze.Cell{X: x + 1, Y: y}})
			}
			if y+1 < h {
				edges = append(edges, edge{maze.Cell{X: x, Y: y}, maze.Cell{X: x, Y: y + 1}})
			}
		}
	}
	rng.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	uf := newUnionFind(w * h)
	id := func(c maze.Cell) int { return c.Y*w + c.X }

	for _, e := range edges {
		if uf.union(id(e.a), id(e.b)) {
			if err := rec.CarveBetween(e.a, e.b); err != nil {
				return err
			}
		}
	}
	return nil
}

type unionFind struct {
	parent []int
	rank   []uint8
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]uint8, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// union merges the sets containing x and y, reporting whether they
// were previously disjoint.
func (uf *unionFind) union(x, y int) bool {
	rx, ry := uf.find(x), uf.find(y)
	if rx == ry {
		return false
	}
	if uf.rank[rx] < uf.rank[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	if uf.rank[rx] == uf.rank[ry] {
		uf.rank[rx]++
	}
	return true
}
