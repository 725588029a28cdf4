package solve

import (
	"container/heap"

	"github.com/hunglongtrangithub/mazest/maze"
)

// frontier is a priority queue of cells ordered by priority, with ties
// broken by insertion order so exploration stays deterministic. With
// every priority equal it degenerates to FIFO, which is how Dijkstra
// on a unit-weight grid behaves.
type frontier struct {
	items frontierItems
	n     uint64
}

type frontierItem struct {
	cell     maze.Cell
	priority int
	order    uint64
}

type frontierItems []frontierItem

func (f frontierItems) Len() int { return len(f) }

func (f frontierItems) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].order < f[j].order
}

func (f frontierItems) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontierItems) Push(x any) { *f = append(*f, x.(frontierItem)) }

func (f *frontierItems) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

func (f *frontier) push(c maze.Cell, priority int) {
	f.n++
	heap.Push(&f.items, frontierItem{cell: c, priority: priority, order: f.n})
}

func (f *frontier) pop() maze.Cell {
	return heap.Pop(&f.items).(frontierItem).cell
}

func (f *frontier) empty() bool { return len(f.items) == 0 }
