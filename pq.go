package astar

import (
	"container/heap"

	"github.com/pdrpinto/gridastar/internal/arena"
)

// frontier is a min-heap of arena handles ordered by f = g + h.
// The same cell may be queued more than once; stale entries are dropped
// by the visited check when they are popped.
type frontier struct {
	nodes   *arena.Arena[Coord]
	handles []arena.Handle
}

func newFrontier(nodes *arena.Arena[Coord]) *frontier {
	f := &frontier{nodes: nodes}
	heap.Init(f)
	return f
}

func (f *frontier) Len() int { return len(f.handles) }

func (f *frontier) Less(i, j int) bool {
	a, b := f.nodes.Get(f.handles[i]), f.nodes.Get(f.handles[j])
	if a.F() != b.F() {
		return a.F() < b.F()
	}
	return a.H < b.H
}

func (f *frontier) Swap(i, j int) { f.handles[i], f.handles[j] = f.handles[j], f.handles[i] }

func (f *frontier) Push(x any) { f.handles = append(f.handles, x.(arena.Handle)) }

func (f *frontier) Pop() any {
	n := len(f.handles)
	item := f.handles[n-1]
	f.handles = f.handles[:n-1]
	return item
}

func (f *frontier) push(handle arena.Handle) { heap.Push(f, handle) }

func (f *frontier) pop() arena.Handle { return heap.Pop(f).(arena.Handle) }

// cells lists the distinct cells currently queued.
func (f *frontier) cells() map[Coord]bool {
	open := make(map[Coord]bool, len(f.handles))
	for _, h := range f.handles {
		open[f.nodes.Get(h).Cell] = true
	}
	return open
}
