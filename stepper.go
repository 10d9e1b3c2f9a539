package astar

import (
	"github.com/pdrpinto/gridastar/internal/arena"
)

// engine owns every node, the frontier and the visited set of one search.
type engine struct {
	grid      *Grid
	heuristic Heuristic

	nodes    *arena.Arena[Coord]
	open     *frontier
	visited  []bool
	state    State
	terminal arena.Handle
	expanded int
}

func newEngine(grid *Grid, opts Options) *engine {
	cellCount := grid.Rows() * grid.Cols()
	e := &engine{
		grid:      grid,
		heuristic: opts.Heuristic,
		nodes:     arena.New[Coord](cellCount),
		visited:   make([]bool, cellCount),
		state:     Searching,
		terminal:  arena.None,
	}
	e.open = newFrontier(e.nodes)
	if cellCount == 0 {
		e.state = Exhausted
		return e
	}

	start := e.nodes.Add(arena.Node[Coord]{
		Cell:   grid.Start(),
		G:      0,
		H:      e.heuristic(grid.Start(), grid.Goal()),
		Parent: arena.None,
	})
	e.open.push(start)
	return e
}

// advance pops frontier entries until one unvisited cell is closed or the
// search terminates. It returns the handle of the closed node, or
// arena.None when nothing was closed.
func (e *engine) advance() arena.Handle {
	for e.state == Searching {
		if e.open.Len() == 0 {
			e.state = Exhausted
			return arena.None
		}

		current := e.open.pop()
		node := e.nodes.Get(current)

		// Skip if already closed
		if e.visited[e.grid.index(node.Cell)] {
			continue
		}
		e.visited[e.grid.index(node.Cell)] = true
		e.expanded++

		if node.Cell == e.grid.Goal() {
			e.state = Found
			e.terminal = current
			return current
		}

		for _, next := range e.grid.Neighbors(node.Cell) {
			if e.visited[e.grid.index(next)] {
				continue
			}
			e.open.push(e.nodes.Add(arena.Node[Coord]{
				Cell:   next,
				G:      node.G + 1,
				H:      e.heuristic(next, e.grid.Goal()),
				Parent: current,
			}))
		}
		return current
	}
	return arena.None
}

func (e *engine) result() Result {
	res := Result{
		Expanded:  e.expanded,
		Generated: e.nodes.Len(),
		Found:     e.state == Found,
	}
	if res.Found {
		res.Path = e.nodes.Path(e.terminal)
		res.Cost = e.nodes.Get(e.terminal).G
	}
	return res
}

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current   Coord
	State     State
	Open      map[Coord]bool
	Closed    map[Coord]bool
	CameFrom  map[Coord]Coord
	Path      []Coord
	StepIndex int
}

// Done reports whether the search reached a terminal state.
func (s StepSnapshot) Done() bool { return s.State != Searching }

// Found reports whether a path was found.
func (s StepSnapshot) Found() bool { return s.State == Found }

// Stepper runs a search one expansion at a time
type Stepper struct {
	engine    *engine
	closed    map[Coord]bool
	cameFrom  map[Coord]Coord
	current   Coord
	stepCount int
}

// NewStepper creates a stepper over grid using the same expansion logic as Search
func NewStepper(grid *Grid, options ...Option) *Stepper {
	return &Stepper{
		engine:   newEngine(grid, applyOptions(options)),
		closed:   make(map[Coord]bool),
		cameFrom: make(map[Coord]Coord),
		current:  grid.Start(),
	}
}

// Grid is the grid being searched.
func (s *Stepper) Grid() *Grid { return s.engine.grid }

// State is the current engine state.
func (s *Stepper) State() State { return s.engine.state }

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done further calls return the final snapshot again.
func (s *Stepper) Step() StepSnapshot {
	if s.engine.state == Searching {
		if handle := s.engine.advance(); handle != arena.None {
			s.stepCount++
			node := s.engine.nodes.Get(handle)
			s.current = node.Cell
			s.closed[node.Cell] = true
			if node.Parent != arena.None {
				s.cameFrom[node.Cell] = s.engine.nodes.Get(node.Parent).Cell
			}
		}
	}

	snapshot := StepSnapshot{
		Current:   s.current,
		State:     s.engine.state,
		Open:      s.engine.open.cells(),
		Closed:    copyMap(s.closed),
		CameFrom:  copyMap(s.cameFrom),
		StepIndex: s.stepCount,
	}
	if s.engine.state == Found {
		snapshot.Path = s.engine.nodes.Path(s.engine.terminal)
	}
	return snapshot
}

// Result returns the outcome so far. Path is only set once the goal is found.
func (s *Stepper) Result() Result { return s.engine.result() }

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	c := make(map[K]V, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
