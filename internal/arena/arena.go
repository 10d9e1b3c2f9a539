// Package arena stores the search nodes of a single A* run.
//
// Nodes refer to their predecessor by Handle, an index into the arena, so a
// path can be rebuilt without holding pointers between nodes.
package arena

// Handle identifies a node inside an Arena.
type Handle int

// None marks a node without predecessor.
const None Handle = -1

// Node is one visit to a cell during the search.
type Node[Cell any] struct {
	Cell   Cell
	G      int
	H      int
	Parent Handle
}

// F is the estimated total cost. Always derived from G and H.
func (n Node[Cell]) F() int { return n.G + n.H }

// Arena is an append-only store of nodes.
type Arena[Cell any] struct {
	nodes []Node[Cell]
}

// New returns an arena with room for sizeHint nodes.
func New[Cell any](sizeHint int) *Arena[Cell] {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Arena[Cell]{nodes: make([]Node[Cell], 0, sizeHint)}
}

// Add appends a node and returns its handle.
func (a *Arena[Cell]) Add(node Node[Cell]) Handle {
	a.nodes = append(a.nodes, node)
	return Handle(len(a.nodes) - 1)
}

// Get returns the node behind handle. It panics on an unknown handle.
func (a *Arena[Cell]) Get(handle Handle) Node[Cell] {
	return a.nodes[handle]
}

// Len is the number of nodes created so far.
func (a *Arena[Cell]) Len() int { return len(a.nodes) }

// Path rebuilds the cells from the root of the chain to handle.
func (a *Arena[Cell]) Path(handle Handle) []Cell {
	path := make([]Cell, 0, a.nodes[handle].G+1)
	for current := handle; current != None; current = a.nodes[current].Parent {
		path = append(path, a.nodes[current].Cell)
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
