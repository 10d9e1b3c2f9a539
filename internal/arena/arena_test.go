package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena(t *testing.T) {
	t.Run("Add returns sequential handles", func(t *testing.T) {
		a := New[string](0)
		first := a.Add(Node[string]{Cell: "a", Parent: None})
		second := a.Add(Node[string]{Cell: "b", Parent: first})

		assert.Equal(t, Handle(0), first)
		assert.Equal(t, Handle(1), second)
		assert.Equal(t, 2, a.Len())
		assert.Equal(t, first, a.Get(second).Parent)
	})

	t.Run("F is recomputed from G and H", func(t *testing.T) {
		n := Node[int]{G: 3, H: 4}
		assert.Equal(t, 7, n.F())
		n.G = 10
		assert.Equal(t, 14, n.F())
	})

	t.Run("Path walks predecessors back to the root", func(t *testing.T) {
		a := New[int](4)
		root := a.Add(Node[int]{Cell: 1, G: 0, Parent: None})
		mid := a.Add(Node[int]{Cell: 2, G: 1, Parent: root})
		a.Add(Node[int]{Cell: 99, G: 1, Parent: root}) // sibling, not on the chain
		leaf := a.Add(Node[int]{Cell: 3, G: 2, Parent: mid})

		path := a.Path(leaf)
		require.Len(t, path, 3)
		assert.Equal(t, []int{1, 2, 3}, path)
	})

	t.Run("Path of the root is the root alone", func(t *testing.T) {
		a := New[int](-5)
		root := a.Add(Node[int]{Cell: 42, Parent: None})
		assert.Equal(t, []int{42}, a.Path(root))
	})
}
