package sketch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapIndexes() map[string]func() SnapIndex {
	return map[string]func() SnapIndex{
		"linear": func() SnapIndex { return NewLinearIndex(DefaultSnapRadius) },
		"rtree":  func() SnapIndex { return NewRTreeIndex(DefaultSnapRadius) },
	}
}

func TestSnapIndexCommonBehaviour(t *testing.T) {
	for name, newIndex := range snapIndexes() {
		t.Run(name, func(t *testing.T) {
			idx := newIndex()
			assert.Equal(t, DefaultSnapRadius, idx.Radius())

			_, ok := idx.FindNear(pt(0, 0))
			assert.False(t, ok, "empty index")

			idx.Add(0, pt(100, 100))
			idx.Add(1, pt(300, 100))

			got, ok := idx.FindNear(pt(105, 103))
			require.True(t, ok)
			assert.Equal(t, NodeID(0), got)

			_, ok = idx.FindNear(pt(120, 100))
			assert.False(t, ok)

			idx.Move(0, pt(0, 0))
			_, ok = idx.FindNear(pt(100, 100))
			assert.False(t, ok)
			got, ok = idx.FindNear(pt(3, 4))
			require.True(t, ok)
			assert.Equal(t, NodeID(0), got)

			idx.Reset()
			_, ok = idx.FindNear(pt(3, 4))
			assert.False(t, ok)
			assert.Panics(t, func() { idx.Add(5, pt(0, 0)) })
		})
	}
}

func TestRTreeIndexNearestMatch(t *testing.T) {
	idx := NewRTreeIndex(DefaultSnapRadius)
	idx.Add(0, pt(0, 0))
	idx.Add(1, pt(20, 0))

	// 11 from node 0, 9 from node 1: nearest wins
	got, ok := idx.FindNear(pt(11, 0))
	require.True(t, ok)
	assert.Equal(t, NodeID(1), got)

	// Ties go to the lower id
	got, ok = idx.FindNear(pt(10, 0))
	require.True(t, ok)
	assert.Equal(t, NodeID(0), got)
}

func TestRTreeIndexManyNodes(t *testing.T) {
	idx := NewRTreeIndex(DefaultSnapRadius)
	for i := 0; i < 500; i++ {
		idx.Add(NodeID(i), pt(float64(i%25)*40, float64(i/25)*40))
	}

	for _, i := range []int{0, 24, 25, 263, 499} {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			x, y := float64(i%25)*40, float64(i/25)*40
			got, ok := idx.FindNear(pt(x+3, y-2))
			require.True(t, ok)
			assert.Equal(t, NodeID(i), got)
		})
	}
}

func TestGraphWithRTreeIndex(t *testing.T) {
	g := New(WithSnapIndex(NewRTreeIndex(DefaultSnapRadius)))
	a := g.ResolveOrCreateNode(pt(0, 0))
	b := g.ResolveOrCreateNode(pt(20, 0))

	assert.Equal(t, b, g.ResolveOrCreateNode(pt(11, 0)))
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, g.NodeCount())
}
