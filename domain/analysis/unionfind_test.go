package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnionFindSingletons(t *testing.T) {
	uf := newUnionFind(4)

	for i := 0; i < 4; i++ {
		assert.Equal(t, i, uf.find(i))
	}
}

func TestUnionFindUnion(t *testing.T) {
	uf := newUnionFind(5)

	assert.True(t, uf.union(0, 1))
	assert.True(t, uf.union(2, 3))
	assert.False(t, uf.union(1, 0), "already merged")

	assert.Equal(t, uf.find(0), uf.find(1))
	assert.Equal(t, uf.find(2), uf.find(3))
	assert.NotEqual(t, uf.find(0), uf.find(2))
	assert.Equal(t, 4, uf.find(4))

	assert.True(t, uf.union(1, 3))
	assert.Equal(t, uf.find(0), uf.find(3))
}

func TestUnionFindPathCompression(t *testing.T) {
	// Build a deliberately deep chain, then confirm find flattens it.
	const n = 1000
	uf := newUnionFind(n)
	for i := 0; i < n-1; i++ {
		// Union in an order that keeps extending one set.
		uf.union(i, i+1)
	}

	root := uf.find(0)
	for i := 0; i < n; i++ {
		assert.Equal(t, root, uf.find(i))
	}

	// After compression every node points at the root directly.
	for i := 0; i < n; i++ {
		assert.Equal(t, root, uf.parent[i])
	}
}

func TestUnionFindDeepChainIterativeFind(t *testing.T) {
	// Large enough that a recursive find would be at risk of blowing
	// the stack if compression were defeated; the iterative walk must
	// handle it regardless.
	const n = 200000
	uf := newUnionFind(n)
	for i := 0; i < n-1; i++ {
		uf.union(i, i+1)
	}

	assert.Equal(t, uf.find(0), uf.find(n-1))
}
