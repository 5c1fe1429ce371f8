package analysis

import (
	"sync"
	"testing"

	pkgerrors "socialgraph-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngineRejectsBadSnapshots(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		pairs    [][2]string
		errCheck func(error) bool
	}{
		{
			name:     "dangling edge",
			ids:      []string{"a"},
			pairs:    [][2]string{{"a", "missing"}},
			errCheck: pkgerrors.IsInvalidEdge,
		},
		{
			name:     "self-loop",
			ids:      []string{"a"},
			pairs:    [][2]string{{"a", "a"}},
			errCheck: pkgerrors.IsInvalidEdge,
		},
		{
			name:     "duplicate",
			ids:      []string{"a", "b"},
			pairs:    [][2]string{{"a", "b"}, {"b", "a"}},
			errCheck: pkgerrors.IsDuplicateEdge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := NewEngine(snapshotOf(t, tt.ids, tt.pairs))
			require.Error(t, err)
			assert.True(t, tt.errCheck(err))
			assert.Nil(t, engine)
		})
	}
}

func TestEngineQueriesAreSafeConcurrently(t *testing.T) {
	engine := sixUserGraph(t)
	alice, bob, diana := uid(t, "alice"), uid(t, "bob"), uid(t, "diana")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			result, err := engine.ShortestPath(alice, diana)
			assert.NoError(t, err)
			assert.Equal(t, 3, result.Distance)

			assert.Len(t, engine.Communities(), 1)
			assert.Len(t, engine.CommunitiesViaUnionFind(), 1)

			suggestions, err := engine.MutualFriends(bob)
			assert.NoError(t, err)
			assert.Len(t, suggestions, 2)
		}()
	}
	wg.Wait()
}
