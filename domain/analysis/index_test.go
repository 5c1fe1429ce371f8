package analysis

import (
	"testing"

	pkgerrors "socialgraph-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndex(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		pairs    [][2]string
		wantErr  bool
		errCheck func(error) bool
	}{
		{
			name:  "valid graph with isolated user",
			ids:   []string{"a", "b", "c"},
			pairs: [][2]string{{"a", "b"}},
		},
		{
			name:  "empty graph",
			ids:   nil,
			pairs: nil,
		},
		{
			name:     "self-loop rejected",
			ids:      []string{"a", "b"},
			pairs:    [][2]string{{"a", "a"}},
			wantErr:  true,
			errCheck: pkgerrors.IsInvalidEdge,
		},
		{
			name:     "missing endpoint rejected",
			ids:      []string{"a", "b"},
			pairs:    [][2]string{{"a", "c"}},
			wantErr:  true,
			errCheck: pkgerrors.IsInvalidEdge,
		},
		{
			name:     "duplicate pair rejected",
			ids:      []string{"a", "b"},
			pairs:    [][2]string{{"a", "b"}, {"a", "b"}},
			wantErr:  true,
			errCheck: pkgerrors.IsDuplicateEdge,
		},
		{
			name:     "reversed pair is the same edge",
			ids:      []string{"a", "b"},
			pairs:    [][2]string{{"a", "b"}, {"b", "a"}},
			wantErr:  true,
			errCheck: pkgerrors.IsDuplicateEdge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, err := BuildIndex(snapshotOf(t, tt.ids, tt.pairs))

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err), "unexpected error kind: %v", err)
				assert.Nil(t, index)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, index)
			assert.Equal(t, len(tt.ids), index.Size())
		})
	}
}

func TestBuildIndexNilSnapshot(t *testing.T) {
	index, err := BuildIndex(nil)
	require.Error(t, err)
	assert.Nil(t, index)
}

func TestIndexEveryUserGetsAnEntry(t *testing.T) {
	index, err := BuildIndex(snapshotOf(t,
		[]string{"a", "b", "loner"},
		[][2]string{{"a", "b"}},
	))
	require.NoError(t, err)

	assert.True(t, index.Has(uid(t, "loner")))
	assert.Empty(t, index.Neighbors(uid(t, "loner")))
	assert.Equal(t, 0, index.Degree(uid(t, "loner")))
}

func TestIndexNeighborsAreSymmetricAndSorted(t *testing.T) {
	index, err := BuildIndex(snapshotOf(t,
		[]string{"a", "b", "c", "d"},
		[][2]string{{"c", "a"}, {"a", "b"}, {"a", "d"}},
	))
	require.NoError(t, err)

	// Sorted ascending regardless of edge input order.
	assert.Equal(t, []string{"b", "c", "d"}, idStrings(index.Neighbors(uid(t, "a"))))

	// Each edge produces both directions.
	for _, other := range []string{"b", "c", "d"} {
		assert.Equal(t, []string{"a"}, idStrings(index.Neighbors(uid(t, other))))
	}
}

func TestIndexNeighborsReturnsCopy(t *testing.T) {
	index, err := BuildIndex(snapshotOf(t,
		[]string{"a", "b", "c"},
		[][2]string{{"a", "b"}, {"a", "c"}},
	))
	require.NoError(t, err)

	ns := index.Neighbors(uid(t, "a"))
	ns[0] = uid(t, "zzz")

	assert.Equal(t, []string{"b", "c"}, idStrings(index.Neighbors(uid(t, "a"))))
}

func TestIndexUserIDsAscending(t *testing.T) {
	index, err := BuildIndex(snapshotOf(t, []string{"m", "a", "z", "k"}, nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "k", "m", "z"}, idStrings(index.UserIDs()))
}
