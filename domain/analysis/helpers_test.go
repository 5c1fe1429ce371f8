package analysis

import (
	"testing"

	"socialgraph-backend/domain/core/aggregates"
	"socialgraph-backend/domain/core/valueobjects"

	"github.com/stretchr/testify/require"
)

// uid converts a bare string into a UserID, failing the test on empty ids
func uid(t *testing.T, s string) valueobjects.UserID {
	t.Helper()
	id, err := valueobjects.NewUserIDFromString(s)
	require.NoError(t, err)
	return id
}

// uids converts a list of bare strings into UserIDs
func uids(t *testing.T, ss ...string) []valueobjects.UserID {
	t.Helper()
	out := make([]valueobjects.UserID, len(ss))
	for i, s := range ss {
		out[i] = uid(t, s)
	}
	return out
}

// snapshotOf assembles a snapshot from string ids and [source, target] pairs
func snapshotOf(t *testing.T, ids []string, pairs [][2]string) *aggregates.Snapshot {
	t.Helper()
	ps := make([]aggregates.Pair, len(pairs))
	for i, p := range pairs {
		ps[i] = aggregates.Pair{Source: uid(t, p[0]), Target: uid(t, p[1])}
	}
	return aggregates.NewSnapshot(uids(t, ids...), ps)
}

// engineOf builds an engine over snapshotOf, failing the test on construction errors
func engineOf(t *testing.T, ids []string, pairs [][2]string) *Engine {
	t.Helper()
	engine, err := NewEngine(snapshotOf(t, ids, pairs))
	require.NoError(t, err)
	return engine
}

// sixUserGraph is the canonical fixture: Alice-Bob, Bob-Charlie,
// Charlie-Diana, Alice-Eve, Eve-Frank. Connected through Alice.
func sixUserGraph(t *testing.T) *Engine {
	t.Helper()
	return engineOf(t,
		[]string{"alice", "bob", "charlie", "diana", "eve", "frank"},
		[][2]string{
			{"alice", "bob"},
			{"bob", "charlie"},
			{"charlie", "diana"},
			{"alice", "eve"},
			{"eve", "frank"},
		},
	)
}

// idStrings flattens UserIDs back to plain strings for assertions
func idStrings(ids []valueobjects.UserID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
