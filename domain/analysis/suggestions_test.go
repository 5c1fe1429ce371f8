package analysis

import (
	"testing"

	pkgerrors "socialgraph-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutualFriendsScenario(t *testing.T) {
	engine := sixUserGraph(t)

	suggestions, err := engine.MutualFriends(uid(t, "bob"))
	require.NoError(t, err)

	// Diana shares charlie with bob, eve shares alice. Both count 1,
	// tie broken ascending by id. Alice and charlie are already
	// friends of bob and must not appear; frank shares nobody.
	require.Len(t, suggestions, 2)

	assert.Equal(t, "diana", suggestions[0].UserID.String())
	assert.Equal(t, 1, suggestions[0].MutualCount)
	assert.Equal(t, []string{"charlie"}, idStrings(suggestions[0].MutualFriends))

	assert.Equal(t, "eve", suggestions[1].UserID.String())
	assert.Equal(t, 1, suggestions[1].MutualCount)
	assert.Equal(t, []string{"alice"}, idStrings(suggestions[1].MutualFriends))
}

func TestMutualFriendsUnknownNode(t *testing.T) {
	engine := sixUserGraph(t)

	_, err := engine.MutualFriends(uid(t, "ghost"))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsUnknownNode(err))
}

func TestMutualFriendsExclusionLaw(t *testing.T) {
	engine := sixUserGraph(t)
	index := engine.Index()

	for _, user := range []string{"alice", "bob", "charlie", "diana", "eve", "frank"} {
		userID := uid(t, user)
		suggestions, err := engine.MutualFriends(userID)
		require.NoError(t, err)

		friends := idStrings(index.Neighbors(userID))
		for _, s := range suggestions {
			assert.NotEqual(t, userID, s.UserID, "suggested itself")
			assert.NotContains(t, friends, s.UserID.String(), "suggested an existing friend")
			assert.NotEmpty(t, s.MutualFriends, "empty shared set must be filtered out")
			assert.Equal(t, len(s.MutualFriends), s.MutualCount)
		}
	}
}

func TestMutualFriendsRanking(t *testing.T) {
	// hub shares two friends with x (a, b) and one with y (c).
	engine := engineOf(t,
		[]string{"hub", "a", "b", "c", "x", "y"},
		[][2]string{
			{"hub", "a"}, {"hub", "b"}, {"hub", "c"},
			{"x", "a"}, {"x", "b"},
			{"y", "c"},
		},
	)

	suggestions, err := engine.MutualFriends(uid(t, "hub"))
	require.NoError(t, err)

	require.Len(t, suggestions, 2)
	assert.Equal(t, "x", suggestions[0].UserID.String())
	assert.Equal(t, 2, suggestions[0].MutualCount)
	assert.Equal(t, []string{"a", "b"}, idStrings(suggestions[0].MutualFriends))
	assert.Equal(t, "y", suggestions[1].UserID.String())
	assert.Equal(t, 1, suggestions[1].MutualCount)
}

func TestMutualFriendsTieBreakAscending(t *testing.T) {
	// z and b both share exactly one friend with the query user; b
	// must come first despite z being discovered later in no
	// particular input order.
	engine := engineOf(t,
		[]string{"q", "m", "z", "b"},
		[][2]string{
			{"q", "m"},
			{"z", "m"},
			{"b", "m"},
		},
	)

	suggestions, err := engine.MutualFriends(uid(t, "q"))
	require.NoError(t, err)

	require.Len(t, suggestions, 2)
	assert.Equal(t, "b", suggestions[0].UserID.String())
	assert.Equal(t, "z", suggestions[1].UserID.String())
}

func TestMutualFriendsNoCandidates(t *testing.T) {
	tests := []struct {
		name  string
		ids   []string
		pairs [][2]string
		user  string
	}{
		{
			name: "isolated user",
			ids:  []string{"a", "b", "c"},
			pairs: [][2]string{
				{"b", "c"},
			},
			user: "a",
		},
		{
			name:  "fully connected pair",
			ids:   []string{"a", "b"},
			pairs: [][2]string{{"a", "b"}},
			user:  "a",
		},
		{
			name:  "single user graph",
			ids:   []string{"a"},
			pairs: nil,
			user:  "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := engineOf(t, tt.ids, tt.pairs)

			suggestions, err := engine.MutualFriends(uid(t, tt.user))
			require.NoError(t, err)
			assert.Empty(t, suggestions)
		})
	}
}

func TestIntersectSorted(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want []string
	}{
		{"disjoint", []string{"a", "c"}, []string{"b", "d"}, nil},
		{"overlap", []string{"a", "b", "c"}, []string{"b", "c", "d"}, []string{"b", "c"}},
		{"identical", []string{"a", "b"}, []string{"a", "b"}, []string{"a", "b"}},
		{"one empty", []string{"a"}, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := intersectSorted(uids(t, tt.a...), uids(t, tt.b...))
			if tt.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, idStrings(got))
			}
		})
	}
}
