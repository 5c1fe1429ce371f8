package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunitiesConnectedScenario(t *testing.T) {
	engine := sixUserGraph(t)

	for name, communities := range map[string][]Community{
		"traversal": engine.Communities(),
		"unionfind": engine.CommunitiesViaUnionFind(),
	} {
		t.Run(name, func(t *testing.T) {
			require.Len(t, communities, 1)
			assert.Equal(t, 0, communities[0].ID)
			assert.Equal(t,
				[]string{"alice", "bob", "charlie", "diana", "eve", "frank"},
				idStrings(communities[0].Members),
			)
		})
	}
}

func TestCommunitiesDisconnectionScenario(t *testing.T) {
	// Same six users without the alice-eve bridge: one component of 4
	// and one of 2.
	engine := engineOf(t,
		[]string{"alice", "bob", "charlie", "diana", "eve", "frank"},
		[][2]string{
			{"alice", "bob"},
			{"bob", "charlie"},
			{"charlie", "diana"},
			{"eve", "frank"},
		},
	)

	for name, communities := range map[string][]Community{
		"traversal": engine.Communities(),
		"unionfind": engine.CommunitiesViaUnionFind(),
	} {
		t.Run(name, func(t *testing.T) {
			require.Len(t, communities, 2)

			sizes := []int{communities[0].Size(), communities[1].Size()}
			assert.ElementsMatch(t, []int{4, 2}, sizes)
		})
	}

	// And diana can no longer reach frank.
	result, err := engine.ShortestPath(uid(t, "diana"), uid(t, "frank"))
	require.NoError(t, err)
	assert.False(t, result.Reachable)
}

func TestCommunitiesRepeatedIDsCountOnce(t *testing.T) {
	// Snapshots assembled outside the aggregate may carry repeated ids;
	// the partition must still hold each user exactly once, under both
	// methods.
	engine := engineOf(t,
		[]string{"a", "b", "a"},
		[][2]string{{"a", "b"}},
	)

	for name, communities := range map[string][]Community{
		"traversal": engine.Communities(),
		"unionfind": engine.CommunitiesViaUnionFind(),
	} {
		t.Run(name, func(t *testing.T) {
			require.Len(t, communities, 1)
			assert.Equal(t, []string{"a", "b"}, idStrings(communities[0].Members))
		})
	}
}

func TestCommunitiesIsolatedUsersAreSingletons(t *testing.T) {
	engine := engineOf(t, []string{"a", "b", "c"}, nil)

	for name, communities := range map[string][]Community{
		"traversal": engine.Communities(),
		"unionfind": engine.CommunitiesViaUnionFind(),
	} {
		t.Run(name, func(t *testing.T) {
			require.Len(t, communities, 3)
			for i, c := range communities {
				assert.Equal(t, i, c.ID)
				assert.Equal(t, 1, c.Size())
			}
		})
	}
}

func TestCommunitiesEmptyGraph(t *testing.T) {
	engine := engineOf(t, nil, nil)

	assert.Empty(t, engine.Communities())
	assert.Empty(t, engine.CommunitiesViaUnionFind())
}

func TestCommunitiesPartitionLaw(t *testing.T) {
	tests := []struct {
		name  string
		ids   []string
		pairs [][2]string
	}{
		{
			name:  "single chain",
			ids:   []string{"a", "b", "c", "d"},
			pairs: [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}},
		},
		{
			name: "three components with isolates",
			ids:  []string{"a", "b", "c", "d", "e", "f", "g"},
			pairs: [][2]string{
				{"a", "b"}, {"b", "c"},
				{"d", "e"},
			},
		},
		{
			name: "cycle plus tail",
			ids:  []string{"a", "b", "c", "d", "e"},
			pairs: [][2]string{
				{"a", "b"}, {"b", "c"}, {"c", "a"},
				{"c", "d"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := engineOf(t, tt.ids, tt.pairs)

			traversal := engine.Communities()
			unionFind := engine.CommunitiesViaUnionFind()

			assertPartition(t, tt.ids, traversal)
			assertPartition(t, tt.ids, unionFind)

			// Both methods must induce the same equivalence relation,
			// even if community numbering differs.
			assert.Equal(t, membershipKey(t, traversal), membershipKey(t, unionFind))
		})
	}
}

func TestCommunitiesMonotonicity(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}
	before := engineOf(t, ids, [][2]string{{"a", "b"}, {"c", "d"}})
	after := engineOf(t, ids, [][2]string{{"a", "b"}, {"c", "d"}, {"b", "c"}})

	assert.LessOrEqual(t, len(after.Communities()), len(before.Communities()))
}

func TestCommunityPaletteAssignment(t *testing.T) {
	// More isolated users than palette entries forces wrap-around.
	ids := make([]string, PaletteSize()+2)
	for i := range ids {
		ids[i] = string(rune('a'+i/26)) + string(rune('a'+i%26))
	}
	engine := engineOf(t, ids, nil)

	communities := engine.Communities()
	require.Len(t, communities, PaletteSize()+2)

	for i, c := range communities {
		assert.Equal(t, communities[i%PaletteSize()].Color, c.Color)
		assert.NotEmpty(t, c.Color)
	}
	assert.Equal(t, communities[0].Color, communities[PaletteSize()].Color)
	assert.NotEqual(t, communities[0].Color, communities[1].Color)
}

// assertPartition checks that communities are pairwise disjoint and
// cover every user exactly once
func assertPartition(t *testing.T, ids []string, communities []Community) {
	t.Helper()

	seen := make(map[string]bool)
	for _, c := range communities {
		assert.NotEmpty(t, c.Members)
		for _, m := range c.Members {
			assert.False(t, seen[m.String()], "user %s in more than one community", m)
			seen[m.String()] = true
		}
	}

	require.Len(t, seen, len(ids))
	for _, id := range ids {
		assert.True(t, seen[id], "user %s missing from partition", id)
	}
}

// membershipKey reduces a partition to a comparable form: each user
// mapped to the sorted member list of its community
func membershipKey(t *testing.T, communities []Community) map[string][]string {
	t.Helper()

	key := make(map[string][]string)
	for _, c := range communities {
		members := idStrings(c.Members)
		for _, m := range c.Members {
			key[m.String()] = members
		}
	}
	return key
}
