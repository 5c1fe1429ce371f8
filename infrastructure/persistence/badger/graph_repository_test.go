package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"socialgraph-backend/domain/core/entities"
	"socialgraph-backend/domain/core/valueobjects"
)

func newTestRepository(t *testing.T) *GraphRepository {
	t.Helper()

	repo, err := NewGraphRepository(InMemoryConfig(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, repo.Close())
	})
	return repo
}

func TestLoadCreatesEmptyGraphOnFirstUse(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	graph, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, graph.UserCount())
	assert.Equal(t, 0, graph.FriendshipCount())
	assert.Empty(t, graph.GetUncommittedEvents())

	// The freshly created graph is durable: a second load yields the
	// same aggregate identity.
	again, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, graph.ID(), again.ID())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	graph, err := repo.Load(ctx)
	require.NoError(t, err)

	alice, err := valueobjects.NewUserIDFromString("alice")
	require.NoError(t, err)
	bob, err := valueobjects.NewUserIDFromString("bob")
	require.NoError(t, err)

	// Fixed ids keep the reloaded graph addressable in asserts.
	ua, err := entities.ReconstructUser(alice, "Alice", graph.CreatedAt())
	require.NoError(t, err)
	ub, err := entities.ReconstructUser(bob, "Bob", graph.CreatedAt())
	require.NoError(t, err)

	require.NoError(t, graph.AddUser(ua))
	require.NoError(t, graph.AddUser(ub))
	_, err = graph.AddFriendship(alice, bob)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, graph))

	reloaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.UserCount())
	assert.Equal(t, 1, reloaded.FriendshipCount())
	assert.True(t, reloaded.HasUser(alice))
	assert.True(t, reloaded.HasUser(bob))

	user, err := reloaded.GetUser(bob)
	require.NoError(t, err)
	assert.Equal(t, "Bob", user.Label())
}

func TestReplaceSwapsStoredGraph(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	graph, err := repo.Load(ctx)
	require.NoError(t, err)

	alice, err := valueobjects.NewUserIDFromString("alice")
	require.NoError(t, err)
	ua, err := entities.ReconstructUser(alice, "Alice", graph.CreatedAt())
	require.NoError(t, err)
	require.NoError(t, graph.AddUser(ua))
	require.NoError(t, repo.Save(ctx, graph))

	// A fresh import replaces the previous content entirely.
	imported, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, imported.RemoveUser(alice))
	require.NoError(t, repo.Replace(ctx, imported))

	reloaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.UserCount())
}

func TestLoadRespectsContextCancellation(t *testing.T) {
	repo := newTestRepository(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Load(ctx)
	assert.Error(t, err)
}

func TestNewGraphRepositoryRequiresPath(t *testing.T) {
	_, err := NewGraphRepository(Config{}, zap.NewNop())
	assert.Error(t, err)
}
