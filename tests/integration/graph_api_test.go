package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialgraph-backend/application/queries"
	"socialgraph-backend/application/services"
	"socialgraph-backend/infrastructure/config"
	"socialgraph-backend/infrastructure/di"
	"socialgraph-backend/interfaces/http/rest"
)

// envelope mirrors the standard API response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		ServerAddress:          ":0",
		Environment:            "production",
		InMemoryStorage:        true,
		EnableMetrics:          true,
		EnableCORS:             false,
		ShutdownTimeoutSeconds: 5,
	}

	container, err := di.InitializeContainer(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { container.Close() })

	router := rest.NewRouter(cfg, container.CommandBus, container.QueryBus, container.Metrics, container.Logger)
	server := httptest.NewServer(router.Setup())
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func addUser(t *testing.T, base, id, label string) {
	t.Helper()
	resp, env := doJSON(t, http.MethodPost, base+"/api/v1/users", map[string]string{
		"id":    id,
		"label": label,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, env.Success)
}

func addFriendship(t *testing.T, base, source, target string) {
	t.Helper()
	resp, env := doJSON(t, http.MethodPost, base+"/api/v1/friendships", map[string]string{
		"source_id": source,
		"target_id": target,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, env.Success)
}

func seedFixture(t *testing.T, base string) {
	t.Helper()
	for _, u := range []string{"alice", "bob", "charlie", "diana", "eve", "frank"} {
		addUser(t, base, u, u)
	}
	pairs := [][2]string{
		{"alice", "bob"},
		{"bob", "charlie"},
		{"charlie", "diana"},
		{"alice", "eve"},
		{"eve", "frank"},
	}
	for _, p := range pairs {
		addFriendship(t, base, p[0], p[1])
	}
}

func TestUserAndFriendshipLifecycle(t *testing.T) {
	server := newTestServer(t)
	base := server.URL

	addUser(t, base, "alice", "Alice")
	addUser(t, base, "bob", "Bob")
	addFriendship(t, base, "alice", "bob")

	// Renaming updates the stored label.
	resp, env := doJSON(t, http.MethodPut, base+"/api/v1/users/alice", map[string]string{
		"label": "Alice Cooper",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = doJSON(t, http.MethodGet, base+"/api/v1/users", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var users []queries.UserView
	require.NoError(t, json.Unmarshal(env.Data, &users))
	require.Len(t, users, 2)
	assert.Equal(t, "Alice Cooper", users[0].Label)

	resp, _ = doJSON(t, http.MethodPut, base+"/api/v1/users/ghost", map[string]string{
		"label": "Ghost",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Duplicate pair, also reversed, is a conflict.
	resp, env = doJSON(t, http.MethodPost, base+"/api/v1/friendships", map[string]string{
		"source_id": "bob",
		"target_id": "alice",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DUPLICATE_EDGE", env.Error.Code)

	// Self-loops are invalid.
	resp, _ = doJSON(t, http.MethodPost, base+"/api/v1/friendships", map[string]string{
		"source_id": "alice",
		"target_id": "alice",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Removing the friendship works with the pair reversed.
	resp, _ = doJSON(t, http.MethodDelete, base+"/api/v1/friendships?source=bob&target=alice", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Removing an unknown user is 404.
	resp, _ = doJSON(t, http.MethodDelete, base+"/api/v1/users/ghost", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, base+"/api/v1/users/bob", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAnalysisEndpoints(t *testing.T) {
	server := newTestServer(t)
	base := server.URL
	seedFixture(t, base)

	// Shortest path.
	resp, env := doJSON(t, http.MethodGet, base+"/api/v1/analysis/path?start=alice&end=diana", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var path queries.ShortestPathResult
	require.NoError(t, json.Unmarshal(env.Data, &path))
	assert.True(t, path.Reachable)
	assert.Equal(t, []string{"alice", "bob", "charlie", "diana"}, path.Path)

	// Unknown endpoint is 404; unreachable is 200.
	resp, _ = doJSON(t, http.MethodGet, base+"/api/v1/analysis/path?start=alice&end=ghost", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	addUser(t, base, "zed", "Zed")
	resp, env = doJSON(t, http.MethodGet, base+"/api/v1/analysis/path?start=alice&end=zed", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &path))
	assert.False(t, path.Reachable)

	// Communities: both methods, same partition.
	for _, method := range []string{"", "traversal", "unionfind"} {
		url := base + "/api/v1/analysis/communities"
		if method != "" {
			url += "?method=" + method
		}
		resp, env = doJSON(t, http.MethodGet, url, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, "method %q", method)

		var communities queries.CommunitiesResult
		require.NoError(t, json.Unmarshal(env.Data, &communities))
		require.Len(t, communities.Communities, 2)
		assert.Equal(t, 6, communities.Communities[0].Size)
		assert.Equal(t, []string{"zed"}, communities.Communities[1].Members)
	}

	resp, _ = doJSON(t, http.MethodGet, base+"/api/v1/analysis/communities?method=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Suggestions.
	resp, env = doJSON(t, http.MethodGet, base+"/api/v1/analysis/suggestions/bob", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var suggestions queries.MutualFriendsResult
	require.NoError(t, json.Unmarshal(env.Data, &suggestions))
	require.Len(t, suggestions.Suggestions, 2)
	assert.Equal(t, "diana", suggestions.Suggestions[0].UserID)
	assert.Equal(t, "eve", suggestions.Suggestions[1].UserID)
}

func TestGraphEndpoints(t *testing.T) {
	server := newTestServer(t)
	base := server.URL
	seedFixture(t, base)

	// Render payload.
	resp, env := doJSON(t, http.MethodGet, base+"/api/v1/graph", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var data queries.GraphDataResult
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Users, 6)
	assert.Len(t, data.Friendships, 5)
	for _, u := range data.Users {
		assert.NotEmpty(t, u.Color)
	}

	// Stats.
	resp, env = doJSON(t, http.MethodGet, base+"/api/v1/graph/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats queries.GraphStatsResult
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 6, stats.UserCount)
	assert.Equal(t, 1, stats.CommunityCount)

	// Export produces a raw document, not the API envelope.
	exportResp, err := http.Get(base + "/api/v1/graph/export")
	require.NoError(t, err)
	defer exportResp.Body.Close()
	require.Equal(t, http.StatusOK, exportResp.StatusCode)

	var doc services.GraphDocument
	require.NoError(t, json.NewDecoder(exportResp.Body).Decode(&doc))
	assert.Len(t, doc.Users, 6)
	assert.Len(t, doc.Friendships, 5)

	// Import replaces the graph wholesale.
	resp, _ = doJSON(t, http.MethodPost, base+"/api/v1/graph/import", map[string]interface{}{
		"name": "tiny",
		"users": []map[string]string{
			{"id": "x", "label": "X"},
			{"id": "y", "label": "Y"},
		},
		"friendships": []map[string]string{
			{"source_id": "x", "target_id": "y"},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = doJSON(t, http.MethodGet, base+"/api/v1/graph/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 2, stats.UserCount)
	assert.Equal(t, 1, stats.FriendshipCount)

	// A broken import document leaves the stored graph untouched.
	resp, _ = doJSON(t, http.MethodPost, base+"/api/v1/graph/import", map[string]interface{}{
		"name":  "broken",
		"users": []map[string]string{{"id": "a", "label": "A"}},
		"friendships": []map[string]string{
			{"source_id": "a", "target_id": "ghost"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, env = doJSON(t, http.MethodGet, base+"/api/v1/graph/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 2, stats.UserCount)
}

func TestListUsersPagination(t *testing.T) {
	server := newTestServer(t)
	base := server.URL

	for i := 0; i < 5; i++ {
		addUser(t, base, fmt.Sprintf("user-%d", i), fmt.Sprintf("User %d", i))
	}

	resp, env := doJSON(t, http.MethodGet, base+"/api/v1/users?page=2&page_size=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var users []queries.UserView
	require.NoError(t, json.Unmarshal(env.Data, &users))
	require.Len(t, users, 2)
	assert.Equal(t, "user-2", users[0].ID)
	assert.Equal(t, "user-3", users[1].ID)
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/metrics"} {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}
