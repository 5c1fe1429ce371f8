package handlers

import (
	"context"

	"socialgraph-backend/application/ports"
	"socialgraph-backend/application/queries"

	"go.uber.org/zap"
)

// GraphStatsHandler answers graph statistics queries
type GraphStatsHandler struct {
	graphRepo ports.GraphRepository
	logger    *zap.Logger
}

// NewGraphStatsHandler creates a new graph stats handler
func NewGraphStatsHandler(graphRepo ports.GraphRepository, logger *zap.Logger) *GraphStatsHandler {
	return &GraphStatsHandler{graphRepo: graphRepo, logger: logger}
}

// Handle executes the graph stats query
func (h *GraphStatsHandler) Handle(ctx context.Context, query queries.GraphStatsQuery) (*queries.GraphStatsResult, error) {
	graph, engine, err := loadEngine(ctx, h.graphRepo)
	if err != nil {
		return nil, err
	}

	index := engine.Index()

	result := &queries.GraphStatsResult{
		UserCount:       graph.UserCount(),
		FriendshipCount: graph.FriendshipCount(),
		CommunityCount:  len(engine.Communities()),
	}

	totalDegree := 0
	for _, id := range index.UserIDs() {
		degree := index.Degree(id)
		totalDegree += degree
		if degree > result.MaxDegree {
			result.MaxDegree = degree
		}
		if degree == 0 {
			result.IsolatedUsers++
		}
	}
	if result.UserCount > 0 {
		result.AverageDegree = float64(totalDegree) / float64(result.UserCount)
	}

	return result, nil
}
