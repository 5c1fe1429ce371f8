package handlers

import (
	"context"

	"socialgraph-backend/application/ports"
	"socialgraph-backend/application/queries"

	"go.uber.org/zap"
)

// GraphDataHandler assembles the render payload: every user with its
// label and community color, plus all friendships
type GraphDataHandler struct {
	graphRepo ports.GraphRepository
	logger    *zap.Logger
}

// NewGraphDataHandler creates a new graph data handler
func NewGraphDataHandler(graphRepo ports.GraphRepository, logger *zap.Logger) *GraphDataHandler {
	return &GraphDataHandler{graphRepo: graphRepo, logger: logger}
}

// Handle executes the graph data query
func (h *GraphDataHandler) Handle(ctx context.Context, query queries.GraphDataQuery) (*queries.GraphDataResult, error) {
	graph, engine, err := loadEngine(ctx, h.graphRepo)
	if err != nil {
		return nil, err
	}

	colorOf := make(map[string]string, graph.UserCount())
	for _, c := range engine.Communities() {
		for _, m := range c.Members {
			colorOf[m.String()] = c.Color
		}
	}

	result := &queries.GraphDataResult{Name: graph.Name()}
	for _, user := range graph.Users() {
		result.Users = append(result.Users, queries.UserView{
			ID:    user.ID().String(),
			Label: user.Label(),
			Color: colorOf[user.ID().String()],
		})
	}
	for _, f := range graph.Friendships() {
		result.Friendships = append(result.Friendships, queries.FriendshipView{
			SourceID: f.SourceID.String(),
			TargetID: f.TargetID.String(),
		})
	}

	return result, nil
}
