package handlers

import (
	"context"

	"socialgraph-backend/application/ports"
	"socialgraph-backend/application/queries"
	"socialgraph-backend/domain/analysis"

	"go.uber.org/zap"
)

// CommunitiesHandler answers community partition queries
type CommunitiesHandler struct {
	graphRepo ports.GraphRepository
	logger    *zap.Logger
}

// NewCommunitiesHandler creates a new communities handler
func NewCommunitiesHandler(graphRepo ports.GraphRepository, logger *zap.Logger) *CommunitiesHandler {
	return &CommunitiesHandler{graphRepo: graphRepo, logger: logger}
}

// Handle executes the communities query with the requested method,
// defaulting to traversal
func (h *CommunitiesHandler) Handle(ctx context.Context, query queries.CommunitiesQuery) (*queries.CommunitiesResult, error) {
	_, engine, err := loadEngine(ctx, h.graphRepo)
	if err != nil {
		return nil, err
	}

	method := query.Method
	if method == "" {
		method = queries.MethodTraversal
	}

	var communities []analysis.Community
	if method == queries.MethodUnionFind {
		communities = engine.CommunitiesViaUnionFind()
	} else {
		communities = engine.Communities()
	}

	result := &queries.CommunitiesResult{Method: method}
	for _, c := range communities {
		view := queries.CommunityView{
			ID:    c.ID,
			Color: c.Color,
			Size:  c.Size(),
		}
		for _, m := range c.Members {
			view.Members = append(view.Members, m.String())
		}
		result.Communities = append(result.Communities, view)
	}

	return result, nil
}
