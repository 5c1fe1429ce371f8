package handlers

import (
	"context"

	"socialgraph-backend/application/ports"
	"socialgraph-backend/application/queries"
	"socialgraph-backend/domain/core/valueobjects"
	pkgerrors "socialgraph-backend/pkg/errors"

	"go.uber.org/zap"
)

// ShortestPathHandler answers shortest path queries
type ShortestPathHandler struct {
	graphRepo ports.GraphRepository
	logger    *zap.Logger
}

// NewShortestPathHandler creates a new shortest path handler
func NewShortestPathHandler(graphRepo ports.GraphRepository, logger *zap.Logger) *ShortestPathHandler {
	return &ShortestPathHandler{graphRepo: graphRepo, logger: logger}
}

// Handle executes the shortest path query
func (h *ShortestPathHandler) Handle(ctx context.Context, query queries.ShortestPathQuery) (*queries.ShortestPathResult, error) {
	startID, err := valueobjects.NewUserIDFromString(query.StartID)
	if err != nil {
		return nil, pkgerrors.NewValidationError("invalid start user id")
	}
	endID, err := valueobjects.NewUserIDFromString(query.EndID)
	if err != nil {
		return nil, pkgerrors.NewValidationError("invalid end user id")
	}

	_, engine, err := loadEngine(ctx, h.graphRepo)
	if err != nil {
		return nil, err
	}

	result, err := engine.ShortestPath(startID, endID)
	if err != nil {
		return nil, err
	}

	out := &queries.ShortestPathResult{
		Distance:  result.Distance,
		Reachable: result.Reachable,
	}
	for _, id := range result.Path {
		out.Path = append(out.Path, id.String())
	}

	return out, nil
}
