package handlers

import (
	"context"

	"socialgraph-backend/application/ports"
	"socialgraph-backend/application/queries"
	"socialgraph-backend/domain/core/valueobjects"
	pkgerrors "socialgraph-backend/pkg/errors"

	"go.uber.org/zap"
)

// MutualFriendsHandler answers friend suggestion queries
type MutualFriendsHandler struct {
	graphRepo ports.GraphRepository
	logger    *zap.Logger
}

// NewMutualFriendsHandler creates a new mutual friends handler
func NewMutualFriendsHandler(graphRepo ports.GraphRepository, logger *zap.Logger) *MutualFriendsHandler {
	return &MutualFriendsHandler{graphRepo: graphRepo, logger: logger}
}

// Handle executes the mutual friends query
func (h *MutualFriendsHandler) Handle(ctx context.Context, query queries.MutualFriendsQuery) (*queries.MutualFriendsResult, error) {
	userID, err := valueobjects.NewUserIDFromString(query.UserID)
	if err != nil {
		return nil, pkgerrors.NewValidationError("invalid user id")
	}

	graph, engine, err := loadEngine(ctx, h.graphRepo)
	if err != nil {
		return nil, err
	}

	suggestions, err := engine.MutualFriends(userID)
	if err != nil {
		return nil, err
	}

	result := &queries.MutualFriendsResult{UserID: query.UserID}
	for _, s := range suggestions {
		view := queries.SuggestionView{
			UserID:      s.UserID.String(),
			MutualCount: s.MutualCount,
		}
		if user, err := graph.GetUser(s.UserID); err == nil {
			view.Label = user.Label()
		}
		for _, m := range s.MutualFriends {
			view.MutualFriends = append(view.MutualFriends, m.String())
		}
		result.Suggestions = append(result.Suggestions, view)
	}

	return result, nil
}
