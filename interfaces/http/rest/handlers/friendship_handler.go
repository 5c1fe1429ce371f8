package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"socialgraph-backend/application/commands"
	"socialgraph-backend/application/commands/bus"
	"socialgraph-backend/pkg/common"
	pkgerrors "socialgraph-backend/pkg/errors"
)

// FriendshipHandler handles friendship-related HTTP requests
type FriendshipHandler struct {
	commandBus *bus.CommandBus
	logger     *zap.Logger
}

// NewFriendshipHandler creates a new friendship handler
func NewFriendshipHandler(commandBus *bus.CommandBus, logger *zap.Logger) *FriendshipHandler {
	return &FriendshipHandler{
		commandBus: commandBus,
		logger:     logger,
	}
}

// FriendshipRequest represents the request body for adding or
// removing a friendship. The pair is unordered.
type FriendshipRequest struct {
	SourceID string `json:"source_id"`
	TargetID string `json:"target_id"`
}

// CreateFriendship handles POST /friendships
func (h *FriendshipHandler) CreateFriendship(w http.ResponseWriter, r *http.Request) {
	var req FriendshipRequest
	if err := common.ParseJSONBody(r, &req, 1<<20); err != nil {
		respondError(w, h.logger, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	cmd := commands.AddFriendshipCommand{
		SourceID: req.SourceID,
		TargetID: req.TargetID,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		respondError(w, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"source_id": req.SourceID,
		"target_id": req.TargetID,
		"message":   "friendship created",
	})
}

// DeleteFriendship handles DELETE /friendships?source=&target=
func (h *FriendshipHandler) DeleteFriendship(w http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")
	target := r.URL.Query().Get("target")
	if source == "" || target == "" {
		respondError(w, h.logger, pkgerrors.NewValidationError("source and target query parameters are required"))
		return
	}

	cmd := commands.RemoveFriendshipCommand{
		SourceID: source,
		TargetID: target,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		respondError(w, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"source_id": source,
		"target_id": target,
		"message":   "friendship removed",
	})
}
