package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"socialgraph-backend/application/commands"
	"socialgraph-backend/application/commands/bus"
	"socialgraph-backend/application/queries"
	querybus "socialgraph-backend/application/queries/bus"
	"socialgraph-backend/pkg/common"
	pkgerrors "socialgraph-backend/pkg/errors"
	"socialgraph-backend/pkg/utils"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(commandBus *bus.CommandBus, queryBus *querybus.QueryBus, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// CreateUserRequest represents the request body for adding a user
type CreateUserRequest struct {
	ID    string `json:"id,omitempty" validate:"omitempty,max=100"` // Optional, auto-generated if not provided
	Label string `json:"label" validate:"required,min=1,max=100"`
}

// CreateUserResponse represents the response for adding a user
type CreateUserResponse struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	CreatedAt string `json:"createdAt"`
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := common.ParseJSONBody(r, &req, 1<<20); err != nil {
		respondError(w, h.logger, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, h.logger, pkgerrors.NewValidationError(err.Error()))
		return
	}

	userID := req.ID
	if userID == "" {
		userID = uuid.New().String()
	}

	cmd := commands.AddUserCommand{
		UserID: userID,
		Label:  req.Label,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		respondError(w, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, CreateUserResponse{
		ID:        userID,
		Label:     req.Label,
		CreatedAt: utils.NowRFC3339(),
	})
}

// UpdateUserRequest represents the request body for renaming a user
type UpdateUserRequest struct {
	Label string `json:"label" validate:"required,min=1,max=100"`
}

// UpdateUser handles PUT /users/{userID}, changing the display label
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		respondError(w, h.logger, pkgerrors.NewValidationError("user id is required"))
		return
	}

	var req UpdateUserRequest
	if err := common.ParseJSONBody(r, &req, 1<<20); err != nil {
		respondError(w, h.logger, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, h.logger, pkgerrors.NewValidationError(err.Error()))
		return
	}

	cmd := commands.RenameUserCommand{UserID: userID, Label: req.Label}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		respondError(w, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"id":    userID,
		"label": req.Label,
	})
}

// DeleteUser handles DELETE /users/{userID}. Friendships incident to
// the user disappear with it.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		respondError(w, h.logger, pkgerrors.NewValidationError("user id is required"))
		return
	}

	cmd := commands.RemoveUserCommand{UserID: userID}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		respondError(w, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"id":      userID,
		"message": "user removed",
	})
}

// ListUsers handles GET /users with pagination
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GraphDataQuery{})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	data, ok := result.(*queries.GraphDataResult)
	if !ok {
		respondError(w, h.logger, pkgerrors.NewInternalError("unexpected query result type"))
		return
	}

	params := common.ExtractPaginationParams(r)
	total := len(data.Users)

	// Users arrive sorted by id; paging over them is stable.
	start := params.CalculateOffset()
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}

	common.RespondWithMeta(w, http.StatusOK, data.Users[start:end], &common.MetaInfo{
		Pagination: common.BuildPaginationMeta(params.Page, params.PageSize, total),
	})
}
