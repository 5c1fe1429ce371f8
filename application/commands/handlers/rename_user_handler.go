package handlers

import (
	"context"

	"socialgraph-backend/application/commands"
	"socialgraph-backend/application/ports"
	"socialgraph-backend/domain/core/valueobjects"
	pkgerrors "socialgraph-backend/pkg/errors"

	"go.uber.org/zap"
)

// RenameUserHandler handles user rename commands
type RenameUserHandler struct {
	graphRepo ports.GraphRepository
	notifier  ports.ChangeNotifier
	logger    *zap.Logger
}

// NewRenameUserHandler creates a new rename user handler
func NewRenameUserHandler(
	graphRepo ports.GraphRepository,
	notifier ports.ChangeNotifier,
	logger *zap.Logger,
) *RenameUserHandler {
	return &RenameUserHandler{
		graphRepo: graphRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

// Handle executes the rename user command
func (h *RenameUserHandler) Handle(ctx context.Context, cmd commands.RenameUserCommand) error {
	userID, err := valueobjects.NewUserIDFromString(cmd.UserID)
	if err != nil {
		return pkgerrors.NewValidationError("invalid user id")
	}

	graph, err := h.graphRepo.Load(ctx)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to load graph")
	}

	if err := graph.RenameUser(userID, cmd.Label); err != nil {
		return err
	}

	if err := h.graphRepo.Save(ctx, graph); err != nil {
		return pkgerrors.Wrap(err, "failed to save graph")
	}

	committed := graph.GetUncommittedEvents()
	graph.MarkEventsAsCommitted()
	h.notifier.Notify(ctx, committed)

	h.logger.Info("user renamed",
		zap.String("userID", cmd.UserID),
		zap.String("label", cmd.Label),
	)

	return nil
}
