package handlers

import (
	"context"

	"socialgraph-backend/application/commands"
	"socialgraph-backend/application/ports"
	"socialgraph-backend/domain/core/valueobjects"
	pkgerrors "socialgraph-backend/pkg/errors"

	"go.uber.org/zap"
)

// RemoveUserHandler handles user removal commands
type RemoveUserHandler struct {
	graphRepo ports.GraphRepository
	notifier  ports.ChangeNotifier
	logger    *zap.Logger
}

// NewRemoveUserHandler creates a new remove user handler
func NewRemoveUserHandler(
	graphRepo ports.GraphRepository,
	notifier ports.ChangeNotifier,
	logger *zap.Logger,
) *RemoveUserHandler {
	return &RemoveUserHandler{
		graphRepo: graphRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

// Handle executes the remove user command. Friendships incident to the
// user are removed with it, so the stored graph never carries dangling
// references.
func (h *RemoveUserHandler) Handle(ctx context.Context, cmd commands.RemoveUserCommand) error {
	userID, err := valueobjects.NewUserIDFromString(cmd.UserID)
	if err != nil {
		return pkgerrors.NewValidationError("invalid user id")
	}

	graph, err := h.graphRepo.Load(ctx)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to load graph")
	}

	if err := graph.RemoveUser(userID); err != nil {
		return err
	}

	if err := h.graphRepo.Save(ctx, graph); err != nil {
		return pkgerrors.Wrap(err, "failed to save graph")
	}

	committed := graph.GetUncommittedEvents()
	graph.MarkEventsAsCommitted()
	h.notifier.Notify(ctx, committed)

	h.logger.Info("user removed",
		zap.String("userID", cmd.UserID),
		zap.Int("userCount", graph.UserCount()),
	)

	return nil
}
