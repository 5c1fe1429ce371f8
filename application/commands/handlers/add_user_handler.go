package handlers

import (
	"context"
	"time"

	"socialgraph-backend/application/commands"
	"socialgraph-backend/application/ports"
	"socialgraph-backend/domain/core/entities"
	"socialgraph-backend/domain/core/valueobjects"
	pkgerrors "socialgraph-backend/pkg/errors"

	"go.uber.org/zap"
)

// AddUserHandler handles user creation commands
type AddUserHandler struct {
	graphRepo ports.GraphRepository
	notifier  ports.ChangeNotifier
	limits    ports.LimitsProvider
	logger    *zap.Logger
}

// NewAddUserHandler creates a new add user handler
func NewAddUserHandler(
	graphRepo ports.GraphRepository,
	notifier ports.ChangeNotifier,
	limits ports.LimitsProvider,
	logger *zap.Logger,
) *AddUserHandler {
	return &AddUserHandler{
		graphRepo: graphRepo,
		notifier:  notifier,
		limits:    limits,
		logger:    logger,
	}
}

// Handle executes the add user command
func (h *AddUserHandler) Handle(ctx context.Context, cmd commands.AddUserCommand) error {
	userID, err := valueobjects.NewUserIDFromString(cmd.UserID)
	if err != nil {
		return pkgerrors.NewValidationError("invalid user id")
	}

	user, err := entities.ReconstructUser(userID, cmd.Label, time.Now())
	if err != nil {
		return err
	}

	graph, err := h.graphRepo.Load(ctx)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to load graph")
	}
	graph.SetLimits(h.limits.CurrentLimits())

	if err := graph.AddUser(user); err != nil {
		return err
	}

	if err := h.graphRepo.Save(ctx, graph); err != nil {
		return pkgerrors.Wrap(err, "failed to save graph")
	}

	committed := graph.GetUncommittedEvents()
	graph.MarkEventsAsCommitted()
	h.notifier.Notify(ctx, committed)

	h.logger.Info("user added",
		zap.String("userID", cmd.UserID),
		zap.String("label", cmd.Label),
		zap.Int("userCount", graph.UserCount()),
	)

	return nil
}
