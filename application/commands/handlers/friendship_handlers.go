package handlers

import (
	"context"

	"socialgraph-backend/application/commands"
	"socialgraph-backend/application/ports"
	"socialgraph-backend/domain/core/valueobjects"
	pkgerrors "socialgraph-backend/pkg/errors"

	"go.uber.org/zap"
)

// AddFriendshipHandler handles friendship creation commands
type AddFriendshipHandler struct {
	graphRepo ports.GraphRepository
	notifier  ports.ChangeNotifier
	limits    ports.LimitsProvider
	logger    *zap.Logger
}

// NewAddFriendshipHandler creates a new add friendship handler
func NewAddFriendshipHandler(
	graphRepo ports.GraphRepository,
	notifier ports.ChangeNotifier,
	limits ports.LimitsProvider,
	logger *zap.Logger,
) *AddFriendshipHandler {
	return &AddFriendshipHandler{
		graphRepo: graphRepo,
		notifier:  notifier,
		limits:    limits,
		logger:    logger,
	}
}

// Handle executes the add friendship command
func (h *AddFriendshipHandler) Handle(ctx context.Context, cmd commands.AddFriendshipCommand) error {
	sourceID, targetID, err := parsePair(cmd.SourceID, cmd.TargetID)
	if err != nil {
		return err
	}

	graph, err := h.graphRepo.Load(ctx)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to load graph")
	}
	graph.SetLimits(h.limits.CurrentLimits())

	if _, err := graph.AddFriendship(sourceID, targetID); err != nil {
		return err
	}

	if err := h.graphRepo.Save(ctx, graph); err != nil {
		return pkgerrors.Wrap(err, "failed to save graph")
	}

	committed := graph.GetUncommittedEvents()
	graph.MarkEventsAsCommitted()
	h.notifier.Notify(ctx, committed)

	h.logger.Info("friendship added",
		zap.String("sourceID", cmd.SourceID),
		zap.String("targetID", cmd.TargetID),
	)

	return nil
}

// RemoveFriendshipHandler handles friendship removal commands
type RemoveFriendshipHandler struct {
	graphRepo ports.GraphRepository
	notifier  ports.ChangeNotifier
	logger    *zap.Logger
}

// NewRemoveFriendshipHandler creates a new remove friendship handler
func NewRemoveFriendshipHandler(
	graphRepo ports.GraphRepository,
	notifier ports.ChangeNotifier,
	logger *zap.Logger,
) *RemoveFriendshipHandler {
	return &RemoveFriendshipHandler{
		graphRepo: graphRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

// Handle executes the remove friendship command
func (h *RemoveFriendshipHandler) Handle(ctx context.Context, cmd commands.RemoveFriendshipCommand) error {
	sourceID, targetID, err := parsePair(cmd.SourceID, cmd.TargetID)
	if err != nil {
		return err
	}

	graph, err := h.graphRepo.Load(ctx)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to load graph")
	}

	if err := graph.RemoveFriendship(sourceID, targetID); err != nil {
		return err
	}

	if err := h.graphRepo.Save(ctx, graph); err != nil {
		return pkgerrors.Wrap(err, "failed to save graph")
	}

	committed := graph.GetUncommittedEvents()
	graph.MarkEventsAsCommitted()
	h.notifier.Notify(ctx, committed)

	h.logger.Info("friendship removed",
		zap.String("sourceID", cmd.SourceID),
		zap.String("targetID", cmd.TargetID),
	)

	return nil
}

func parsePair(source, target string) (valueobjects.UserID, valueobjects.UserID, error) {
	sourceID, err := valueobjects.NewUserIDFromString(source)
	if err != nil {
		return valueobjects.UserID{}, valueobjects.UserID{}, pkgerrors.NewValidationError("invalid source user id")
	}
	targetID, err := valueobjects.NewUserIDFromString(target)
	if err != nil {
		return valueobjects.UserID{}, valueobjects.UserID{}, pkgerrors.NewValidationError("invalid target user id")
	}
	return sourceID, targetID, nil
}
