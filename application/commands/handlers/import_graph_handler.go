package handlers

import (
	"context"

	"socialgraph-backend/application/commands"
	"socialgraph-backend/application/ports"
	"socialgraph-backend/application/services"
	pkgerrors "socialgraph-backend/pkg/errors"

	"go.uber.org/zap"
)

// ImportGraphHandler handles whole-graph import commands
type ImportGraphHandler struct {
	graphRepo ports.GraphRepository
	porter    *services.GraphPorter
	notifier  ports.ChangeNotifier
	limits    ports.LimitsProvider
	logger    *zap.Logger
}

// NewImportGraphHandler creates a new import handler
func NewImportGraphHandler(
	graphRepo ports.GraphRepository,
	porter *services.GraphPorter,
	notifier ports.ChangeNotifier,
	limits ports.LimitsProvider,
	logger *zap.Logger,
) *ImportGraphHandler {
	return &ImportGraphHandler{
		graphRepo: graphRepo,
		porter:    porter,
		notifier:  notifier,
		limits:    limits,
		logger:    logger,
	}
}

// Handle executes the import. The replacement graph is built and fully
// validated before the stored one is touched, so a bad document leaves
// the existing graph intact.
func (h *ImportGraphHandler) Handle(ctx context.Context, cmd commands.ImportGraphCommand) error {
	doc := services.GraphDocument{
		Name:        cmd.Name,
		Users:       cmd.Users,
		Friendships: cmd.Friendships,
	}

	graph, err := h.porter.BuildGraph(doc, h.limits.CurrentLimits())
	if err != nil {
		return err
	}

	if err := h.graphRepo.Replace(ctx, graph); err != nil {
		return pkgerrors.Wrap(err, "failed to replace graph")
	}

	committed := graph.GetUncommittedEvents()
	graph.MarkEventsAsCommitted()
	h.notifier.Notify(ctx, committed)

	h.logger.Info("graph imported",
		zap.String("name", cmd.Name),
		zap.Int("userCount", graph.UserCount()),
		zap.Int("friendshipCount", graph.FriendshipCount()),
	)

	return nil
}
