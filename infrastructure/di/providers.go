package di

import (
	"context"
	"fmt"

	"github.com/google/wire"
	"go.uber.org/zap"

	"socialgraph-backend/application/commands"
	"socialgraph-backend/application/commands/bus"
	commandhandlers "socialgraph-backend/application/commands/handlers"
	appevents "socialgraph-backend/application/events"
	"socialgraph-backend/application/ports"
	"socialgraph-backend/application/queries"
	querybus "socialgraph-backend/application/queries/bus"
	queryhandlers "socialgraph-backend/application/queries/handlers"
	"socialgraph-backend/application/services"
	domainevents "socialgraph-backend/domain/events"
	"socialgraph-backend/infrastructure/config"
	badgerrepo "socialgraph-backend/infrastructure/persistence/badger"
	memoryrepo "socialgraph-backend/infrastructure/persistence/memory"
	"socialgraph-backend/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	GraphRepo  ports.GraphRepository
	Notifier   *appevents.Notifier
	Limits     *config.ConfigWatcher
	Metrics    *observability.Collector
	CommandBus *bus.CommandBus
	QueryBus   *querybus.QueryBus
}

// Close releases everything the container owns
func (c *Container) Close() error {
	c.Limits.Stop()
	return c.GraphRepo.Close()
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideConfigWatcher,
	ProvideLimitsProvider,
	ProvideGraphRepository,
	ProvideMetrics,
	ProvideNotifier,
	ProvideChangeNotifier,
	ProvideCommandBus,
	ProvideQueryBus,
	wire.Struct(new(Container), "*"),
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideConfigWatcher creates the dynamic limits watcher
func ProvideConfigWatcher(cfg *config.Config, logger *zap.Logger) (*config.ConfigWatcher, error) {
	return config.NewConfigWatcher(cfg.DynamicConfigPath, logger)
}

// ProvideLimitsProvider exposes the watcher through the limits port
func ProvideLimitsProvider(watcher *config.ConfigWatcher) ports.LimitsProvider {
	return watcher
}

// ProvideGraphRepository creates the graph repository backed by
// BadgerDB, or by process memory when the config says so
func ProvideGraphRepository(cfg *config.Config, logger *zap.Logger) (ports.GraphRepository, error) {
	if cfg.InMemoryStorage {
		logger.Info("using in-memory graph storage")
		return memoryrepo.NewGraphRepository(), nil
	}
	return badgerrepo.NewGraphRepository(badgerrepo.DefaultConfig(cfg.DataDir), logger)
}

// ProvideMetrics creates the Prometheus collector
func ProvideMetrics(cfg *config.Config) *observability.Collector {
	return observability.NewCollector("socialgraph")
}

// ProvideNotifier creates the change notifier
func ProvideNotifier(logger *zap.Logger) *appevents.Notifier {
	return appevents.NewNotifier(logger)
}

// ProvideChangeNotifier exposes the notifier through its port and
// wires the metrics collector as its first subscriber
func ProvideChangeNotifier(notifier *appevents.Notifier, metrics *observability.Collector) ports.ChangeNotifier {
	notifier.Subscribe(func(ctx context.Context, evt domainevents.DomainEvent) {
		metrics.ObserveEvent(evt)
	})
	return notifier
}

// CommandHandlerAdapter adapts specific command handlers to the
// generic bus interface
type CommandHandlerAdapter struct {
	handler func(context.Context, bus.Command) error
}

func (a *CommandHandlerAdapter) Handle(ctx context.Context, cmd bus.Command) error {
	return a.handler(ctx, cmd)
}

// QueryHandlerAdapter adapts specific query handlers to the generic
// bus interface
type QueryHandlerAdapter struct {
	handler func(context.Context, querybus.Query) (interface{}, error)
}

func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// ProvideCommandBus creates a command bus with all handlers registered
func ProvideCommandBus(
	graphRepo ports.GraphRepository,
	notifier ports.ChangeNotifier,
	limits ports.LimitsProvider,
	logger *zap.Logger,
) (*bus.CommandBus, error) {
	commandBus := bus.NewCommandBus()

	addUserHandler := commandhandlers.NewAddUserHandler(graphRepo, notifier, limits, logger)
	if err := commandBus.Register(commands.AddUserCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			addCmd, ok := cmd.(commands.AddUserCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return addUserHandler.Handle(ctx, addCmd)
		},
	}); err != nil {
		return nil, err
	}

	renameUserHandler := commandhandlers.NewRenameUserHandler(graphRepo, notifier, logger)
	if err := commandBus.Register(commands.RenameUserCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			renameCmd, ok := cmd.(commands.RenameUserCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return renameUserHandler.Handle(ctx, renameCmd)
		},
	}); err != nil {
		return nil, err
	}

	removeUserHandler := commandhandlers.NewRemoveUserHandler(graphRepo, notifier, logger)
	if err := commandBus.Register(commands.RemoveUserCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			removeCmd, ok := cmd.(commands.RemoveUserCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return removeUserHandler.Handle(ctx, removeCmd)
		},
	}); err != nil {
		return nil, err
	}

	addFriendshipHandler := commandhandlers.NewAddFriendshipHandler(graphRepo, notifier, limits, logger)
	if err := commandBus.Register(commands.AddFriendshipCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			addCmd, ok := cmd.(commands.AddFriendshipCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return addFriendshipHandler.Handle(ctx, addCmd)
		},
	}); err != nil {
		return nil, err
	}

	removeFriendshipHandler := commandhandlers.NewRemoveFriendshipHandler(graphRepo, notifier, logger)
	if err := commandBus.Register(commands.RemoveFriendshipCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			removeCmd, ok := cmd.(commands.RemoveFriendshipCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return removeFriendshipHandler.Handle(ctx, removeCmd)
		},
	}); err != nil {
		return nil, err
	}

	importHandler := commandhandlers.NewImportGraphHandler(graphRepo, services.NewGraphPorter(), notifier, limits, logger)
	if err := commandBus.Register(commands.ImportGraphCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			importCmd, ok := cmd.(commands.ImportGraphCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return importHandler.Handle(ctx, importCmd)
		},
	}); err != nil {
		return nil, err
	}

	return commandBus, nil
}

// ProvideQueryBus creates a query bus with all handlers registered
func ProvideQueryBus(
	graphRepo ports.GraphRepository,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus()

	shortestPathHandler := queryhandlers.NewShortestPathHandler(graphRepo, logger)
	if err := queryBus.Register(queries.ShortestPathQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.ShortestPathQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return shortestPathHandler.Handle(ctx, q)
		},
	}); err != nil {
		return nil, err
	}

	communitiesHandler := queryhandlers.NewCommunitiesHandler(graphRepo, logger)
	if err := queryBus.Register(queries.CommunitiesQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.CommunitiesQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return communitiesHandler.Handle(ctx, q)
		},
	}); err != nil {
		return nil, err
	}

	mutualFriendsHandler := queryhandlers.NewMutualFriendsHandler(graphRepo, logger)
	if err := queryBus.Register(queries.MutualFriendsQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.MutualFriendsQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return mutualFriendsHandler.Handle(ctx, q)
		},
	}); err != nil {
		return nil, err
	}

	graphDataHandler := queryhandlers.NewGraphDataHandler(graphRepo, logger)
	if err := queryBus.Register(queries.GraphDataQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.GraphDataQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return graphDataHandler.Handle(ctx, q)
		},
	}); err != nil {
		return nil, err
	}

	graphStatsHandler := queryhandlers.NewGraphStatsHandler(graphRepo, logger)
	if err := queryBus.Register(queries.GraphStatsQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.GraphStatsQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return graphStatsHandler.Handle(ctx, q)
		},
	}); err != nil {
		return nil, err
	}

	return queryBus, nil
}
