// Package badger implements graph persistence on an embedded BadgerDB.
// The whole aggregate is stored as a single JSON document under one
// key; the graph is small enough (bounded by the configured limits)
// that document-per-entity sharding would buy nothing.
package badger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"socialgraph-backend/domain/core/aggregates"
	"socialgraph-backend/infrastructure/persistence"
	pkgerrors "socialgraph-backend/pkg/errors"

	badgerdb "github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

const graphKey = "graph:current"

const defaultGraphName = "social-graph"

// Config holds the BadgerDB settings
type Config struct {
	// Path is the directory for database files. Ignored when InMemory
	// is set.
	Path string

	// InMemory opens the database without disk persistence. Used in
	// tests.
	InMemory bool

	// SyncWrites forces a sync to disk on every commit
	SyncWrites bool
}

// DefaultConfig returns production settings for the given directory
func DefaultConfig(path string) Config {
	return Config{
		Path:       path,
		SyncWrites: true,
	}
}

// InMemoryConfig returns settings for an ephemeral test database
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// GraphRepository persists the graph aggregate in BadgerDB. It
// implements the application's GraphRepository port.
type GraphRepository struct {
	db     *badgerdb.DB
	logger *zap.Logger
	mu     sync.Mutex
}

// NewGraphRepository opens the database and returns a repository. The
// caller owns the repository and must Close it.
func NewGraphRepository(cfg Config, logger *zap.Logger) (*GraphRepository, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("path is required for persistent database")
	}

	var opts badgerdb.Options
	if cfg.InMemory {
		opts = badgerdb.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0750); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", cfg.Path, err)
		}
		opts = badgerdb.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites)
	opts = opts.WithLogger(&badgerLogger{logger: logger})

	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}

	return &GraphRepository{db: db, logger: logger}, nil
}

// Load retrieves the stored graph, creating an empty one on first use
func (r *GraphRepository) Load(ctx context.Context) (*aggregates.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var data []byte
	err := r.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get([]byte(graphKey))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})

	if errors.Is(err, badgerdb.ErrKeyNotFound) {
		graph, err := aggregates.NewGraph(defaultGraphName)
		if err != nil {
			return nil, err
		}
		graph.MarkEventsAsCommitted()
		if err := r.Save(ctx, graph); err != nil {
			return nil, err
		}
		r.logger.Info("initialized empty graph", zap.String("graphId", graph.ID().String()))
		return graph, nil
	}
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("load graph", err)
	}

	graph, err := persistence.UnmarshalGraph(data)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("decode graph", err)
	}
	return graph, nil
}

// Save persists the full graph state
func (r *GraphRepository) Save(ctx context.Context, graph *aggregates.Graph) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := persistence.MarshalGraph(graph)
	if err != nil {
		return err
	}

	// Serialized whole-document writes; badger transactions would
	// otherwise conflict under concurrent saves.
	r.mu.Lock()
	defer r.mu.Unlock()

	err = r.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set([]byte(graphKey), data)
	})
	if err != nil {
		return pkgerrors.NewDatabaseError("save graph", err)
	}

	r.logger.Debug("graph saved",
		zap.Int("users", graph.UserCount()),
		zap.Int("friendships", graph.FriendshipCount()),
		zap.Int("version", graph.Version()),
	)
	return nil
}

// Replace swaps the stored graph for a freshly imported one
func (r *GraphRepository) Replace(ctx context.Context, graph *aggregates.Graph) error {
	return r.Save(ctx, graph)
}

// Close releases the underlying database
func (r *GraphRepository) Close() error {
	return r.db.Close()
}

// badgerLogger adapts zap to BadgerDB's Logger interface. Badger is
// chatty at info level, so its info/debug output is demoted to debug.
type badgerLogger struct {
	logger *zap.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
