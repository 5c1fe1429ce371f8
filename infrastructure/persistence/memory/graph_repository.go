// Package memory implements graph persistence in process memory.
// Used for tests and for running the server without a data directory.
package memory

import (
	"context"
	"sync"

	"socialgraph-backend/domain/core/aggregates"
	"socialgraph-backend/infrastructure/persistence"
	pkgerrors "socialgraph-backend/pkg/errors"
)

const defaultGraphName = "social-graph"

// GraphRepository stores the serialized graph in memory. It goes
// through the same encode/decode cycle as the durable repositories so
// tests exercise the record mapping, not just pointer sharing.
type GraphRepository struct {
	mu   sync.RWMutex
	data []byte
}

// NewGraphRepository creates an empty in-memory repository
func NewGraphRepository() *GraphRepository {
	return &GraphRepository{}
}

// Load retrieves the stored graph, creating an empty one on first use
func (r *GraphRepository) Load(ctx context.Context) (*aggregates.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	data := r.data
	r.mu.RUnlock()

	if data == nil {
		graph, err := aggregates.NewGraph(defaultGraphName)
		if err != nil {
			return nil, err
		}
		graph.MarkEventsAsCommitted()
		if err := r.Save(ctx, graph); err != nil {
			return nil, err
		}
		return graph, nil
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

	r.mu.Lock()
	r.data = data
	r.mu.Unlock()
	return nil
}

// Replace swaps the stored graph for a freshly imported one
func (r *GraphRepository) Replace(ctx context.Context, graph *aggregates.Graph) error {
	return r.Save(ctx, graph)
}

// Close releases nothing; it exists to satisfy the repository port
func (r *GraphRepository) Close() error {
	return nil
}
