package ports

import (
	"context"

	"socialgraph-backend/domain/core/aggregates"
	"socialgraph-backend/domain/events"
)

// GraphRepository is the port for social graph persistence.
// The application owns exactly one graph; Load returns it, creating an
// empty one on first use. The domain doesn't know about the backing
// store.
type GraphRepository interface {
	// Load retrieves the graph, creating an empty one if none is stored
	Load(ctx context.Context) (*aggregates.Graph, error)

	// Save persists the full graph state
	Save(ctx context.Context, graph *aggregates.Graph) error

	// Replace swaps the stored graph for a freshly imported one
	Replace(ctx context.Context, graph *aggregates.Graph) error

	// Close releases any underlying storage resources
	Close() error
}

// ChangeNotifier publishes committed domain events to interested
// subscribers (rendering layers, caches). An explicit observer
// registry, not global state: whoever owns a notifier decides who
// hears about changes.
type ChangeNotifier interface {
	Notify(ctx context.Context, evts []events.DomainEvent)
}

// LimitsProvider yields the currently configured graph ceilings.
// Backed by the dynamic configuration, so limits can change while the
// server runs.
type LimitsProvider interface {
	CurrentLimits() aggregates.Limits
}
