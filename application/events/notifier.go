package events

import (
	"context"
	"sync"

	domainevents "socialgraph-backend/domain/events"

	"go.uber.org/zap"
)

// SubscriberFunc receives committed domain events
type SubscriberFunc func(ctx context.Context, event domainevents.DomainEvent)

// Notifier is an explicit observer registry for graph changes. Command
// handlers publish the aggregate's committed events here; consumers
// (a rendering layer, caches) subscribe to learn that their snapshot
// went stale. There is no global registry: whoever constructs the
// notifier decides who is wired.
type Notifier struct {
	mu          sync.RWMutex
	nextID      int
	subscribers map[int]SubscriberFunc
	logger      *zap.Logger
}

// NewNotifier creates an empty notifier
func NewNotifier(logger *zap.Logger) *Notifier {
	return &Notifier{
		subscribers: make(map[int]SubscriberFunc),
		logger:      logger,
	}
}

// Subscribe registers a subscriber and returns a function that removes it
func (n *Notifier) Subscribe(fn SubscriberFunc) (unsubscribe func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.subscribers[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subscribers, id)
	}
}

// Notify delivers every event to every subscriber, synchronously and
// in registration-independent order. Subscribers must be fast or hand
// off to their own goroutines.
func (n *Notifier) Notify(ctx context.Context, evts []domainevents.DomainEvent) {
	n.mu.RLock()
	subscribers := make([]SubscriberFunc, 0, len(n.subscribers))
	for _, fn := range n.subscribers {
		subscribers = append(subscribers, fn)
	}
	n.mu.RUnlock()

	for _, event := range evts {
		n.logger.Debug("notifying graph change",
			zap.String("eventType", event.GetEventType()),
			zap.Int("subscribers", len(subscribers)),
		)
		for _, fn := range subscribers {
			fn(ctx, event)
		}
	}
}

// SubscriberCount returns the number of active subscribers
func (n *Notifier) SubscriberCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subscribers)
}
