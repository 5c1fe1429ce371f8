package aggregates

import (
	"sort"
	"time"

	"socialgraph-backend/domain/core/entities"
	"socialgraph-backend/domain/core/valueobjects"
	"socialgraph-backend/domain/events"
	pkgerrors "socialgraph-backend/pkg/errors"

	"github.com/google/uuid"
)

// GraphID represents a unique graph identifier
type GraphID string

// NewGraphID creates a new random GraphID
func NewGraphID() GraphID {
	return GraphID(uuid.New().String())
}

// String returns the string representation
func (id GraphID) String() string {
	return string(id)
}

// Limits are the only practical guard against pathologically large
// input; they are hot-reloadable through the dynamic configuration.
type Limits struct {
	MaxUsers       int
	MaxFriendships int
}

// DefaultLimits returns the built-in ceilings
func DefaultLimits() Limits {
	return Limits{
		MaxUsers:       10000,
		MaxFriendships: 50000,
	}
}

// Graph is the aggregate root for the social graph.
// It is the mutable, store-side model: users and friendships are added
// and removed here, and consistency rules (no self-loops, no duplicate
// pairs, both endpoints present) are enforced at this boundary. The
// analysis engine never sees the aggregate, only immutable snapshots
// captured via Snapshot().
type Graph struct {
	id          GraphID
	name        string
	users       map[valueobjects.UserID]*entities.User
	friendships map[string]*Friendship
	limits      Limits
	createdAt   time.Time
	updatedAt   time.Time
	version     int
	events      []events.DomainEvent
}

// Friendship is an unordered, non-self-referential connection between
// two users. SourceID/TargetID are held in canonical (ascending) order
// so a pair and its reverse are the same friendship.
type Friendship struct {
	ID        string
	SourceID  valueobjects.UserID
	TargetID  valueobjects.UserID
	CreatedAt time.Time
}

// NewGraph creates a new empty graph aggregate
func NewGraph(name string) (*Graph, error) {
	if name == "" {
		return nil, pkgerrors.NewValidationError("graph name required")
	}

	now := time.Now()
	graph := &Graph{
		id:          NewGraphID(),
		name:        name,
		users:       make(map[valueobjects.UserID]*entities.User),
		friendships: make(map[string]*Friendship),
		limits:      DefaultLimits(),
		createdAt:   now,
		updatedAt:   now,
		version:     1,
		events:      []events.DomainEvent{},
	}

	return graph, nil
}

// ReconstructGraph recreates a graph aggregate from stored data.
// Users must be added before the friendships that reference them.
func ReconstructGraph(id GraphID, name string, createdAt, updatedAt time.Time) (*Graph, error) {
	if id == "" || name == "" {
		return nil, pkgerrors.NewValidationError("required fields missing for graph reconstruction")
	}

	return &Graph{
		id:          id,
		name:        name,
		users:       make(map[valueobjects.UserID]*entities.User),
		friendships: make(map[string]*Friendship),
		limits:      DefaultLimits(),
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		version:     1,
		events:      []events.DomainEvent{},
	}, nil
}

// ID returns the graph's unique identifier
func (g *Graph) ID() GraphID {
	return g.id
}

// Name returns the graph's name
func (g *Graph) Name() string {
	return g.name
}

// Version returns the aggregate version, bumped on every mutation
func (g *Graph) Version() int {
	return g.version
}

// CreatedAt returns when the graph was created
func (g *Graph) CreatedAt() time.Time {
	return g.createdAt
}

// UpdatedAt returns when the graph was last updated
func (g *Graph) UpdatedAt() time.Time {
	return g.updatedAt
}

// UserCount returns the number of users
func (g *Graph) UserCount() int {
	return len(g.users)
}

// FriendshipCount returns the number of friendships
func (g *Graph) FriendshipCount() int {
	return len(g.friendships)
}

// SetLimits replaces the node/edge ceilings. Existing content above a
// new ceiling is kept; only further growth is refused.
func (g *Graph) SetLimits(limits Limits) {
	if limits.MaxUsers > 0 {
		g.limits.MaxUsers = limits.MaxUsers
	}
	if limits.MaxFriendships > 0 {
		g.limits.MaxFriendships = limits.MaxFriendships
	}
}

// AddUser adds a user to the graph
func (g *Graph) AddUser(user *entities.User) error {
	if user == nil {
		return pkgerrors.NewValidationError("user cannot be nil")
	}

	userID := user.ID()
	if _, exists := g.users[userID]; exists {
		return pkgerrors.NewConflictError("user already exists in graph")
	}

	if len(g.users) >= g.limits.MaxUsers {
		return pkgerrors.NewLimitExceededError("users", g.limits.MaxUsers)
	}

	g.users[userID] = user
	g.touch()

	g.addEvent(events.UserAdded{
		BaseEvent: events.BaseEvent{
			AggregateID: g.id.String(),
			EventType:   "graph.user_added",
			Timestamp:   g.updatedAt,
			Version:     1,
		},
		UserID: userID,
		Label:  user.Label(),
	})

	return nil
}

// RenameUser changes a user's display label
func (g *Graph) RenameUser(userID valueobjects.UserID, label string) error {
	user, exists := g.users[userID]
	if !exists {
		return pkgerrors.NewUnknownNodeError(userID.String())
	}

	if err := user.Rename(label); err != nil {
		return err
	}
	g.touch()

	g.addEvent(events.UserRenamed{
		BaseEvent: events.BaseEvent{
			AggregateID: g.id.String(),
			EventType:   "graph.user_renamed",
			Timestamp:   g.updatedAt,
			Version:     1,
		},
		UserID: userID,
		Label:  user.Label(),
	})

	return nil
}

// RemoveUser removes a user and all friendships incident to it
func (g *Graph) RemoveUser(userID valueobjects.UserID) error {
	if _, exists := g.users[userID]; !exists {
		return pkgerrors.NewUnknownNodeError(userID.String())
	}

	removed := 0
	for key, f := range g.friendships {
		if f.SourceID.Equals(userID) || f.TargetID.Equals(userID) {
			delete(g.friendships, key)
			removed++
		}
	}

	delete(g.users, userID)
	g.touch()

	g.addEvent(events.UserRemoved{
		BaseEvent: events.BaseEvent{
			AggregateID: g.id.String(),
			EventType:   "graph.user_removed",
			Timestamp:   g.updatedAt,
			Version:     1,
		},
		UserID:             userID,
		RemovedFriendships: removed,
	})

	return nil
}

// AddFriendship connects two users. The pair is unordered: adding b-a
// after a-b is a duplicate.
func (g *Graph) AddFriendship(sourceID, targetID valueobjects.UserID) (*Friendship, error) {
	if sourceID.Equals(targetID) {
		return nil, pkgerrors.NewInvalidEdgeError(sourceID.String(), targetID.String(), "self-loops are not allowed")
	}

	if _, exists := g.users[sourceID]; !exists {
		return nil, pkgerrors.NewInvalidEdgeError(sourceID.String(), targetID.String(), "source user does not exist")
	}
	if _, exists := g.users[targetID]; !exists {
		return nil, pkgerrors.NewInvalidEdgeError(sourceID.String(), targetID.String(), "target user does not exist")
	}

	a, b := canonicalPair(sourceID, targetID)
	key := friendshipKey(a, b)
	if _, exists := g.friendships[key]; exists {
		return nil, pkgerrors.NewDuplicateEdgeError(sourceID.String(), targetID.String())
	}

	if len(g.friendships) >= g.limits.MaxFriendships {
		return nil, pkgerrors.NewLimitExceededError("friendships", g.limits.MaxFriendships)
	}

	friendship := &Friendship{
		ID:        uuid.New().String(),
		SourceID:  a,
		TargetID:  b,
		CreatedAt: time.Now(),
	}

	g.friendships[key] = friendship
	g.touch()

	g.addEvent(events.FriendshipAdded{
		BaseEvent: events.BaseEvent{
			AggregateID: g.id.String(),
			EventType:   "graph.friendship_added",
			Timestamp:   g.updatedAt,
			Version:     1,
		},
		SourceID: a,
		TargetID: b,
	})

	return friendship, nil
}

// RemoveFriendship severs the connection between two users
func (g *Graph) RemoveFriendship(sourceID, targetID valueobjects.UserID) error {
	a, b := canonicalPair(sourceID, targetID)
	key := friendshipKey(a, b)

	if _, exists := g.friendships[key]; !exists {
		return pkgerrors.NewNotFoundError("friendship")
	}

	delete(g.friendships, key)
	g.touch()

	g.addEvent(events.FriendshipRemoved{
		BaseEvent: events.BaseEvent{
			AggregateID: g.id.String(),
			EventType:   "graph.friendship_removed",
			Timestamp:   g.updatedAt,
			Version:     1,
		},
		SourceID: a,
		TargetID: b,
	})

	return nil
}

// RestoreUser places a previously persisted user back into the graph
// without emitting events or touching timestamps. Reconstruction path
// only.
func (g *Graph) RestoreUser(user *entities.User) error {
	if user == nil {
		return pkgerrors.NewValidationError("user cannot be nil")
	}
	if _, exists := g.users[user.ID()]; exists {
		return pkgerrors.NewConflictError("user already exists in graph")
	}
	g.users[user.ID()] = user
	return nil
}

// RestoreFriendship places a previously persisted friendship back into
// the graph, keeping its original id and timestamp. Reconstruction
// path only.
func (g *Graph) RestoreFriendship(id string, sourceID, targetID valueobjects.UserID, createdAt time.Time) error {
	if sourceID.Equals(targetID) {
		return pkgerrors.NewInvalidEdgeError(sourceID.String(), targetID.String(), "self-loops are not allowed")
	}
	if _, exists := g.users[sourceID]; !exists {
		return pkgerrors.NewInvalidEdgeError(sourceID.String(), targetID.String(), "source user does not exist")
	}
	if _, exists := g.users[targetID]; !exists {
		return pkgerrors.NewInvalidEdgeError(sourceID.String(), targetID.String(), "target user does not exist")
	}

	a, b := canonicalPair(sourceID, targetID)
	key := friendshipKey(a, b)
	if _, exists := g.friendships[key]; exists {
		return pkgerrors.NewDuplicateEdgeError(sourceID.String(), targetID.String())
	}

	g.friendships[key] = &Friendship{
		ID:        id,
		SourceID:  a,
		TargetID:  b,
		CreatedAt: createdAt,
	}
	return nil
}

// HasUser checks if a user exists in the graph
func (g *Graph) HasUser(userID valueobjects.UserID) bool {
	_, exists := g.users[userID]
	return exists
}

// GetUser retrieves a user by ID
func (g *Graph) GetUser(userID valueobjects.UserID) (*entities.User, error) {
	user, exists := g.users[userID]
	if !exists {
		return nil, pkgerrors.NewUnknownNodeError(userID.String())
	}
	return user, nil
}

// Users returns all users sorted by id
func (g *Graph) Users() []*entities.User {
	users := make([]*entities.User, 0, len(g.users))
	for _, user := range g.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].ID().Less(users[j].ID())
	})
	return users
}

// Friendships returns all friendships in canonical pair order
func (g *Graph) Friendships() []*Friendship {
	friendships := make([]*Friendship, 0, len(g.friendships))
	for _, f := range g.friendships {
		friendships = append(friendships, f)
	}
	sort.Slice(friendships, func(i, j int) bool {
		if !friendships[i].SourceID.Equals(friendships[j].SourceID) {
			return friendships[i].SourceID.Less(friendships[j].SourceID)
		}
		return friendships[i].TargetID.Less(friendships[j].TargetID)
	})
	return friendships
}

// Snapshot captures the current node and edge sets as an immutable
// value. Queries run against the snapshot, never the aggregate, so
// later mutations cannot race an in-flight query.
func (g *Graph) Snapshot() *Snapshot {
	userIDs := make([]valueobjects.UserID, 0, len(g.users))
	for id := range g.users {
		userIDs = append(userIDs, id)
	}
	sort.Slice(userIDs, func(i, j int) bool {
		return userIDs[i].Less(userIDs[j])
	})

	pairs := make([]Pair, 0, len(g.friendships))
	for _, f := range g.friendships {
		pairs = append(pairs, Pair{Source: f.SourceID, Target: f.TargetID})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if !pairs[i].Source.Equals(pairs[j].Source) {
			return pairs[i].Source.Less(pairs[j].Source)
		}
		return pairs[i].Target.Less(pairs[j].Target)
	})

	return newSnapshot(userIDs, pairs)
}

// Validate ensures graph invariants hold
func (g *Graph) Validate() error {
	for _, f := range g.friendships {
		if f.SourceID.Equals(f.TargetID) {
			return pkgerrors.NewInvalidEdgeError(f.SourceID.String(), f.TargetID.String(), "self-loop found")
		}
		if _, exists := g.users[f.SourceID]; !exists {
			return pkgerrors.NewInvalidEdgeError(f.SourceID.String(), f.TargetID.String(), "source user missing")
		}
		if _, exists := g.users[f.TargetID]; !exists {
			return pkgerrors.NewInvalidEdgeError(f.SourceID.String(), f.TargetID.String(), "target user missing")
		}
	}
	return nil
}

// GetUncommittedEvents returns all uncommitted domain events
func (g *Graph) GetUncommittedEvents() []events.DomainEvent {
	allEvents := make([]events.DomainEvent, len(g.events))
	copy(allEvents, g.events)
	return allEvents
}

// MarkEventsAsCommitted clears all uncommitted events
func (g *Graph) MarkEventsAsCommitted() {
	g.events = []events.DomainEvent{}
}

// RecordImported registers an import that replaced the graph's content
func (g *Graph) RecordImported() {
	g.addEvent(events.GraphImported{
		BaseEvent: events.BaseEvent{
			AggregateID: g.id.String(),
			EventType:   "graph.imported",
			Timestamp:   time.Now(),
			Version:     1,
		},
		UserCount:       len(g.users),
		FriendshipCount: len(g.friendships),
	})
}

// Private helper methods

func (g *Graph) touch() {
	g.updatedAt = time.Now()
	g.version++
}

func (g *Graph) addEvent(event events.DomainEvent) {
	g.events = append(g.events, event)
}

func canonicalPair(a, b valueobjects.UserID) (valueobjects.UserID, valueobjects.UserID) {
	if b.Less(a) {
		return b, a
	}
	return a, b
}

func friendshipKey(a, b valueobjects.UserID) string {
	return a.String() + "|" + b.String()
}
