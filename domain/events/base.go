package events

import (
	"time"

	"socialgraph-backend/domain/core/valueobjects"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

// UserAdded is raised when a user joins the graph
type UserAdded struct {
	BaseEvent
	UserID valueobjects.UserID `json:"user_id"`
	Label  string              `json:"label"`
}

// UserRenamed is raised when a user's display label changes
type UserRenamed struct {
	BaseEvent
	UserID valueobjects.UserID `json:"user_id"`
	Label  string              `json:"label"`
}

// UserRemoved is raised when a user (and its incident friendships) is removed
type UserRemoved struct {
	BaseEvent
	UserID             valueobjects.UserID `json:"user_id"`
	RemovedFriendships int                 `json:"removed_friendships"`
}

// FriendshipAdded is raised when two users are connected
type FriendshipAdded struct {
	BaseEvent
	SourceID valueobjects.UserID `json:"source_id"`
	TargetID valueobjects.UserID `json:"target_id"`
}

// FriendshipRemoved is raised when a connection is severed
type FriendshipRemoved struct {
	BaseEvent
	SourceID valueobjects.UserID `json:"source_id"`
	TargetID valueobjects.UserID `json:"target_id"`
}

// GraphImported is raised when an import replaces the whole graph
type GraphImported struct {
	BaseEvent
	UserCount       int `json:"user_count"`
	FriendshipCount int `json:"friendship_count"`
}
