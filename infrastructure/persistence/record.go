// Package persistence holds the storage-facing representation of the
// social graph shared by every repository implementation.
package persistence

import (
	"encoding/json"
	"time"

	"socialgraph-backend/domain/core/aggregates"
	"socialgraph-backend/domain/core/entities"
	"socialgraph-backend/domain/core/valueobjects"
	pkgerrors "socialgraph-backend/pkg/errors"
)

// GraphRecord is the stored form of the graph aggregate. It is a flat
// JSON document; the aggregate's maps and invariants are rebuilt on
// load.
type GraphRecord struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	Users       []UserRecord       `json:"users"`
	Friendships []FriendshipRecord `json:"friendships"`
}

// UserRecord is the stored form of a user entity
type UserRecord struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"createdAt"`
}

// FriendshipRecord is the stored form of a friendship
type FriendshipRecord struct {
	ID        string    `json:"id"`
	SourceID  string    `json:"sourceId"`
	TargetID  string    `json:"targetId"`
	CreatedAt time.Time `json:"createdAt"`
}

// EncodeGraph converts the aggregate into its stored form
func EncodeGraph(graph *aggregates.Graph) *GraphRecord {
	users := graph.Users()
	friendships := graph.Friendships()

	record := &GraphRecord{
		ID:          graph.ID().String(),
		Name:        graph.Name(),
		CreatedAt:   graph.CreatedAt(),
		UpdatedAt:   graph.UpdatedAt(),
		Users:       make([]UserRecord, 0, len(users)),
		Friendships: make([]FriendshipRecord, 0, len(friendships)),
	}

	for _, user := range users {
		record.Users = append(record.Users, UserRecord{
			ID:        user.ID().String(),
			Label:     user.Label(),
			CreatedAt: user.CreatedAt(),
		})
	}
	for _, f := range friendships {
		record.Friendships = append(record.Friendships, FriendshipRecord{
			ID:        f.ID,
			SourceID:  f.SourceID.String(),
			TargetID:  f.TargetID.String(),
			CreatedAt: f.CreatedAt,
		})
	}

	return record
}

// DecodeGraph rebuilds the aggregate from its stored form. A record
// that violates graph invariants (dangling friendship endpoints,
// self-loops) is rejected rather than silently repaired.
func DecodeGraph(record *GraphRecord) (*aggregates.Graph, error) {
	graph, err := aggregates.ReconstructGraph(
		aggregates.GraphID(record.ID),
		record.Name,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "invalid graph record")
	}

	for _, ur := range record.Users {
		id, err := valueobjects.NewUserIDFromString(ur.ID)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "invalid user record %q", ur.ID)
		}
		user, err := entities.ReconstructUser(id, ur.Label, ur.CreatedAt)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "invalid user record %q", ur.ID)
		}
		if err := graph.RestoreUser(user); err != nil {
			return nil, pkgerrors.Wrapf(err, "invalid user record %q", ur.ID)
		}
	}

	for _, fr := range record.Friendships {
		source, err := valueobjects.NewUserIDFromString(fr.SourceID)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "invalid friendship record %q", fr.ID)
		}
		target, err := valueobjects.NewUserIDFromString(fr.TargetID)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "invalid friendship record %q", fr.ID)
		}
		if err := graph.RestoreFriendship(fr.ID, source, target, fr.CreatedAt); err != nil {
			return nil, pkgerrors.Wrapf(err, "invalid friendship record %q", fr.ID)
		}
	}

	return graph, nil
}

// MarshalGraph serializes the aggregate to JSON bytes
func MarshalGraph(graph *aggregates.Graph) ([]byte, error) {
	data, err := json.Marshal(EncodeGraph(graph))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to marshal graph")
	}
	return data, nil
}

// UnmarshalGraph deserializes JSON bytes back into the aggregate
func UnmarshalGraph(data []byte) (*aggregates.Graph, error) {
	var record GraphRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to unmarshal graph")
	}
	return DecodeGraph(&record)
}
