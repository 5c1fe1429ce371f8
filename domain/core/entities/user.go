package entities

import (
	"strings"
	"time"

	"socialgraph-backend/domain/core/valueobjects"
	pkgerrors "socialgraph-backend/pkg/errors"
)

// User is a vertex of the social graph: an opaque identifier plus a
// display label. The label is presentation-only and is never consulted
// by any graph algorithm.
type User struct {
	id        valueobjects.UserID
	label     string
	createdAt time.Time
}

// NewUser creates a user with a freshly generated id
func NewUser(label string) (*User, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, pkgerrors.NewValidationError("user label cannot be empty")
	}

	return &User{
		id:        valueobjects.NewUserID(),
		label:     label,
		createdAt: time.Now(),
	}, nil
}

// ReconstructUser recreates a user from stored or imported data
func ReconstructUser(id valueobjects.UserID, label string, createdAt time.Time) (*User, error) {
	if id.IsZero() {
		return nil, pkgerrors.NewValidationError("user id is required")
	}
	if strings.TrimSpace(label) == "" {
		// Imported graphs may omit labels; fall back to the id so the
		// rendering layer always has something to draw.
		label = id.String()
	}

	return &User{
		id:        id,
		label:     label,
		createdAt: createdAt,
	}, nil
}

// ID returns the user's unique identifier
func (u *User) ID() valueobjects.UserID {
	return u.id
}

// Label returns the display label
func (u *User) Label() string {
	return u.label
}

// CreatedAt returns when the user was added
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// Rename updates the display label
func (u *User) Rename(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return pkgerrors.NewValidationError("user label cannot be empty")
	}
	u.label = label
	return nil
}
