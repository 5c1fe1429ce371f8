package valueobjects

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/google/uuid"
)

// UserID is a value object representing a unique user identifier.
// Identifiers are opaque: new users get a generated UUID, imported
// graphs may carry arbitrary non-empty ids.
type UserID struct {
	value string
}

// NewUserID creates a new random UserID
func NewUserID() UserID {
	return UserID{value: uuid.New().String()}
}

// NewUserIDFromString creates a UserID from an existing string
func NewUserIDFromString(id string) (UserID, error) {
	if id == "" {
		return UserID{}, errors.New("user ID cannot be empty")
	}
	return UserID{value: id}, nil
}

// String returns the string representation of the UserID
func (id UserID) String() string {
	return id.value
}

// Equals checks if two UserIDs are equal
func (id UserID) Equals(other UserID) bool {
	return id.value == other.value
}

// Less orders UserIDs lexicographically. Neighbor lists and query
// results are kept in this order so equal-length answers stay
// reproducible across runs.
func (id UserID) Less(other UserID) bool {
	return id.value < other.value
}

// IsZero checks if the UserID is the zero value
func (id UserID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler. Imported ids are arbitrary
// strings, so the value is quoted properly rather than wrapped.
func (id UserID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(id.value)), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *UserID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return errors.New("UserID must be a string")
	}
	id.value = value
	return nil
}
