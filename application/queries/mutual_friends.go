package queries

import (
	"socialgraph-backend/pkg/utils"
)

// MutualFriendsQuery asks for ranked friend suggestions for a user
type MutualFriendsQuery struct {
	UserID string `json:"user_id" validate:"required"`
}

// Validate checks the query against its validation tags
func (q MutualFriendsQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// SuggestionView is the wire form of one suggestion
type SuggestionView struct {
	UserID        string   `json:"user_id"`
	Label         string   `json:"label"`
	MutualCount   int      `json:"mutual_count"`
	MutualFriends []string `json:"mutual_friends"`
}

// MutualFriendsResult is the wire form of a suggestion query answer
type MutualFriendsResult struct {
	UserID      string           `json:"user_id"`
	Suggestions []SuggestionView `json:"suggestions"`
}
