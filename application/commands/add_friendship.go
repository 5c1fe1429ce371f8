package commands

import (
	"socialgraph-backend/pkg/utils"
)

// AddFriendshipCommand represents the command to connect two users.
// The pair is unordered; source/target naming only reflects who asked.
type AddFriendshipCommand struct {
	SourceID string `json:"source_id" validate:"required"`
	TargetID string `json:"target_id" validate:"required"`
}

// Validate checks the command against its validation tags
func (c AddFriendshipCommand) Validate() error {
	return utils.ValidateStruct(c)
}
