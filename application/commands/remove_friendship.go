package commands

import (
	"socialgraph-backend/pkg/utils"
)

// RemoveFriendshipCommand represents the command to sever a friendship
type RemoveFriendshipCommand struct {
	SourceID string `json:"source_id" validate:"required"`
	TargetID string `json:"target_id" validate:"required"`
}

// Validate checks the command against its validation tags
func (c RemoveFriendshipCommand) Validate() error {
	return utils.ValidateStruct(c)
}
