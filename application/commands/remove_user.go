package commands

import (
	"socialgraph-backend/pkg/utils"
)

// RemoveUserCommand represents the command to remove a user and all
// friendships incident to it
type RemoveUserCommand struct {
	UserID string `json:"user_id" validate:"required"`
}

// Validate checks the command against its validation tags
func (c RemoveUserCommand) Validate() error {
	return utils.ValidateStruct(c)
}
