package commands

import (
	"socialgraph-backend/pkg/utils"
)

// RenameUserCommand represents the command to change a user's display
// label
type RenameUserCommand struct {
	UserID string `json:"user_id" validate:"required"`
	Label  string `json:"label" validate:"required,min=1,max=100"`
}

// Validate checks the command against its validation tags
func (c RenameUserCommand) Validate() error {
	return utils.ValidateStruct(c)
}
