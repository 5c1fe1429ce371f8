package commands

import (
	"socialgraph-backend/pkg/utils"
)

// AddUserCommand represents the command to add a user to the graph.
// The caller supplies the id (typically a freshly generated UUID) so
// it can reference the user in its response without waiting on the
// command's return value.
type AddUserCommand struct {
	UserID string `json:"user_id" validate:"required"`
	Label  string `json:"label" validate:"required,min=1,max=100"`
}

// Validate checks the command against its validation tags
func (c AddUserCommand) Validate() error {
	return utils.ValidateStruct(c)
}
