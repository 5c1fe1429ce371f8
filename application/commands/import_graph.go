package commands

import (
	"socialgraph-backend/pkg/utils"
)

// ImportedUser is one user record in an import document
type ImportedUser struct {
	ID    string `json:"id" validate:"required"`
	Label string `json:"label"`
}

// ImportedFriendship is one friendship record in an import document
type ImportedFriendship struct {
	SourceID string `json:"source_id" validate:"required"`
	TargetID string `json:"target_id" validate:"required"`
}

// ImportGraphCommand replaces the whole stored graph with the given
// users and friendships. The import is all-or-nothing: if any record
// violates a graph invariant, nothing is applied.
type ImportGraphCommand struct {
	Name        string               `json:"name" validate:"required,min=1,max=100"`
	Users       []ImportedUser       `json:"users" validate:"dive"`
	Friendships []ImportedFriendship `json:"friendships" validate:"dive"`
}

// Validate checks the command against its validation tags
func (c ImportGraphCommand) Validate() error {
	return utils.ValidateStruct(c)
}
