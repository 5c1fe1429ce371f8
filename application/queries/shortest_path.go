package queries

import (
	"socialgraph-backend/pkg/utils"
)

// ShortestPathQuery asks for the minimum-edge connection path between
// two users
type ShortestPathQuery struct {
	StartID string `json:"start_id" validate:"required"`
	EndID   string `json:"end_id" validate:"required"`
}

// Validate checks the query against its validation tags
func (q ShortestPathQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// ShortestPathResult is the wire form of a path query answer. When
// Reachable is false the users are in different communities; the
// query still succeeded.
type ShortestPathResult struct {
	Path      []string `json:"path,omitempty"`
	Distance  int      `json:"distance"`
	Reachable bool     `json:"reachable"`
}
