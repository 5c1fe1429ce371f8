package queries

import (
	"socialgraph-backend/pkg/utils"
)

// Community detection methods. Both compute the same partition; the
// union-find variant exists as an independent implementation that
// cross-checks the traversal one.
const (
	MethodTraversal = "traversal"
	MethodUnionFind = "unionfind"
)

// CommunitiesQuery asks for the connected-component partition of the
// graph
type CommunitiesQuery struct {
	Method string `json:"method" validate:"omitempty,oneof=traversal unionfind"`
}

// Validate checks the query against its validation tags
func (q CommunitiesQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// CommunityView is the wire form of one community
type CommunityView struct {
	ID      int      `json:"id"`
	Color   string   `json:"color"`
	Size    int      `json:"size"`
	Members []string `json:"members"`
}

// CommunitiesResult is the wire form of a community query answer
type CommunitiesResult struct {
	Method      string          `json:"method"`
	Communities []CommunityView `json:"communities"`
}
