// Package analysis is the graph algorithms engine. It answers three
// analytical queries over an immutable snapshot of the social graph:
// shortest connection path between two users, partition into connected
// communities, and ranked mutual-friend suggestions.
//
// All queries are pure, synchronous and CPU-bound; nothing here blocks
// or performs I/O. An Engine is safe for concurrent use because every
// query only reads the snapshot-derived index. Mutation happens in the
// graph store, which constructs a fresh Engine from a new snapshot.
package analysis

import (
	"socialgraph-backend/domain/core/aggregates"
	"socialgraph-backend/domain/core/valueobjects"
)

// Engine binds the path finder, community detector and suggestion
// engine to one adjacency index derived from a single snapshot.
type Engine struct {
	index       *AdjacencyIndex
	pathFinder  *PathFinder
	communities *CommunityDetector
	suggestions *SuggestionEngine
}

// NewEngine builds the adjacency index from the snapshot and wires the
// query components against it. Construction fails with InvalidEdge if
// an edge references an unknown user or is a self-loop, and with
// DuplicateEdge if the same unordered pair appears twice.
func NewEngine(snapshot *aggregates.Snapshot) (*Engine, error) {
	index, err := BuildIndex(snapshot)
	if err != nil {
		return nil, err
	}

	return &Engine{
		index:       index,
		pathFinder:  NewPathFinder(index),
		communities: NewCommunityDetector(index),
		suggestions: NewSuggestionEngine(index),
	}, nil
}

// Index returns the underlying adjacency index
func (e *Engine) Index() *AdjacencyIndex {
	return e.index
}

// ShortestPath returns the minimum-edge path between two users, or an
// unreachable result if they are in different components
func (e *Engine) ShortestPath(start, end valueobjects.UserID) (PathResult, error) {
	return e.pathFinder.ShortestPath(start, end)
}

// Communities returns the connected-component partition computed by
// breadth-first traversal
func (e *Engine) Communities() []Community {
	return e.communities.Communities()
}

// CommunitiesViaUnionFind returns the same partition computed with a
// disjoint-set forest
func (e *Engine) CommunitiesViaUnionFind() []Community {
	return e.communities.CommunitiesViaUnionFind()
}

// MutualFriends returns ranked friend suggestions for a user
func (e *Engine) MutualFriends(userID valueobjects.UserID) ([]Suggestion, error) {
	return e.suggestions.MutualFriends(userID)
}
