package analysis

import (
	"sort"

	"socialgraph-backend/domain/core/aggregates"
	"socialgraph-backend/domain/core/valueobjects"
	pkgerrors "socialgraph-backend/pkg/errors"
)

// AdjacencyIndex maps every user to its directly connected users.
// It is derived once from a snapshot and never mutated afterwards.
// Neighbor lists are kept sorted by id so every traversal visits
// candidates in the same order; this is what makes equal-length
// shortest paths and suggestion ordering reproducible.
type AdjacencyIndex struct {
	neighbors map[valueobjects.UserID][]valueobjects.UserID
	order     []valueobjects.UserID
}

// BuildIndex converts a snapshot's node and edge sets into constant-time
// neighbor lookups. Every node gets an entry even if it has no edges.
// Construction fails rather than producing dangling references: an edge
// with a missing endpoint or a self-loop is an InvalidEdge error, a
// repeated unordered pair is a DuplicateEdge error.
func BuildIndex(snapshot *aggregates.Snapshot) (*AdjacencyIndex, error) {
	if snapshot == nil {
		return nil, pkgerrors.NewValidationError("snapshot cannot be nil")
	}

	order := snapshot.UserIDs()
	neighbors := make(map[valueobjects.UserID][]valueobjects.UserID, len(order))
	for _, id := range order {
		neighbors[id] = nil
	}

	seen := make(map[aggregates.Pair]struct{}, snapshot.PairCount())
	for _, pair := range snapshot.Pairs() {
		a, b := pair.Source, pair.Target
		if b.Less(a) {
			a, b = b, a
		}

		if a.Equals(b) {
			return nil, pkgerrors.NewInvalidEdgeError(a.String(), b.String(), "self-loops are not allowed")
		}
		if _, exists := neighbors[a]; !exists {
			return nil, pkgerrors.NewInvalidEdgeError(a.String(), b.String(), "source user does not exist")
		}
		if _, exists := neighbors[b]; !exists {
			return nil, pkgerrors.NewInvalidEdgeError(a.String(), b.String(), "target user does not exist")
		}

		canonical := aggregates.Pair{Source: a, Target: b}
		if _, dup := seen[canonical]; dup {
			return nil, pkgerrors.NewDuplicateEdgeError(a.String(), b.String())
		}
		seen[canonical] = struct{}{}

		// Symmetric by construction: {a,b} yields both directions.
		neighbors[a] = append(neighbors[a], b)
		neighbors[b] = append(neighbors[b], a)
	}

	for id := range neighbors {
		ns := neighbors[id]
		sort.Slice(ns, func(i, j int) bool { return ns[i].Less(ns[j]) })
	}

	return &AdjacencyIndex{
		neighbors: neighbors,
		order:     order,
	}, nil
}

// Has reports whether the user is part of the indexed snapshot
func (idx *AdjacencyIndex) Has(id valueobjects.UserID) bool {
	_, exists := idx.neighbors[id]
	return exists
}

// Neighbors returns the users directly connected to id, sorted
// ascending. The returned slice is a copy.
func (idx *AdjacencyIndex) Neighbors(id valueobjects.UserID) []valueobjects.UserID {
	ns := idx.neighbors[id]
	out := make([]valueobjects.UserID, len(ns))
	copy(out, ns)
	return out
}

// Degree returns the number of direct connections of id
func (idx *AdjacencyIndex) Degree(id valueobjects.UserID) int {
	return len(idx.neighbors[id])
}

// UserIDs returns every indexed user in ascending id order
func (idx *AdjacencyIndex) UserIDs() []valueobjects.UserID {
	out := make([]valueobjects.UserID, len(idx.order))
	copy(out, idx.order)
	return out
}

// Size returns the number of indexed users
func (idx *AdjacencyIndex) Size() int {
	return len(idx.order)
}

// neighborList exposes the internal sorted slice for traversal loops.
// Callers must not mutate it.
func (idx *AdjacencyIndex) neighborList(id valueobjects.UserID) []valueobjects.UserID {
	return idx.neighbors[id]
}
