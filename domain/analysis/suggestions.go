package analysis

import (
	"sort"

	"socialgraph-backend/domain/core/valueobjects"
	pkgerrors "socialgraph-backend/pkg/errors"
)

// Suggestion is a friend recommendation: a candidate user, how many
// friends it shares with the query user, and the explicit set of those
// shared friends (sorted ascending).
type Suggestion struct {
	UserID        valueobjects.UserID   `json:"user_id"`
	MutualCount   int                   `json:"mutual_count"`
	MutualFriends []valueobjects.UserID `json:"mutual_friends"`
}

// SuggestionEngine ranks non-adjacent users by shared-neighbor count
type SuggestionEngine struct {
	index *AdjacencyIndex
}

// NewSuggestionEngine creates a suggestion engine bound to an index
func NewSuggestionEngine(index *AdjacencyIndex) *SuggestionEngine {
	return &SuggestionEngine{index: index}
}

// MutualFriends recommends candidates for userID. The user itself and
// its existing friends are excluded categorically; remaining candidates
// with at least one shared friend are returned sorted by shared count
// descending, ties broken by ascending candidate id. Candidates with no
// shared friends are omitted entirely.
func (e *SuggestionEngine) MutualFriends(userID valueobjects.UserID) ([]Suggestion, error) {
	if !e.index.Has(userID) {
		return nil, pkgerrors.NewUnknownNodeError(userID.String())
	}

	friends := e.index.neighborList(userID)
	isFriend := make(map[valueobjects.UserID]bool, len(friends))
	for _, f := range friends {
		isFriend[f] = true
	}

	var suggestions []Suggestion
	for _, candidate := range e.index.order {
		if candidate.Equals(userID) || isFriend[candidate] {
			continue
		}

		shared := intersectSorted(friends, e.index.neighborList(candidate))
		if len(shared) == 0 {
			continue
		}

		suggestions = append(suggestions, Suggestion{
			UserID:        candidate,
			MutualCount:   len(shared),
			MutualFriends: shared,
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].MutualCount != suggestions[j].MutualCount {
			return suggestions[i].MutualCount > suggestions[j].MutualCount
		}
		return suggestions[i].UserID.Less(suggestions[j].UserID)
	})

	return suggestions, nil
}

// intersectSorted merges two ascending id slices into their
// intersection
func intersectSorted(a, b []valueobjects.UserID) []valueobjects.UserID {
	var out []valueobjects.UserID
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Less(b[j]):
			i++
		case b[j].Less(a[i]):
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}
