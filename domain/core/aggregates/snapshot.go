package aggregates

import (
	"sort"

	"socialgraph-backend/domain/core/valueobjects"
)

// Pair is an unordered friendship captured in canonical (ascending)
// order: Source < Target always holds.
type Pair struct {
	Source valueobjects.UserID
	Target valueobjects.UserID
}

// Snapshot is an immutable pairing of the node set and the edge set,
// captured at a single point in time. It is the only input the
// analysis engine accepts; the engine never mutates it and the
// aggregate never hands out references into its own state.
type Snapshot struct {
	userIDs []valueobjects.UserID
	pairs   []Pair
}

func newSnapshot(userIDs []valueobjects.UserID, pairs []Pair) *Snapshot {
	return &Snapshot{userIDs: userIDs, pairs: pairs}
}

// NewSnapshot builds a snapshot directly from id and pair slices.
// Exposed for importers and for callers that assemble graphs outside
// the aggregate; the slices are copied and ids are sorted and
// deduplicated so the snapshot keeps the same ordered shape
// Snapshot() produces.
func NewSnapshot(userIDs []valueobjects.UserID, pairs []Pair) *Snapshot {
	ids := make([]valueobjects.UserID, len(userIDs))
	copy(ids, userIDs)
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })

	unique := ids[:0]
	for i, id := range ids {
		if i == 0 || !ids[i-1].Equals(id) {
			unique = append(unique, id)
		}
	}

	ps := make([]Pair, len(pairs))
	copy(ps, pairs)
	return &Snapshot{userIDs: unique, pairs: ps}
}

// UserIDs returns a copy of the node set in ascending id order
func (s *Snapshot) UserIDs() []valueobjects.UserID {
	ids := make([]valueobjects.UserID, len(s.userIDs))
	copy(ids, s.userIDs)
	return ids
}

// Pairs returns a copy of the edge set
func (s *Snapshot) Pairs() []Pair {
	pairs := make([]Pair, len(s.pairs))
	copy(pairs, s.pairs)
	return pairs
}

// UserCount returns the number of nodes in the snapshot
func (s *Snapshot) UserCount() int {
	return len(s.userIDs)
}

// PairCount returns the number of edges in the snapshot
func (s *Snapshot) PairCount() int {
	return len(s.pairs)
}
