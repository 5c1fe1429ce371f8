package analysis

import (
	"socialgraph-backend/domain/core/valueobjects"
	pkgerrors "socialgraph-backend/pkg/errors"
)

// PathResult is the outcome of a shortest-path query. When Reachable
// is false the two users live in different components; that is a
// normal result for a disconnected graph, not an error.
type PathResult struct {
	Path      []valueobjects.UserID `json:"path,omitempty"`
	Distance  int                   `json:"distance"`
	Reachable bool                  `json:"reachable"`
}

// PathFinder answers shortest-path queries over one adjacency index
type PathFinder struct {
	index *AdjacencyIndex
}

// NewPathFinder creates a path finder bound to an index
func NewPathFinder(index *AdjacencyIndex) *PathFinder {
	return &PathFinder{index: index}
}

// ShortestPath finds the minimum-edge-count path between two users
// using breadth-first search. A node is marked discovered the instant
// it is first enqueued and the search stops as soon as end is
// discovered, which guarantees the reconstructed path is minimal.
// Neighbors are expanded in ascending id order, so among equal-length
// paths the lexicographically earliest discovery wins.
func (f *PathFinder) ShortestPath(start, end valueobjects.UserID) (PathResult, error) {
	if !f.index.Has(start) {
		return PathResult{}, pkgerrors.NewUnknownNodeError(start.String())
	}
	if !f.index.Has(end) {
		return PathResult{}, pkgerrors.NewUnknownNodeError(end.String())
	}

	if start.Equals(end) {
		return PathResult{
			Path:      []valueobjects.UserID{start},
			Distance:  0,
			Reachable: true,
		}, nil
	}

	discovered := map[valueobjects.UserID]bool{start: true}
	parent := make(map[valueobjects.UserID]valueobjects.UserID)
	queue := []valueobjects.UserID{start}

	for head := 0; head < len(queue); head++ {
		current := queue[head]

		for _, next := range f.index.neighborList(current) {
			if discovered[next] {
				continue
			}
			discovered[next] = true
			parent[next] = current
			queue = append(queue, next)

			if next.Equals(end) {
				path := reconstructPath(start, end, parent)
				return PathResult{
					Path:      path,
					Distance:  len(path) - 1,
					Reachable: true,
				}, nil
			}
		}
	}

	return PathResult{Reachable: false}, nil
}

// reconstructPath walks the BFS parent links backward from end to
// start and reverses the sequence
func reconstructPath(
	start, end valueobjects.UserID,
	parent map[valueobjects.UserID]valueobjects.UserID,
) []valueobjects.UserID {
	path := []valueobjects.UserID{end}
	for n := end; !n.Equals(start); {
		n = parent[n]
		path = append(path, n)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
