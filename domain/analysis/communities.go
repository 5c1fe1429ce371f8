package analysis

import (
	"sort"

	"socialgraph-backend/domain/core/valueobjects"
)

// communityPalette is the fixed ordered palette used to tag
// communities for the rendering layer. Ten entries keeps small graphs
// from repeating colors early.
var communityPalette = []string{
	"#e6194b", // red
	"#3cb44b", // green
	"#4363d8", // blue
	"#f58231", // orange
	"#911eb4", // purple
	"#42d4f4", // cyan
	"#f032e6", // magenta
	"#bfef45", // lime
	"#fabed4", // pink
	"#469990", // teal
}

// PaletteSize returns the number of distinct community colors
func PaletteSize() int {
	return len(communityPalette)
}

// Community is one connected component: a maximal set of users
// pairwise reachable via friendships. Members are sorted ascending.
type Community struct {
	ID      int                   `json:"id"`
	Members []valueobjects.UserID `json:"members"`
	Color   string                `json:"color"`
}

// Size returns the number of members
func (c Community) Size() int {
	return len(c.Members)
}

// CommunityDetector partitions the indexed users into connected
// components. Two independently implemented methods are provided; they
// always induce the same partition, though community numbering may
// differ. Every user belongs to exactly one community, including
// isolated users, which form singleton communities.
type CommunityDetector struct {
	index *AdjacencyIndex
}

// NewCommunityDetector creates a detector bound to an index
func NewCommunityDetector(index *AdjacencyIndex) *CommunityDetector {
	return &CommunityDetector{index: index}
}

// Communities computes the partition by iterative breadth-first
// traversal. Users are scanned in ascending id order; each not-yet
// visited user seeds a new community that absorbs everything reachable
// from it. Community ids are sequential from 0 in discovery order.
func (d *CommunityDetector) Communities() []Community {
	visited := make(map[valueobjects.UserID]bool, d.index.Size())
	var communities []Community

	for _, seed := range d.index.order {
		if visited[seed] {
			continue
		}

		members := []valueobjects.UserID{seed}
		visited[seed] = true
		queue := []valueobjects.UserID{seed}

		for head := 0; head < len(queue); head++ {
			current := queue[head]
			for _, next := range d.index.neighborList(current) {
				if visited[next] {
					continue
				}
				visited[next] = true
				members = append(members, next)
				queue = append(queue, next)
			}
		}

		sortUserIDs(members)
		communities = append(communities, newCommunity(len(communities), members))
	}

	return communities
}

// CommunitiesViaUnionFind computes the same partition with a
// disjoint-set forest: every user starts as a singleton, every
// friendship unions its endpoints, then users are grouped by their set
// representative. Communities are numbered by the first appearance of
// their representative while scanning users in ascending id order, so
// the output is stable for a given snapshot.
func (d *CommunityDetector) CommunitiesViaUnionFind() []Community {
	n := d.index.Size()
	position := make(map[valueobjects.UserID]int, n)
	for i, id := range d.index.order {
		position[id] = i
	}

	uf := newUnionFind(n)
	for _, id := range d.index.order {
		for _, neighbor := range d.index.neighborList(id) {
			uf.union(position[id], position[neighbor])
		}
	}

	communityOf := make(map[int]int, n)
	var communities []Community
	for i, id := range d.index.order {
		root := uf.find(i)
		c, seen := communityOf[root]
		if !seen {
			c = len(communities)
			communityOf[root] = c
			communities = append(communities, newCommunity(c, nil))
		}
		communities[c].Members = append(communities[c].Members, id)
	}

	// Members arrive in ascending order already because the scan is
	// ordered, so no re-sort is needed.
	return communities
}

func newCommunity(id int, members []valueobjects.UserID) Community {
	return Community{
		ID:      id,
		Members: members,
		Color:   communityPalette[id%len(communityPalette)],
	}
}

func sortUserIDs(ids []valueobjects.UserID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
}
