package queries

// GraphStatsQuery asks for summary statistics of the stored graph
type GraphStatsQuery struct{}

// Validate implements the Query interface; the query has no parameters
func (q GraphStatsQuery) Validate() error {
	return nil
}

// GraphStatsResult summarizes the stored graph
type GraphStatsResult struct {
	UserCount       int     `json:"user_count"`
	FriendshipCount int     `json:"friendship_count"`
	CommunityCount  int     `json:"community_count"`
	IsolatedUsers   int     `json:"isolated_users"`
	MaxDegree       int     `json:"max_degree"`
	AverageDegree   float64 `json:"average_degree"`
}
