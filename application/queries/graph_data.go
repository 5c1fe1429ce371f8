package queries

// GraphDataQuery asks for the full graph in the form the rendering
// layer consumes: users with labels, friendships as id pairs, and the
// community color of every user.
type GraphDataQuery struct{}

// Validate implements the Query interface; the query has no parameters
func (q GraphDataQuery) Validate() error {
	return nil
}

// UserView is the wire form of one user
type UserView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// FriendshipView is the wire form of one friendship
type FriendshipView struct {
	SourceID string `json:"source_id"`
	TargetID string `json:"target_id"`
}

// GraphDataResult is the wire form of the whole graph
type GraphDataResult struct {
	Name        string           `json:"name"`
	Users       []UserView       `json:"users"`
	Friendships []FriendshipView `json:"friendships"`
}
