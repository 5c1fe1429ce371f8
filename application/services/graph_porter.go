package services

import (
	"time"

	"socialgraph-backend/application/commands"
	"socialgraph-backend/domain/core/aggregates"
	"socialgraph-backend/domain/core/entities"
	"socialgraph-backend/domain/core/valueobjects"
	pkgerrors "socialgraph-backend/pkg/errors"
)

// GraphDocument is the portable JSON form of a whole graph, used by
// import/export on both the CLI and the HTTP surface.
type GraphDocument struct {
	Name        string                        `json:"name"`
	Users       []commands.ImportedUser       `json:"users"`
	Friendships []commands.ImportedFriendship `json:"friendships"`
	ExportedAt  time.Time                     `json:"exported_at,omitempty"`
}

// GraphPorter converts between GraphDocument and the graph aggregate
type GraphPorter struct{}

// NewGraphPorter creates a porter
func NewGraphPorter() *GraphPorter {
	return &GraphPorter{}
}

// BuildGraph assembles a new aggregate from a document. Users are
// added before friendships, so every invariant violation (unknown
// endpoint, self-loop, duplicate pair) surfaces as a construction
// error and nothing partial escapes.
func (p *GraphPorter) BuildGraph(doc GraphDocument, limits aggregates.Limits) (*aggregates.Graph, error) {
	name := doc.Name
	if name == "" {
		name = "imported graph"
	}

	graph, err := aggregates.NewGraph(name)
	if err != nil {
		return nil, err
	}
	graph.SetLimits(limits)

	for _, u := range doc.Users {
		userID, err := valueobjects.NewUserIDFromString(u.ID)
		if err != nil {
			return nil, pkgerrors.NewValidationError("user id cannot be empty")
		}
		user, err := entities.ReconstructUser(userID, u.Label, time.Now())
		if err != nil {
			return nil, err
		}
		if err := graph.AddUser(user); err != nil {
			return nil, err
		}
	}

	for _, f := range doc.Friendships {
		sourceID, err := valueobjects.NewUserIDFromString(f.SourceID)
		if err != nil {
			return nil, pkgerrors.NewValidationError("friendship source id cannot be empty")
		}
		targetID, err := valueobjects.NewUserIDFromString(f.TargetID)
		if err != nil {
			return nil, pkgerrors.NewValidationError("friendship target id cannot be empty")
		}
		if _, err := graph.AddFriendship(sourceID, targetID); err != nil {
			return nil, err
		}
	}

	graph.MarkEventsAsCommitted()
	graph.RecordImported()
	return graph, nil
}

// ExportGraph flattens an aggregate into a document
func (p *GraphPorter) ExportGraph(graph *aggregates.Graph) GraphDocument {
	doc := GraphDocument{
		Name:       graph.Name(),
		ExportedAt: time.Now(),
	}

	for _, user := range graph.Users() {
		doc.Users = append(doc.Users, commands.ImportedUser{
			ID:    user.ID().String(),
			Label: user.Label(),
		})
	}

	for _, f := range graph.Friendships() {
		doc.Friendships = append(doc.Friendships, commands.ImportedFriendship{
			SourceID: f.SourceID.String(),
			TargetID: f.TargetID.String(),
		})
	}

	return doc
}
