package handlers

import (
	"context"

	"socialgraph-backend/application/ports"
	"socialgraph-backend/domain/analysis"
	"socialgraph-backend/domain/core/aggregates"
	pkgerrors "socialgraph-backend/pkg/errors"
)

// loadEngine captures one snapshot of the stored graph and binds a
// fresh analysis engine to it. Every query handler goes through here:
// the engine answers from its own immutable snapshot, so concurrent
// mutations only affect later queries.
func loadEngine(ctx context.Context, graphRepo ports.GraphRepository) (*aggregates.Graph, *analysis.Engine, error) {
	graph, err := graphRepo.Load(ctx)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(err, "failed to load graph")
	}

	engine, err := analysis.NewEngine(graph.Snapshot())
	if err != nil {
		return nil, nil, err
	}

	return graph, engine, nil
}
