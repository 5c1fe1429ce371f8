package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"socialgraph-backend/application/commands"
	"socialgraph-backend/application/commands/bus"
	"socialgraph-backend/application/queries"
	querybus "socialgraph-backend/application/queries/bus"
	"socialgraph-backend/application/services"
	"socialgraph-backend/pkg/common"
	pkgerrors "socialgraph-backend/pkg/errors"
	"socialgraph-backend/pkg/observability"
)

// GraphHandler handles whole-graph HTTP requests: the render payload,
// statistics, and import/export.
type GraphHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	metrics    *observability.Collector
	logger     *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	metrics *observability.Collector,
	logger *zap.Logger,
) *GraphHandler {
	return &GraphHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		metrics:    metrics,
		logger:     logger,
	}
}

// GetGraph handles GET /graph: the full graph with community colors,
// in the form the rendering layer consumes
func (h *GraphHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GraphDataQuery{})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	if data, ok := result.(*queries.GraphDataResult); ok {
		h.metrics.SetGraphSize(len(data.Users), len(data.Friendships))
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// GetStats handles GET /graph/stats
func (h *GraphHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GraphStatsQuery{})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	if stats, ok := result.(*queries.GraphStatsResult); ok {
		h.metrics.SetGraphSize(stats.UserCount, stats.FriendshipCount)
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// ImportGraph handles POST /graph/import. The import replaces the
// stored graph wholesale; a document that violates any invariant is
// rejected without touching the existing graph.
func (h *GraphHandler) ImportGraph(w http.ResponseWriter, r *http.Request) {
	var doc services.GraphDocument
	if err := common.ParseJSONBody(r, &doc, 32<<20); err != nil {
		respondError(w, h.logger, pkgerrors.NewValidationError("invalid graph document: "+err.Error()))
		return
	}

	cmd := commands.ImportGraphCommand{
		Name:        doc.Name,
		Users:       doc.Users,
		Friendships: doc.Friendships,
	}
	if cmd.Name == "" {
		cmd.Name = "imported graph"
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		respondError(w, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "graph imported",
		"users":       len(doc.Users),
		"friendships": len(doc.Friendships),
	})
}

// ExportGraph handles GET /graph/export, producing a document that
// ImportGraph accepts unchanged
func (h *GraphHandler) ExportGraph(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GraphDataQuery{})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	data, ok := result.(*queries.GraphDataResult)
	if !ok {
		respondError(w, h.logger, pkgerrors.NewInternalError("unexpected query result type"))
		return
	}

	doc := services.GraphDocument{
		Name:       data.Name,
		ExportedAt: time.Now().UTC(),
	}
	for _, u := range data.Users {
		doc.Users = append(doc.Users, commands.ImportedUser{ID: u.ID, Label: u.Label})
	}
	for _, f := range data.Friendships {
		doc.Friendships = append(doc.Friendships, commands.ImportedFriendship{
			SourceID: f.SourceID,
			TargetID: f.TargetID,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="graph.json"`)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		h.logger.Error("failed to encode export", zap.Error(err))
	}
}
