package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"socialgraph-backend/application/queries"
	querybus "socialgraph-backend/application/queries/bus"
	"socialgraph-backend/pkg/common"
	pkgerrors "socialgraph-backend/pkg/errors"
	"socialgraph-backend/pkg/observability"
)

// AnalysisHandler handles graph analysis HTTP requests
type AnalysisHandler struct {
	queryBus *querybus.QueryBus
	metrics  *observability.Collector
	logger   *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(queryBus *querybus.QueryBus, metrics *observability.Collector, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		queryBus: queryBus,
		metrics:  metrics,
		logger:   logger,
	}
}

// GetPath handles GET /analysis/path?start=&end=. An unreachable pair
// is a successful answer with reachable=false, not an error.
func (h *AnalysisHandler) GetPath(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		respondError(w, h.logger, pkgerrors.NewValidationError("start and end query parameters are required"))
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.ShortestPathQuery{
		StartID: start,
		EndID:   end,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	h.metrics.ObserveAnalysis("path")
	common.RespondJSON(w, http.StatusOK, result)
}

// GetCommunities handles GET /analysis/communities?method=. The method
// defaults to traversal; unionfind yields the same partition through
// an independent algorithm.
func (h *AnalysisHandler) GetCommunities(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.CommunitiesQuery{
		Method: r.URL.Query().Get("method"),
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	h.metrics.ObserveAnalysis("communities")
	common.RespondJSON(w, http.StatusOK, result)
}

// GetSuggestions handles GET /analysis/suggestions/{userID}
func (h *AnalysisHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		respondError(w, h.logger, pkgerrors.NewValidationError("user id is required"))
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.MutualFriendsQuery{UserID: userID})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	h.metrics.ObserveAnalysis("suggestions")
	common.RespondJSON(w, http.StatusOK, result)
}
