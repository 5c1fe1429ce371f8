package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"socialgraph-backend/application/commands/bus"
	querybus "socialgraph-backend/application/queries/bus"
	"socialgraph-backend/infrastructure/config"
	"socialgraph-backend/interfaces/http/rest/handlers"
	"socialgraph-backend/interfaces/http/rest/middleware"
	"socialgraph-backend/pkg/observability"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg        *config.Config
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	metrics    *observability.Collector
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	metrics *observability.Collector,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:        cfg,
		commandBus: commandBus,
		queryBus:   queryBus,
		metrics:    metrics,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableMetrics {
		router.Use(rt.metrics.Middleware)
	}

	if rt.cfg.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(rt.cfg.RateLimitPerMinute, time.Minute/time.Duration(rt.cfg.RateLimitPerMinute))
		router.Use(limiter.Middleware)
	}

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	// Health and observability
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	if rt.cfg.EnableMetrics {
		router.Handle("/metrics", rt.metrics.Handler())
	}

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		userHandler := handlers.NewUserHandler(rt.commandBus, rt.queryBus, rt.logger)
		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandler.CreateUser)
			r.Get("/", userHandler.ListUsers)
			r.Put("/{userID}", userHandler.UpdateUser)
			r.Delete("/{userID}", userHandler.DeleteUser)
		})

		friendshipHandler := handlers.NewFriendshipHandler(rt.commandBus, rt.logger)
		r.Route("/friendships", func(r chi.Router) {
			r.Post("/", friendshipHandler.CreateFriendship)
			r.Delete("/", friendshipHandler.DeleteFriendship)
		})

		analysisHandler := handlers.NewAnalysisHandler(rt.queryBus, rt.metrics, rt.logger)
		r.Route("/analysis", func(r chi.Router) {
			r.Get("/path", analysisHandler.GetPath)
			r.Get("/communities", analysisHandler.GetCommunities)
			r.Get("/suggestions/{userID}", analysisHandler.GetSuggestions)
		})

		graphHandler := handlers.NewGraphHandler(rt.commandBus, rt.queryBus, rt.metrics, rt.logger)
		r.Route("/graph", func(r chi.Router) {
			r.Get("/", graphHandler.GetGraph)
			r.Get("/stats", graphHandler.GetStats)
			r.Post("/import", graphHandler.ImportGraph)
			r.Get("/export", graphHandler.ExportGraph)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
