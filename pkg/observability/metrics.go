// Package observability exposes Prometheus metrics for the HTTP
// surface and the graph domain.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"socialgraph-backend/domain/events"
)

// Collector holds all Prometheus metrics for the application. Each
// collector owns its registry, so tests can build as many as they
// like without duplicate-registration panics.
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Business metrics
	UsersAdded         prometheus.Counter
	UsersRemoved       prometheus.Counter
	FriendshipsAdded   prometheus.Counter
	FriendshipsRemoved prometheus.Counter
	GraphImports       prometheus.Counter
	AnalysisQueries    *prometheus.CounterVec
	GraphUsers         prometheus.Gauge
	GraphFriendships   prometheus.Gauge
}

// NewCollector creates a metrics collector with the given namespace
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	usersAdded := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_added_total",
		Help:      "Total number of users added to the graph",
	})

	usersRemoved := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_removed_total",
		Help:      "Total number of users removed from the graph",
	})

	friendshipsAdded := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "friendships_added_total",
		Help:      "Total number of friendships added to the graph",
	})

	friendshipsRemoved := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "friendships_removed_total",
		Help:      "Total number of friendships removed from the graph",
	})

	graphImports := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "graph_imports_total",
		Help:      "Total number of full graph imports",
	})

	analysisQueries := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analysis_queries_total",
			Help:      "Total number of analysis queries by kind",
		},
		[]string{"kind"},
	)

	graphUsers := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "graph_users",
		Help:      "Current number of users in the graph",
	})

	graphFriendships := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "graph_friendships",
		Help:      "Current number of friendships in the graph",
	})

	registry.MustRegister(
		httpRequests,
		httpDuration,
		usersAdded,
		usersRemoved,
		friendshipsAdded,
		friendshipsRemoved,
		graphImports,
		analysisQueries,
		graphUsers,
		graphFriendships,
	)

	return &Collector{
		registry:           registry,
		HTTPRequests:       httpRequests,
		HTTPDuration:       httpDuration,
		UsersAdded:         usersAdded,
		UsersRemoved:       usersRemoved,
		FriendshipsAdded:   friendshipsAdded,
		FriendshipsRemoved: friendshipsRemoved,
		GraphImports:       graphImports,
		AnalysisQueries:    analysisQueries,
		GraphUsers:         graphUsers,
		GraphFriendships:   graphFriendships,
	}
}

// Registry returns the collector's Prometheus registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler returns the HTTP handler for the /metrics endpoint
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latencies per chi route
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		c.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
		c.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// ObserveEvent bumps the business counter matching a committed domain
// event. Wired as a change-notifier subscriber.
func (c *Collector) ObserveEvent(evt events.DomainEvent) {
	switch evt.(type) {
	case events.UserAdded:
		c.UsersAdded.Inc()
	case events.UserRemoved:
		c.UsersRemoved.Inc()
	case events.FriendshipAdded:
		c.FriendshipsAdded.Inc()
	case events.FriendshipRemoved:
		c.FriendshipsRemoved.Inc()
	case events.GraphImported:
		c.GraphImports.Inc()
	}
}

// ObserveAnalysis bumps the analysis counter for one query kind
func (c *Collector) ObserveAnalysis(kind string) {
	c.AnalysisQueries.WithLabelValues(kind).Inc()
}

// SetGraphSize updates the current graph size gauges
func (c *Collector) SetGraphSize(users, friendships int) {
	c.GraphUsers.Set(float64(users))
	c.GraphFriendships.Set(float64(friendships))
}
