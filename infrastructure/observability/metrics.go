// Package observability exposes canvas activity as Prometheus metrics
package observability

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"osintgraph/application/interaction"
	"osintgraph/domain/events"
	"osintgraph/pkg/extensions"
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	// Registry for this collector instance
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Canvas metrics
	NodesCreated  prometheus.Counter
	NodesDeleted  prometheus.Counter
	NodesMoved    prometheus.Counter
	EdgesCreated  prometheus.Counter
	EdgesRemoved  prometheus.Counter
	NodeActions   *prometheus.CounterVec
	SessionsOpen  prometheus.Gauge
	SessionsTotal prometheus.Counter

	// Query metrics
	Queries       *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
}

// NewCollector creates a collector with its own registry under the given namespace
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		NodesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_created_total",
			Help:      "Total number of nodes placed on a canvas",
		}),
		NodesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_deleted_total",
			Help:      "Total number of nodes deleted",
		}),
		NodesMoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_moved_total",
			Help:      "Total number of node moves",
		}),
		EdgesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_created_total",
			Help:      "Total number of edges created",
		}),
		EdgesRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_removed_total",
			Help:      "Total number of edges removed, including cascades",
		}),
		NodeActions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "node_actions_total",
				Help:      "Context menu actions by outcome",
			},
			[]string{"action", "status"},
		),
		SessionsOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_open",
			Help:      "Number of open canvases",
		}),
		SessionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_opened_total",
			Help:      "Total number of canvases opened",
		}),
		Queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queries_total",
				Help:      "Total number of queries by outcome",
			},
			[]string{"query", "status"},
		),
		QueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "query_duration_seconds",
				Help:      "Query duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"query"},
		),
	}

	registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.NodesCreated,
		c.NodesDeleted,
		c.NodesMoved,
		c.EdgesCreated,
		c.EdgesRemoved,
		c.NodeActions,
		c.SessionsOpen,
		c.SessionsTotal,
		c.Queries,
		c.QueryDuration,
	)

	return c
}

// Registry returns the registry the metrics live in
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the metrics in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveHTTP records one served request
func (c *Collector) ObserveHTTP(method, route string, status int, duration time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveQuery records one handled query
func (c *Collector) ObserveQuery(queryType string, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.Queries.WithLabelValues(queryType, status).Inc()
	c.QueryDuration.WithLabelValues(queryType).Observe(duration.Seconds())
}

// RegisterHooks subscribes the collector to canvas lifecycle hooks
func (c *Collector) RegisterHooks(hooks *extensions.HookManager) {
	hooks.Register(extensions.HookSessionOpened, func(context.Context, interface{}) error {
		c.SessionsOpen.Inc()
		c.SessionsTotal.Inc()
		return nil
	})
	hooks.Register(extensions.HookSessionClosed, func(context.Context, interface{}) error {
		c.SessionsOpen.Dec()
		return nil
	})
	hooks.Register(extensions.HookAfterGraphMutation, func(_ context.Context, data interface{}) error {
		if batch, ok := data.(events.Batch); ok {
			c.recordEvents(batch.Events)
		}
		return nil
	})
	hooks.Register(extensions.HookAfterNodeAction, func(_ context.Context, data interface{}) error {
		if result, ok := data.(interaction.ActionResult); ok {
			c.NodeActions.WithLabelValues(string(result.Action), result.Status).Inc()
		}
		return nil
	})
}

func (c *Collector) recordEvents(evts []events.DomainEvent) {
	for _, evt := range evts {
		switch e := evt.(type) {
		case events.NodeAdded:
			c.NodesCreated.Inc()
		case events.NodeMoved:
			c.NodesMoved.Inc()
		case events.NodeDeleted:
			c.NodesDeleted.Inc()
			c.EdgesRemoved.Add(float64(len(e.RemovedEdges)))
		case events.EdgeAdded:
			c.EdgesCreated.Inc()
		case events.EdgeRemoved:
			c.EdgesRemoved.Inc()
		}
	}
}
