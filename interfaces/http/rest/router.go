package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"osintgraph/application/commands/bus"
	"osintgraph/application/queries"
	querybus "osintgraph/application/queries/bus"
	"osintgraph/interfaces/http/rest/handlers"
	"osintgraph/interfaces/http/rest/middleware"
	pkgerrors "osintgraph/pkg/errors"
)

// Metrics is what the router needs from the metrics collector
type Metrics interface {
	middleware.HTTPObserver
	Handler() http.Handler
}

// Options toggles the optional parts of the router
type Options struct {
	EnableCORS     bool
	AllowedOrigins []string
	// Metrics may be nil, in which case /metrics is not served
	Metrics Metrics
}

// Router creates and configures the HTTP router
type Router struct {
	commandBus   *bus.CommandBus
	queryBus     *querybus.QueryBus
	errorHandler *pkgerrors.ErrorHandler
	opts         Options
	logger       *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	errorHandler *pkgerrors.ErrorHandler,
	opts Options,
	logger *zap.Logger,
) *Router {
	return &Router{
		commandBus:   commandBus,
		queryBus:     queryBus,
		errorHandler: errorHandler,
		opts:         opts,
		logger:       logger,
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
	if rt.opts.Metrics != nil {
		router.Use(middleware.Metrics(rt.opts.Metrics))
	}
	router.Use(rt.errorHandler.Middleware)

	// CORS configuration
	if rt.opts.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: rt.opts.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	if rt.opts.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", rt.opts.Metrics.Handler())
	}

	sessionHandler := handlers.NewSessionHandler(rt.commandBus, rt.queryBus, rt.errorHandler, rt.logger)
	nodeHandler := handlers.NewNodeHandler(rt.commandBus, rt.queryBus, rt.errorHandler, rt.logger)
	edgeHandler := handlers.NewEdgeHandler(rt.commandBus, rt.errorHandler, rt.logger)
	gestureHandler := handlers.NewGestureHandler(rt.commandBus, rt.queryBus, rt.errorHandler, rt.logger)

	router.Route("/api/v1/sessions", func(r chi.Router) {
		r.Post("/", sessionHandler.OpenSession)
		r.Get("/", sessionHandler.ListSessions)

		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", sessionHandler.GetSession)
			r.Delete("/", sessionHandler.CloseSession)

			// Node endpoints
			r.Route("/nodes", func(r chi.Router) {
				r.Post("/", nodeHandler.CreateNode)
				r.Get("/{nodeID}", nodeHandler.GetNode)
				r.Delete("/{nodeID}", nodeHandler.DeleteNode)
				r.Put("/{nodeID}/position", nodeHandler.MoveNode)

				// Context menu
				r.Get("/{nodeID}/menu", gestureHandler.ContextMenu)
				r.Post("/{nodeID}/actions/{action}", gestureHandler.InvokeAction)
			})

			// Edge endpoints
			r.Route("/edges", func(r chi.Router) {
				r.Post("/", edgeHandler.CreateEdge)
				r.Put("/{edgeID}", edgeHandler.UpdateEdge)
				r.Delete("/{edgeID}", edgeHandler.DeleteEdge)
			})

			// Gestures
			r.Post("/connect", edgeHandler.Connect)
			r.Post("/drop", gestureHandler.Drop)
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

// readinessCheck reports ready once the query side answers
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	if _, err := rt.queryBus.Ask(req.Context(), queries.ListSessionsQuery{}); err != nil {
		rt.errorHandler.Handle(w, req, pkgerrors.NewInternalError("not ready").WithCause(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
