package di

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"osintgraph/application/commands/bus"
	commandhandlers "osintgraph/application/commands/handlers"
	"osintgraph/application/interaction"
	querybus "osintgraph/application/queries/bus"
	queryhandlers "osintgraph/application/queries/handlers"
	"osintgraph/application/session"
	domainconfig "osintgraph/domain/config"
	"osintgraph/infrastructure/config"
	"osintgraph/infrastructure/observability"
	"osintgraph/interfaces/http/rest"
	pkgerrors "osintgraph/pkg/errors"
	"osintgraph/pkg/extensions"
)

// metricsNamespace prefixes every exported metric
const metricsNamespace = "osintgraph"

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// ProvideDomainConfig extracts the graph limits
func ProvideDomainConfig(cfg *config.Config) *domainconfig.DomainConfig {
	return cfg.ToDomainConfig()
}

// ProvideMetrics creates the Prometheus collector
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector(metricsNamespace)
}

// ProvideHookManager creates the hook manager and subscribes the collector
// when metrics are enabled
func ProvideHookManager(cfg *config.Config, metrics *observability.Collector) *extensions.HookManager {
	hooks := extensions.NewHookManager()
	if cfg.EnableMetrics {
		metrics.RegisterHooks(hooks)
	}
	return hooks
}

// ProvideEnricher returns the enrichment backend for the lookup actions
func ProvideEnricher() interaction.Enricher {
	return interaction.NewStubEnricher()
}

// ProvideSessionRegistry creates the registry of open canvases
func ProvideSessionRegistry(
	cfg *config.Config,
	domain *domainconfig.DomainConfig,
	enricher interaction.Enricher,
	logger *zap.Logger,
) *session.Registry {
	return session.NewRegistry(session.Options{
		MaxSessions: cfg.MaxSessions,
		Domain:      domain,
	}, enricher, logger)
}

// ProvideCommandBus creates the command bus with every canvas handler registered
func ProvideCommandBus(
	sessions *session.Registry,
	hooks *extensions.HookManager,
	logger *zap.Logger,
) (*bus.CommandBus, error) {
	commandBus := bus.NewCommandBus(bus.LoggingMiddleware(logger))
	if err := commandhandlers.NewCanvasHandlers(sessions, hooks, logger).Register(commandBus); err != nil {
		return nil, err
	}
	return commandBus, nil
}

// ProvideQueryBus creates the query bus with every canvas handler registered
func ProvideQueryBus(
	cfg *config.Config,
	sessions *session.Registry,
	metrics *observability.Collector,
) (*querybus.QueryBus, error) {
	var middlewares []querybus.Middleware
	if cfg.EnableMetrics {
		middlewares = append(middlewares, querybus.MetricsMiddleware(metrics))
	}

	queryBus := querybus.NewQueryBus(middlewares...)
	if err := queryhandlers.NewCanvasQueryHandlers(sessions).Register(queryBus); err != nil {
		return nil, err
	}
	return queryBus, nil
}

// ProvideErrorHandler creates the HTTP error handler. Stack traces are only
// exposed in development.
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *pkgerrors.ErrorHandler {
	return pkgerrors.NewErrorHandler(logger, cfg.IsDevelopment())
}

// ProvideRouter creates the HTTP router
func ProvideRouter(
	cfg *config.Config,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	errorHandler *pkgerrors.ErrorHandler,
	metrics *observability.Collector,
	logger *zap.Logger,
) *rest.Router {
	opts := rest.Options{
		EnableCORS:     cfg.EnableCORS,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	}
	if cfg.EnableMetrics {
		opts.Metrics = metrics
	}
	return rest.NewRouter(commandBus, queryBus, errorHandler, opts, logger)
}
