package di

import (
	"go.uber.org/zap"

	"osintgraph/application/commands/bus"
	querybus "osintgraph/application/queries/bus"
	"osintgraph/application/session"
	"osintgraph/infrastructure/config"
	"osintgraph/infrastructure/observability"
	"osintgraph/interfaces/http/rest"
	"osintgraph/pkg/extensions"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Metrics    *observability.Collector
	Hooks      *extensions.HookManager
	Sessions   *session.Registry
	CommandBus *bus.CommandBus
	QueryBus   *querybus.QueryBus
	Router     *rest.Router
}
