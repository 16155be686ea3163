package di

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osintgraph/application/commands"
	"osintgraph/application/session"
	"osintgraph/infrastructure/config"
	"osintgraph/pkg/extensions"
)

func TestInitializeContainer(t *testing.T) {
	cfg := config.Default()
	cfg.Environment = "test"
	cfg.MaxSessions = 1

	container, err := InitializeContainer(cfg)
	require.NoError(t, err)

	assert.NotNil(t, container.Router.Setup())
	assert.Equal(t, 1, container.Hooks.Count(extensions.HookAfterGraphMutation))

	result, err := container.CommandBus.Send(context.Background(), commands.OpenSessionCommand{Case: "wired"})
	require.NoError(t, err)
	assert.Equal(t, "wired", result.(*session.Session).Case())

	_, err = container.CommandBus.Send(context.Background(), commands.OpenSessionCommand{Case: "second"})
	assert.Error(t, err, "MAX_SESSIONS is honoured")
}

func TestInitializeContainer_MetricsDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.EnableMetrics = false

	container, err := InitializeContainer(cfg)
	require.NoError(t, err)
	assert.Zero(t, container.Hooks.Count(extensions.HookAfterGraphMutation))
}

func TestProvideLogger_RejectsUnknownLevel(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "chatty"

	_, err := ProvideLogger(cfg)
	assert.Error(t, err)
}
