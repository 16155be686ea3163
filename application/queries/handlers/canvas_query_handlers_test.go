package handlers_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osintgraph/application/interaction"
	"osintgraph/application/queries"
	"osintgraph/application/queries/bus"
	"osintgraph/application/queries/handlers"
	"osintgraph/application/session"
	pkgerrors "osintgraph/pkg/errors"
)

type countingMetrics struct {
	observed map[string]int
	failed   int
}

func (m *countingMetrics) ObserveQuery(queryType string, _ time.Duration, err error) {
	m.observed[queryType]++
	if err != nil {
		m.failed++
	}
}

func setup(t *testing.T) (*bus.QueryBus, *session.Session, *countingMetrics) {
	t.Helper()
	registry := session.NewRegistry(session.Options{}, nil, nil)
	metrics := &countingMetrics{observed: map[string]int{}}
	b := bus.NewQueryBus(bus.MetricsMiddleware(metrics))
	require.NoError(t, handlers.NewCanvasQueryHandlers(registry).Register(b))

	s, err := registry.Open("Acme")
	require.NoError(t, err)
	_, err = s.Mutate(func(c *interaction.Controller) error {
		google, err := c.Drop(interaction.DropEvent{Payload: "google"})
		if err != nil {
			return err
		}
		result, err := c.Drop(interaction.DropEvent{Payload: "result", ClientX: 50})
		if err != nil {
			return err
		}
		_, err = c.Graph().AddEdge(google.ID(), result.ID())
		return err
	})
	require.NoError(t, err)
	return b, s, metrics
}

func TestGetCanvas(t *testing.T) {
	b, s, metrics := setup(t)

	result, err := b.Ask(context.Background(), queries.GetCanvasQuery{SessionID: s.ID()})
	require.NoError(t, err)

	view := result.(queries.CanvasView)
	assert.Equal(t, "Acme", view.Case)
	require.Len(t, view.Nodes, 2)
	assert.Equal(t, "gnode_0", view.Nodes[0].ID)
	assert.Equal(t, "rnode_1", view.Nodes[1].ID)
	require.Len(t, view.Edges, 1)
	assert.Equal(t, "reactflow__edge-gnode_0r1-rnode_1l1", view.Edges[0].ID)
	assert.Equal(t, 0.5, view.Stats.Density)
	assert.Equal(t, 1, metrics.observed["GetCanvasQuery"])
}

func TestGetNodeAndMenu(t *testing.T) {
	b, s, metrics := setup(t)

	result, err := b.Ask(context.Background(), queries.GetNodeQuery{SessionID: s.ID(), NodeID: "rnode_1"})
	require.NoError(t, err)
	assert.Equal(t, "result", result.(queries.NodeView).Type)

	_, err = b.Ask(context.Background(), queries.GetNodeQuery{SessionID: s.ID(), NodeID: "ghost"})
	assert.True(t, pkgerrors.IsNotFound(err))
	assert.Equal(t, 1, metrics.failed)

	result, err = b.Ask(context.Background(), queries.GetContextMenuQuery{SessionID: s.ID(), NodeID: "rnode_1"})
	require.NoError(t, err)
	menu := result.(interaction.Menu)
	assert.Equal(t, "Result", menu.Badge)
	assert.Equal(t, interaction.ActionDelete, menu.Actions[len(menu.Actions)-1].Action)

	result, err = b.Ask(context.Background(), queries.GetContextMenuQuery{SessionID: s.ID()})
	require.NoError(t, err)
	assert.Empty(t, result.(interaction.Menu).Actions)
}

func TestListSessions(t *testing.T) {
	b, s, _ := setup(t)

	result, err := b.Ask(context.Background(), queries.ListSessionsQuery{})
	require.NoError(t, err)

	list := result.(queries.ListSessionsResult)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, s.ID(), list.Sessions[0].ID)
	assert.Equal(t, 2, list.Sessions[0].NodeCount)
	assert.Equal(t, 1, list.Sessions[0].EdgeCount)
}
