package interaction_test

import (
	"context"
	"regexp"
	"testing"

	"osintgraph/application/interaction"
	"osintgraph/domain/core/aggregates"
	"osintgraph/domain/core/entities"
	"osintgraph/domain/core/valueobjects"
	pkgerrors "osintgraph/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newController(t *testing.T) *interaction.Controller {
	t.Helper()
	graph := aggregates.NewGraph(nil, valueobjects.NewIDGenerator())
	return interaction.NewController(graph, nil, zaptest.NewLogger(t))
}

func addNode(t *testing.T, c *interaction.Controller, id string, nodeType valueobjects.NodeType) {
	t.Helper()
	p, err := valueobjects.NewPosition(0, 0)
	require.NoError(t, err)
	_, err = c.Graph().AddNode(valueobjects.MustNodeID(id), nodeType, p, nil)
	require.NoError(t, err)
}

func TestDrop_GoogleAtClientPoint(t *testing.T) {
	c := newController(t)

	node, err := c.Drop(interaction.DropEvent{
		Payload: "google",
		ClientX: 120,
		ClientY: 80,
		Bounds:  valueobjects.Rect{Left: 20, Top: 20},
	})

	require.NoError(t, err)
	assert.Equal(t, valueobjects.NodeTypeGoogle, node.Type())
	assert.Equal(t, 100.0, node.Position().X())
	assert.Equal(t, 60.0, node.Position().Y())
	assert.Regexp(t, regexp.MustCompile(`^gnode_\d+$`), node.ID().String())
	assert.Equal(t, "google node", node.Label())
	assert.Equal(t, 1, c.Graph().NodeCount())
}

func TestDrop_InvalidPayloadIsNoop(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "empty", payload: ""},
		{name: "blank", payload: "   "},
		{name: "unknown type", payload: "shodan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newController(t)

			node, err := c.Drop(interaction.DropEvent{Payload: tt.payload, ClientX: 10, ClientY: 10})

			assert.Nil(t, node)
			assert.True(t, pkgerrors.IsInvalidDropPayload(err))
			assert.Zero(t, c.Graph().NodeCount())
		})
	}
}

func TestDrop_ConsecutiveDropsDoNotCollide(t *testing.T) {
	c := newController(t)

	first, err := c.Drop(interaction.DropEvent{Payload: "website"})
	require.NoError(t, err)
	second, err := c.Drop(interaction.DropEvent{Payload: "website"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID(), second.ID())
}

func TestContextMenu(t *testing.T) {
	c := newController(t)
	addNode(t, c, "w1", valueobjects.NodeTypeWebsite)
	addNode(t, c, "r1", valueobjects.NodeTypeResult)
	addNode(t, c, "g1", valueobjects.NodeTypeGoogle)
	addNode(t, c, "c1", valueobjects.NodeTypeCSE)

	tests := []struct {
		nodeID  string
		title   string
		badge   string
		actions []interaction.ActionKind
	}{
		{nodeID: "w1", title: "w1", badge: "Website", actions: []interaction.ActionKind{interaction.ActionToIP, interaction.ActionToBacklinks, interaction.ActionDelete}},
		{nodeID: "r1", title: "r1", badge: "Result", actions: []interaction.ActionKind{interaction.ActionToWebsite, interaction.ActionDelete}},
		{nodeID: "g1", title: "g1", badge: "Google", actions: []interaction.ActionKind{interaction.ActionAddToFavorites, interaction.ActionDelete}},
		{nodeID: "c1", title: "c1", badge: "Cse", actions: []interaction.ActionKind{interaction.ActionDelete}},
		{nodeID: "", title: interaction.NoNodeSelected},
		{nodeID: "ghost", title: interaction.NoNodeSelected},
	}

	for _, tt := range tests {
		t.Run(tt.title+tt.nodeID, func(t *testing.T) {
			menu := c.ContextMenu(tt.nodeID)

			assert.Equal(t, tt.title, menu.Title)
			assert.Equal(t, tt.badge, menu.Badge)
			var got []interaction.ActionKind
			for _, a := range menu.Actions {
				got = append(got, a.Action)
				assert.NotEmpty(t, a.Label)
			}
			assert.Equal(t, tt.actions, got)
		})
	}
}

func TestInvoke_ToWebsite(t *testing.T) {
	c := newController(t)
	addNode(t, c, "rnode_0", valueobjects.NodeTypeResult)

	result, err := c.Invoke(context.Background(), interaction.ActionRequest{
		NodeID:       valueobjects.MustNodeID("rnode_0"),
		Action:       interaction.ActionToWebsite,
		DisplayedURL: "example.com",
		Rect:         valueobjects.Rect{X: 200, Y: 40, Left: 200},
		ScrollWidth:  150,
	})

	require.NoError(t, err)
	assert.Equal(t, interaction.StatusDone, result.Status)
	require.NotNil(t, result.Created)
	assert.Equal(t, valueobjects.NodeTypeWebsite, result.Created.Type())
	assert.Equal(t, "example.com", result.Created.URL())
	assert.Regexp(t, regexp.MustCompile(`^rwnode_\d+$`), result.Created.ID().String())
	assert.Equal(t, 550.0, result.Created.Position().X())
	assert.Equal(t, 40.0, result.Created.Position().Y())

	edges := c.Graph().Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, "rnode_0", edges[0].Source.String())
	assert.Equal(t, result.Created.ID(), edges[0].Target)
	assert.Equal(t, "r1", edges[0].SourceHandle)
	assert.Equal(t, "l1", edges[0].TargetHandle)
}

func TestInvoke_ToWebsiteNeedsURL(t *testing.T) {
	c := newController(t)
	addNode(t, c, "r", valueobjects.NodeTypeResult)

	_, err := c.Invoke(context.Background(), interaction.ActionRequest{
		NodeID: valueobjects.MustNodeID("r"),
		Action: interaction.ActionToWebsite,
	})

	assert.True(t, pkgerrors.IsValidation(err))
	assert.Equal(t, 1, c.Graph().NodeCount())
}

func TestInvoke_Delete(t *testing.T) {
	c := newController(t)
	addNode(t, c, "g", valueobjects.NodeTypeGoogle)
	addNode(t, c, "r", valueobjects.NodeTypeResult)
	_, err := c.Graph().AddEdge(valueobjects.MustNodeID("g"), valueobjects.MustNodeID("r"))
	require.NoError(t, err)

	result, err := c.Invoke(context.Background(), interaction.ActionRequest{
		NodeID: valueobjects.MustNodeID("g"),
		Action: interaction.ActionDelete,
	})

	require.NoError(t, err)
	assert.Equal(t, interaction.StatusDone, result.Status)
	assert.Empty(t, c.Graph().Edges())

	_, err = c.Invoke(context.Background(), interaction.ActionRequest{
		NodeID: valueobjects.MustNodeID("g"),
		Action: interaction.ActionDelete,
	})
	assert.True(t, pkgerrors.IsUnknownNodeReference(err))
}

func TestInvoke_StubbedLookups(t *testing.T) {
	c := newController(t)
	addNode(t, c, "w", valueobjects.NodeTypeWebsite)
	addNode(t, c, "g", valueobjects.NodeTypeGoogle)

	for _, req := range []interaction.ActionRequest{
		{NodeID: valueobjects.MustNodeID("w"), Action: interaction.ActionToIP},
		{NodeID: valueobjects.MustNodeID("w"), Action: interaction.ActionToBacklinks},
		{NodeID: valueobjects.MustNodeID("g"), Action: interaction.ActionAddToFavorites},
	} {
		result, err := c.Invoke(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, interaction.StatusNotImplemented, result.Status)
	}
	assert.Equal(t, 2, c.Graph().NodeCount())
	assert.Empty(t, c.Graph().Edges())
}

func TestInvoke_ActionNotOfferedForType(t *testing.T) {
	c := newController(t)
	addNode(t, c, "g", valueobjects.NodeTypeGoogle)

	_, err := c.Invoke(context.Background(), interaction.ActionRequest{
		NodeID:       valueobjects.MustNodeID("g"),
		Action:       interaction.ActionToWebsite,
		DisplayedURL: "example.com",
	})

	assert.True(t, pkgerrors.IsValidation(err))
	assert.Equal(t, 1, c.Graph().NodeCount())
}

func TestConnect(t *testing.T) {
	c := newController(t)
	addNode(t, c, "a", valueobjects.NodeTypeGoogle)
	addNode(t, c, "b", valueobjects.NodeTypeResult)
	conn := entities.Connection{Source: valueobjects.MustNodeID("a"), Target: valueobjects.MustNodeID("b")}

	_, added, err := c.Connect(conn)
	require.NoError(t, err)
	assert.True(t, added)

	_, added, err = c.Connect(conn)
	require.NoError(t, err)
	assert.False(t, added)

	_, _, err = c.Connect(entities.Connection{Source: valueobjects.MustNodeID("a"), Target: valueobjects.MustNodeID("zzz")})
	assert.True(t, pkgerrors.IsUnknownNodeReference(err))
}
