package entities_test

import (
	"encoding/json"
	"testing"

	"osintgraph/domain/core/entities"
	"osintgraph/domain/core/valueobjects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_Creation(t *testing.T) {
	// Arrange
	position, err := valueobjects.NewPosition(10.5, 20.5)
	require.NoError(t, err)
	data := entities.Data{"label": map[string]interface{}{"url": "example.com"}}

	// Act
	node, err := entities.NewNode(valueobjects.MustNodeID("rwnode_3"), valueobjects.NodeTypeWebsite, position, data)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "rwnode_3", node.ID().String())
	assert.Equal(t, valueobjects.NodeTypeWebsite, node.Type())
	assert.Equal(t, "example.com", node.URL())

	// stored payload is isolated from the caller's map
	data["label"].(map[string]interface{})["url"] = "changed.com"
	assert.Equal(t, "example.com", node.URL())
}

func TestNode_RejectsInvalidInput(t *testing.T) {
	position, err := valueobjects.NewPosition(0, 0)
	require.NoError(t, err)

	_, err = entities.NewNode(valueobjects.NodeID{}, valueobjects.NodeTypeGoogle, position, nil)
	assert.Error(t, err)

	_, err = entities.NewNode(valueobjects.MustNodeID("x"), valueobjects.NodeType("bogus"), position, nil)
	assert.Error(t, err)
}

func TestNode_MarshalJSON(t *testing.T) {
	position, err := valueobjects.NewPosition(100, 60)
	require.NoError(t, err)
	node, err := entities.NewNode(valueobjects.MustNodeID("gnode_0"), valueobjects.NodeTypeGoogle, position, entities.Data{"label": "google node"})
	require.NoError(t, err)

	raw, err := json.Marshal(node)

	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "gnode_0",
		"type": "google",
		"position": {"x": 100, "y": 60},
		"data": {"label": "google node"}
	}`, string(raw))
}

func TestEdge_Matches(t *testing.T) {
	edge := entities.NewEdge(entities.Connection{
		Source: valueobjects.MustNodeID("a"),
		Target: valueobjects.MustNodeID("b"),
	})

	assert.Equal(t, "r1", edge.SourceHandle)
	assert.Equal(t, "l1", edge.TargetHandle)
	assert.True(t, edge.Matches(entities.Connection{Source: valueobjects.MustNodeID("a"), Target: valueobjects.MustNodeID("b")}))
	assert.False(t, edge.Matches(entities.Connection{Source: valueobjects.MustNodeID("b"), Target: valueobjects.MustNodeID("a")}))
	assert.True(t, edge.Touches(valueobjects.MustNodeID("b")))
	assert.False(t, edge.Touches(valueobjects.MustNodeID("c")))
}
