package handlers

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"osintgraph/application/commands"
	"osintgraph/application/commands/bus"
	"osintgraph/application/interaction"
	"osintgraph/domain/core/entities"
	"osintgraph/domain/core/valueobjects"
)

func (h *CanvasHandlers) addNode(ctx context.Context, c bus.Command) (interface{}, error) {
	cmd := c.(commands.AddNodeCommand)

	nodeType, err := valueobjects.ParseNodeType(cmd.Type)
	if err != nil {
		return nil, err
	}
	position, err := valueobjects.NewPosition(cmd.X, cmd.Y)
	if err != nil {
		return nil, err
	}
	data := cmd.Data
	if len(data) == 0 {
		data = entities.Data{"label": nodeType.DefaultLabel()}
	}

	var node *entities.Node
	err = h.mutate(ctx, cmd.SessionID, func(ctl *interaction.Controller) error {
		graph := ctl.Graph()
		var (
			added *entities.Node
			err   error
		)
		if strings.TrimSpace(cmd.NodeID) == "" {
			added, err = graph.NewNode(nodeType.Prefix(), nodeType, position, data)
		} else {
			var id valueobjects.NodeID
			if id, err = valueobjects.NewNodeID(cmd.NodeID); err == nil {
				added, err = graph.AddNode(id, nodeType, position, data)
			}
		}
		if err != nil {
			return err
		}
		node = added.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.logger.Debug("node added",
		zap.String("sessionID", cmd.SessionID),
		zap.String("nodeID", node.ID().String()),
	)
	return node, nil
}

// deleteNode returns whether a node was removed. Deleting an absent id is a no-op.
func (h *CanvasHandlers) deleteNode(ctx context.Context, c bus.Command) (interface{}, error) {
	cmd := c.(commands.DeleteNodeCommand)

	id, err := valueobjects.NewNodeID(cmd.NodeID)
	if err != nil {
		return nil, err
	}

	var removed bool
	err = h.mutate(ctx, cmd.SessionID, func(ctl *interaction.Controller) error {
		removed = ctl.Graph().DeleteNode(id)
		return nil
	})
	return removed, err
}

func (h *CanvasHandlers) moveNode(ctx context.Context, c bus.Command) (interface{}, error) {
	cmd := c.(commands.MoveNodeCommand)

	id, err := valueobjects.NewNodeID(cmd.NodeID)
	if err != nil {
		return nil, err
	}
	position, err := valueobjects.NewPosition(cmd.X, cmd.Y)
	if err != nil {
		return nil, err
	}

	var node *entities.Node
	err = h.mutate(ctx, cmd.SessionID, func(ctl *interaction.Controller) error {
		moved, err := ctl.Graph().MoveNode(id, position)
		if err != nil {
			return err
		}
		node = moved.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return node, nil
}
