package handlers

import (
	"context"

	"osintgraph/application/commands"
	"osintgraph/application/commands/bus"
	"osintgraph/application/interaction"
	"osintgraph/domain/core/entities"
	"osintgraph/domain/core/valueobjects"
)

func (h *CanvasHandlers) addEdge(ctx context.Context, c bus.Command) (interface{}, error) {
	cmd := c.(commands.AddEdgeCommand)

	source, err := valueobjects.NewNodeID(cmd.Source)
	if err != nil {
		return nil, err
	}
	target, err := valueobjects.NewNodeID(cmd.Target)
	if err != nil {
		return nil, err
	}

	var edge *entities.Edge
	err = h.mutate(ctx, cmd.SessionID, func(ctl *interaction.Controller) error {
		edge, err = ctl.Graph().AddEdge(source, target)
		return err
	})
	if err != nil {
		return nil, err
	}
	return edge, nil
}

func (h *CanvasHandlers) connect(ctx context.Context, c bus.Command) (interface{}, error) {
	cmd := c.(commands.ConnectCommand)

	conn, err := cmd.Connection()
	if err != nil {
		return nil, err
	}

	var result commands.ConnectResult
	err = h.mutate(ctx, cmd.SessionID, func(ctl *interaction.Controller) error {
		result.Edge, result.Added, err = ctl.Connect(conn)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (h *CanvasHandlers) updateEdge(ctx context.Context, c bus.Command) (interface{}, error) {
	cmd := c.(commands.UpdateEdgeCommand)

	conn, err := cmd.Connection()
	if err != nil {
		return nil, err
	}

	var edge *entities.Edge
	err = h.mutate(ctx, cmd.SessionID, func(ctl *interaction.Controller) error {
		edge, err = ctl.Graph().UpdateEdge(cmd.EdgeID, conn)
		return err
	})
	if err != nil {
		return nil, err
	}
	return edge, nil
}

// removeEdge returns whether an edge was removed
func (h *CanvasHandlers) removeEdge(ctx context.Context, c bus.Command) (interface{}, error) {
	cmd := c.(commands.RemoveEdgeCommand)

	var removed bool
	err := h.mutate(ctx, cmd.SessionID, func(ctl *interaction.Controller) error {
		removed = ctl.Graph().RemoveEdge(cmd.EdgeID)
		return nil
	})
	return removed, err
}
