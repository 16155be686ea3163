package handlers

import (
	"context"

	"osintgraph/application/commands"
	"osintgraph/application/commands/bus"
	"osintgraph/application/interaction"
	"osintgraph/domain/core/entities"
	"osintgraph/domain/core/valueobjects"
	"osintgraph/pkg/extensions"
	pkgerrors "osintgraph/pkg/errors"
)

func (h *CanvasHandlers) dropNode(ctx context.Context, c bus.Command) (interface{}, error) {
	cmd := c.(commands.DropNodeCommand)

	var node *entities.Node
	err := h.mutate(ctx, cmd.SessionID, func(ctl *interaction.Controller) error {
		dropped, err := ctl.Drop(interaction.DropEvent{
			Payload:  cmd.Payload,
			ClientX:  cmd.ClientX,
			ClientY:  cmd.ClientY,
			Bounds:   cmd.Bounds,
			Viewport: cmd.Viewport,
		})
		if err != nil {
			return err
		}
		node = dropped.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return node, nil
}

func (h *CanvasHandlers) invokeAction(ctx context.Context, c bus.Command) (interface{}, error) {
	cmd := c.(commands.InvokeActionCommand)

	action, ok := interaction.ParseActionKind(cmd.Action)
	if !ok {
		return nil, pkgerrors.NewValidationError("unknown action: " + cmd.Action)
	}
	nodeID, err := valueobjects.NewNodeID(cmd.NodeID)
	if err != nil {
		return nil, err
	}

	var result interaction.ActionResult
	err = h.mutate(ctx, cmd.SessionID, func(ctl *interaction.Controller) error {
		result, err = ctl.Invoke(ctx, interaction.ActionRequest{
			NodeID:       nodeID,
			Action:       action,
			DisplayedURL: cmd.DisplayedURL,
			Rect:         cmd.Rect,
			ScrollWidth:  cmd.ScrollWidth,
		})
		if err == nil && result.Created != nil {
			result.Created = result.Created.Clone()
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	h.fire(ctx, extensions.HookAfterNodeAction, result)
	return result, nil
}
