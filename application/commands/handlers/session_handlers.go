package handlers

import (
	"context"

	"osintgraph/application/commands"
	"osintgraph/application/commands/bus"
	"osintgraph/pkg/extensions"
	pkgerrors "osintgraph/pkg/errors"
)

func (h *CanvasHandlers) openSession(ctx context.Context, c bus.Command) (interface{}, error) {
	cmd := c.(commands.OpenSessionCommand)

	s, err := h.sessions.Open(cmd.Case)
	if err != nil {
		return nil, err
	}
	h.fire(ctx, extensions.HookSessionOpened, s)
	return s, nil
}

func (h *CanvasHandlers) closeSession(ctx context.Context, c bus.Command) (interface{}, error) {
	cmd := c.(commands.CloseSessionCommand)

	if !h.sessions.Close(cmd.SessionID) {
		return nil, pkgerrors.NewNotFoundError("session " + cmd.SessionID)
	}
	h.fire(ctx, extensions.HookSessionClosed, cmd.SessionID)
	return nil, nil
}
