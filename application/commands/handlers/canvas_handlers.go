// Package handlers executes canvas commands against the open sessions and
// publishes the resulting domain events to the registered hooks.
package handlers

import (
	"context"

	"go.uber.org/zap"

	"osintgraph/application/commands"
	"osintgraph/application/commands/bus"
	"osintgraph/application/interaction"
	"osintgraph/application/session"
	"osintgraph/domain/events"
	"osintgraph/pkg/extensions"
)

// CanvasHandlers handles every canvas command
type CanvasHandlers struct {
	sessions *session.Registry
	hooks    *extensions.HookManager
	logger   *zap.Logger
}

// NewCanvasHandlers creates the command handlers
func NewCanvasHandlers(sessions *session.Registry, hooks *extensions.HookManager, logger *zap.Logger) *CanvasHandlers {
	if hooks == nil {
		hooks = extensions.NewHookManager()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CanvasHandlers{
		sessions: sessions,
		hooks:    hooks,
		logger:   logger,
	}
}

// Register binds each command type to its handler on the bus
func (h *CanvasHandlers) Register(b *bus.CommandBus) error {
	routes := []struct {
		cmd     bus.Command
		handler bus.CommandHandlerFunc
	}{
		{commands.OpenSessionCommand{}, h.openSession},
		{commands.CloseSessionCommand{}, h.closeSession},
		{commands.AddNodeCommand{}, h.addNode},
		{commands.DeleteNodeCommand{}, h.deleteNode},
		{commands.MoveNodeCommand{}, h.moveNode},
		{commands.AddEdgeCommand{}, h.addEdge},
		{commands.ConnectCommand{}, h.connect},
		{commands.UpdateEdgeCommand{}, h.updateEdge},
		{commands.RemoveEdgeCommand{}, h.removeEdge},
		{commands.DropNodeCommand{}, h.dropNode},
		{commands.InvokeActionCommand{}, h.invokeAction},
	}
	for _, r := range routes {
		if err := b.Register(r.cmd, r.handler); err != nil {
			return err
		}
	}
	return nil
}

// mutate runs fn on the session's controller and publishes whatever events it
// produced. A hook failure is logged but never undoes the mutation.
func (h *CanvasHandlers) mutate(ctx context.Context, sessionID string, fn func(c *interaction.Controller) error) error {
	s, err := h.sessions.Get(sessionID)
	if err != nil {
		return err
	}

	evts, err := s.Mutate(fn)
	if len(evts) > 0 {
		batch := events.Batch{SessionID: sessionID, Events: evts}
		if hookErr := h.hooks.Execute(ctx, extensions.HookAfterGraphMutation, batch); hookErr != nil {
			h.logger.Warn("graph mutation hook failed",
				zap.String("sessionID", sessionID),
				zap.Error(hookErr),
			)
		}
	}
	return err
}

func (h *CanvasHandlers) fire(ctx context.Context, point extensions.HookPoint, data interface{}) {
	if err := h.hooks.Execute(ctx, point, data); err != nil {
		h.logger.Warn("hook failed",
			zap.String("hook", string(point)),
			zap.Error(err),
		)
	}
}
