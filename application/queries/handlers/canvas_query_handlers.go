// Package handlers answers canvas queries from the open sessions
package handlers

import (
	"context"

	"osintgraph/application/queries"
	"osintgraph/application/queries/bus"
	"osintgraph/application/session"
	"osintgraph/domain/core/aggregates"
	"osintgraph/domain/core/valueobjects"
	"osintgraph/pkg/utils"
)

// CanvasQueryHandlers handles every canvas query
type CanvasQueryHandlers struct {
	sessions *session.Registry
}

// NewCanvasQueryHandlers creates the query handlers
func NewCanvasQueryHandlers(sessions *session.Registry) *CanvasQueryHandlers {
	return &CanvasQueryHandlers{sessions: sessions}
}

// Register binds each query type to its handler on the bus
func (h *CanvasQueryHandlers) Register(b *bus.QueryBus) error {
	routes := []struct {
		query   bus.Query
		handler bus.QueryHandlerFunc
	}{
		{queries.GetCanvasQuery{}, h.getCanvas},
		{queries.GetNodeQuery{}, h.getNode},
		{queries.GetContextMenuQuery{}, h.getContextMenu},
		{queries.ListSessionsQuery{}, h.listSessions},
	}
	for _, r := range routes {
		if err := b.Register(r.query, r.handler); err != nil {
			return err
		}
	}
	return nil
}

func (h *CanvasQueryHandlers) getCanvas(_ context.Context, q bus.Query) (interface{}, error) {
	query := q.(queries.GetCanvasQuery)

	s, err := h.sessions.Get(query.SessionID)
	if err != nil {
		return nil, err
	}

	var view queries.CanvasView
	s.Read(func(g *aggregates.Graph) {
		view = queries.NewCanvasView(s.ID(), s.Case(), g)
	})
	return view, nil
}

func (h *CanvasQueryHandlers) getNode(_ context.Context, q bus.Query) (interface{}, error) {
	query := q.(queries.GetNodeQuery)

	s, err := h.sessions.Get(query.SessionID)
	if err != nil {
		return nil, err
	}
	nodeID, err := valueobjects.NewNodeID(query.NodeID)
	if err != nil {
		return nil, err
	}

	var view queries.NodeView
	s.Read(func(g *aggregates.Graph) {
		node, getErr := g.GetNode(nodeID)
		if getErr != nil {
			err = getErr
			return
		}
		view = queries.NewNodeView(node)
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (h *CanvasQueryHandlers) getContextMenu(_ context.Context, q bus.Query) (interface{}, error) {
	query := q.(queries.GetContextMenuQuery)

	s, err := h.sessions.Get(query.SessionID)
	if err != nil {
		return nil, err
	}
	return s.Menu(query.NodeID), nil
}

func (h *CanvasQueryHandlers) listSessions(_ context.Context, _ bus.Query) (interface{}, error) {
	open := h.sessions.List()

	result := queries.ListSessionsResult{
		Sessions: make([]queries.SessionSummary, 0, len(open)),
		Total:    len(open),
	}
	for _, s := range open {
		summary := queries.SessionSummary{
			ID:        s.ID(),
			Case:      s.Case(),
			CreatedAt: utils.FormatRFC3339(s.CreatedAt()),
		}
		s.Read(func(g *aggregates.Graph) {
			summary.NodeCount = g.NodeCount()
			summary.EdgeCount = g.EdgeCount()
		})
		result.Sessions = append(result.Sessions, summary)
	}
	return result, nil
}
