// Package queries holds the read side of the canvas API
package queries

import (
	"time"

	"osintgraph/domain/core/aggregates"
	"osintgraph/domain/core/entities"
	"osintgraph/domain/core/valueobjects"
	"osintgraph/pkg/utils"
)

// GetCanvasQuery asks for a snapshot of one canvas
type GetCanvasQuery struct {
	SessionID string `validate:"required"`
}

// Validate validates the query
func (q GetCanvasQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// GetNodeQuery asks for a single node
type GetNodeQuery struct {
	SessionID string `validate:"required"`
	NodeID    string `validate:"required"`
}

// Validate validates the query
func (q GetNodeQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// GetContextMenuQuery asks for the context menu of a node. An unknown node
// yields the "No node selected" menu rather than an error.
type GetContextMenuQuery struct {
	SessionID string `validate:"required"`
	NodeID    string
}

// Validate validates the query
func (q GetContextMenuQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// ListSessionsQuery asks for every open canvas
type ListSessionsQuery struct{}

// Validate validates the query
func (q ListSessionsQuery) Validate() error {
	return nil
}

// NodeView is a detached copy of a node, safe to serialise after the canvas lock is released
type NodeView struct {
	ID       string                `json:"id"`
	Type     string                `json:"type"`
	Position valueobjects.Position `json:"position"`
	Data     entities.Data         `json:"data"`
}

// NewNodeView copies a node
func NewNodeView(n *entities.Node) NodeView {
	return NodeView{
		ID:       n.ID().String(),
		Type:     n.Type().String(),
		Position: n.Position(),
		Data:     n.Data(),
	}
}

// CanvasStats summarises a canvas
type CanvasStats struct {
	NodeCount int     `json:"node_count"`
	EdgeCount int     `json:"edge_count"`
	Density   float64 `json:"density"`
}

// CanvasView is the full state of one canvas, in insertion order
type CanvasView struct {
	SessionID string          `json:"session_id"`
	Case      string          `json:"case"`
	Version   int             `json:"version"`
	UpdatedAt string          `json:"updated_at"`
	Nodes     []NodeView      `json:"nodes"`
	Edges     []entities.Edge `json:"edges"`
	Stats     CanvasStats     `json:"stats"`
}

// SessionSummary describes one open canvas in a listing
type SessionSummary struct {
	ID        string `json:"id"`
	Case      string `json:"case"`
	CreatedAt string `json:"created_at"`
	NodeCount int    `json:"node_count"`
	EdgeCount int    `json:"edge_count"`
}

// ListSessionsResult lists the open canvases, oldest first
type ListSessionsResult struct {
	Sessions []SessionSummary `json:"sessions"`
	Total    int              `json:"total"`
}

// Density is the directed edge density of a graph with n nodes and m edges
func Density(n, m int) float64 {
	if n < 2 {
		return 0
	}
	return float64(m) / float64(n*(n-1))
}

// NewCanvasView copies the graph state. Call it while holding the canvas lock.
func NewCanvasView(sessionID, caseName string, g *aggregates.Graph) CanvasView {
	nodes := g.Nodes()
	edges := g.Edges()

	view := CanvasView{
		SessionID: sessionID,
		Case:      caseName,
		Version:   g.Version(),
		UpdatedAt: formatTime(g.UpdatedAt()),
		Nodes:     make([]NodeView, 0, len(nodes)),
		Edges:     make([]entities.Edge, 0, len(edges)),
		Stats: CanvasStats{
			NodeCount: len(nodes),
			EdgeCount: len(edges),
			Density:   Density(len(nodes), len(edges)),
		},
	}
	for _, n := range nodes {
		view.Nodes = append(view.Nodes, NewNodeView(n))
	}
	for _, e := range edges {
		view.Edges = append(view.Edges, *e)
	}
	return view
}

func formatTime(t time.Time) string {
	return utils.FormatRFC3339(t)
}
