// Package interaction turns canvas gestures (drop, context menu, connect)
// into mutations of the canvas graph.
package interaction

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"osintgraph/domain/core/aggregates"
	"osintgraph/domain/core/entities"
	"osintgraph/domain/core/valueobjects"
	pkgerrors "osintgraph/pkg/errors"
)

// Action outcomes
const (
	StatusDone           = "done"
	StatusNoop           = "noop"
	StatusNotImplemented = "not_implemented"
)

// DropEvent is a palette item released over the canvas
type DropEvent struct {
	// Payload is the node type carried by the drag source
	Payload  string
	ClientX  float64
	ClientY  float64
	Bounds   valueobjects.Rect
	Viewport valueobjects.Viewport
}

// ActionRequest is a context menu click on a node
type ActionRequest struct {
	NodeID valueobjects.NodeID
	Action ActionKind
	// DisplayedURL is the URL text rendered inside a result node
	DisplayedURL string
	// Rect and ScrollWidth describe the clicked element, used to place derived nodes
	Rect        valueobjects.Rect
	ScrollWidth float64
}

// ActionResult reports what a menu action did
type ActionResult struct {
	Action  ActionKind     `json:"action"`
	Status  string         `json:"status"`
	NodeID  string         `json:"node_id"`
	Created *entities.Node `json:"created,omitempty"`
	Edge    *entities.Edge `json:"edge,omitempty"`
	Detail  string         `json:"detail,omitempty"`
}

// Controller interprets gestures against one graph. It is not safe for
// concurrent use; callers serialise access per canvas.
type Controller struct {
	graph    *aggregates.Graph
	enricher Enricher
	logger   *zap.Logger
}

// NewController creates a controller. A nil enricher falls back to StubEnricher.
func NewController(graph *aggregates.Graph, enricher Enricher, logger *zap.Logger) *Controller {
	if enricher == nil {
		enricher = NewStubEnricher()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		graph:    graph,
		enricher: enricher,
		logger:   logger,
	}
}

// Graph returns the graph this controller mutates
func (c *Controller) Graph() *aggregates.Graph {
	return c.graph
}

// Drop creates a node of the dragged type at the drop point. A drop without a
// known type returns an INVALID_DROP_PAYLOAD error and changes nothing.
func (c *Controller) Drop(ev DropEvent) (*entities.Node, error) {
	payload := strings.TrimSpace(ev.Payload)
	if payload == "" {
		return nil, pkgerrors.NewInvalidDropPayloadError(ev.Payload)
	}
	nodeType, err := valueobjects.ParseNodeType(payload)
	if err != nil {
		return nil, pkgerrors.NewInvalidDropPayloadError(ev.Payload).WithCause(err)
	}

	position, err := valueobjects.ClientToCanvas(ev.ClientX, ev.ClientY, ev.Bounds, ev.Viewport)
	if err != nil {
		return nil, err
	}

	node, err := c.graph.NewNode(nodeType.Prefix(), nodeType, position, entities.Data{"label": nodeType.DefaultLabel()})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("node dropped",
		zap.String("nodeID", node.ID().String()),
		zap.String("type", nodeType.String()),
		zap.Float64("x", position.X()),
		zap.Float64("y", position.Y()),
	)
	return node, nil
}

// ContextMenu builds the menu for the node with the given id. The type comes
// from the graph itself; an empty or unknown id yields the "No node selected" menu.
func (c *Controller) ContextMenu(rawID string) Menu {
	nodeID, err := valueobjects.NewNodeID(rawID)
	if err != nil {
		return emptyMenu()
	}
	node, err := c.graph.GetNode(nodeID)
	if err != nil {
		return emptyMenu()
	}

	menu := Menu{
		NodeID:  nodeID.String(),
		Title:   nodeID.String(),
		Badge:   node.Type().DisplayName(),
		Actions: []MenuAction{},
	}
	for _, a := range ActionsFor(node.Type()) {
		menu.Actions = append(menu.Actions, MenuAction{Action: a, Label: a.Label()})
	}
	return menu
}

// Invoke runs one context menu action
func (c *Controller) Invoke(ctx context.Context, req ActionRequest) (ActionResult, error) {
	node, err := c.graph.GetNode(req.NodeID)
	if err != nil {
		return ActionResult{}, pkgerrors.NewUnknownNodeReferenceError(req.NodeID.String())
	}
	if !offers(node.Type(), req.Action) {
		return ActionResult{}, pkgerrors.NewValidationError(
			"action " + string(req.Action) + " is not available for " + node.Type().String() + " nodes")
	}

	c.logger.Debug("context action",
		zap.String("nodeID", req.NodeID.String()),
		zap.String("action", string(req.Action)),
	)

	switch req.Action {
	case ActionToWebsite:
		return c.toWebsite(node, req)
	case ActionDelete:
		status := StatusNoop
		if c.graph.DeleteNode(req.NodeID) {
			status = StatusDone
		}
		return ActionResult{Action: ActionDelete, Status: status, NodeID: req.NodeID.String()}, nil
	case ActionToIP:
		return c.enricher.ToIP(ctx, node)
	case ActionToBacklinks:
		return c.enricher.ToBacklinks(ctx, node)
	case ActionAddToFavorites:
		return c.enricher.AddToFavorites(ctx, node)
	}

	return ActionResult{}, pkgerrors.NewValidationError("unknown action: " + string(req.Action))
}

// Connect merges a connection drawn between two existing handles
func (c *Controller) Connect(conn entities.Connection) (*entities.Edge, bool, error) {
	return c.graph.Connect(conn)
}

// toWebsite spawns a website node to the right of the clicked result and links it
func (c *Controller) toWebsite(result *entities.Node, req ActionRequest) (ActionResult, error) {
	url := strings.TrimSpace(req.DisplayedURL)
	if url == "" {
		return ActionResult{}, pkgerrors.NewValidationError("result node has no URL to follow")
	}

	position, err := valueobjects.NewPosition(req.Rect.X+req.Rect.Left+req.ScrollWidth, req.Rect.Y)
	if err != nil {
		return ActionResult{}, err
	}

	website, err := c.graph.NewNode(
		valueobjects.ResultWebsitePrefix,
		valueobjects.NodeTypeWebsite,
		position,
		entities.Data{"label": map[string]interface{}{"url": url}},
	)
	if err != nil {
		return ActionResult{}, err
	}

	edge, err := c.graph.AddEdge(result.ID(), website.ID())
	if err != nil {
		// keep the pair atomic: no orphan website without its edge
		c.graph.DeleteNode(website.ID())
		return ActionResult{}, err
	}

	return ActionResult{
		Action:  ActionToWebsite,
		Status:  StatusDone,
		NodeID:  result.ID().String(),
		Created: website,
		Edge:    edge,
	}, nil
}
