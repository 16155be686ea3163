package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"osintgraph/application/commands"
	"osintgraph/application/commands/bus"
	"osintgraph/application/queries"
	querybus "osintgraph/application/queries/bus"
	"osintgraph/domain/core/entities"
	pkgerrors "osintgraph/pkg/errors"
)

// NodeHandler handles node requests on one canvas
type NodeHandler struct {
	base
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
}

// NewNodeHandler creates a new node handler
func NewNodeHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *NodeHandler {
	return &NodeHandler{
		base:       base{errors: errorHandler, logger: logger},
		commandBus: commandBus,
		queryBus:   queryBus,
	}
}

// PositionRequest is a canvas coordinate pair
type PositionRequest struct {
	X *float64 `json:"x" validate:"required"`
	Y *float64 `json:"y" validate:"required"`
}

// CreateNodeRequest represents the request body for creating a node
type CreateNodeRequest struct {
	ID       string          `json:"id,omitempty" validate:"omitempty,max=128"` // Optional, generated from the type prefix if empty
	Type     string          `json:"type" validate:"required"`
	Position PositionRequest `json:"position"`
	Data     entities.Data   `json:"data,omitempty"`
}

// CreateNode handles POST /sessions/{sessionID}/nodes
func (h *NodeHandler) CreateNode(w http.ResponseWriter, r *http.Request) {
	var req CreateNodeRequest
	if err := decode(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	node, err := h.commandBus.Send(r.Context(), commands.AddNodeCommand{
		SessionID: chi.URLParam(r, "sessionID"),
		NodeID:    req.ID,
		Type:      req.Type,
		X:         *req.Position.X,
		Y:         *req.Position.Y,
		Data:      req.Data,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, node)
}

// GetNode handles GET /sessions/{sessionID}/nodes/{nodeID}
func (h *NodeHandler) GetNode(w http.ResponseWriter, r *http.Request) {
	node, err := h.queryBus.Ask(r.Context(), queries.GetNodeQuery{
		SessionID: chi.URLParam(r, "sessionID"),
		NodeID:    chi.URLParam(r, "nodeID"),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, node)
}

// MoveNode handles PUT /sessions/{sessionID}/nodes/{nodeID}/position
func (h *NodeHandler) MoveNode(w http.ResponseWriter, r *http.Request) {
	var req PositionRequest
	if err := decode(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	node, err := h.commandBus.Send(r.Context(), commands.MoveNodeCommand{
		SessionID: chi.URLParam(r, "sessionID"),
		NodeID:    chi.URLParam(r, "nodeID"),
		X:         *req.X,
		Y:         *req.Y,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, node)
}

// DeleteNode handles DELETE /sessions/{sessionID}/nodes/{nodeID}. Deleting an
// absent node also answers 204.
func (h *NodeHandler) DeleteNode(w http.ResponseWriter, r *http.Request) {
	_, err := h.commandBus.Send(r.Context(), commands.DeleteNodeCommand{
		SessionID: chi.URLParam(r, "sessionID"),
		NodeID:    chi.URLParam(r, "nodeID"),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
