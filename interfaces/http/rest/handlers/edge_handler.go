package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"osintgraph/application/commands"
	"osintgraph/application/commands/bus"
	pkgerrors "osintgraph/pkg/errors"
)

// EdgeHandler handles edge requests on one canvas
type EdgeHandler struct {
	base
	commandBus *bus.CommandBus
}

// NewEdgeHandler creates a new edge handler
func NewEdgeHandler(commandBus *bus.CommandBus, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *EdgeHandler {
	return &EdgeHandler{
		base:       base{errors: errorHandler, logger: logger},
		commandBus: commandBus,
	}
}

// ConnectionRequest names the two ends of an edge. Handles default to r1 and l1.
type ConnectionRequest struct {
	Source       string `json:"source" validate:"required"`
	Target       string `json:"target" validate:"required"`
	SourceHandle string `json:"sourceHandle,omitempty" validate:"omitempty,max=32"`
	TargetHandle string `json:"targetHandle,omitempty" validate:"omitempty,max=32"`
}

// CreateEdge handles POST /sessions/{sessionID}/edges
func (h *EdgeHandler) CreateEdge(w http.ResponseWriter, r *http.Request) {
	var req ConnectionRequest
	if err := decode(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	edge, err := h.commandBus.Send(r.Context(), commands.AddEdgeCommand{
		SessionID: chi.URLParam(r, "sessionID"),
		Source:    req.Source,
		Target:    req.Target,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, edge)
}

// Connect handles POST /sessions/{sessionID}/connect. A new edge answers 201,
// an identical existing one 200.
func (h *EdgeHandler) Connect(w http.ResponseWriter, r *http.Request) {
	var req ConnectionRequest
	if err := decode(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.commandBus.Send(r.Context(), commands.ConnectCommand{
		SessionID:    chi.URLParam(r, "sessionID"),
		Source:       req.Source,
		Target:       req.Target,
		SourceHandle: req.SourceHandle,
		TargetHandle: req.TargetHandle,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	connected := result.(commands.ConnectResult)
	status := http.StatusOK
	if connected.Added {
		status = http.StatusCreated
	}
	h.respondJSON(w, status, connected)
}

// UpdateEdge handles PUT /sessions/{sessionID}/edges/{edgeID}
func (h *EdgeHandler) UpdateEdge(w http.ResponseWriter, r *http.Request) {
	var req ConnectionRequest
	if err := decode(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	edge, err := h.commandBus.Send(r.Context(), commands.UpdateEdgeCommand{
		SessionID:    chi.URLParam(r, "sessionID"),
		EdgeID:       chi.URLParam(r, "edgeID"),
		Source:       req.Source,
		Target:       req.Target,
		SourceHandle: req.SourceHandle,
		TargetHandle: req.TargetHandle,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, edge)
}

// DeleteEdge handles DELETE /sessions/{sessionID}/edges/{edgeID}
func (h *EdgeHandler) DeleteEdge(w http.ResponseWriter, r *http.Request) {
	_, err := h.commandBus.Send(r.Context(), commands.RemoveEdgeCommand{
		SessionID: chi.URLParam(r, "sessionID"),
		EdgeID:    chi.URLParam(r, "edgeID"),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
