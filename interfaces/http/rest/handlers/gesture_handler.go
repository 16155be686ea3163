package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"osintgraph/application/commands"
	"osintgraph/application/commands/bus"
	"osintgraph/application/queries"
	querybus "osintgraph/application/queries/bus"
	"osintgraph/domain/core/valueobjects"
	pkgerrors "osintgraph/pkg/errors"
)

// GestureHandler handles drop and context menu gestures
type GestureHandler struct {
	base
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *GestureHandler {
	return &GestureHandler{
		base:       base{errors: errorHandler, logger: logger},
		commandBus: commandBus,
		queryBus:   queryBus,
	}
}

// DropRequest is a palette item released over the canvas
type DropRequest struct {
	Payload  string                `json:"payload"`
	ClientX  float64               `json:"clientX"`
	ClientY  float64               `json:"clientY"`
	Bounds   valueobjects.Rect     `json:"bounds"`
	Viewport valueobjects.Viewport `json:"viewport"`
}

// ActionRequest carries what the clicked element showed. Only to_website reads it.
type ActionRequest struct {
	DisplayedURL string            `json:"displayedUrl"`
	Rect         valueobjects.Rect `json:"rect"`
	ScrollWidth  float64           `json:"scrollWidth"`
}

// Drop handles POST /sessions/{sessionID}/drop. A drop without a usable
// payload changes nothing and answers 204.
func (h *GestureHandler) Drop(w http.ResponseWriter, r *http.Request) {
	var req DropRequest
	if err := decode(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	node, err := h.commandBus.Send(r.Context(), commands.DropNodeCommand{
		SessionID: chi.URLParam(r, "sessionID"),
		Payload:   req.Payload,
		ClientX:   req.ClientX,
		ClientY:   req.ClientY,
		Bounds:    req.Bounds,
		Viewport:  req.Viewport,
	})
	if pkgerrors.IsInvalidDropPayload(err) {
		h.logger.Debug("drop ignored",
			zap.String("payload", req.Payload),
			zap.String("sessionID", chi.URLParam(r, "sessionID")),
		)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, node)
}

// ContextMenu handles GET /sessions/{sessionID}/nodes/{nodeID}/menu
func (h *GestureHandler) ContextMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.queryBus.Ask(r.Context(), queries.GetContextMenuQuery{
		SessionID: chi.URLParam(r, "sessionID"),
		NodeID:    chi.URLParam(r, "nodeID"),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, menu)
}

// InvokeAction handles POST /sessions/{sessionID}/nodes/{nodeID}/actions/{action}
func (h *GestureHandler) InvokeAction(w http.ResponseWriter, r *http.Request) {
	var req ActionRequest
	if r.ContentLength != 0 {
		if err := decode(w, r, &req); err != nil {
			h.respondError(w, r, err)
			return
		}
	}

	result, err := h.commandBus.Send(r.Context(), commands.InvokeActionCommand{
		SessionID:    chi.URLParam(r, "sessionID"),
		NodeID:       chi.URLParam(r, "nodeID"),
		Action:       chi.URLParam(r, "action"),
		DisplayedURL: req.DisplayedURL,
		Rect:         req.Rect,
		ScrollWidth:  req.ScrollWidth,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}
