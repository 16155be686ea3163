package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"osintgraph/application/commands"
	"osintgraph/application/commands/bus"
	"osintgraph/application/queries"
	querybus "osintgraph/application/queries/bus"
	"osintgraph/application/session"
	pkgerrors "osintgraph/pkg/errors"
	"osintgraph/pkg/utils"
)

// SessionHandler handles canvas lifecycle requests
type SessionHandler struct {
	base
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *SessionHandler {
	return &SessionHandler{
		base:       base{errors: errorHandler, logger: logger},
		commandBus: commandBus,
		queryBus:   queryBus,
	}
}

// OpenSessionRequest opens a canvas for the active case
type OpenSessionRequest struct {
	Case string `json:"case" validate:"required,max=200"`
}

// SessionResponse describes a freshly opened canvas
type SessionResponse struct {
	ID        string `json:"id"`
	Case      string `json:"case"`
	CreatedAt string `json:"created_at"`
}

// OpenSession handles POST /sessions
func (h *SessionHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	var req OpenSessionRequest
	if err := decode(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.commandBus.Send(r.Context(), commands.OpenSessionCommand{Case: req.Case})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	s := result.(*session.Session)
	h.respondJSON(w, http.StatusCreated, SessionResponse{
		ID:        s.ID(),
		Case:      s.Case(),
		CreatedAt: utils.FormatRFC3339(s.CreatedAt()),
	})
}

// ListSessions handles GET /sessions
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.ListSessionsQuery{})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

// GetSession handles GET /sessions/{sessionID} and returns the whole canvas
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetCanvasQuery{SessionID: chi.URLParam(r, "sessionID")})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

// CloseSession handles DELETE /sessions/{sessionID}
func (h *SessionHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	_, err := h.commandBus.Send(r.Context(), commands.CloseSessionCommand{SessionID: chi.URLParam(r, "sessionID")})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
