package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestAppError_Helpers(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		check  func(error) bool
		status int
	}{
		{"validation", NewValidationError("bad"), IsValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("node x"), IsNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("dup"), IsConflict, http.StatusConflict},
		{"unknown node", NewUnknownNodeReferenceError("a", "b"), IsUnknownNodeReference, http.StatusUnprocessableEntity},
		{"drop payload", NewInvalidDropPayloadError(""), IsInvalidDropPayload, http.StatusBadRequest},
		{"limit", NewLimitExceededError("sessions", 3), func(err error) bool { return IsType(err, ErrorTypeLimitExceeded) }, http.StatusConflict},
		{"internal", NewInternalError("boom"), func(err error) bool { return IsType(err, ErrorTypeInternal) }, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("layer: %w", tt.err)
			assert.True(t, tt.check(wrapped))
			assert.Equal(t, tt.status, GetAppError(wrapped).HTTPStatus)
		})
	}

	assert.False(t, IsNotFound(errors.New("plain")))
	assert.Equal(t, []string{"a", "b"}, NewUnknownNodeReferenceError("a", "b").Details["node_ids"])
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ctx"))

	wrapped := Wrap(NewNotFoundError("edge e1"), "remove")
	assert.True(t, IsNotFound(wrapped))
	assert.Equal(t, "remove: edge e1 not found", GetAppError(wrapped).Message)

	internal := Wrapf(errors.New("disk"), "saving %s", "canvas")
	assert.True(t, IsType(internal, ErrorTypeInternal))
	assert.True(t, errors.Is(internal, errors.Unwrap(internal)))
}

func TestErrorHandler_Handle(t *testing.T) {
	h := NewErrorHandler(zaptest.NewLogger(t), false)

	var served *http.Request
	handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served = r
		h.Handle(w, r, fmt.Errorf("bus: %w", NewUnknownNodeReferenceError("ghost")))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/edges", nil))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Error)
	assert.Equal(t, "UNKNOWN_NODE_REFERENCE", body.Type)
	assert.Equal(t, middleware.GetReqID(served.Context()), body.RequestID)
	assert.NotContains(t, body.Details, "stack_trace")
}

func TestErrorHandler_PlainErrorsAndPanics(t *testing.T) {
	h := NewErrorHandler(zaptest.NewLogger(t), false)

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("secret detail"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret detail")

	rec = httptest.NewRecorder()
	h.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"INTERNAL"`)
}
