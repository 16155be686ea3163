package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	pkgerrors "osintgraph/pkg/errors"
	"osintgraph/pkg/utils"
)

// maxBodyBytes caps request bodies; gestures are small JSON documents
const maxBodyBytes = 1 << 20

// base carries what every canvas handler needs to answer a request
type base struct {
	errors *pkgerrors.ErrorHandler
	logger *zap.Logger
}

func (b base) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		b.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (b base) respondError(w http.ResponseWriter, r *http.Request, err error) {
	b.errors.Handle(w, r, err)
}

// decode reads a JSON body into dst and validates its struct tags
func decode(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return pkgerrors.NewValidationError("Invalid request body: " + err.Error())
	}
	return utils.ValidateStruct(dst)
}
