package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/txdash/transactions-dashboard/internal/errs"
	"github.com/txdash/transactions-dashboard/pkg/logger"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

const internalErrorMessage = "Internal server error"

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{Message: message}); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status)
	}
}

// HandleError maps a failure to the wire contract: client mistakes are 400
// with their message, everything else is a generic 500 with the cause logged
// and never leaked.
func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch e := err.(type) {
	case *errs.ValidationError:
		log.Warn("validation failed", "error", e.Message)
		h.WriteError(w, r, http.StatusBadRequest, e.Message)

	case *errs.DatabaseError:
		log.Error("database error",
			"operation", e.Operation,
			"error", e.Err)
		h.WriteError(w, r, http.StatusInternalServerError, internalErrorMessage)

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, internalErrorMessage)
	}
}
