package response

import (
	"encoding/json"
	"net/http"

	"github.com/txdash/transactions-dashboard/pkg/logger"
)

// WriteSuccess encodes the payload as-is. The API's body shapes are part of
// its wire contract, so there is no envelope around them.
func (h *responseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Last-ditch logging; can't return an error now
		log := logger.FromContext(r.Context())
		log.Error("failed to encode success response", "error", err, "status", status)
	}
}
