package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/mia-boutique/storefront/internal/storage"
	"github.com/mia-boutique/storefront/internal/validate"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeUnauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
}

func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not found"})
}

func writeBadBody(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, &validate.Error{
		Message: "Validation error",
		Issues:  []string{"body: Invalid JSON"},
	})
}

// writeError maps domain errors onto the response taxonomy: validation to
// 400 with field issues, absent ids to 404, everything else to a logged 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, verr)
	case errors.Is(err, storage.ErrNotFound):
		writeNotFound(w)
	default:
		h.Log.Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
	}
}
