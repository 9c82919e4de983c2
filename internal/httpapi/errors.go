package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"wsld/internal/catalog"
	"wsld/internal/host"
	"wsld/internal/lifecycle"
	"wsld/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// writeServiceError maps well-known service errors to HTTP status codes.
// Host failures are upstream failures, so they map to 502.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case lifecycle.IsDistributionNotFound(err), catalog.IsDefinitionNotFound(err):
		writeJSONError(w, http.StatusNotFound, err.Error())
	case isHostError(err):
		writeJSONError(w, http.StatusBadGateway, err.Error())
	default:
		if he, ok := err.(HTTPError); ok {
			writeJSONError(w, he.StatusCode(), he.Error())
			return
		}
		writeJSONError(w, http.StatusInternalServerError, err.Error())
	}
}

func isHostError(err error) bool {
	var herr *host.Error
	return errors.As(err, &herr)
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}
