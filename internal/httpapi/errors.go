package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/honeycarbs/jobnest/internal/auth"
	"github.com/honeycarbs/jobnest/internal/domain/job"
	"github.com/honeycarbs/jobnest/internal/repository"
	"github.com/honeycarbs/jobnest/pkg/logging"
)

var (
	// ErrForbidden is returned when the token identity does not own the requested data
	ErrForbidden = errors.New("forbidden")

	errBadRequest = errors.New("bad request")
)

type errorBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors to a status code and a message body
func writeError(w http.ResponseWriter, r *http.Request, fallback *logging.Logger, err error) {
	log := logging.FromContext(r.Context(), fallback)

	switch {
	case errors.Is(err, auth.ErrUnauthorized), errors.Is(err, auth.ErrInvalidToken):
		writeJSON(w, http.StatusUnauthorized, errorBody{Message: "unAuthorized access"})
	case errors.Is(err, ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorBody{Message: "Forbidden access"})
	case errors.Is(err, repository.ErrInvalidID),
		errors.Is(err, job.ErrInvalidSalaryBound),
		errors.Is(err, auth.ErrMissingEmail),
		errors.Is(err, errBadRequest):
		writeJSON(w, http.StatusBadRequest, errorBody{Message: err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Message: "not found"})
	default:
		log.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: "internal server error"})
	}
}
