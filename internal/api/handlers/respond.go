package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/dom/adboard/internal/domain"
	"github.com/dom/adboard/internal/service"
	"github.com/dom/adboard/internal/validation"
)

type errorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorEnvelope{Status: "error", Message: message})
}

// respondError maps the request-scoped error taxonomy onto the HTTP envelope.
// Anything outside the taxonomy is an unexpected store fault and becomes a 500.
func respondError(w http.ResponseWriter, op string, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrAdNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrNotOwner), errors.Is(err, service.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrLoginTaken):
		writeError(w, http.StatusConflict, err.Error())
	default:
		log.Printf("ERROR [%s]: %v", op, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
