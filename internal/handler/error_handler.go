package handler

import (
	"errors"
	"net/http"

	"github.com/bagdasarian/tuesday/internal/domain"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		statusCode := getStatusCode(domainErr.Code)
		if statusCode != http.StatusInternalServerError {
			writeJSON(w, statusCode, ErrorResponse{Error: domainErr.Message})
			return
		}
	}

	h.logger.Error().
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")

	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeForbidden:
		return http.StatusForbidden
	case domain.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
