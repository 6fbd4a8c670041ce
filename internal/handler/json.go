package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/bagdasarian/tuesday/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeJSON читает тело запроса. Пустое тело не ошибка: все поля остаются нулевыми.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return domain.NewValidationError("invalid request body")
}
