package service

import (
	"errors"

	"github.com/bagdasarian/tuesday/internal/domain"
)

// notFound переводит ошибку репозитория "не найдено" в доменную NOT_FOUND,
// остальные ошибки возвращает как есть
func notFound(err, sentinel error, resource string) error {
	if errors.Is(err, sentinel) {
		return domain.NewNotFoundError(resource)
	}
	return err
}
