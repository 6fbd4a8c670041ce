package service

import (
	"context"

	"github.com/bagdasarian/tuesday/internal/domain"
)

type UserService interface {
	// ListUsers возвращает пользователей по имени вместе с их членствами в командах
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
