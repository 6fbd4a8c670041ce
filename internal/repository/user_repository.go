package repository

import (
	"context"

	"github.com/bagdasarian/tuesday/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// List возвращает пользователей по имени (A-Z)
	List(ctx context.Context) ([]*domain.User, error)
	// ListNewest возвращает пользователей от новых к старым
	ListNewest(ctx context.Context) ([]*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.UserRole) error
}
