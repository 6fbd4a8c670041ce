package repository

import (
	"context"

	"github.com/bagdasarian/tuesday/internal/domain"
)

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
}

type MembershipRepository interface {
	// Upsert создает членство или перезаписывает роль существующего
	Upsert(ctx context.Context, membership *domain.Membership) error
	// List возвращает все членства вместе с краткими данными команды и пользователя
	List(ctx context.Context) ([]*domain.Membership, error)
	TeamIDsByUserID(ctx context.Context, userID string) ([]string, error)
}
