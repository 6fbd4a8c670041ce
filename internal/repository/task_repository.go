package repository

import (
	"context"

	"github.com/bagdasarian/tuesday/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
	ListByBoardID(ctx context.Context, boardID string) ([]*domain.Task, error)
	// NextOrder возвращает max(order)+1 среди задач колонки или 0
	NextOrder(ctx context.Context, columnID string) (int, error)
	// ListAssignedInRange возвращает задачи пользователя с дедлайном в [from, to] (даты YYYY-MM-DD)
	ListAssignedInRange(ctx context.Context, userID, from, to string) ([]*domain.OverviewTask, error)
}
