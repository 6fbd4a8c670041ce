package service

import (
	"context"

	"github.com/bagdasarian/tuesday/internal/domain"
)

type OverviewService interface {
	// WeeklyOverview группирует задачи пользователя с дедлайном на неделе по дням.
	// Пустой weekStart означает текущую неделю.
	WeeklyOverview(ctx context.Context, userID, weekStart string) (*domain.WeeklyOverview, error)
}
