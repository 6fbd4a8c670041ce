package service

import (
	"context"
	"strings"
	"time"

	"github.com/bagdasarian/tuesday/internal/domain"
	"github.com/bagdasarian/tuesday/internal/repository"
)

type overviewService struct {
	userRepo repository.UserRepository
	taskRepo repository.TaskRepository
	now      func() time.Time
}

// NewOverviewService создает новый экземпляр OverviewService
func NewOverviewService(userRepo repository.UserRepository, taskRepo repository.TaskRepository) OverviewService {
	return &overviewService{
		userRepo: userRepo,
		taskRepo: taskRepo,
		now:      time.Now,
	}
}

func (s *overviewService) WeeklyOverview(ctx context.Context, userID, weekStart string) (*domain.WeeklyOverview, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domain.NewValidationError("userId is required")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, repository.ErrUserNotFound, "user")
	}

	reference := s.now()
	if weekStart != "" {
		date, ok := ParseDate(weekStart)
		if !ok {
			return nil, domain.NewValidationError("weekStart must be a valid date in YYYY-MM-DD format")
		}
		reference = date
	}

	start := StartOfWeek(reference)
	end := start.AddDate(0, 0, 6)

	tasks, err := s.taskRepo.ListAssignedInRange(ctx, user.ID, FormatDate(start), FormatDate(end))
	if err != nil {
		return nil, err
	}

	return &domain.WeeklyOverview{
		User: domain.UserSummary{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
		WeekStart: FormatDate(start),
		WeekEnd:   FormatDate(end),
		Days:      BucketByWeekday(start, tasks),
	}, nil
}
