package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/tuesday/internal/domain"
	"github.com/bagdasarian/tuesday/internal/repository"
)

func newOverviewServiceAt(now time.Time) (OverviewService, *MockUserRepository, *MockTaskRepository) {
	userRepo := new(MockUserRepository)
	taskRepo := new(MockTaskRepository)
	svc := NewOverviewService(userRepo, taskRepo).(*overviewService)
	svc.now = func() time.Time { return now }
	return svc, userRepo, taskRepo
}

func TestOverviewService_WeeklyOverview(t *testing.T) {
	alice := &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: domain.UserRoleMember}

	t.Run("неделя с 2026-02-23 по 2026-03-01", func(t *testing.T) {
		svc, userRepo, taskRepo := newOverviewServiceAt(time.Now())

		tasks := []*domain.OverviewTask{
			{
				ID:          "t1",
				Title:       "Write docs",
				Status:      domain.TaskStatusWorking,
				Deadline:    "2026-02-25",
				BoardID:     "b1",
				BoardTitle:  "Roadmap",
				ColumnID:    "c1",
				ColumnTitle: "Todo",
			},
		}

		userRepo.On("GetByID", mock.Anything, "u1").Return(alice, nil).Once()
		taskRepo.On("ListAssignedInRange", mock.Anything, "u1", "2026-02-23", "2026-03-01").Return(tasks, nil).Once()

		overview, err := svc.WeeklyOverview(context.Background(), "u1", "2026-02-23")

		require.NoError(t, err)
		assert.Equal(t, "2026-02-23", overview.WeekStart)
		assert.Equal(t, "2026-03-01", overview.WeekEnd)
		assert.Equal(t, "Alice", overview.User.Name)
		require.Len(t, overview.Days, 7)

		wednesday := overview.Days[2]
		assert.Equal(t, "Wednesday", wednesday.Weekday)
		assert.Equal(t, "2026-02-25", wednesday.Date)
		require.Len(t, wednesday.Tasks, 1)
		assert.Equal(t, *tasks[0], wednesday.Tasks[0])

		userRepo.AssertExpectations(t)
		taskRepo.AssertExpectations(t)
	})

	t.Run("дата внутри недели сдвигается на понедельник", func(t *testing.T) {
		svc, userRepo, taskRepo := newOverviewServiceAt(time.Now())

		userRepo.On("GetByID", mock.Anything, "u1").Return(alice, nil).Once()
		taskRepo.On("ListAssignedInRange", mock.Anything, "u1", "2026-02-23", "2026-03-01").
			Return([]*domain.OverviewTask{}, nil).Once()

		overview, err := svc.WeeklyOverview(context.Background(), "u1", "2026-03-01")

		require.NoError(t, err)
		assert.Equal(t, "2026-02-23", overview.WeekStart)
		taskRepo.AssertExpectations(t)
	})

	t.Run("без weekStart берется текущая неделя", func(t *testing.T) {
		svc, userRepo, taskRepo := newOverviewServiceAt(time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC))

		userRepo.On("GetByID", mock.Anything, "u1").Return(alice, nil).Once()
		taskRepo.On("ListAssignedInRange", mock.Anything, "u1", "2026-10-12", "2026-10-18").
			Return([]*domain.OverviewTask{}, nil).Once()

		overview, err := svc.WeeklyOverview(context.Background(), "u1", "")

		require.NoError(t, err)
		assert.Equal(t, "2026-10-12", overview.WeekStart)
		assert.Equal(t, "2026-10-18", overview.WeekEnd)
		for _, day := range overview.Days {
			assert.NotNil(t, day.Tasks)
			assert.Empty(t, day.Tasks)
		}
		taskRepo.AssertExpectations(t)
	})

	t.Run("ошибка: userId не передан", func(t *testing.T) {
		svc, userRepo, _ := newOverviewServiceAt(time.Now())

		overview, err := svc.WeeklyOverview(context.Background(), "", "2026-02-23")

		require.Error(t, err)
		assert.Nil(t, overview)
		assert.True(t, errors.Is(err, domain.ErrValidation))
		userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: пользователь не найден", func(t *testing.T) {
		svc, userRepo, _ := newOverviewServiceAt(time.Now())

		userRepo.On("GetByID", mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound).Once()

		overview, err := svc.WeeklyOverview(context.Background(), "ghost", "Feb 23")

		require.Error(t, err)
		assert.Nil(t, overview)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("ошибка: weekStart не в формате YYYY-MM-DD", func(t *testing.T) {
		for _, weekStart := range []string{"Feb 23", "2026-02-30", "2026/02/23"} {
			svc, userRepo, taskRepo := newOverviewServiceAt(time.Now())

			userRepo.On("GetByID", mock.Anything, "u1").Return(alice, nil).Once()

			overview, err := svc.WeeklyOverview(context.Background(), "u1", weekStart)

			require.Error(t, err, weekStart)
			assert.Nil(t, overview)
			assert.True(t, errors.Is(err, domain.ErrValidation))
			taskRepo.AssertNotCalled(t, "ListAssignedInRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		}
	})
}
