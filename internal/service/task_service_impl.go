package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bagdasarian/tuesday/internal/domain"
	"github.com/bagdasarian/tuesday/internal/repository"
)

type taskService struct {
	taskRepo   repository.TaskRepository
	columnRepo repository.ColumnRepository
	userRepo   repository.UserRepository
	logger     zerolog.Logger
}

// NewTaskService создает новый экземпляр TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	columnRepo repository.ColumnRepository,
	userRepo repository.UserRepository,
	logger zerolog.Logger,
) TaskService {
	return &taskService{
		taskRepo:   taskRepo,
		columnRepo: columnRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// CreateTask добавляет задачу в конец колонки.
// Если задан исполнитель, owner берется из его имени, кроме случая явно переданного owner.
func (s *taskService) CreateTask(ctx context.Context, columnID string, draft domain.TaskDraft) (*domain.Task, error) {
	column, err := s.columnRepo.GetByID(ctx, columnID)
	if err != nil {
		return nil, notFound(err, repository.ErrColumnNotFound, "column")
	}

	status := domain.TaskStatusNotStarted
	if draft.Status != nil && *draft.Status != "" {
		status, err = parseStatus(*draft.Status)
		if err != nil {
			return nil, err
		}
	}

	deadline, err := normalizeDeadline(draft.Deadline)
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		Title:    strings.TrimSpace(deref(draft.Title)),
		Owner:    domain.UnassignedOwner,
		Status:   status,
		Deadline: deadline,
		ColumnID: column.ID,
	}

	if assigneeID := strings.TrimSpace(deref(draft.AssigneeID)); assigneeID != "" {
		assignee, err := s.userRepo.GetByID(ctx, assigneeID)
		if err != nil {
			return nil, notFound(err, repository.ErrUserNotFound, "user")
		}
		task.AssigneeID = &assignee.ID
		task.Owner = assignee.Name
	}

	if owner := strings.TrimSpace(deref(draft.Owner)); owner != "" {
		task.Owner = owner
	}

	task.Order, err = s.taskRepo.NextOrder(ctx, column.ID)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("task_id", task.ID).
		Str("column_id", task.ColumnID).
		Int("order", task.Order).
		Msg("task created")

	return task, nil
}

// UpdateTask применяет частичное обновление. Поля, которых нет в patch, не меняются.
func (s *taskService) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, repository.ErrTaskNotFound, "task")
	}

	if patch.Title.Set {
		if patch.Title.Value == nil {
			return nil, domain.NewValidationError("title cannot be null")
		}
		task.Title = strings.TrimSpace(*patch.Title.Value)
	}

	if patch.Status.Set {
		if patch.Status.Value == nil {
			return nil, domain.NewValidationError("status cannot be null")
		}
		task.Status, err = parseStatus(*patch.Status.Value)
		if err != nil {
			return nil, err
		}
	}

	if patch.Deadline.Set {
		task.Deadline, err = normalizeDeadline(patch.Deadline.Value)
		if err != nil {
			return nil, err
		}
	}

	if patch.AssigneeID.Set {
		assigneeID := strings.TrimSpace(deref(patch.AssigneeID.Value))
		if assigneeID == "" {
			task.AssigneeID = nil
			task.Owner = domain.UnassignedOwner
		} else {
			assignee, err := s.userRepo.GetByID(ctx, assigneeID)
			if err != nil {
				return nil, notFound(err, repository.ErrUserNotFound, "user")
			}
			task.AssigneeID = &assignee.ID
			task.Owner = assignee.Name
		}
	}

	if patch.Owner.Set {
		owner := strings.TrimSpace(deref(patch.Owner.Value))
		switch {
		case owner != "":
			task.Owner = owner
		case !patch.AssigneeID.Set:
			task.Owner = domain.UnassignedOwner
		}
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, notFound(err, repository.ErrTaskNotFound, "task")
	}

	s.logger.Debug().Str("task_id", task.ID).Msg("task updated")

	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id string) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return notFound(err, repository.ErrTaskNotFound, "task")
	}

	s.logger.Debug().Str("task_id", id).Msg("task deleted")

	return nil
}

func parseStatus(value string) (domain.TaskStatus, error) {
	status := domain.TaskStatus(value)
	if !status.Valid() {
		return "", domain.NewValidationError("status must be one of: Not Started, Working on it, Stuck, Done")
	}
	return status, nil
}

// normalizeDeadline: nil и "" означают отсутствие дедлайна
func normalizeDeadline(value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}

	deadline := strings.TrimSpace(*value)
	if deadline == "" {
		return nil, nil
	}

	if _, ok := ParseDate(deadline); !ok {
		return nil, domain.NewValidationError("deadline must be a valid date in YYYY-MM-DD format")
	}

	return &deadline, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
