package service

import (
	"context"

	"github.com/bagdasarian/tuesday/internal/domain"
)

type TaskService interface {
	CreateTask(ctx context.Context, columnID string, draft domain.TaskDraft) (*domain.Task, error)
	UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
