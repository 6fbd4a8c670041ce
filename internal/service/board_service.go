package service

import (
	"context"

	"github.com/bagdasarian/tuesday/internal/domain"
)

type BoardService interface {
	// ListBoards возвращает доски от новых к старым. Пустой userID отключает фильтрацию.
	ListBoards(ctx context.Context, userID string) ([]*domain.Board, error)
	CreateBoard(ctx context.Context, title string, teamID *string) (*domain.Board, error)
	GetBoard(ctx context.Context, id, userID string) (*domain.Board, error)
	CreateColumn(ctx context.Context, boardID, title, color string) (*domain.Column, error)
}
