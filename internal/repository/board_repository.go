package repository

import (
	"context"

	"github.com/bagdasarian/tuesday/internal/domain"
)

type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) error
	GetByID(ctx context.Context, id string) (*domain.Board, error)
	// List возвращает все доски от новых к старым
	List(ctx context.Context) ([]*domain.Board, error)
	SetTeam(ctx context.Context, id string, teamID *string) error
}

type ColumnRepository interface {
	Create(ctx context.Context, column *domain.Column) error
	GetByID(ctx context.Context, id string) (*domain.Column, error)
	ListByBoardID(ctx context.Context, boardID string) ([]*domain.Column, error)
	// NextOrder возвращает max(order)+1 среди колонок доски или 0
	NextOrder(ctx context.Context, boardID string) (int, error)
}
