package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/tuesday/internal/domain"
	"github.com/bagdasarian/tuesday/internal/repository"
)

type columnRepository struct {
	executor DBExecutor
}

func NewColumnRepository(db *sql.DB) *columnRepository {
	return &columnRepository{executor: db}
}

func (r *columnRepository) Create(ctx context.Context, column *domain.Column) error {
	boardID, ok := parseID(column.BoardID)
	if !ok {
		return repository.ErrBoardNotFound
	}

	query := `
		INSERT INTO board_columns (id, title, color, board_id, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	id := newID()
	err := r.executor.QueryRowContext(
		ctx,
		query,
		id,
		column.Title,
		column.Color,
		boardID,
		column.Order,
		time.Now(),
	).Scan(&column.CreatedAt)
	if err != nil {
		return err
	}

	column.ID = id
	column.BoardID = boardID

	return nil
}

func (r *columnRepository) GetByID(ctx context.Context, id string) (*domain.Column, error) {
	dbID, ok := parseID(id)
	if !ok {
		return nil, repository.ErrColumnNotFound
	}

	query := `
		SELECT id, title, color, board_id, position, created_at
		FROM board_columns
		WHERE id = $1
	`

	column, err := scanColumn(r.executor.QueryRowContext(ctx, query, dbID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrColumnNotFound
		}
		return nil, err
	}

	return column, nil
}

func (r *columnRepository) ListByBoardID(ctx context.Context, boardID string) ([]*domain.Column, error) {
	dbID, ok := parseID(boardID)
	if !ok {
		return nil, repository.ErrBoardNotFound
	}

	query := `
		SELECT id, title, color, board_id, position, created_at
		FROM board_columns
		WHERE board_id = $1
		ORDER BY position, created_at
	`

	rows, err := r.executor.QueryContext(ctx, query, dbID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := make([]*domain.Column, 0)
	for rows.Next() {
		column, err := scanColumn(rows)
		if err != nil {
			return nil, err
		}
		columns = append(columns, column)
	}

	return columns, rows.Err()
}

// NextOrder читает текущий максимум без блокировки: параллельные вставки
// в одну доску могут получить одинаковый order.
func (r *columnRepository) NextOrder(ctx context.Context, boardID string) (int, error) {
	dbID, ok := parseID(boardID)
	if !ok {
		return 0, repository.ErrBoardNotFound
	}

	var order int
	err := r.executor.QueryRowContext(
		ctx,
		"SELECT COALESCE(MAX(position) + 1, 0) FROM board_columns WHERE board_id = $1",
		dbID,
	).Scan(&order)
	if err != nil {
		return 0, err
	}

	return order, nil
}

func scanColumn(row rowScanner) (*domain.Column, error) {
	column := &domain.Column{}
	err := row.Scan(
		&column.ID,
		&column.Title,
		&column.Color,
		&column.BoardID,
		&column.Order,
		&column.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return column, nil
}
