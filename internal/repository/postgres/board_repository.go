package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/tuesday/internal/domain"
	"github.com/bagdasarian/tuesday/internal/repository"
)

type boardRepository struct {
	executor DBExecutor
}

func NewBoardRepository(db *sql.DB) *boardRepository {
	return &boardRepository{executor: db}
}

func (r *boardRepository) Create(ctx context.Context, board *domain.Board) error {
	teamID, err := optionalTeamID(board.TeamID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO boards (id, title, team_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	id := newID()
	err = r.executor.QueryRowContext(ctx, query, id, board.Title, teamID, time.Now()).Scan(&board.CreatedAt)
	if err != nil {
		return err
	}

	board.ID = id
	board.TeamID = teamID
	board.UpdatedAt = nil

	return nil
}

func (r *boardRepository) GetByID(ctx context.Context, id string) (*domain.Board, error) {
	dbID, ok := parseID(id)
	if !ok {
		return nil, repository.ErrBoardNotFound
	}

	query := `
		SELECT b.id, b.title, b.team_id, t.name, b.created_at, b.updated_at
		FROM boards b
		LEFT JOIN teams t ON b.team_id = t.id
		WHERE b.id = $1
	`

	board, err := scanBoard(r.executor.QueryRowContext(ctx, query, dbID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrBoardNotFound
		}
		return nil, err
	}

	return board, nil
}

func (r *boardRepository) List(ctx context.Context) ([]*domain.Board, error) {
	query := `
		SELECT b.id, b.title, b.team_id, t.name, b.created_at, b.updated_at
		FROM boards b
		LEFT JOIN teams t ON b.team_id = t.id
		ORDER BY b.created_at DESC
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	boards := make([]*domain.Board, 0)
	for rows.Next() {
		board, err := scanBoard(rows)
		if err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}

	return boards, rows.Err()
}

// SetTeam меняет команду доски; nil снимает ограничение видимости
func (r *boardRepository) SetTeam(ctx context.Context, id string, teamID *string) error {
	dbID, ok := parseID(id)
	if !ok {
		return repository.ErrBoardNotFound
	}

	dbTeamID, err := optionalTeamID(teamID)
	if err != nil {
		return err
	}

	query := `
		UPDATE boards
		SET team_id = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(ctx, query, dbID, dbTeamID, time.Now())
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrBoardNotFound
	}

	return nil
}

func optionalTeamID(teamID *string) (*string, error) {
	if teamID == nil {
		return nil, nil
	}
	dbID, ok := parseID(*teamID)
	if !ok {
		return nil, repository.ErrTeamNotFound
	}
	return &dbID, nil
}

func scanBoard(row rowScanner) (*domain.Board, error) {
	board := &domain.Board{}
	var teamID, teamName sql.NullString
	var updatedAt sql.NullTime
	err := row.Scan(
		&board.ID,
		&board.Title,
		&teamID,
		&teamName,
		&board.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	board.TeamID = stringPtr(teamID)
	if teamID.Valid {
		board.Team = &domain.TeamSummary{ID: teamID.String, Name: teamName.String}
	}
	board.UpdatedAt = timePtr(updatedAt)

	return board, nil
}
