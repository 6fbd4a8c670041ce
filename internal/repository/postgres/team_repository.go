package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/tuesday/internal/domain"
	"github.com/bagdasarian/tuesday/internal/repository"
)

type teamRepository struct {
	executor DBExecutor
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{executor: db}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (id, name, created_at)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	id := newID()
	err := r.executor.QueryRowContext(ctx, query, id, team.Name, time.Now()).Scan(&team.CreatedAt)
	if err != nil {
		return err
	}

	team.ID = id
	team.UpdatedAt = nil

	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	dbID, ok := parseID(id)
	if !ok {
		return nil, repository.ErrTeamNotFound
	}

	query := `
		SELECT id, name, created_at, updated_at
		FROM teams
		WHERE id = $1
	`

	team, err := scanTeam(r.executor.QueryRowContext(ctx, query, dbID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrTeamNotFound
		}
		return nil, err
	}

	return team, nil
}

func (r *teamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM teams
		ORDER BY name, created_at
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

func scanTeam(row rowScanner) (*domain.Team, error) {
	team := &domain.Team{}
	var updatedAt sql.NullTime
	err := row.Scan(
		&team.ID,
		&team.Name,
		&team.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	team.UpdatedAt = timePtr(updatedAt)

	return team, nil
}
