package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/tuesday/internal/domain"
	"github.com/bagdasarian/tuesday/internal/repository"
)

type userRepository struct {
	executor DBExecutor
}

func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{executor: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, name, email, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	id := newID()
	err := r.executor.QueryRowContext(
		ctx,
		query,
		id,
		user.Name,
		user.Email,
		string(user.Role),
		time.Now(),
	).Scan(&user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrEmailTaken
		}
		return err
	}

	user.ID = id
	user.UpdatedAt = nil

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	dbID, ok := parseID(id)
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	query := `
		SELECT id, name, email, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	user, err := scanUser(r.executor.QueryRowContext(ctx, query, dbID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	return r.list(ctx, `
		SELECT id, name, email, role, created_at, updated_at
		FROM users
		ORDER BY name, created_at
	`)
}

func (r *userRepository) ListNewest(ctx context.Context) ([]*domain.User, error) {
	return r.list(ctx, `
		SELECT id, name, email, role, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`)
}

func (r *userRepository) list(ctx context.Context, query string) ([]*domain.User, error) {
	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *userRepository) UpdateRole(ctx context.Context, id string, role domain.UserRole) error {
	dbID, ok := parseID(id)
	if !ok {
		return repository.ErrUserNotFound
	}

	query := `
		UPDATE users
		SET role = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(ctx, query, dbID, string(role), time.Now())
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	user := &domain.User{}
	var role string
	var updatedAt sql.NullTime
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&role,
		&user.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Role = domain.UserRole(role)
	user.UpdatedAt = timePtr(updatedAt)

	return user, nil
}
