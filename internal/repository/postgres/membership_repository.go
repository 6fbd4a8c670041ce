package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/tuesday/internal/domain"
	"github.com/bagdasarian/tuesday/internal/repository"
)

type membershipRepository struct {
	executor DBExecutor
}

func NewMembershipRepository(db *sql.DB) *membershipRepository {
	return &membershipRepository{executor: db}
}

// Upsert использует ON CONFLICT по паре (user_id, team_id): повторное назначение
// перезаписывает роль, id и created_at остаются прежними.
func (r *membershipRepository) Upsert(ctx context.Context, membership *domain.Membership) error {
	userID, ok := parseID(membership.UserID)
	if !ok {
		return repository.ErrUserNotFound
	}
	teamID, ok := parseID(membership.TeamID)
	if !ok {
		return repository.ErrTeamNotFound
	}

	query := `
		INSERT INTO team_memberships (id, user_id, team_id, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, team_id) DO UPDATE
		SET role = EXCLUDED.role, updated_at = CURRENT_TIMESTAMP
		RETURNING id, created_at, updated_at
	`

	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(
		ctx,
		query,
		newID(),
		userID,
		teamID,
		string(membership.Role),
		time.Now(),
	).Scan(&membership.ID, &membership.CreatedAt, &updatedAt)
	if err != nil {
		return err
	}

	membership.UserID = userID
	membership.TeamID = teamID
	membership.UpdatedAt = timePtr(updatedAt)

	return nil
}

func (r *membershipRepository) List(ctx context.Context) ([]*domain.Membership, error) {
	query := `
		SELECT m.id, m.user_id, m.team_id, m.role, m.created_at, m.updated_at,
		       t.name, u.name, u.email, u.role
		FROM team_memberships m
		JOIN teams t ON m.team_id = t.id
		JOIN users u ON m.user_id = u.id
		ORDER BY m.created_at
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	memberships := make([]*domain.Membership, 0)
	for rows.Next() {
		m := &domain.Membership{
			Team: &domain.TeamSummary{},
			User: &domain.UserSummary{},
		}
		var role, userRole string
		var updatedAt sql.NullTime
		err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.TeamID,
			&role,
			&m.CreatedAt,
			&updatedAt,
			&m.Team.Name,
			&m.User.Name,
			&m.User.Email,
			&userRole,
		)
		if err != nil {
			return nil, err
		}
		m.Role = domain.TeamRole(role)
		m.UpdatedAt = timePtr(updatedAt)
		m.Team.ID = m.TeamID
		m.User.ID = m.UserID
		m.User.Role = domain.UserRole(userRole)
		memberships = append(memberships, m)
	}

	return memberships, rows.Err()
}

func (r *membershipRepository) TeamIDsByUserID(ctx context.Context, userID string) ([]string, error) {
	dbID, ok := parseID(userID)
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	rows, err := r.executor.QueryContext(ctx, "SELECT team_id FROM team_memberships WHERE user_id = $1", dbID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teamIDs := make([]string, 0)
	for rows.Next() {
		var teamID string
		if err := rows.Scan(&teamID); err != nil {
			return nil, err
		}
		teamIDs = append(teamIDs, teamID)
	}

	return teamIDs, rows.Err()
}
