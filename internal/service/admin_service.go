package service

import (
	"context"

	"github.com/bagdasarian/tuesday/internal/domain"
)

type AdminService interface {
	Overview(ctx context.Context) (*domain.AdminOverview, error)
	CreateUser(ctx context.Context, name, email, role string) (*domain.User, error)
	UpdateUserRole(ctx context.Context, id, role string) (*domain.User, error)
	CreateTeam(ctx context.Context, name string) (*domain.Team, error)
	// SaveMembership создает членство или меняет роль уже существующего
	SaveMembership(ctx context.Context, userID, teamID, role string) (*domain.Membership, error)
	// AssignBoardTeam привязывает доску к команде; teamID == nil делает доску общей
	AssignBoardTeam(ctx context.Context, boardID string, teamID *string) (*domain.Board, error)
}
