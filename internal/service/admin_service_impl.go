package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bagdasarian/tuesday/internal/domain"
	"github.com/bagdasarian/tuesday/internal/repository"
)

type adminService struct {
	userRepo       repository.UserRepository
	teamRepo       repository.TeamRepository
	membershipRepo repository.MembershipRepository
	boardRepo      repository.BoardRepository
	logger         zerolog.Logger
}

// NewAdminService создает новый экземпляр AdminService
func NewAdminService(
	userRepo repository.UserRepository,
	teamRepo repository.TeamRepository,
	membershipRepo repository.MembershipRepository,
	boardRepo repository.BoardRepository,
	logger zerolog.Logger,
) AdminService {
	return &adminService{
		userRepo:       userRepo,
		teamRepo:       teamRepo,
		membershipRepo: membershipRepo,
		boardRepo:      boardRepo,
		logger:         logger,
	}
}

// Overview возвращает пользователей и доски от новых к старым, команды по имени
func (s *adminService) Overview(ctx context.Context) (*domain.AdminOverview, error) {
	users, err := s.userRepo.ListNewest(ctx)
	if err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	boards, err := s.boardRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	memberships, err := s.membershipRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	attachUserMemberships(users, memberships)
	attachTeamMemberships(teams, memberships)

	return &domain.AdminOverview{
		Users:  users,
		Teams:  teams,
		Boards: boards,
	}, nil
}

func (s *adminService) CreateUser(ctx context.Context, name, email, role string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return nil, domain.NewValidationError("name and email are required")
	}

	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, domain.NewValidationError("email is invalid")
	}

	userRole := domain.UserRoleMember
	if role != "" {
		userRole = domain.UserRole(role)
		if !userRole.Valid() {
			return nil, domain.NewValidationError("role must be ADMIN or MEMBER")
		}
	}

	user := &domain.User{
		Name:  name,
		Email: email,
		Role:  userRole,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, domain.NewValidationError("email already in use")
		}
		return nil, err
	}

	user.Memberships = []domain.Membership{}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user created")

	return user, nil
}

func (s *adminService) UpdateUserRole(ctx context.Context, id, role string) (*domain.User, error) {
	userRole := domain.UserRole(role)
	if !userRole.Valid() {
		return nil, domain.NewValidationError("role must be ADMIN or MEMBER")
	}

	if err := s.userRepo.UpdateRole(ctx, id, userRole); err != nil {
		return nil, notFound(err, repository.ErrUserNotFound, "user")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, repository.ErrUserNotFound, "user")
	}

	memberships, err := s.membershipRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	attachUserMemberships([]*domain.User{user}, memberships)

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user role updated")

	return user, nil
}

func (s *adminService) CreateTeam(ctx context.Context, name string) (*domain.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name is required")
	}

	team := &domain.Team{Name: name}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	team.Memberships = []domain.Membership{}

	s.logger.Info().Str("team_id", team.ID).Str("name", team.Name).Msg("team created")

	return team, nil
}

func (s *adminService) SaveMembership(ctx context.Context, userID, teamID, role string) (*domain.Membership, error) {
	userID = strings.TrimSpace(userID)
	teamID = strings.TrimSpace(teamID)
	if userID == "" || teamID == "" {
		return nil, domain.NewValidationError("userId and teamId are required")
	}

	teamRole := domain.TeamRoleMember
	if role != "" {
		teamRole = domain.TeamRole(role)
		if !teamRole.Valid() {
			return nil, domain.NewValidationError("role must be LEAD or MEMBER")
		}
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, repository.ErrUserNotFound, "user")
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, notFound(err, repository.ErrTeamNotFound, "team")
	}

	membership := &domain.Membership{
		UserID: user.ID,
		TeamID: team.ID,
		Role:   teamRole,
	}

	if err := s.membershipRepo.Upsert(ctx, membership); err != nil {
		return nil, err
	}

	membership.Team = &domain.TeamSummary{ID: team.ID, Name: team.Name}
	membership.User = &domain.UserSummary{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Str("team_id", team.ID).
		Str("role", string(teamRole)).
		Msg("membership saved")

	return membership, nil
}

func (s *adminService) AssignBoardTeam(ctx context.Context, boardID string, teamID *string) (*domain.Board, error) {
	board, err := s.boardRepo.GetByID(ctx, boardID)
	if err != nil {
		return nil, notFound(err, repository.ErrBoardNotFound, "board")
	}

	var team *domain.Team
	if teamID != nil && strings.TrimSpace(*teamID) != "" {
		team, err = s.teamRepo.GetByID(ctx, strings.TrimSpace(*teamID))
		if err != nil {
			return nil, notFound(err, repository.ErrTeamNotFound, "team")
		}
	}

	board.TeamID = nil
	board.Team = nil
	if team != nil {
		board.TeamID = &team.ID
		board.Team = &domain.TeamSummary{ID: team.ID, Name: team.Name}
	}

	if err := s.boardRepo.SetTeam(ctx, board.ID, board.TeamID); err != nil {
		return nil, notFound(err, repository.ErrBoardNotFound, "board")
	}

	s.logger.Info().Str("board_id", board.ID).Interface("team_id", board.TeamID).Msg("board team updated")

	return board, nil
}
