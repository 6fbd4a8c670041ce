package service

import (
	"context"

	"github.com/bagdasarian/tuesday/internal/domain"
	"github.com/bagdasarian/tuesday/internal/repository"
)

type userService struct {
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
}

// NewUserService создает новый экземпляр UserService
func NewUserService(userRepo repository.UserRepository, membershipRepo repository.MembershipRepository) UserService {
	return &userService{
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	memberships, err := s.membershipRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	attachUserMemberships(users, memberships)

	return users, nil
}

// attachUserMemberships раскладывает членства по пользователям.
// У пользователя без команд остается пустой (не nil) список.
func attachUserMemberships(users []*domain.User, memberships []*domain.Membership) {
	byUser := make(map[string][]domain.Membership)
	for _, m := range memberships {
		byUser[m.UserID] = append(byUser[m.UserID], *m)
	}

	for _, user := range users {
		user.Memberships = byUser[user.ID]
		if user.Memberships == nil {
			user.Memberships = []domain.Membership{}
		}
	}
}

func attachTeamMemberships(teams []*domain.Team, memberships []*domain.Membership) {
	byTeam := make(map[string][]domain.Membership)
	for _, m := range memberships {
		byTeam[m.TeamID] = append(byTeam[m.TeamID], *m)
	}

	for _, team := range teams {
		team.Memberships = byTeam[team.ID]
		if team.Memberships == nil {
			team.Memberships = []domain.Membership{}
		}
	}
}
