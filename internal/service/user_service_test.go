package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/tuesday/internal/domain"
)

func TestUserService_ListUsers(t *testing.T) {
	t.Run("членства раскладываются по пользователям", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		membershipRepo := new(MockMembershipRepository)
		svc := NewUserService(userRepo, membershipRepo)

		users := []*domain.User{
			{ID: "u1", Name: "Alice"},
			{ID: "u2", Name: "Bob"},
		}
		memberships := []*domain.Membership{
			{ID: "m1", UserID: "u1", TeamID: "team-1", Role: domain.TeamRoleLead, Team: &domain.TeamSummary{ID: "team-1", Name: "Backend"}},
			{ID: "m2", UserID: "u1", TeamID: "team-2", Role: domain.TeamRoleMember, Team: &domain.TeamSummary{ID: "team-2", Name: "Design"}},
		}

		userRepo.On("List", mock.Anything).Return(users, nil).Once()
		membershipRepo.On("List", mock.Anything).Return(memberships, nil).Once()

		result, err := svc.ListUsers(context.Background())

		require.NoError(t, err)
		require.Len(t, result, 2)
		require.Len(t, result[0].Memberships, 2)
		assert.Equal(t, "Backend", result[0].Memberships[0].Team.Name)
		assert.NotNil(t, result[1].Memberships)
		assert.Empty(t, result[1].Memberships)
		userRepo.AssertExpectations(t)
		membershipRepo.AssertExpectations(t)
	})

	t.Run("ошибка репозитория пробрасывается", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		membershipRepo := new(MockMembershipRepository)
		svc := NewUserService(userRepo, membershipRepo)

		dbErr := errors.New("connection refused")
		userRepo.On("List", mock.Anything).Return(nil, dbErr).Once()

		result, err := svc.ListUsers(context.Background())

		require.ErrorIs(t, err, dbErr)
		assert.Nil(t, result)
		membershipRepo.AssertNotCalled(t, "List", mock.Anything)
	})
}
