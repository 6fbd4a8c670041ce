package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bagdasarian/tuesday/internal/domain"
)

type MockBoardService struct {
	mock.Mock
}

func (m *MockBoardService) ListBoards(ctx context.Context, userID string) ([]*domain.Board, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Board), args.Error(1)
}

func (m *MockBoardService) CreateBoard(ctx context.Context, title string, teamID *string) (*domain.Board, error) {
	args := m.Called(ctx, title, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Board), args.Error(1)
}

func (m *MockBoardService) GetBoard(ctx context.Context, id, userID string) (*domain.Board, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Board), args.Error(1)
}

func (m *MockBoardService) CreateColumn(ctx context.Context, boardID, title, color string) (*domain.Column, error) {
	args := m.Called(ctx, boardID, title, color)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Column), args.Error(1)
}

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) CreateTask(ctx context.Context, columnID string, draft domain.TaskDraft) (*domain.Task, error) {
	args := m.Called(ctx, columnID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskService) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskService) DeleteTask(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

type MockOverviewService struct {
	mock.Mock
}

func (m *MockOverviewService) WeeklyOverview(ctx context.Context, userID, weekStart string) (*domain.WeeklyOverview, error) {
	args := m.Called(ctx, userID, weekStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyOverview), args.Error(1)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Overview(ctx context.Context) (*domain.AdminOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminOverview), args.Error(1)
}

func (m *MockAdminService) CreateUser(ctx context.Context, name, email, role string) (*domain.User, error) {
	args := m.Called(ctx, name, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAdminService) UpdateUserRole(ctx context.Context, id, role string) (*domain.User, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAdminService) CreateTeam(ctx context.Context, name string) (*domain.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockAdminService) SaveMembership(ctx context.Context, userID, teamID, role string) (*domain.Membership, error) {
	args := m.Called(ctx, userID, teamID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}

func (m *MockAdminService) AssignBoardTeam(ctx context.Context, boardID string, teamID *string) (*domain.Board, error) {
	args := m.Called(ctx, boardID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Board), args.Error(1)
}
