package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bagdasarian/tuesday/internal/domain"
	"github.com/bagdasarian/tuesday/internal/repository"
)

type boardService struct {
	boardRepo      repository.BoardRepository
	columnRepo     repository.ColumnRepository
	taskRepo       repository.TaskRepository
	teamRepo       repository.TeamRepository
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
	logger         zerolog.Logger
}

// NewBoardService создает новый экземпляр BoardService
func NewBoardService(
	boardRepo repository.BoardRepository,
	columnRepo repository.ColumnRepository,
	taskRepo repository.TaskRepository,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	membershipRepo repository.MembershipRepository,
	logger zerolog.Logger,
) BoardService {
	return &boardService{
		boardRepo:      boardRepo,
		columnRepo:     columnRepo,
		taskRepo:       taskRepo,
		teamRepo:       teamRepo,
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

func (s *boardService) ListBoards(ctx context.Context, userID string) ([]*domain.Board, error) {
	boards, err := s.boardRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if userID == "" {
		return boards, nil
	}

	user, teamIDs, err := s.viewer(ctx, userID)
	if err != nil {
		return nil, err
	}

	return VisibleBoards(boards, user, teamIDs), nil
}

// CreateBoard создает доску. teamID == nil - доска видна всем пользователям
func (s *boardService) CreateBoard(ctx context.Context, title string, teamID *string) (*domain.Board, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.NewValidationError("title is required")
	}

	board := &domain.Board{Title: title}

	if teamID != nil && strings.TrimSpace(*teamID) != "" {
		team, err := s.teamRepo.GetByID(ctx, strings.TrimSpace(*teamID))
		if err != nil {
			return nil, notFound(err, repository.ErrTeamNotFound, "team")
		}
		board.TeamID = &team.ID
		board.Team = &domain.TeamSummary{ID: team.ID, Name: team.Name}
	}

	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, notFound(err, repository.ErrTeamNotFound, "team")
	}

	s.logger.Info().Str("board_id", board.ID).Str("title", board.Title).Msg("board created")

	return board, nil
}

// GetBoard возвращает доску с колонками и задачами, упорядоченными по order
func (s *boardService) GetBoard(ctx context.Context, id, userID string) (*domain.Board, error) {
	board, err := s.boardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, repository.ErrBoardNotFound, "board")
	}

	if userID != "" {
		user, teamIDs, err := s.viewer(ctx, userID)
		if err != nil {
			return nil, err
		}
		if !CanViewBoard(board, user, teamIDs) {
			return nil, domain.NewForbiddenError("you do not have access to this board")
		}
	}

	columns, err := s.columnRepo.ListByBoardID(ctx, board.ID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByBoardID(ctx, board.ID)
	if err != nil {
		return nil, err
	}

	tasksByColumn := make(map[string][]domain.Task, len(columns))
	for _, task := range tasks {
		tasksByColumn[task.ColumnID] = append(tasksByColumn[task.ColumnID], *task)
	}

	board.Columns = make([]domain.Column, 0, len(columns))
	for _, column := range columns {
		column.Tasks = tasksByColumn[column.ID]
		if column.Tasks == nil {
			column.Tasks = []domain.Task{}
		}
		board.Columns = append(board.Columns, *column)
	}

	return board, nil
}

// CreateColumn добавляет колонку в конец доски
func (s *boardService) CreateColumn(ctx context.Context, boardID, title, color string) (*domain.Column, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.NewValidationError("title is required")
	}

	color = strings.TrimSpace(color)
	if color == "" {
		color = domain.DefaultColumnColor
	}

	board, err := s.boardRepo.GetByID(ctx, boardID)
	if err != nil {
		return nil, notFound(err, repository.ErrBoardNotFound, "board")
	}

	order, err := s.columnRepo.NextOrder(ctx, board.ID)
	if err != nil {
		return nil, err
	}

	column := &domain.Column{
		Title:   title,
		Color:   color,
		BoardID: board.ID,
		Order:   order,
	}

	if err := s.columnRepo.Create(ctx, column); err != nil {
		return nil, err
	}

	column.Tasks = []domain.Task{}

	s.logger.Debug().
		Str("board_id", board.ID).
		Str("column_id", column.ID).
		Int("order", column.Order).
		Msg("column created")

	return column, nil
}

// viewer загружает пользователя и id его команд. Для администратора команды не нужны.
func (s *boardService) viewer(ctx context.Context, userID string) (*domain.User, []string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, notFound(err, repository.ErrUserNotFound, "user")
	}

	if user.IsAdmin() {
		return user, nil, nil
	}

	teamIDs, err := s.membershipRepo.TeamIDsByUserID(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, teamIDs, nil
}
