package service

import (
	"github.com/bagdasarian/tuesday/internal/domain"
)

// CanViewBoard проверяет доступ пользователя к доске.
// Доска без команды видна всем, командная - администраторам и участникам команды.
func CanViewBoard(board *domain.Board, user *domain.User, teamIDs []string) bool {
	if board.TeamID == nil || user.IsAdmin() {
		return true
	}

	for _, teamID := range teamIDs {
		if teamID == *board.TeamID {
			return true
		}
	}

	return false
}

// VisibleBoards оставляет только доски, доступные пользователю, сохраняя исходный порядок
func VisibleBoards(boards []*domain.Board, user *domain.User, teamIDs []string) []*domain.Board {
	if user.IsAdmin() {
		return boards
	}

	visible := make([]*domain.Board, 0, len(boards))
	for _, board := range boards {
		if CanViewBoard(board, user, teamIDs) {
			visible = append(visible, board)
		}
	}

	return visible
}
