package repository

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrTeamNotFound   = errors.New("team not found")
	ErrBoardNotFound  = errors.New("board not found")
	ErrColumnNotFound = errors.New("column not found")
	ErrTaskNotFound   = errors.New("task not found")

	// ErrEmailTaken - email уже занят другим пользователем
	ErrEmailTaken = errors.New("email already in use")
)
