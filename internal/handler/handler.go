package handler

import (
	"github.com/rs/zerolog"

	"github.com/bagdasarian/tuesday/internal/service"
)

type Handler struct {
	logger          zerolog.Logger
	boardService    service.BoardService
	taskService     service.TaskService
	userService     service.UserService
	overviewService service.OverviewService
	adminService    service.AdminService
}

func NewHandler(
	logger zerolog.Logger,
	boardService service.BoardService,
	taskService service.TaskService,
	userService service.UserService,
	overviewService service.OverviewService,
	adminService service.AdminService,
) *Handler {
	return &Handler{
		logger:          logger,
		boardService:    boardService,
		taskService:     taskService,
		userService:     userService,
		overviewService: overviewService,
		adminService:    adminService,
	}
}
