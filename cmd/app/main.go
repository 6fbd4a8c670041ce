package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bagdasarian/tuesday/internal/config"
	"github.com/bagdasarian/tuesday/internal/db"
	"github.com/bagdasarian/tuesday/internal/handler"
	"github.com/bagdasarian/tuesday/internal/handler/server"
	"github.com/bagdasarian/tuesday/internal/logger"
	"github.com/bagdasarian/tuesday/internal/repository/postgres"
	"github.com/bagdasarian/tuesday/internal/service"
)

func main() {
	cfg := config.MustLoad()
	log := logger.MustNew(cfg.Env)

	database := db.MustLoad(cfg)
	log.Info().Str("dsn", cfg.Database.Redacted()).Msg("connected to database")
	defer database.Close()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(context.Background(), database); err != nil {
			log.Fatal().Err(err).Msg("failed to apply migrations")
		}
		log.Info().Msg("migrations applied")
	}

	userRepo := postgres.NewUserRepository(database)
	teamRepo := postgres.NewTeamRepository(database)
	membershipRepo := postgres.NewMembershipRepository(database)
	boardRepo := postgres.NewBoardRepository(database)
	columnRepo := postgres.NewColumnRepository(database)
	taskRepo := postgres.NewTaskRepository(database)

	boardService := service.NewBoardService(boardRepo, columnRepo, taskRepo, teamRepo, userRepo, membershipRepo, log)
	taskService := service.NewTaskService(taskRepo, columnRepo, userRepo, log)
	userService := service.NewUserService(userRepo, membershipRepo)
	overviewService := service.NewOverviewService(userRepo, taskRepo)
	adminService := service.NewAdminService(userRepo, teamRepo, membershipRepo, boardRepo, log)

	h := handler.NewHandler(log, boardService, taskService, userService, overviewService, adminService)
	srv := server.NewServer(h, cfg.HTTP, log)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
}
