//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/bagdasarian/tuesday/internal/db"
	pgrepo "github.com/bagdasarian/tuesday/internal/repository/postgres"
	"github.com/bagdasarian/tuesday/internal/service"
)

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	// Создаём контейнер Postgres через testcontainers
	postgresContainer, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:17.7"),
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	database, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, database.Ping())

	// Те же встроенные миграции, что и при старте приложения
	require.NoError(t, db.Migrate(ctx, database), "не удалось применить миграции")

	t.Cleanup(func() {
		database.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return database
}

type testApp struct {
	boards   service.BoardService
	tasks    service.TaskService
	users    service.UserService
	overview service.OverviewService
	admin    service.AdminService
}

func newTestApp(database *sql.DB) *testApp {
	log := zerolog.Nop()

	userRepo := pgrepo.NewUserRepository(database)
	teamRepo := pgrepo.NewTeamRepository(database)
	membershipRepo := pgrepo.NewMembershipRepository(database)
	boardRepo := pgrepo.NewBoardRepository(database)
	columnRepo := pgrepo.NewColumnRepository(database)
	taskRepo := pgrepo.NewTaskRepository(database)

	return &testApp{
		boards:   service.NewBoardService(boardRepo, columnRepo, taskRepo, teamRepo, userRepo, membershipRepo, log),
		tasks:    service.NewTaskService(taskRepo, columnRepo, userRepo, log),
		users:    service.NewUserService(userRepo, membershipRepo),
		overview: service.NewOverviewService(userRepo, taskRepo),
		admin:    service.NewAdminService(userRepo, teamRepo, membershipRepo, boardRepo, log),
	}
}
