package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/tuesday/internal/domain"
	"github.com/bagdasarian/tuesday/internal/repository"
)

var userColumns = []string{"id", "name", "email", "role", "created_at", "updated_at"}

// setupUserRepo создает мок БД и репозиторий для User
func setupUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewUserRepository(db), mock
}

func TestUserRepository_Create(t *testing.T) {
	t.Run("успешное создание пользователя", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		now := time.Now()
		user := &domain.User{Name: "Alice", Email: "alice@example.com", Role: domain.UserRoleMember}

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(sqlmock.AnyArg(), "Alice", "alice@example.com", "MEMBER", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

		err := repo.Create(context.Background(), user)

		require.NoError(t, err)
		_, ok := parseID(user.ID)
		assert.True(t, ok, "ID должен быть UUID")
		assert.Equal(t, now, user.CreatedAt)
		assert.Nil(t, user.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: email уже занят", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		user := &domain.User{Name: "Alice", Email: "alice@example.com", Role: domain.UserRoleMember}

		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		err := repo.Create(context.Background(), user)

		require.ErrorIs(t, err, repository.ErrEmailTaken)
		assert.Empty(t, user.ID, "ID не должен выставляться при ошибке")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	t.Run("пользователь найден", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		now := time.Now()
		mock.ExpectQuery("SELECT id, name, email, role, created_at, updated_at FROM users").
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(userID, "Alice", "alice@example.com", "ADMIN", now, now))

		user, err := repo.GetByID(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, domain.UserRoleAdmin, user.Role)
		require.NotNil(t, user.UpdatedAt)
		assert.Equal(t, now, *user.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("пользователь не найден", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		mock.ExpectQuery("SELECT id, name, email, role").
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows(userColumns))

		user, err := repo.GetByID(context.Background(), userID)

		require.ErrorIs(t, err, repository.ErrUserNotFound)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("некорректный ID не доходит до БД", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		user, err := repo.GetByID(context.Background(), "not-a-uuid")

		require.ErrorIs(t, err, repository.ErrUserNotFound)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка БД пробрасывается", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		dbErr := errors.New("connection reset")
		mock.ExpectQuery("SELECT id, name, email, role").WillReturnError(dbErr)

		_, err := repo.GetByID(context.Background(), userID)

		require.ErrorIs(t, err, dbErr)
	})
}

func TestUserRepository_List(t *testing.T) {
	t.Run("по имени", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		now := time.Now()
		mock.ExpectQuery("FROM users ORDER BY name").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(userID, "Alice", "alice@example.com", "MEMBER", now, nil).
				AddRow("7f1c2b1e-2b8f-4f7e-9a43-0c5d3c1e9a01", "Bob", "bob@example.com", "ADMIN", now, nil))

		users, err := repo.List(context.Background())

		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "Alice", users[0].Name)
		assert.Equal(t, "Bob", users[1].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("от новых к старым", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		mock.ExpectQuery("FROM users ORDER BY created_at DESC").
			WillReturnRows(sqlmock.NewRows(userColumns))

		users, err := repo.ListNewest(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_UpdateRole(t *testing.T) {
	t.Run("успешное обновление роли", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		mock.ExpectExec("UPDATE users").
			WithArgs(userID, "ADMIN", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateRole(context.Background(), userID, domain.UserRoleAdmin)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("пользователь не найден", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		mock.ExpectExec("UPDATE users").
			WithArgs(userID, "MEMBER", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateRole(context.Background(), userID, domain.UserRoleMember)

		require.ErrorIs(t, err, repository.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
