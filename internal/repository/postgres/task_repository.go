package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/tuesday/internal/domain"
	"github.com/bagdasarian/tuesday/internal/repository"
)

type taskRepository struct {
	executor DBExecutor
}

func NewTaskRepository(db *sql.DB) *taskRepository {
	return &taskRepository{executor: db}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	columnID, ok := parseID(task.ColumnID)
	if !ok {
		return repository.ErrColumnNotFound
	}

	assigneeID, err := optionalUserID(task.AssigneeID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO tasks (id, title, owner, assignee_id, status, deadline, column_id, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`

	id := newID()
	err = r.executor.QueryRowContext(
		ctx,
		query,
		id,
		task.Title,
		task.Owner,
		assigneeID,
		string(task.Status),
		task.Deadline,
		columnID,
		task.Order,
		time.Now(),
	).Scan(&task.CreatedAt)
	if err != nil {
		return err
	}

	task.ID = id
	task.ColumnID = columnID
	task.AssigneeID = assigneeID
	task.UpdatedAt = nil

	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	dbID, ok := parseID(id)
	if !ok {
		return nil, repository.ErrTaskNotFound
	}

	query := `
		SELECT id, title, owner, assignee_id, status, deadline, column_id, position, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`

	task, err := scanTask(r.executor.QueryRowContext(ctx, query, dbID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrTaskNotFound
		}
		return nil, err
	}

	return task, nil
}

// Update перезаписывает изменяемые поля задачи: title, owner, assignee_id, status, deadline
func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	dbID, ok := parseID(task.ID)
	if !ok {
		return repository.ErrTaskNotFound
	}

	assigneeID, err := optionalUserID(task.AssigneeID)
	if err != nil {
		return err
	}

	query := `
		UPDATE tasks
		SET title = $2, owner = $3, assignee_id = $4, status = $5, deadline = $6, updated_at = $7
		WHERE id = $1
		RETURNING updated_at
	`

	var updatedAt sql.NullTime
	err = r.executor.QueryRowContext(
		ctx,
		query,
		dbID,
		task.Title,
		task.Owner,
		assigneeID,
		string(task.Status),
		task.Deadline,
		time.Now(),
	).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrTaskNotFound
		}
		return err
	}

	task.AssigneeID = assigneeID
	task.UpdatedAt = timePtr(updatedAt)

	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	dbID, ok := parseID(id)
	if !ok {
		return repository.ErrTaskNotFound
	}

	result, err := r.executor.ExecContext(ctx, "DELETE FROM tasks WHERE id = $1", dbID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

func (r *taskRepository) ListByBoardID(ctx context.Context, boardID string) ([]*domain.Task, error) {
	dbID, ok := parseID(boardID)
	if !ok {
		return nil, repository.ErrBoardNotFound
	}

	query := `
		SELECT t.id, t.title, t.owner, t.assignee_id, t.status, t.deadline, t.column_id, t.position, t.created_at, t.updated_at
		FROM tasks t
		JOIN board_columns c ON t.column_id = c.id
		WHERE c.board_id = $1
		ORDER BY t.position, t.created_at
	`

	rows, err := r.executor.QueryContext(ctx, query, dbID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// NextOrder, как и у колонок, не защищен от гонки параллельных вставок
func (r *taskRepository) NextOrder(ctx context.Context, columnID string) (int, error) {
	dbID, ok := parseID(columnID)
	if !ok {
		return 0, repository.ErrColumnNotFound
	}

	var order int
	err := r.executor.QueryRowContext(
		ctx,
		"SELECT COALESCE(MAX(position) + 1, 0) FROM tasks WHERE column_id = $1",
		dbID,
	).Scan(&order)
	if err != nil {
		return 0, err
	}

	return order, nil
}

// Дедлайн хранится как текст YYYY-MM-DD, поэтому сравнение строк совпадает с календарным
func (r *taskRepository) ListAssignedInRange(ctx context.Context, userID, from, to string) ([]*domain.OverviewTask, error) {
	dbID, ok := parseID(userID)
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	query := `
		SELECT t.id, t.title, t.status, t.deadline, b.id, b.title, c.id, c.title
		FROM tasks t
		JOIN board_columns c ON t.column_id = c.id
		JOIN boards b ON c.board_id = b.id
		WHERE t.assignee_id = $1
		  AND t.deadline IS NOT NULL
		  AND t.deadline >= $2
		  AND t.deadline <= $3
		ORDER BY t.deadline, t.position
	`

	rows, err := r.executor.QueryContext(ctx, query, dbID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*domain.OverviewTask, 0)
	for rows.Next() {
		task := &domain.OverviewTask{}
		var status string
		err := rows.Scan(
			&task.ID,
			&task.Title,
			&status,
			&task.Deadline,
			&task.BoardID,
			&task.BoardTitle,
			&task.ColumnID,
			&task.ColumnTitle,
		)
		if err != nil {
			return nil, err
		}
		task.Status = domain.TaskStatus(status)
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func optionalUserID(userID *string) (*string, error) {
	if userID == nil {
		return nil, nil
	}
	dbID, ok := parseID(*userID)
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &dbID, nil
}

func scanTask(row rowScanner) (*domain.Task, error) {
	task := &domain.Task{}
	var status string
	var assigneeID, deadline sql.NullString
	var updatedAt sql.NullTime
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Owner,
		&assigneeID,
		&status,
		&deadline,
		&task.ColumnID,
		&task.Order,
		&task.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Status = domain.TaskStatus(status)
	task.AssigneeID = stringPtr(assigneeID)
	task.Deadline = stringPtr(deadline)
	task.UpdatedAt = timePtr(updatedAt)

	return task, nil
}
