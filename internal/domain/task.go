package domain

import "time"

// UnassignedOwner - значение owner у задачи без исполнителя
const UnassignedOwner = "Unassigned"

type TaskStatus string

const (
	TaskStatusNotStarted TaskStatus = "Not Started"
	TaskStatusWorking    TaskStatus = "Working on it"
	TaskStatusStuck      TaskStatus = "Stuck"
	TaskStatusDone       TaskStatus = "Done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusNotStarted, TaskStatusWorking, TaskStatusStuck, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	ID         string
	Title      string
	Owner      string
	AssigneeID *string
	Status     TaskStatus
	Deadline   *string
	ColumnID   string
	Order      int
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// TaskDraft - входные данные для создания задачи, все поля необязательные
type TaskDraft struct {
	Title      *string
	Owner      *string
	AssigneeID *string
	Status     *string
	Deadline   *string
}

// Optional различает "поле не передано" (Set == false) и "передан null" (Set == true, Value == nil)
type Optional[T any] struct {
	Set   bool
	Value *T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// TaskPatch - частичное обновление задачи
type TaskPatch struct {
	Title      Optional[string]
	Status     Optional[string]
	Deadline   Optional[string]
	AssigneeID Optional[string]
	Owner      Optional[string]
}
