package domain

import "time"

// DefaultColumnColor - цвет колонки, если клиент его не передал
const DefaultColumnColor = "#71717a"

type Board struct {
	ID        string
	Title     string
	TeamID    *string
	Team      *TeamSummary
	Columns   []Column
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type Column struct {
	ID        string
	Title     string
	Color     string
	BoardID   string
	Order     int
	Tasks     []Task
	CreatedAt time.Time
}
