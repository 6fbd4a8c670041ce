package domain

type WeeklyOverview struct {
	User      UserSummary
	WeekStart string
	WeekEnd   string
	Days      []WeekDay
}

type WeekDay struct {
	Weekday string
	Date    string
	Tasks   []OverviewTask
}

// OverviewTask - задача с денормализованными названиями доски и колонки
type OverviewTask struct {
	ID          string
	Title       string
	Status      TaskStatus
	Deadline    string
	BoardID     string
	BoardTitle  string
	ColumnID    string
	ColumnTitle string
}

type AdminOverview struct {
	Users  []*User
	Teams  []*Team
	Boards []*Board
}
