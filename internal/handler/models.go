package handler

import (
	"encoding/json"
	"time"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// NullableString различает отсутствующее в JSON поле (Set == false) и явный null
type NullableString struct {
	Set   bool
	Value *string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	n.Value = &value
	return nil
}

type CreateBoardRequest struct {
	Title  string  `json:"title"`
	TeamID *string `json:"teamId"`
}

type CreateColumnRequest struct {
	Title string `json:"title"`
	Color string `json:"color"`
}

type CreateTaskRequest struct {
	Title      *string `json:"title"`
	Owner      *string `json:"owner"`
	AssigneeID *string `json:"assigneeId"`
	Status     *string `json:"status"`
	Deadline   *string `json:"deadline"`
}

// UpdateTaskRequest - частичное обновление; остальные поля тела, включая id, игнорируются
type UpdateTaskRequest struct {
	Title      NullableString `json:"title"`
	Owner      NullableString `json:"owner"`
	AssigneeID NullableString `json:"assigneeId"`
	Status     NullableString `json:"status"`
	Deadline   NullableString `json:"deadline"`
}

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role"`
}

type CreateTeamRequest struct {
	Name string `json:"name"`
}

type MembershipRequest struct {
	UserID string `json:"userId"`
	TeamID string `json:"teamId"`
	Role   string `json:"role"`
}

type AssignBoardTeamRequest struct {
	TeamID *string `json:"teamId"`
}

type TeamSummaryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UserSummaryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type MembershipResponse struct {
	ID        string               `json:"id"`
	UserID    string               `json:"userId"`
	TeamID    string               `json:"teamId"`
	Role      string               `json:"role"`
	Team      *TeamSummaryResponse `json:"team,omitempty"`
	User      *UserSummaryResponse `json:"user,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt *time.Time           `json:"updatedAt"`
}

type UserResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Role        string               `json:"role"`
	Memberships []MembershipResponse `json:"memberships"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   *time.Time           `json:"updatedAt"`
}

type TeamResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Memberships []MembershipResponse `json:"memberships"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   *time.Time           `json:"updatedAt"`
}

type BoardResponse struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	TeamID    *string              `json:"teamId"`
	Team      *TeamSummaryResponse `json:"team"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt *time.Time           `json:"updatedAt"`
}

type BoardDetailResponse struct {
	BoardResponse
	Columns []ColumnResponse `json:"columns"`
}

type ColumnResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Color     string         `json:"color"`
	BoardID   string         `json:"boardId"`
	Order     int            `json:"order"`
	Tasks     []TaskResponse `json:"tasks"`
	CreatedAt time.Time      `json:"createdAt"`
}

type TaskResponse struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Owner      string     `json:"owner"`
	AssigneeID *string    `json:"assigneeId"`
	Status     string     `json:"status"`
	Deadline   *string    `json:"deadline"`
	ColumnID   string     `json:"columnId"`
	Order      int        `json:"order"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt"`
}

type OverviewUserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type OverviewTaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	Deadline    string `json:"deadline"`
	BoardID     string `json:"boardId"`
	BoardTitle  string `json:"boardTitle"`
	ColumnID    string `json:"columnId"`
	ColumnTitle string `json:"columnTitle"`
}

type WeekDayResponse struct {
	Weekday string                 `json:"weekday"`
	Date    string                 `json:"date"`
	Tasks   []OverviewTaskResponse `json:"tasks"`
}

type WeeklyOverviewResponse struct {
	User      OverviewUserResponse `json:"user"`
	WeekStart string               `json:"weekStart"`
	WeekEnd   string               `json:"weekEnd"`
	Days      []WeekDayResponse    `json:"days"`
}

type AdminOverviewResponse struct {
	Users  []UserResponse  `json:"users"`
	Teams  []TeamResponse  `json:"teams"`
	Boards []BoardResponse `json:"boards"`
}
