package domain

import "time"

type TeamRole string

const (
	TeamRoleLead   TeamRole = "LEAD"
	TeamRoleMember TeamRole = "MEMBER"
)

func (r TeamRole) Valid() bool {
	return r == TeamRoleLead || r == TeamRoleMember
}

type Team struct {
	ID          string
	Name        string
	Memberships []Membership
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type TeamSummary struct {
	ID   string
	Name string
}

// Membership связывает пользователя с командой. Пара (UserID, TeamID) уникальна.
type Membership struct {
	ID        string
	UserID    string
	TeamID    string
	Role      TeamRole
	Team      *TeamSummary
	User      *UserSummary
	CreatedAt time.Time
	UpdatedAt *time.Time
}
