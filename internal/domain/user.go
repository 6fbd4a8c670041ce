package domain

import "time"

type UserRole string

const (
	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleMember UserRole = "MEMBER"
)

func (r UserRole) Valid() bool {
	return r == UserRoleAdmin || r == UserRoleMember
}

type User struct {
	ID          string
	Name        string
	Email       string
	Role        UserRole
	Memberships []Membership
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// UserSummary - краткое представление пользователя внутри связанных сущностей
type UserSummary struct {
	ID    string
	Name  string
	Email string
	Role  UserRole
}
