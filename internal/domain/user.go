package domain

import (
	"context"
	"time"
)

// Entity states. Toggling flips between the two.
const (
	StateInactive = 0
	StateActive   = 1
)

// ToggleState returns the opposite of state.
func ToggleState(state int) int {
	if state == StateActive {
		return StateInactive
	}
	return StateActive
}

// User represents a console user managed by administrators
type User struct {
	ID                 string
	Names              string
	LastNames          string
	IdentificationType string
	Identification     string
	Email              string
	RoleID             string
	RoleName           string
	State              int
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time
}

// FullName joins names and last names the way lists display them.
func (u *User) FullName() string {
	if u.LastNames == "" {
		return u.Names
	}
	return u.Names + " " + u.LastNames
}

// NewUser creates a new active User instance
func NewUser(names, lastNames, identificationType, identification, email, roleID string) *User {
	now := time.Now()
	return &User{
		Names:              names,
		LastNames:          lastNames,
		IdentificationType: identificationType,
		Identification:     identification,
		Email:              email,
		RoleID:             roleID,
		State:              StateActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// UserRepository defines the interface for user data persistence.
type UserRepository interface {
	ListUsers(ctx context.Context, search string) ([]*User, error)
	GetUserByID(ctx context.Context, userID string) (*User, error)
	CreateUser(ctx context.Context, user *User) error
	UpdateUser(ctx context.Context, user *User) error
	DeleteUser(ctx context.Context, userID string) error
	ToggleUserState(ctx context.Context, userID string) (int, error)
}
