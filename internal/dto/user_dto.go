package dto

import (
	"time"

	"survey-console/internal/domain"
)

// UserRequest is the body for creating or updating a user.
// @Description Request body for user create/update
type UserRequest struct {
	Names              string `json:"names"`
	LastNames          string `json:"last_names"`
	IdentificationType string `json:"identification_type"`
	Identification     string `json:"identification"`
	Email              string `json:"email"`
	RoleID             string `json:"role_id"`
}

// UserResponse represents a user in the API response
// @Description User information
type UserResponse struct {
	ID                 string    `json:"id"`
	Names              string    `json:"names"`
	LastNames          string    `json:"last_names"`
	FullName           string    `json:"full_name"`
	IdentificationType string    `json:"identification_type"`
	Identification     string    `json:"identification"`
	Email              string    `json:"email"`
	RoleID             string    `json:"role_id"`
	RoleName           string    `json:"role_name,omitempty"`
	State              int       `json:"state"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UserListResponse wraps a list of users.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// NewUserResponse maps a domain user to its response shape.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Names:              u.Names,
		LastNames:          u.LastNames,
		FullName:           u.FullName(),
		IdentificationType: u.IdentificationType,
		Identification:     u.Identification,
		Email:              u.Email,
		RoleID:             u.RoleID,
		RoleName:           u.RoleName,
		State:              u.State,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

// NewUserListResponse maps a slice of domain users.
func NewUserListResponse(users []*domain.User) UserListResponse {
	out := UserListResponse{Users: make([]UserResponse, 0, len(users)), Total: len(users)}
	for _, u := range users {
		out.Users = append(out.Users, NewUserResponse(u))
	}
	return out
}

// MessageResponse represents a generic message response.
// @Description Generic message response
type MessageResponse struct {
	Message string `json:"message"`
}

// StateResponse is returned by toggle-state endpoints.
// @Description New state after a toggle (1 active, 0 inactive)
type StateResponse struct {
	ID    string `json:"id"`
	State int    `json:"state"`
}

// DeletedResponse is returned by delete endpoints.
type DeletedResponse struct {
	ID string `json:"id"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Status  int               `json:"status"`
	Errors  map[string]string `json:"errors,omitempty"`
	Details interface{}       `json:"details,omitempty"`
}
