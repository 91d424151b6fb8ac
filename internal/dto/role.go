package dto

import (
	"time"

	"survey-console/internal/domain"
)

// RoleRequest is the body for creating or updating a role.
// @Description Request body for role create/update
type RoleRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// RoleResponse represents a role in the API response
// @Description Role information
type RoleResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Permissions []domain.Permission `json:"permissions"`
	State       int                 `json:"state"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// RoleListResponse wraps a list of roles.
type RoleListResponse struct {
	Roles []RoleResponse `json:"roles"`
	Total int            `json:"total"`
}

// PermissionListResponse wraps the permission catalogue.
type PermissionListResponse struct {
	Permissions []domain.Permission `json:"permissions"`
}

func NewRoleResponse(r *domain.Role) RoleResponse {
	perms := r.Permissions
	if perms == nil {
		perms = []domain.Permission{}
	}
	return RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Permissions: perms,
		State:       r.State,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func NewRoleListResponse(roles []*domain.Role) RoleListResponse {
	out := RoleListResponse{Roles: make([]RoleResponse, 0, len(roles)), Total: len(roles)}
	for _, r := range roles {
		out.Roles = append(out.Roles, NewRoleResponse(r))
	}
	return out
}
