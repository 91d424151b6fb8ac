package domain

import (
	"context"
	"time"
)

// Permission is a capability that can be granted to a role.
type Permission struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Role groups permissions assigned to users.
type Role struct {
	ID          string
	Name        string
	Permissions []Permission
	State       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// PermissionIDs returns the ids of the role's permissions in order.
func (r *Role) PermissionIDs() []string {
	ids := make([]string, len(r.Permissions))
	for i, p := range r.Permissions {
		ids[i] = p.ID
	}
	return ids
}

// RoleRepository defines the interface for role and permission persistence.
type RoleRepository interface {
	ListRoles(ctx context.Context, search string) ([]*Role, error)
	GetRoleByID(ctx context.Context, roleID string) (*Role, error)
	CreateRole(ctx context.Context, role *Role) error
	UpdateRole(ctx context.Context, role *Role) error
	DeleteRole(ctx context.Context, roleID string) error
	ToggleRoleState(ctx context.Context, roleID string) (int, error)
	ReplaceRolePermissions(ctx context.Context, roleID string, permissionIDs []string) error
	ListPermissions(ctx context.Context) ([]Permission, error)
}
