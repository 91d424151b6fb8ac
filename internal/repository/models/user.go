package models

import (
	"database/sql"
	"time"
)

// User represents a row of USERS. ROLE_NAME is only filled by selects joining ROLES.
type User struct {
	ID                 string         `db:"ID"`
	Names              string         `db:"NAMES"`
	LastNames          string         `db:"LAST_NAMES"`
	IdentificationType string         `db:"IDENTIFICATION_TYPE"`
	Identification     string         `db:"IDENTIFICATION"`
	Email              string         `db:"EMAIL"`
	RoleID             string         `db:"ROLE_ID"`
	RoleName           sql.NullString `db:"ROLE_NAME"`
	State              int            `db:"STATE"`
	CreatedAt          time.Time      `db:"CREATED_AT"`
	UpdatedAt          time.Time      `db:"UPDATED_AT"`
	DeletedAt          sql.NullTime   `db:"DELETED_AT"`
}

// Role represents a row of ROLES.
type Role struct {
	ID        string       `db:"ID"`
	Name      string       `db:"NAME"`
	State     int          `db:"STATE"`
	CreatedAt time.Time    `db:"CREATED_AT"`
	UpdatedAt time.Time    `db:"UPDATED_AT"`
	DeletedAt sql.NullTime `db:"DELETED_AT"`
}

// Permission represents a row of PERMISSIONS.
type Permission struct {
	ID   string `db:"ID"`
	Name string `db:"NAME"`
}

// RolePermission is a permission joined with the role it is granted to.
type RolePermission struct {
	RoleID       string `db:"ROLE_ID"`
	PermissionID string `db:"PERMISSION_ID"`
	Name         string `db:"NAME"`
}
