package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"survey-console/internal/domain"
	"survey-console/internal/repository/models"
	"survey-console/internal/util"

	"github.com/jmoiron/sqlx"
)

const roleSelect = `SELECT ID, NAME, STATE, CREATED_AT, UPDATED_AT, DELETED_AT FROM ROLES WHERE DELETED_AT IS NULL`

type sqlxRoleRepository struct {
	db *sqlx.DB
}

// NewSQLXRoleRepository creates a role repository backed by sqlx.
func NewSQLXRoleRepository(db *sqlx.DB) domain.RoleRepository {
	return &sqlxRoleRepository{db: db}
}

func toDomainRole(m *models.Role, perms []domain.Permission) *domain.Role {
	if m == nil {
		return nil
	}
	if perms == nil {
		perms = []domain.Permission{}
	}
	return &domain.Role{
		ID:          m.ID,
		Name:        m.Name,
		Permissions: perms,
		State:       m.State,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   util.NullTimeToPtr(m.DeletedAt),
	}
}

func fromDomainRole(r *domain.Role) *models.Role {
	return &models.Role{
		ID:        r.ID,
		Name:      r.Name,
		State:     r.State,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		DeletedAt: util.TimePtrToNullTime(r.DeletedAt),
	}
}

func (r *sqlxRoleRepository) ListRoles(ctx context.Context, search string) ([]*domain.Role, error) {
	exec := GetExecutor(ctx, r.db)
	query := roleSelect
	var args []interface{}
	if search != "" {
		query += ` AND LOWER(NAME) LIKE ? ESCAPE '\'`
		args = append(args, util.LikePattern(search))
	}
	query += " ORDER BY NAME"

	var rows []models.Role
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	if len(rows) == 0 {
		return []*domain.Role{}, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	perms, err := r.permissionsByRole(ctx, ids)
	if err != nil {
		return nil, err
	}

	roles := make([]*domain.Role, 0, len(rows))
	for i := range rows {
		roles = append(roles, toDomainRole(&rows[i], perms[rows[i].ID]))
	}
	return roles, nil
}

// permissionsByRole loads the permissions of every role in roleIDs with one query.
func (r *sqlxRoleRepository) permissionsByRole(ctx context.Context, roleIDs []string) (map[string][]domain.Permission, error) {
	exec := GetExecutor(ctx, r.db)
	query, args, err := sqlx.In(`SELECT RP.ROLE_ID, P.ID AS PERMISSION_ID, P.NAME
		FROM ROLE_PERMISSIONS RP JOIN PERMISSIONS P ON P.ID = RP.PERMISSION_ID
		WHERE RP.ROLE_ID IN (?) ORDER BY P.NAME`, roleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build permission query: %w", err)
	}

	var rows []models.RolePermission
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to load role permissions: %w", err)
	}

	out := make(map[string][]domain.Permission, len(roleIDs))
	for _, row := range rows {
		out[row.RoleID] = append(out[row.RoleID], domain.Permission{ID: row.PermissionID, Name: row.Name})
	}
	return out, nil
}

// GetRoleByID returns a live role with its permissions, or (nil, nil) when none exists.
func (r *sqlxRoleRepository) GetRoleByID(ctx context.Context, roleID string) (*domain.Role, error) {
	exec := GetExecutor(ctx, r.db)
	var row models.Role
	if err := exec.GetContext(ctx, &row, exec.Rebind(roleSelect+" AND ID = ?"), roleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role by id: %w", err)
	}

	perms, err := r.permissionsByRole(ctx, []string{roleID})
	if err != nil {
		return nil, err
	}
	return toDomainRole(&row, perms[roleID]), nil
}

// CreateRole inserts the role row. Permission links are written by ReplaceRolePermissions.
func (r *sqlxRoleRepository) CreateRole(ctx context.Context, role *domain.Role) error {
	if role.ID == "" {
		role.ID = util.NewULID()
	}
	now := nowUTC()
	if role.CreatedAt.IsZero() {
		role.CreatedAt = now
	}
	role.UpdatedAt = now

	query := `INSERT INTO ROLES (ID, NAME, STATE, CREATED_AT, UPDATED_AT) VALUES (:ID, :NAME, :STATE, :CREATED_AT, :UPDATED_AT)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, fromDomainRole(role)); err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}
	return nil
}

func (r *sqlxRoleRepository) UpdateRole(ctx context.Context, role *domain.Role) error {
	role.UpdatedAt = nowUTC()
	query := `UPDATE ROLES SET NAME = :NAME, UPDATED_AT = :UPDATED_AT WHERE ID = :ID AND DELETED_AT IS NULL`
	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, fromDomainRole(role))
	return requireAffected(result, err, "update role")
}

// DeleteRole soft deletes a live role.
func (r *sqlxRoleRepository) DeleteRole(ctx context.Context, roleID string) error {
	now := nowUTC()
	query := `UPDATE ROLES SET DELETED_AT = :DELETED_AT, UPDATED_AT = :UPDATED_AT WHERE ID = :ID AND DELETED_AT IS NULL`
	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, map[string]interface{}{
		"DELETED_AT": now,
		"UPDATED_AT": now,
		"ID":         roleID,
	})
	return requireAffected(result, err, "delete role")
}

func (r *sqlxRoleRepository) ToggleRoleState(ctx context.Context, roleID string) (int, error) {
	return toggleState(ctx, r.db, "ROLES", roleID, true)
}

// ReplaceRolePermissions rewrites the permission links of a role.
// Callers run it in the same transaction as the role write.
func (r *sqlxRoleRepository) ReplaceRolePermissions(ctx context.Context, roleID string, permissionIDs []string) error {
	exec := GetExecutor(ctx, r.db)
	if _, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM ROLE_PERMISSIONS WHERE ROLE_ID = ?`), roleID); err != nil {
		return fmt.Errorf("failed to clear role permissions: %w", err)
	}

	query := `INSERT INTO ROLE_PERMISSIONS (ROLE_ID, PERMISSION_ID) VALUES (:ROLE_ID, :PERMISSION_ID)`
	for _, permissionID := range permissionIDs {
		link := models.RolePermission{RoleID: roleID, PermissionID: permissionID}
		if _, err := exec.NamedExecContext(ctx, query, link); err != nil {
			return fmt.Errorf("failed to grant permission %s: %w", permissionID, err)
		}
	}
	return nil
}

func (r *sqlxRoleRepository) ListPermissions(ctx context.Context) ([]domain.Permission, error) {
	exec := GetExecutor(ctx, r.db)
	var rows []models.Permission
	if err := exec.SelectContext(ctx, &rows, `SELECT ID, NAME FROM PERMISSIONS ORDER BY NAME`); err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	out := make([]domain.Permission, len(rows))
	for i, row := range rows {
		out[i] = domain.Permission{ID: row.ID, Name: row.Name}
	}
	return out, nil
}
