package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"survey-console/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roleColumns = []string{"ID", "NAME", "STATE", "CREATED_AT", "UPDATED_AT", "DELETED_AT"}

func TestSQLXRoleRepository_ListRoles_LoadsPermissionsInOneQuery(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXRoleRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM ROLES WHERE DELETED_AT IS NULL AND LOWER(NAME) LIKE ?`)).
		WithArgs("%a%").
		WillReturnRows(sqlmock.NewRows(roleColumns).
			AddRow("r1", "Admin", 1, now, now, nil).
			AddRow("r2", "Analyst", 0, now, now, nil))
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE RP.ROLE_ID IN (?, ?) ORDER BY P.NAME`)).
		WithArgs("r1", "r2").
		WillReturnRows(sqlmock.NewRows([]string{"ROLE_ID", "PERMISSION_ID", "NAME"}).
			AddRow("r1", "p1", "roles").
			AddRow("r1", "p2", "users"))

	roles, err := repo.ListRoles(context.Background(), "A")
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, []string{"p1", "p2"}, roles[0].PermissionIDs())
	assert.Empty(t, roles[1].Permissions)
	assert.NotNil(t, roles[1].Permissions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXRoleRepository_ListRoles_Empty(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXRoleRepository(db)

	mock.ExpectQuery(`FROM ROLES WHERE DELETED_AT IS NULL ORDER BY NAME`).
		WillReturnRows(sqlmock.NewRows(roleColumns))

	roles, err := repo.ListRoles(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, roles)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXRoleRepository_GetRoleByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXRoleRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM ROLES WHERE DELETED_AT IS NULL AND ID = ?`)).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows(roleColumns).AddRow("r1", "Admin", 1, now, now, nil))
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE RP.ROLE_ID IN (?)`)).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows([]string{"ROLE_ID", "PERMISSION_ID", "NAME"}).AddRow("r1", "p1", "users"))

	role, err := repo.GetRoleByID(context.Background(), "r1")
	require.NoError(t, err)
	require.NotNil(t, role)
	assert.Equal(t, []domain.Permission{{ID: "p1", Name: "users"}}, role.Permissions)

	mock.ExpectQuery(regexp.QuoteMeta(`AND ID = ?`)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(roleColumns))

	role, err = repo.GetRoleByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXRoleRepository_CreateWithPermissionsInTransaction(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXRoleRepository(db)
	tm := NewTransactionManagerAdapter(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ROLES (ID, NAME, STATE, CREATED_AT, UPDATED_AT)`)).
		WithArgs(sqlmock.AnyArg(), "Admin", domain.StateActive, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM ROLE_PERMISSIONS WHERE ROLE_ID = ?`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ROLE_PERMISSIONS (ROLE_ID, PERMISSION_ID)`)).
		WithArgs(sqlmock.AnyArg(), "p1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ROLE_PERMISSIONS (ROLE_ID, PERMISSION_ID)`)).
		WithArgs(sqlmock.AnyArg(), "p2").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	role := &domain.Role{Name: "Admin", State: domain.StateActive}
	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		if err := repo.CreateRole(ctx, role); err != nil {
			return err
		}
		return repo.ReplaceRolePermissions(ctx, role.ID, []string{"p1", "p2"})
	})

	require.NoError(t, err)
	assert.NotEmpty(t, role.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXRoleRepository_ReplacePermissionsRollsBack(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXRoleRepository(db)
	tm := NewTransactionManagerAdapter(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM ROLE_PERMISSIONS`).
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO ROLE_PERMISSIONS`).
		WithArgs("r1", "unknown").
		WillReturnError(errors.New("ORA-02291: integrity constraint violated"))
	mock.ExpectRollback()

	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		return repo.ReplaceRolePermissions(ctx, "r1", []string{"unknown"})
	})

	assert.ErrorContains(t, err, "failed to grant permission unknown")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXRoleRepository_ListPermissions(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXRoleRepository(db)

	mock.ExpectQuery(`SELECT ID, NAME FROM PERMISSIONS ORDER BY NAME`).
		WillReturnRows(sqlmock.NewRows([]string{"ID", "NAME"}).AddRow("p2", "roles").AddRow("p1", "users"))

	perms, err := repo.ListPermissions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Permission{{ID: "p2", Name: "roles"}, {ID: "p1", Name: "users"}}, perms)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXRoleRepository_DeleteAndToggle(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXRoleRepository(db)

	mock.ExpectExec(`UPDATE ROLES SET DELETED_AT`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "r1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE ROLES SET STATE = 1 - STATE`).
		WithArgs(sqlmock.AnyArg(), "r2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT STATE FROM ROLES WHERE ID = ?`)).
		WithArgs("r2").
		WillReturnRows(sqlmock.NewRows([]string{"STATE"}).AddRow(1))

	require.NoError(t, repo.DeleteRole(context.Background(), "r1"))
	state, err := repo.ToggleRoleState(context.Background(), "r2")
	require.NoError(t, err)
	assert.Equal(t, domain.StateActive, state)
	assert.NoError(t, mock.ExpectationsWereMet())
}
