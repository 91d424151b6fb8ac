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

const userSelect = `SELECT U.ID, U.NAMES, U.LAST_NAMES, U.IDENTIFICATION_TYPE, U.IDENTIFICATION, U.EMAIL,
	U.ROLE_ID, R.NAME AS ROLE_NAME, U.STATE, U.CREATED_AT, U.UPDATED_AT, U.DELETED_AT
	FROM USERS U LEFT JOIN ROLES R ON R.ID = U.ROLE_ID
	WHERE U.DELETED_AT IS NULL`

// userSearch matches the full name, document type, document number and role name.
const userSearch = ` AND (LOWER(U.NAMES || ' ' || U.LAST_NAMES) LIKE ? ESCAPE '\'
	OR LOWER(U.IDENTIFICATION_TYPE) LIKE ? ESCAPE '\'
	OR LOWER(U.IDENTIFICATION) LIKE ? ESCAPE '\'
	OR LOWER(R.NAME) LIKE ? ESCAPE '\')`

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:                 m.ID,
		Names:              m.Names,
		LastNames:          m.LastNames,
		IdentificationType: m.IdentificationType,
		Identification:     m.Identification,
		Email:              m.Email,
		RoleID:             m.RoleID,
		RoleName:           m.RoleName.String,
		State:              m.State,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		DeletedAt:          util.NullTimeToPtr(m.DeletedAt),
	}
}

func fromDomainUser(u *domain.User) *models.User {
	if u == nil {
		return nil
	}
	return &models.User{
		ID:                 u.ID,
		Names:              u.Names,
		LastNames:          u.LastNames,
		IdentificationType: u.IdentificationType,
		Identification:     u.Identification,
		Email:              u.Email,
		RoleID:             u.RoleID,
		State:              u.State,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
		DeletedAt:          util.TimePtrToNullTime(u.DeletedAt),
	}
}

// ListUsers returns live users, newest first, optionally filtered by search.
func (r *sqlxUserRepository) ListUsers(ctx context.Context, search string) ([]*domain.User, error) {
	exec := GetExecutor(ctx, r.db)
	query := userSelect
	var args []interface{}
	if search != "" {
		pattern := util.LikePattern(search)
		query += userSearch
		args = append(args, pattern, pattern, pattern, pattern)
	}
	query += " ORDER BY U.CREATED_AT DESC"

	var rows []models.User
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*domain.User, 0, len(rows))
	for i := range rows {
		users = append(users, toDomainUser(&rows[i]))
	}
	return users, nil
}

// GetUserByID retrieves a live user. It returns (nil, nil) when none exists.
func (r *sqlxUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	exec := GetExecutor(ctx, r.db)
	var row models.User
	err := exec.GetContext(ctx, &row, exec.Rebind(userSelect+" AND U.ID = ?"), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return toDomainUser(&row), nil
}

// CreateUser inserts user, assigning an id and timestamps when missing.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = util.NewULID()
	}
	now := nowUTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	query := `INSERT INTO USERS (ID, NAMES, LAST_NAMES, IDENTIFICATION_TYPE, IDENTIFICATION, EMAIL, ROLE_ID, STATE, CREATED_AT, UPDATED_AT)
		VALUES (:ID, :NAMES, :LAST_NAMES, :IDENTIFICATION_TYPE, :IDENTIFICATION, :EMAIL, :ROLE_ID, :STATE, :CREATED_AT, :UPDATED_AT)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, fromDomainUser(user)); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// UpdateUser overwrites the editable fields of a live user.
func (r *sqlxUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = nowUTC()
	query := `UPDATE USERS SET
			NAMES = :NAMES,
			LAST_NAMES = :LAST_NAMES,
			IDENTIFICATION_TYPE = :IDENTIFICATION_TYPE,
			IDENTIFICATION = :IDENTIFICATION,
			EMAIL = :EMAIL,
			ROLE_ID = :ROLE_ID,
			UPDATED_AT = :UPDATED_AT
		WHERE ID = :ID AND DELETED_AT IS NULL`

	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, fromDomainUser(user))
	return requireAffected(result, err, "update user")
}

// DeleteUser soft deletes a live user.
func (r *sqlxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	now := nowUTC()
	query := `UPDATE USERS SET DELETED_AT = :DELETED_AT, UPDATED_AT = :UPDATED_AT WHERE ID = :ID AND DELETED_AT IS NULL`
	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, map[string]interface{}{
		"DELETED_AT": now,
		"UPDATED_AT": now,
		"ID":         userID,
	})
	return requireAffected(result, err, "delete user")
}

// ToggleUserState flips the user between active and inactive and returns the new state.
func (r *sqlxUserRepository) ToggleUserState(ctx context.Context, userID string) (int, error) {
	return toggleState(ctx, r.db, "USERS", userID, true)
}
