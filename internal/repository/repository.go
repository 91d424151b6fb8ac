package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// DBTX is an interface abstracting *sqlx.DB and *sqlx.Tx for repository use.
type DBTX interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	Rebind(query string) string
}

// requireAffected turns a write that touched no row into sql.ErrNoRows.
func requireAffected(result sql.Result, err error, op string) error {
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// toggleState flips STATE of one live row and returns the new value.
func toggleState(ctx context.Context, db DBTX, table, id string, softDelete bool) (int, error) {
	where := "ID = ?"
	if softDelete {
		where += " AND DELETED_AT IS NULL"
	}

	exec := GetExecutor(ctx, db)
	result, err := exec.ExecContext(ctx,
		exec.Rebind("UPDATE "+table+" SET STATE = 1 - STATE, UPDATED_AT = ? WHERE "+where),
		nowUTC(), id)
	if err := requireAffected(result, err, "toggle "+table+" state"); err != nil {
		return 0, err
	}

	var state int
	if err := exec.GetContext(ctx, &state, exec.Rebind("SELECT STATE FROM "+table+" WHERE ID = ?"), id); err != nil {
		return 0, fmt.Errorf("failed to read %s state: %w", table, err)
	}
	return state, nil
}
