package repository

import (
	"context"
	"fmt"
	"time"

	"survey-console/internal/domain"
	"survey-console/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type contextKey string

// TransactionContextKey is the context key holding the active *sqlx.Tx.
const TransactionContextKey contextKey = "tx"

// GetExecutor returns the transaction carried by ctx, or db when there is none.
func GetExecutor(ctx context.Context, db DBTX) DBTX {
	if tx, ok := ctx.Value(TransactionContextKey).(*sqlx.Tx); ok && tx != nil {
		return tx
	}
	return db
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

// TransactionManagerAdapter implements domain.TransactionManager on *sqlx.DB.
type TransactionManagerAdapter struct {
	db *sqlx.DB
}

func NewTransactionManagerAdapter(db *sqlx.DB) domain.TransactionManager {
	return &TransactionManagerAdapter{db: db}
}

// WithTransaction runs fn with a context carrying a new transaction.
// The transaction commits when fn returns nil and rolls back on error or panic.
// A context that already carries a transaction joins it instead of nesting.
func (tma *TransactionManagerAdapter) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(TransactionContextKey).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := tma.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.Get().Error("failed to rollback transaction after panic", zap.Error(rollbackErr))
			}
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, TransactionContextKey, tx)); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("failed to rollback transaction: %v (original error: %w)", rollbackErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
