package domain

import "context"

// TransactionManager runs fn inside a single database transaction carried by ctx.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
