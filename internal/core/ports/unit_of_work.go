package ports

import "context"

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes repository calls to one database transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
}
