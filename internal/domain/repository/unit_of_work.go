package repository

import "context"

// UnitOfWork confirma de forma atómica los cambios registrados por los repositorios.
type UnitOfWork interface {
	Commit(ctx context.Context) error
}
