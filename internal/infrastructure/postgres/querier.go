package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier es lo mínimo que necesitan los repositorios: lo cumplen *pgxpool.Pool, pgx.Tx y UnitOfWork.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner es un Querier capaz de abrir transacciones (*pgxpool.Pool).
type TxBeginner interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// txStarter lo implementa UnitOfWork: permite abrir la transacción antes de una lectura bloqueante.
type txStarter interface {
	beginTx(ctx context.Context) error
}
