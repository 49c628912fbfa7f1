package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var (
	_ repository.UnitOfWork = (*UnitOfWork)(nil)
	_ Querier               = (*UnitOfWork)(nil)
	_ txStarter             = (*UnitOfWork)(nil)
)

// UnitOfWork abre una transacción PostgreSQL con la primera escritura (o lectura FOR UPDATE)
// y la cierra en Commit o Rollback. Las lecturas previas van directo al pool.
// No es seguro para uso concurrente: se crea una por operación.
type UnitOfWork struct {
	db TxBeginner
	tx pgx.Tx
}

// NewUnitOfWork construye la unidad de trabajo sobre el pool.
func NewUnitOfWork(db TxBeginner) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// Exec ejecuta la sentencia dentro de la transacción, abriéndola si hace falta.
func (u *UnitOfWork) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if err := u.beginTx(ctx); err != nil {
		return pgconn.CommandTag{}, err
	}
	return u.tx.Exec(ctx, sql, args...)
}

func (u *UnitOfWork) beginTx(ctx context.Context) error {
	if u.tx != nil {
		return nil
	}
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	u.tx = tx
	return nil
}

// QueryRow lee dentro de la transacción si ya hay una abierta; si no, desde el pool.
func (u *UnitOfWork) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if u.tx != nil {
		return u.tx.QueryRow(ctx, sql, args...)
	}
	return u.db.QueryRow(ctx, sql, args...)
}

// Commit confirma la transacción abierta. Sin escrituras pendientes no hace nada.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	tx := u.tx
	u.tx = nil
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Rollback descarta la transacción abierta, si la hay.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	tx := u.tx
	u.tx = nil
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}
