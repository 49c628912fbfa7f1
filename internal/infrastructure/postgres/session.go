package postgres

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/application/category"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ category.SessionFactory = (*SessionFactory)(nil)

// SessionFactory abre sesiones con un CategoryRepo atado a su propia UnitOfWork.
type SessionFactory struct {
	db TxBeginner
}

// NewSessionFactory construye la fábrica sobre el pool.
func NewSessionFactory(db TxBeginner) *SessionFactory {
	return &SessionFactory{db: db}
}

// Open crea la sesión. La transacción se abre perezosamente con la primera escritura.
func (f *SessionFactory) Open(_ context.Context) (category.Session, error) {
	uow := NewUnitOfWork(f.db)
	return &session{uow: uow, categories: NewCategoryRepository(uow)}, nil
}

type session struct {
	uow        *UnitOfWork
	categories *CategoryRepo
}

func (s *session) Categories() repository.CategoryRepository { return s.categories }
func (s *session) UnitOfWork() repository.UnitOfWork         { return s.uow }
func (s *session) Close(ctx context.Context) error          { return s.uow.Rollback(ctx) }
