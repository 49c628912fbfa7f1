package category

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// Session agrupa el repositorio de categorías y la unidad de trabajo que comparten transacción.
type Session interface {
	Categories() repository.CategoryRepository
	UnitOfWork() repository.UnitOfWork
	// Close descarta lo que no se haya confirmado. Es seguro llamarlo después de Commit.
	Close(ctx context.Context) error
}

// SessionFactory abre una sesión por operación; las sesiones no se comparten entre llamadas.
type SessionFactory interface {
	Open(ctx context.Context) (Session, error)
}
