package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// GetByID y GetByIDForUpdate devuelven *domain.NotFoundError si la categoría no existe.
type CategoryRepository interface {
	Insert(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	// GetByIDForUpdate lee el estado confirmado y bloquea la fila hasta el Commit de la unidad de trabajo.
	// Nunca se sirve desde caché.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
}
