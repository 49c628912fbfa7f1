package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (pool, tx o UnitOfWork).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Insert persiste una nueva categoría.
func (r *CategoryRepo) Insert(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, description, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		category.ID(), category.Name(), category.Description(), category.IsActive(), category.CreatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

const selectCategory = `
		SELECT id, name, description, is_active, created_at
		FROM categories WHERE id = $1`

// GetByID obtiene una categoría por ID; si no existe devuelve *domain.NotFoundError.
func (r *CategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return r.get(ctx, selectCategory, id)
}

// GetByIDForUpdate lee con SELECT ... FOR UPDATE. Sobre una UnitOfWork abre la transacción
// antes de leer, de modo que el bloqueo dura hasta Commit o Rollback.
func (r *CategoryRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	if b, ok := r.q.(txStarter); ok {
		if err := b.beginTx(ctx); err != nil {
			return nil, err
		}
	}
	return r.get(ctx, selectCategory+" FOR UPDATE", id)
}

func (r *CategoryRepo) get(ctx context.Context, query string, id uuid.UUID) (*entity.Category, error) {
	var (
		rowID       uuid.UUID
		name        string
		description string
		isActive    bool
		createdAt   time.Time
	)
	err := r.q.QueryRow(ctx, query, id).Scan(&rowID, &name, &description, &isActive, &createdAt)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.NewNotFoundError("Category", id.String())
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	category, err := entity.RestoreCategory(rowID, name, description, isActive, createdAt)
	if err != nil {
		// fila inválida en BD: error interno, no de validación del cliente
		return nil, fmt.Errorf("restore category %s: %s", id, err.Error())
	}
	return category, nil
}

// Update reemplaza nombre, descripción y estado. Si la fila no existe devuelve *domain.NotFoundError.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, description = $3, is_active = $4
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		category.ID(), category.Name(), category.Description(), category.IsActive(),
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewNotFoundError("Category", category.ID().String())
	}
	return nil
}
