package category

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// GetCategoryUseCase obtiene una categoría por ID. No modifica ni confirma nada.
type GetCategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewGetCategoryUseCase construye el caso de uso.
func NewGetCategoryUseCase(repo repository.CategoryRepository) *GetCategoryUseCase {
	return &GetCategoryUseCase{repo: repo}
}

// GetCategory devuelve la categoría o el *domain.NotFoundError del repositorio tal cual.
func (uc *GetCategoryUseCase) GetCategory(ctx context.Context, in dto.GetCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}
