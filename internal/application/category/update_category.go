package category

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// UpdateCategoryUseCase actualiza nombre, descripción y estado de una categoría existente.
type UpdateCategoryUseCase struct {
	repo repository.CategoryRepository
	uow  repository.UnitOfWork
}

// NewUpdateCategoryUseCase construye el caso de uso.
func NewUpdateCategoryUseCase(repo repository.CategoryRepository, uow repository.UnitOfWork) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{repo: repo, uow: uow}
}

// UpdateCategory carga la categoría bloqueándola (NotFound se propaga), aplica Update y, si viene
// IsActive, Activate/Deactivate; luego persiste y hace commit.
func (uc *UpdateCategoryUseCase) UpdateCategory(ctx context.Context, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByIDForUpdate(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if err := category.Update(in.Name, in.Description); err != nil {
		return nil, err
	}
	if in.IsActive != nil {
		if *in.IsActive {
			category.Activate()
		} else {
			category.Deactivate()
		}
	}
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	if err := uc.uow.Commit(ctx); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}
