package category

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// CreateCategoryUseCase crea una categoría y la confirma en la unidad de trabajo.
type CreateCategoryUseCase struct {
	repo repository.CategoryRepository
	uow  repository.UnitOfWork
}

// NewCreateCategoryUseCase construye el caso de uso.
func NewCreateCategoryUseCase(repo repository.CategoryRepository, uow repository.UnitOfWork) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{repo: repo, uow: uow}
}

// CreateCategory valida la entrada al construir la entidad (antes de tocar el repositorio),
// la inserta y hace commit. Los errores se devuelven sin traducir.
func (uc *CreateCategoryUseCase) CreateCategory(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	description := ""
	if in.Description != nil {
		description = *in.Description
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	category, err := entity.NewCategory(in.Name, description, isActive)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Insert(ctx, category); err != nil {
		return nil, err
	}
	if err := uc.uow.Commit(ctx); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}
