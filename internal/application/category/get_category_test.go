package category_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/category"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
)

func TestGetCategory_Existe(t *testing.T) {
	repo, _ := newMocks()
	c := validCategory(t)
	repo.On("GetByID", mock.Anything, c.ID()).Return(c, nil)

	out, err := category.NewGetCategoryUseCase(repo).GetCategory(context.Background(), dto.GetCategoryRequest{ID: c.ID()})
	require.NoError(t, err)

	repo.AssertNumberOfCalls(t, "GetByID", 1)
	assert.Equal(t, &dto.CategoryResponse{
		ID:          c.ID(),
		Name:        "Documentaries",
		Description: "Non-fiction films and series",
		IsActive:    true,
		CreatedAt:   c.CreatedAt(),
	}, out)
}

func TestGetCategory_NoExistePropagaNotFound(t *testing.T) {
	repo, _ := newMocks()
	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.NewNotFoundError("Category", id.String()))

	out, err := category.NewGetCategoryUseCase(repo).GetCategory(context.Background(), dto.GetCategoryRequest{ID: id})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Category", nf.Entity)
	assert.Equal(t, id.String(), nf.ID)
	repo.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestGetCategory_ErrorDeRepositorio(t *testing.T) {
	repo, _ := newMocks()
	dbErr := errors.New("get category: timeout")
	repo.On("GetByID", mock.Anything, mock.Anything).Return(nil, dbErr)

	_, err := category.NewGetCategoryUseCase(repo).GetCategory(context.Background(), dto.GetCategoryRequest{ID: uuid.New()})
	assert.ErrorIs(t, err, dbErr)
}
