package category_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/category"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

func TestUpdateCategory_CamposCompletos(t *testing.T) {
	repo, uow := newMocks()
	c := validCategory(t)
	createdAt := c.CreatedAt()
	repo.On("GetByIDForUpdate", mock.Anything, c.ID()).Return(c, nil)
	repo.On("Update", mock.Anything, c).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)

	out, err := category.NewUpdateCategoryUseCase(repo, uow).UpdateCategory(context.Background(), dto.UpdateCategoryRequest{
		ID:          c.ID(),
		Name:        "Docs",
		Description: strPtr("Short"),
		IsActive:    boolPtr(false),
	})
	require.NoError(t, err)

	repo.AssertNumberOfCalls(t, "GetByIDForUpdate", 1)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	repo.AssertNumberOfCalls(t, "Update", 1)
	uow.AssertNumberOfCalls(t, "Commit", 1)
	assert.Equal(t, c.ID(), out.ID)
	assert.Equal(t, "Docs", out.Name)
	assert.Equal(t, "Short", out.Description)
	assert.False(t, out.IsActive)
	assert.Equal(t, createdAt, out.CreatedAt, "created_at no cambia")
}

func TestUpdateCategory_SoloNombreConservaDescripcion(t *testing.T) {
	repo, uow := newMocks()
	c := validCategory(t)
	repo.On("GetByIDForUpdate", mock.Anything, c.ID()).Return(c, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)

	out, err := category.NewUpdateCategoryUseCase(repo, uow).UpdateCategory(context.Background(),
		dto.UpdateCategoryRequest{ID: c.ID(), Name: "Docuseries"})
	require.NoError(t, err)
	assert.Equal(t, "Docuseries", out.Name)
	assert.Equal(t, "Non-fiction films and series", out.Description)
	assert.True(t, out.IsActive, "sin is_active el estado no cambia")
}

func TestUpdateCategory_ActivaCategoriaInactiva(t *testing.T) {
	repo, uow := newMocks()
	c, err := entity.NewCategory("Archive", "", false)
	require.NoError(t, err)
	repo.On("GetByIDForUpdate", mock.Anything, c.ID()).Return(c, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)

	out, err := category.NewUpdateCategoryUseCase(repo, uow).UpdateCategory(context.Background(),
		dto.UpdateCategoryRequest{ID: c.ID(), Name: "Archive", IsActive: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, out.IsActive)
}

func TestUpdateCategory_NoExiste(t *testing.T) {
	repo, uow := newMocks()
	id := uuid.New()
	repo.On("GetByIDForUpdate", mock.Anything, id).Return(nil, domain.NewNotFoundError("Category", id.String()))

	out, err := category.NewUpdateCategoryUseCase(repo, uow).UpdateCategory(context.Background(),
		dto.UpdateCategoryRequest{ID: id, Name: "Movies"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateCategory_EntradaInvalidaNoPersiste(t *testing.T) {
	tests := []struct {
		name    string
		in      func(id uuid.UUID) dto.UpdateCategoryRequest
		wantMsg string
	}{
		{
			"nombre corto",
			func(id uuid.UUID) dto.UpdateCategoryRequest { return dto.UpdateCategoryRequest{ID: id, Name: "ab"} },
			"Name should be at leats 3 characters long",
		},
		{
			"descripción larga",
			func(id uuid.UUID) dto.UpdateCategoryRequest {
				return dto.UpdateCategoryRequest{ID: id, Name: "Movies", Description: strPtr(strings.Repeat("d", 10_001))}
			},
			"Description should be less or equal 10.000 characters long",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, uow := newMocks()
			c := validCategory(t)
			repo.On("GetByIDForUpdate", mock.Anything, c.ID()).Return(c, nil)

			_, err := category.NewUpdateCategoryUseCase(repo, uow).UpdateCategory(context.Background(), tt.in(c.ID()))

			assert.EqualError(t, err, tt.wantMsg)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, "Documentaries", c.Name(), "la entidad queda intacta")
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestUpdateCategory_ErrorAlPersistir(t *testing.T) {
	repo, uow := newMocks()
	c := validCategory(t)
	dbErr := errors.New("update category: conexión perdida")
	repo.On("GetByIDForUpdate", mock.Anything, c.ID()).Return(c, nil)
	repo.On("Update", mock.Anything, c).Return(dbErr)

	_, err := category.NewUpdateCategoryUseCase(repo, uow).UpdateCategory(context.Background(),
		dto.UpdateCategoryRequest{ID: c.ID(), Name: "Movies"})
	assert.ErrorIs(t, err, dbErr)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
