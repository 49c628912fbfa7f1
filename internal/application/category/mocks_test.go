package category_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// mockCategoryRepository doble de repository.CategoryRepository con testify/mock.
type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) Insert(ctx context.Context, c *entity.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Category)
	return c, args.Error(1)
}

func (m *mockCategoryRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Category)
	return c, args.Error(1)
}

func (m *mockCategoryRepository) Update(ctx context.Context, c *entity.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// mockUnitOfWork doble de repository.UnitOfWork.
type mockUnitOfWork struct {
	mock.Mock
}

func (m *mockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newMocks() (*mockCategoryRepository, *mockUnitOfWork) {
	return &mockCategoryRepository{}, &mockUnitOfWork{}
}

func validCategory(t *testing.T) *entity.Category {
	t.Helper()
	c, err := entity.NewCategory("Documentaries", "Non-fiction films and series")
	require.NoError(t, err)
	return c
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
