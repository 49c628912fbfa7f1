package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCategoryRequest entrada para crear una categoría.
// Description nil equivale a "", IsActive nil equivale a true.
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// GetCategoryRequest entrada para obtener una categoría.
type GetCategoryRequest struct {
	ID uuid.UUID `json:"id"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
// Description nil conserva la actual; IsActive nil no cambia el estado.
type UpdateCategoryRequest struct {
	ID          uuid.UUID `json:"-"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    *bool     `json:"is_active"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
