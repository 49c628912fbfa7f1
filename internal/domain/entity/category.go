package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-api/internal/domain/validation"
)

// Límites de los campos de Category.
const (
	CategoryNameMinLength        = 3
	CategoryNameMaxLength        = 255
	CategoryDescriptionMaxLength = 10_000
)

// Category es el agregado raíz del catálogo. Sus campos solo cambian a través de
// sus métodos, que vuelven a validar los invariantes en cada mutación.
type Category struct {
	id          uuid.UUID
	name        string
	description string
	isActive    bool
	createdAt   time.Time
}

// NewCategory crea una categoría con ID nuevo y CreatedAt = ahora.
// isActive es opcional (por defecto true).
func NewCategory(name, description string, isActive ...bool) (*Category, error) {
	active := true
	if len(isActive) > 0 {
		active = isActive[0]
	}
	c := &Category{
		id:          uuid.New(),
		name:        name,
		description: description,
		isActive:    active,
		createdAt:   time.Now(),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreCategory reconstruye una categoría persistida (BD o caché) sin generar ID ni fecha.
func RestoreCategory(id uuid.UUID, name, description string, isActive bool, createdAt time.Time) (*Category, error) {
	c := &Category{
		id:          id,
		name:        name,
		description: description,
		isActive:    isActive,
		createdAt:   createdAt,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Category) ID() uuid.UUID        { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Description() string  { return c.description }
func (c *Category) IsActive() bool       { return c.isActive }
func (c *Category) CreatedAt() time.Time { return c.createdAt }

// Activate marca la categoría como activa.
func (c *Category) Activate() {
	c.isActive = true
}

// Deactivate marca la categoría como inactiva.
func (c *Category) Deactivate() {
	c.isActive = false
}

// Update cambia el nombre y, si description no es nil, la descripción.
// Si la validación falla la categoría queda como estaba.
func (c *Category) Update(name string, description *string) error {
	next := *c
	next.name = name
	if description != nil {
		next.description = *description
	}
	if err := next.validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

func (c *Category) validate() error {
	return validation.Validate(
		validation.Rule{
			Check:   func() error { return validation.NotNullOrEmpty(c.name, "Name") },
			Message: "Name should not be empty or null",
		},
		validation.Rule{
			Check:   func() error { return validation.MinLength(c.name, CategoryNameMinLength, "Name") },
			Message: "Name should be at leats 3 characters long",
		},
		validation.Rule{
			Check:   func() error { return validation.MaxLength(c.name, CategoryNameMaxLength, "Name") },
			Message: "Name should be less or equal 255 characters long",
		},
		validation.Rule{
			Check:   func() error { return validation.MaxLength(c.description, CategoryDescriptionMaxLength, "Description") },
			Message: "Description should be less or equal 10.000 characters long",
		},
	)
}
