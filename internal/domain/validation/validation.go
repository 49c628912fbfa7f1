// Package validation reúne las comprobaciones de dominio reutilizables (nulos, vacíos y longitudes).
// Cada función devuelve *domain.ValidationError con un mensaje fijo que los clientes pueden comparar.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// NotNull falla si value es nil (incluye punteros, mapas o slices nil dentro de una interfaz).
func NotNull(value any, field string) error {
	if isNil(value) {
		return domain.NewValidationError(fmt.Sprintf("%s should not be null", field))
	}
	return nil
}

// NotNullOrEmpty falla si value está vacío o solo contiene espacios.
func NotNullOrEmpty(value string, field string) error {
	if strings.TrimSpace(value) == "" {
		return domain.NewValidationError(fmt.Sprintf("%s should not be null or empty", field))
	}
	return nil
}

// MinLength falla si value tiene menos de min caracteres.
func MinLength(value string, min int, field string) error {
	if Length(value) < min {
		return domain.NewValidationError(fmt.Sprintf("%s should not be less than %d characters long", field, min))
	}
	return nil
}

// MaxLength falla si value tiene más de max caracteres.
func MaxLength(value string, max int, field string) error {
	if Length(value) > max {
		return domain.NewValidationError(fmt.Sprintf("%s should not be greater than %d characters long", field, max))
	}
	return nil
}

// Length cuenta caracteres (runas) del texto tal como llega, sin normalizar.
// Coincide con lo que cuenta PostgreSQL en VARCHAR(n).
func Length(value string) int {
	return utf8.RuneCountInString(value)
}

// Rule es un paso de una cadena de validación. Si Message no está vacío,
// reemplaza el mensaje devuelto por Check.
type Rule struct {
	Check   func() error
	Message string
}

// Validate evalúa las reglas en orden y se detiene en la primera que falla.
func Validate(rules ...Rule) error {
	for _, r := range rules {
		err := r.Check()
		if err == nil {
			continue
		}
		if r.Message != "" {
			return domain.NewValidationError(r.Message)
		}
		return err
	}
	return nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
