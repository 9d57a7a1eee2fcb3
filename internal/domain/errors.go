package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrPairNotFound       = errors.New("asociación producto-color no encontrada")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// ValidationError agrupa violaciones de validación por campo. Nunca se reporta
// una falla de validación genérica: siempre campo -> mensaje.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validación fallida: " + strings.Join(parts, "; ")
}

// NewValidationError construye un error de validación de un solo campo.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// PurgeError reporta las imágenes cuya eliminación física falló durante una
// limpieza en cascada. Un archivo ya ausente no cuenta como falla; cualquier
// otro error de almacenamiento sí. Failed conserva el orden de la purga.
type PurgeError struct {
	Failed []string
}

func (e *PurgeError) Error() string {
	return fmt.Sprintf("no se pudieron eliminar %d imagen(es): %s",
		len(e.Failed), strings.Join(e.Failed, ", "))
}
