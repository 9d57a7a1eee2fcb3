package entity

import "time"

// Category representa una categoría de productos. Borrado bloqueado mientras
// existan productos que la referencien.
type Category struct {
	ID          string
	Name        string // único
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
