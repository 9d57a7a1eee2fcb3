package entity

import "time"

// Color representa un color disponible para productos. Su borrado se bloquea
// mientras exista alguna fila asociativa que lo referencie.
type Color struct {
	ID         string
	Name       string // único
	Background string // valor de presentación (ej. "#F00" o un gradiente CSS)
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
