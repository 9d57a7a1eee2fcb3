package dto

import "time"

// CreateColorRequest entrada para crear un color.
type CreateColorRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=15"`
	Background string `json:"background" validate:"required,min=4,max=50"`
}

// UpdateColorRequest entrada parcial para actualizar un color.
type UpdateColorRequest struct {
	Name       *string `json:"name"`
	Background *string `json:"background"`
}

// ColorResponse salida de un color.
type ColorResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Background string    `json:"background"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
