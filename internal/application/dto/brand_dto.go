package dto

import "time"

// CreateBrandRequest entrada para crear una marca.
type CreateBrandRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
}

// UpdateBrandRequest entrada parcial para actualizar una marca.
type UpdateBrandRequest struct {
	Name *string `json:"name"`
}

// BrandResponse salida de una marca. Logo es el identificador del archivo
// subido, vacío si no tiene.
type BrandResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Logo      string    `json:"logo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
