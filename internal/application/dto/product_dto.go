package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. El esquema exige al
// menos un color al crear.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=30"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       int             `json:"stock" validate:"min=0"`
	CategoryID  string          `json:"category" validate:"required"`
	BrandID     string          `json:"brand" validate:"required"`
	Promotions  []string        `json:"promotions"`
	Colors      []string        `json:"colors" validate:"required,min=1"`
}

// UpdateProductRequest entrada parcial para actualizar un producto. Los campos
// ausentes (nil) no se tocan; el estado resultante de la mezcla se revalida
// completo, incluida la lista efectiva de colores.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	CategoryID  *string          `json:"category"`
	BrandID     *string          `json:"brand"`
	Promotions  *[]string        `json:"promotions"`
	Colors      *[]string        `json:"colors"`
}

// SetPairStockRequest entrada para sobrescribir el stock de un par
// (producto, color).
type SetPairStockRequest struct {
	Stock *int `json:"stock" validate:"required,min=0"`
}

// ProductColorResponse estado de una fila asociativa, con los datos de
// presentación del color.
type ProductColorResponse struct {
	ColorID    string   `json:"colorId"`
	Name       string   `json:"name"`
	Background string   `json:"background"`
	Stock      int      `json:"stock"`
	Images     []string `json:"images"`
}

// ProductResponse salida de un producto con colores y promociones poblados.
type ProductResponse struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Price       decimal.Decimal        `json:"price"`
	Stock       int                    `json:"stock"`
	CategoryID  string                 `json:"category"`
	BrandID     string                 `json:"brand"`
	Colors      []ProductColorResponse `json:"colors"`
	Promotions  []PromotionSummary     `json:"promotions"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}
