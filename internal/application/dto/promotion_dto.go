package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout es el formato de las fechas de vigencia (solo fecha).
const DateLayout = "2006-01-02"

// CreatePromotionRequest entrada para crear una promoción. Las fechas llegan
// como YYYY-MM-DD; el orden validFrom <= validUntil se verifica tras el parseo.
type CreatePromotionRequest struct {
	Title           string          `json:"title" validate:"required,min=3,max=25"`
	Description     string          `json:"description"`
	ValidFrom       string          `json:"validFrom" validate:"required,datetime=2006-01-02"`
	ValidUntil      string          `json:"validUntil" validate:"required,datetime=2006-01-02"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	Products        []string        `json:"products"`
}

// UpdatePromotionRequest entrada parcial para actualizar una promoción.
type UpdatePromotionRequest struct {
	Title           *string          `json:"title"`
	Description     *string          `json:"description"`
	ValidFrom       *string          `json:"validFrom"`
	ValidUntil      *string          `json:"validUntil"`
	DiscountPercent *decimal.Decimal `json:"discountPercent"`
	Products        *[]string        `json:"products"`
}

// PromotionSummary vista resumida para poblar respuestas de producto.
type PromotionSummary struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	ValidFrom       string          `json:"validFrom"`
	ValidUntil      string          `json:"validUntil"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
}

// PromotionResponse salida de una promoción con sus productos poblados.
type PromotionResponse struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	ValidFrom       string           `json:"validFrom"`
	ValidUntil      string           `json:"validUntil"`
	DiscountPercent decimal.Decimal  `json:"discountPercent"`
	Banners         []string         `json:"banners"`
	Products        []ProductSummary `json:"products"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// ProductSummary vista resumida para poblar respuestas de promoción.
type ProductSummary struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
