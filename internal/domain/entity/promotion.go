package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promotion representa una promoción con ventana de vigencia. El invariante
// ValidFrom <= ValidUntil se valida al escribir, no al leer. Banners es la
// lista ordenada de identificadores de imagen.
type Promotion struct {
	ID              string
	Title           string // único
	Description     string
	ValidFrom       time.Time // solo fecha (YYYY-MM-DD)
	ValidUntil      time.Time
	DiscountPercent decimal.Decimal
	Banners         []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Ongoing indica si la ventana de vigencia contiene el instante dado,
// inclusiva en ambos extremos. La comparación es por día calendario (UTC)
// porque las fechas de vigencia no llevan hora.
func (p *Promotion) Ongoing(now time.Time) bool {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(p.ValidFrom) && !day.After(p.ValidUntil)
}
