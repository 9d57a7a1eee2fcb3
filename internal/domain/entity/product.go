package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Debe referenciar exactamente una
// categoría y una marca; los colores se asocian vía ProductColor y las
// promociones vía la tabla product_promotions (lado dueño: el producto).
type Product struct {
	ID          string
	Name        string // único
	Description string
	Price       decimal.Decimal // > 0
	Stock       int             // resumen a nivel producto
	CategoryID  string
	BrandID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
