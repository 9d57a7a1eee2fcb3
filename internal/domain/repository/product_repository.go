package repository

import (
	"context"

	"github.com/jquiroga/tienda-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven (nil, nil) cuando el id no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	CountByCategory(ctx context.Context, categoryID string) (int, error)
	CountByBrand(ctx context.Context, brandID string) (int, error)
	// ReplacePromotions reemplaza los vínculos producto-promoción (lado dueño).
	ReplacePromotions(ctx context.Context, productID string, promotionIDs []string) error
	DeletePromotions(ctx context.Context, productID string) error
}
