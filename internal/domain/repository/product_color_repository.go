package repository

import (
	"context"

	"github.com/jquiroga/tienda-api/internal/domain/entity"
)

// ProductColorRepository define el puerto de persistencia para las filas
// asociativas (producto, color). SetStock y UpdateImages son actualizaciones
// de columna puntuales: no cargan ni tocan el resto del agregado, y devuelven
// domain.ErrPairNotFound si el par no existe.
type ProductColorRepository interface {
	Create(ctx context.Context, pair *entity.ProductColor) error
	Get(ctx context.Context, productID, colorID string) (*entity.ProductColor, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.ProductColor, error)
	SetStock(ctx context.Context, productID, colorID string, stock int) error
	UpdateImages(ctx context.Context, productID, colorID string, images []string) error
	Delete(ctx context.Context, productID, colorID string) error
	DeleteAllByProduct(ctx context.Context, productID string) error
	CountByColor(ctx context.Context, colorID string) (int, error)
}
