package repository

import (
	"context"
	"time"

	"github.com/jquiroga/tienda-api/internal/domain/entity"
)

// PromotionRepository define el puerto de persistencia para Promotion (DIP).
// Los listados "ongoing" comparan por día calendario, ambos extremos
// inclusivos. UpdateBanners es una actualización de columna puntual.
type PromotionRepository interface {
	Create(ctx context.Context, promotion *entity.Promotion) error
	GetByID(ctx context.Context, id string) (*entity.Promotion, error)
	GetByTitle(ctx context.Context, title string) (*entity.Promotion, error)
	List(ctx context.Context) ([]*entity.Promotion, error)
	ListOngoing(ctx context.Context, now time.Time) ([]*entity.Promotion, error)
	ListOngoingByProduct(ctx context.Context, productID string, now time.Time) ([]*entity.Promotion, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.Promotion, error)
	// ListProductIDs devuelve los ids de producto asociados (para poblar lecturas).
	ListProductIDs(ctx context.Context, promotionID string) ([]string, error)
	// LinkProduct vincula un producto existente a la promoción (idempotente).
	LinkProduct(ctx context.Context, promotionID, productID string) error
	// ReplaceProducts reemplaza el conjunto de productos vinculados.
	ReplaceProducts(ctx context.Context, promotionID string, productIDs []string) error
	Update(ctx context.Context, promotion *entity.Promotion) error
	UpdateBanners(ctx context.Context, id string, banners []string) error
	Delete(ctx context.Context, id string) error
}
