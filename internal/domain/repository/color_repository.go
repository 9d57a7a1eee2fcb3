package repository

import (
	"context"

	"github.com/jquiroga/tienda-api/internal/domain/entity"
)

// ColorRepository define el puerto de persistencia para Color (DIP).
type ColorRepository interface {
	Create(ctx context.Context, color *entity.Color) error
	GetByID(ctx context.Context, id string) (*entity.Color, error)
	GetByName(ctx context.Context, name string) (*entity.Color, error)
	List(ctx context.Context) ([]*entity.Color, error)
	Update(ctx context.Context, color *entity.Color) error
	Delete(ctx context.Context, id string) error
}
