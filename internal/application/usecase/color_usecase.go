package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jquiroga/tienda-api/internal/application/dto"
	"github.com/jquiroga/tienda-api/internal/application/validate"
	"github.com/jquiroga/tienda-api/internal/domain"
	"github.com/jquiroga/tienda-api/internal/domain/entity"
	"github.com/jquiroga/tienda-api/internal/domain/repository"
)

// ColorUseCase casos de uso CRUD para colores. El borrado se bloquea con un
// chequeo explícito de dependencias mientras exista alguna fila asociativa
// que referencie al color.
type ColorUseCase struct {
	colors repository.ColorRepository
	pairs  repository.ProductColorRepository
	val    *validate.Validator
}

// NewColorUseCase construye el caso de uso.
func NewColorUseCase(colors repository.ColorRepository, pairs repository.ProductColorRepository, val *validate.Validator) *ColorUseCase {
	return &ColorUseCase{colors: colors, pairs: pairs, val: val}
}

// Create valida y persiste un nuevo color.
func (uc *ColorUseCase) Create(ctx context.Context, in dto.CreateColorRequest) (*dto.ColorResponse, error) {
	if err := uc.val.Struct(in); err != nil {
		return nil, err
	}
	existing, err := uc.colors.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	color := &entity.Color{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Background: in.Background,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.colors.Create(ctx, color); err != nil {
		return nil, err
	}
	return toColorResponse(color), nil
}

// GetByID obtiene un color. Devuelve (nil, nil) si el id no existe.
func (uc *ColorUseCase) GetByID(ctx context.Context, id string) (*dto.ColorResponse, error) {
	color, err := uc.colors.GetByID(ctx, id)
	if err != nil || color == nil {
		return nil, err
	}
	return toColorResponse(color), nil
}

// List lista todos los colores.
func (uc *ColorUseCase) List(ctx context.Context) ([]dto.ColorResponse, error) {
	list, err := uc.colors.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ColorResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toColorResponse(c))
	}
	return items, nil
}

// Update mezcla el parche, revalida el estado resultante y persiste.
func (uc *ColorUseCase) Update(ctx context.Context, id string, in dto.UpdateColorRequest) (*dto.ColorResponse, error) {
	color, err := uc.colors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if color == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		color.Name = *in.Name
	}
	if in.Background != nil {
		color.Background = *in.Background
	}
	merged := dto.CreateColorRequest{Name: color.Name, Background: color.Background}
	if err := uc.val.Struct(merged); err != nil {
		return nil, err
	}
	color.UpdatedAt = time.Now()
	if err := uc.colors.Update(ctx, color); err != nil {
		return nil, err
	}
	return toColorResponse(color), nil
}

// Delete elimina un color. Falla con ErrConflict si alguna fila asociativa lo
// referencia; el chequeo es previo y explícito, la FK queda de respaldo.
func (uc *ColorUseCase) Delete(ctx context.Context, id string) error {
	color, err := uc.colors.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if color == nil {
		return domain.ErrNotFound
	}
	n, err := uc.pairs.CountByColor(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	return uc.colors.Delete(ctx, id)
}

func toColorResponse(c *entity.Color) *dto.ColorResponse {
	return &dto.ColorResponse{
		ID:         c.ID,
		Name:       c.Name,
		Background: c.Background,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
