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

// CategoryUseCase casos de uso CRUD para categorías. Borrado bloqueado
// mientras existan productos que la referencien.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	val        *validate.Validator
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, products repository.ProductRepository, val *validate.Validator) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, products: products, val: val}
}

// Create valida y persiste una nueva categoría.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := uc.val.Struct(in); err != nil {
		return nil, err
	}
	existing, err := uc.categories.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría. Devuelve (nil, nil) si el id no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil || category == nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Update mezcla el parche, revalida y persiste.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	merged := dto.CreateCategoryRequest{Name: category.Name, Description: category.Description}
	if err := uc.val.Struct(merged); err != nil {
		return nil, err
	}
	category.UpdatedAt = time.Now()
	if err := uc.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría. ErrConflict si hay productos asociados.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	n, err := uc.products.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	return uc.categories.Delete(ctx, id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
