package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jquiroga/tienda-api/internal/application/dto"
	"github.com/jquiroga/tienda-api/internal/application/validate"
	"github.com/jquiroga/tienda-api/internal/domain"
	"github.com/jquiroga/tienda-api/internal/domain/entity"
	"github.com/jquiroga/tienda-api/internal/domain/repository"
)

// BrandUseCase casos de uso CRUD para marcas, incluida la carga del logo.
// Borrado bloqueado mientras existan productos que la referencien.
type BrandUseCase struct {
	brands   repository.BrandRepository
	products repository.ProductRepository
	files    FileStore
	val      *validate.Validator
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(brands repository.BrandRepository, products repository.ProductRepository, files FileStore, val *validate.Validator) *BrandUseCase {
	return &BrandUseCase{brands: brands, products: products, files: files, val: val}
}

// Create valida y persiste una nueva marca.
func (uc *BrandUseCase) Create(ctx context.Context, in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	if err := uc.val.Struct(in); err != nil {
		return nil, err
	}
	existing, err := uc.brands.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	brand := &entity.Brand{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.brands.Create(ctx, brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// GetByID obtiene una marca. Devuelve (nil, nil) si el id no existe.
func (uc *BrandUseCase) GetByID(ctx context.Context, id string) (*dto.BrandResponse, error) {
	brand, err := uc.brands.GetByID(ctx, id)
	if err != nil || brand == nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// List lista todas las marcas.
func (uc *BrandUseCase) List(ctx context.Context) ([]dto.BrandResponse, error) {
	list, err := uc.brands.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BrandResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBrandResponse(b))
	}
	return items, nil
}

// Update mezcla el parche, revalida y persiste.
func (uc *BrandUseCase) Update(ctx context.Context, id string, in dto.UpdateBrandRequest) (*dto.BrandResponse, error) {
	brand, err := uc.brands.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		brand.Name = *in.Name
	}
	merged := dto.CreateBrandRequest{Name: brand.Name}
	if err := uc.val.Struct(merged); err != nil {
		return nil, err
	}
	brand.UpdatedAt = time.Now()
	if err := uc.brands.Update(ctx, brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// SetLogo guarda el archivo del logo y lo registra en la marca. El logo
// anterior, si había, se purga (archivo ausente no es error).
func (uc *BrandUseCase) SetLogo(ctx context.Context, id string, data []byte, filename string) (*dto.BrandResponse, error) {
	brand, err := uc.brands.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrNotFound
	}
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(filename))
	logoID, err := uc.files.Store(data, name)
	if err != nil {
		return nil, err
	}
	if brand.Logo != "" {
		if err := uc.files.Delete(brand.Logo); err != nil {
			return nil, &domain.PurgeError{Failed: []string{brand.Logo}}
		}
	}
	brand.Logo = logoID
	brand.UpdatedAt = time.Now()
	if err := uc.brands.Update(ctx, brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// Delete elimina una marca. ErrConflict si hay productos asociados; el logo
// se purga después de borrar la fila.
func (uc *BrandUseCase) Delete(ctx context.Context, id string) error {
	brand, err := uc.brands.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if brand == nil {
		return domain.ErrNotFound
	}
	n, err := uc.products.CountByBrand(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	if err := uc.brands.Delete(ctx, id); err != nil {
		return err
	}
	if brand.Logo != "" {
		if err := uc.files.Delete(brand.Logo); err != nil {
			return &domain.PurgeError{Failed: []string{brand.Logo}}
		}
	}
	return nil
}

func toBrandResponse(b *entity.Brand) *dto.BrandResponse {
	return &dto.BrandResponse{
		ID:        b.ID,
		Name:      b.Name,
		Logo:      b.Logo,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
