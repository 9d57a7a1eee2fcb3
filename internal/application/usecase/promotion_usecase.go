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

// PromotionUseCase casos de uso de promociones: CRUD con el invariante de
// orden de fechas al escribir, filtro de vigencia (inclusivo en ambos
// extremos) y carga de banners. Las lecturas no validan ventana: solo filtran.
type PromotionUseCase struct {
	promos   repository.PromotionRepository
	products repository.ProductRepository
	files    FileStore
	val      *validate.Validator
}

// NewPromotionUseCase construye el caso de uso.
func NewPromotionUseCase(promos repository.PromotionRepository, products repository.ProductRepository, files FileStore, val *validate.Validator) *PromotionUseCase {
	return &PromotionUseCase{promos: promos, products: products, files: files, val: val}
}

// Create valida (presencia, formato y orden de fechas), persiste y vincula
// los productos indicados.
func (uc *PromotionUseCase) Create(ctx context.Context, in dto.CreatePromotionRequest) (*dto.PromotionResponse, error) {
	if err := uc.val.Struct(in); err != nil {
		return nil, err
	}
	validFrom, validUntil, err := parseWindow(in.ValidFrom, in.ValidUntil)
	if err != nil {
		return nil, err
	}
	existing, err := uc.promos.GetByTitle(ctx, in.Title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	promo := &entity.Promotion{
		ID:              uuid.New().String(),
		Title:           in.Title,
		Description:     in.Description,
		ValidFrom:       validFrom,
		ValidUntil:      validUntil,
		DiscountPercent: in.DiscountPercent,
		Banners:         []string{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.promos.Create(ctx, promo); err != nil {
		return nil, err
	}
	for _, productID := range dedup(in.Products) {
		if err := uc.promos.LinkProduct(ctx, promo.ID, productID); err != nil {
			return nil, err
		}
	}
	return uc.buildResponse(ctx, promo)
}

// GetByID obtiene una promoción con productos poblados. (nil, nil) si no existe.
func (uc *PromotionUseCase) GetByID(ctx context.Context, id string) (*dto.PromotionResponse, error) {
	promo, err := uc.promos.GetByID(ctx, id)
	if err != nil || promo == nil {
		return nil, err
	}
	return uc.buildResponse(ctx, promo)
}

// List lista todas las promociones con productos poblados.
func (uc *PromotionUseCase) List(ctx context.Context) ([]dto.PromotionResponse, error) {
	list, err := uc.promos.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.buildResponses(ctx, list)
}

// ListOngoing lista las promociones cuya ventana contiene el instante dado.
func (uc *PromotionUseCase) ListOngoing(ctx context.Context, now time.Time) ([]dto.PromotionResponse, error) {
	list, err := uc.promos.ListOngoing(ctx, now)
	if err != nil {
		return nil, err
	}
	return uc.buildResponses(ctx, list)
}

// ListOngoingForProduct lista las promociones vigentes de un producto. Un
// producto inexistente o sin promociones produce lista vacía: es un filtro de
// lectura, no un chequeo de existencia.
func (uc *PromotionUseCase) ListOngoingForProduct(ctx context.Context, productID string, now time.Time) ([]dto.PromotionResponse, error) {
	list, err := uc.promos.ListOngoingByProduct(ctx, productID, now)
	if err != nil {
		return nil, err
	}
	return uc.buildResponses(ctx, list)
}

// Update mezcla el parche, revalida el estado resultante (incluido el orden
// de la ventana mezclada) y persiste.
func (uc *PromotionUseCase) Update(ctx context.Context, id string, in dto.UpdatePromotionRequest) (*dto.PromotionResponse, error) {
	promo, err := uc.promos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		promo.Title = *in.Title
	}
	if in.Description != nil {
		promo.Description = *in.Description
	}
	if in.DiscountPercent != nil {
		promo.DiscountPercent = *in.DiscountPercent
	}
	merged := dto.CreatePromotionRequest{
		Title:           promo.Title,
		Description:     promo.Description,
		ValidFrom:       promo.ValidFrom.Format(dto.DateLayout),
		ValidUntil:      promo.ValidUntil.Format(dto.DateLayout),
		DiscountPercent: promo.DiscountPercent,
	}
	if in.ValidFrom != nil {
		merged.ValidFrom = *in.ValidFrom
	}
	if in.ValidUntil != nil {
		merged.ValidUntil = *in.ValidUntil
	}
	if err := uc.val.Struct(merged); err != nil {
		return nil, err
	}
	promo.ValidFrom, promo.ValidUntil, err = parseWindow(merged.ValidFrom, merged.ValidUntil)
	if err != nil {
		return nil, err
	}
	if in.Products != nil {
		if err := uc.promos.ReplaceProducts(ctx, id, dedup(*in.Products)); err != nil {
			return nil, err
		}
	}
	promo.UpdatedAt = time.Now()
	if err := uc.promos.Update(ctx, promo); err != nil {
		return nil, err
	}
	return uc.buildResponse(ctx, promo)
}

// AddBanner guarda la imagen con nombre prefijado por timestamp y la agrega
// al final de la lista de banners.
func (uc *PromotionUseCase) AddBanner(ctx context.Context, id string, data []byte, filename string) ([]string, error) {
	promo, err := uc.promos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		return nil, domain.ErrNotFound
	}
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(filename))
	bannerID, err := uc.files.Store(data, name)
	if err != nil {
		return nil, err
	}
	banners := append(promo.Banners, bannerID)
	if err := uc.promos.UpdateBanners(ctx, id, banners); err != nil {
		// El archivo ya quedó en disco pero la fila no lo referencia: se
		// intenta retirar para no dejar huérfanos.
		_ = uc.files.Delete(bannerID)
		return nil, err
	}
	return banners, nil
}

// BannerPath devuelve la ruta en disco de un banner para servirlo.
func (uc *PromotionUseCase) BannerPath(name string) string {
	return uc.files.Path(name)
}

// Delete purga los banners y elimina la promoción con sus vínculos. Si algún
// banner no se puede purgar (y no es "archivo ausente") se aborta reportando
// cuáles fallaron.
func (uc *PromotionUseCase) Delete(ctx context.Context, id string) error {
	promo, err := uc.promos.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if promo == nil {
		return domain.ErrNotFound
	}
	var failed []string
	for _, banner := range promo.Banners {
		if err := uc.files.Delete(banner); err != nil {
			failed = append(failed, banner)
		}
	}
	if len(failed) > 0 {
		return &domain.PurgeError{Failed: failed}
	}
	return uc.promos.Delete(ctx, id)
}

func (uc *PromotionUseCase) buildResponses(ctx context.Context, list []*entity.Promotion) ([]dto.PromotionResponse, error) {
	items := make([]dto.PromotionResponse, 0, len(list))
	for _, promo := range list {
		resp, err := uc.buildResponse(ctx, promo)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return items, nil
}

func (uc *PromotionUseCase) buildResponse(ctx context.Context, promo *entity.Promotion) (*dto.PromotionResponse, error) {
	ids, err := uc.promos.ListProductIDs(ctx, promo.ID)
	if err != nil {
		return nil, err
	}
	products := make([]dto.ProductSummary, 0, len(ids))
	for _, id := range ids {
		p, err := uc.products.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}
		products = append(products, dto.ProductSummary{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	return &dto.PromotionResponse{
		ID:              promo.ID,
		Title:           promo.Title,
		Description:     promo.Description,
		ValidFrom:       promo.ValidFrom.Format(dto.DateLayout),
		ValidUntil:      promo.ValidUntil.Format(dto.DateLayout),
		DiscountPercent: promo.DiscountPercent,
		Banners:         promo.Banners,
		Products:        products,
		CreatedAt:       promo.CreatedAt,
		UpdatedAt:       promo.UpdatedAt,
	}, nil
}

// parseWindow parsea las fechas de vigencia y aplica el invariante
// validFrom <= validUntil.
func parseWindow(from, until string) (time.Time, time.Time, error) {
	validFrom, err := time.ParseInLocation(dto.DateLayout, from, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("validFrom", "fecha inválida, formato esperado YYYY-MM-DD")
	}
	validUntil, err := time.ParseInLocation(dto.DateLayout, until, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("validUntil", "fecha inválida, formato esperado YYYY-MM-DD")
	}
	if validFrom.After(validUntil) {
		return time.Time{}, time.Time{}, domain.NewValidationError("validFrom", "la fecha de inicio no puede ser mayor a la fecha de fin")
	}
	return validFrom, validUntil, nil
}
