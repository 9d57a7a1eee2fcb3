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

// ProductUseCase implementa el ciclo de vida del agregado producto y de sus
// filas asociativas (producto, color): alta con inicialización de pares,
// actualización parcial con revalidación del estado mezclado, borrado con
// limpieza en cascada (purga de imágenes -> filas asociativas -> vínculos de
// promoción -> fila del producto) y las operaciones por par.
type ProductUseCase struct {
	products repository.ProductRepository
	pairs    repository.ProductColorRepository
	colors   repository.ColorRepository
	promos   repository.PromotionRepository
	tx       TxRunner
	files    FileStore
	val      *validate.Validator
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	pairs repository.ProductColorRepository,
	colors repository.ColorRepository,
	promos repository.PromotionRepository,
	tx TxRunner,
	files FileStore,
	val *validate.Validator,
) *ProductUseCase {
	return &ProductUseCase{
		products: products,
		pairs:    pairs,
		colors:   colors,
		promos:   promos,
		tx:       tx,
		files:    files,
		val:      val,
	}
}

// Create valida la entrada, crea el producto y, por cada color indicado, una
// fila asociativa con stock 0 y sin imágenes. Todo en una transacción.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := uc.val.Struct(in); err != nil {
		return nil, err
	}
	if !in.Price.IsPositive() {
		return nil, domain.NewValidationError("price", "el precio del producto debe ser mayor a 0")
	}
	existing, err := uc.products.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
		BrandID:     in.BrandID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	colorIDs := dedup(in.Colors)

	err = uc.tx.Run(ctx, func(products repository.ProductRepository, pairs repository.ProductColorRepository) error {
		if err := products.Create(ctx, product); err != nil {
			return err
		}
		for _, colorID := range colorIDs {
			pair := &entity.ProductColor{
				ProductID: product.ID,
				ColorID:   colorID,
				Stock:     0,
				Images:    []string{},
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := pairs.Create(ctx, pair); err != nil {
				return err
			}
		}
		if len(in.Promotions) > 0 {
			return products.ReplacePromotions(ctx, product.ID, dedup(in.Promotions))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.buildResponse(ctx, product)
}

// GetByID obtiene un producto con colores y promociones poblados. Devuelve
// (nil, nil) si el id no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil || product == nil {
		return nil, err
	}
	return uc.buildResponse(ctx, product)
}

// List lista todos los productos poblados.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		resp, err := uc.buildResponse(ctx, p)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return items, nil
}

// Update carga el producto, mezcla los campos presentes del parche, revalida
// el estado resultante (incluida la lista efectiva de colores) y persiste.
// Los colores agregados ganan una fila asociativa nueva; los quitados pierden
// la suya, con purga previa de sus imágenes.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	current, err := uc.pairs.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.BrandID != nil {
		product.BrandID = *in.BrandID
	}

	effective := make([]string, 0, len(current))
	for _, pair := range current {
		effective = append(effective, pair.ColorID)
	}
	if in.Colors != nil {
		effective = dedup(*in.Colors)
	}

	merged := dto.CreateProductRequest{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		CategoryID:  product.CategoryID,
		BrandID:     product.BrandID,
		Colors:      effective,
	}
	if err := uc.val.Struct(merged); err != nil {
		return nil, err
	}
	if !product.Price.IsPositive() {
		return nil, domain.NewValidationError("price", "el precio del producto debe ser mayor a 0")
	}

	toAdd, toRemove := diffColors(current, effective)

	// La purga de imágenes de los pares que se quitan corre antes de tocar
	// filas: si falla, el estado persistido queda intacto.
	for _, pair := range toRemove {
		if err := uc.purgeImages(pair.Images); err != nil {
			return nil, err
		}
	}

	product.UpdatedAt = time.Now()
	err = uc.tx.Run(ctx, func(products repository.ProductRepository, pairs repository.ProductColorRepository) error {
		if err := products.Update(ctx, product); err != nil {
			return err
		}
		for _, pair := range toRemove {
			if err := pairs.Delete(ctx, pair.ProductID, pair.ColorID); err != nil {
				return err
			}
		}
		now := product.UpdatedAt
		for _, colorID := range toAdd {
			pair := &entity.ProductColor{
				ProductID: product.ID,
				ColorID:   colorID,
				Stock:     0,
				Images:    []string{},
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := pairs.Create(ctx, pair); err != nil {
				return err
			}
		}
		if in.Promotions != nil {
			return products.ReplacePromotions(ctx, product.ID, dedup(*in.Promotions))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.buildResponse(ctx, product)
}

// Delete elimina el producto con limpieza en cascada: purga todas las
// imágenes de todos sus pares, borra las filas asociativas y los vínculos de
// promoción, y recién entonces la fila del producto. Si alguna imagen no se
// puede purgar (y no es "archivo ausente") se aborta reportando exactamente
// cuáles fallaron; ninguna fila se elimina.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	pairsList, err := uc.pairs.ListByProduct(ctx, id)
	if err != nil {
		return err
	}

	var all []string
	for _, pair := range pairsList {
		all = append(all, pair.Images...)
	}
	if err := uc.purgeImages(all); err != nil {
		return err
	}

	return uc.tx.Run(ctx, func(products repository.ProductRepository, pairs repository.ProductColorRepository) error {
		if len(pairsList) > 0 {
			if err := pairs.DeleteAllByProduct(ctx, id); err != nil {
				return err
			}
		}
		if err := products.DeletePromotions(ctx, id); err != nil {
			return err
		}
		return products.Delete(ctx, id)
	})
}

// GetPair obtiene el estado de una fila asociativa.
func (uc *ProductUseCase) GetPair(ctx context.Context, productID, colorID string) (*dto.ProductColorResponse, error) {
	pair, err := uc.pairs.Get(ctx, productID, colorID)
	if err != nil {
		return nil, err
	}
	if pair == nil {
		return nil, domain.ErrPairNotFound
	}
	return uc.toPairResponse(ctx, pair)
}

// SetPairStock sobrescribe el stock del par (no incrementa). Repetir la misma
// llamada deja el mismo stock.
func (uc *ProductUseCase) SetPairStock(ctx context.Context, productID, colorID string, stock int) (*dto.ProductColorResponse, error) {
	if stock < 0 {
		return nil, domain.NewValidationError("stock", "el stock no puede ser negativo")
	}
	if err := uc.pairs.SetStock(ctx, productID, colorID, stock); err != nil {
		return nil, err
	}
	return uc.GetPair(ctx, productID, colorID)
}

// AddPairImage guarda el archivo con un nombre prefijado por timestamp y
// agrega su id al final de la lista del par. No hay chequeo de duplicados: un
// mismo id puede aparecer más de una vez.
func (uc *ProductUseCase) AddPairImage(ctx context.Context, productID, colorID string, data []byte, filename string) ([]string, error) {
	pair, err := uc.pairs.Get(ctx, productID, colorID)
	if err != nil {
		return nil, err
	}
	if pair == nil {
		return nil, domain.ErrPairNotFound
	}
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(filename))
	imageID, err := uc.files.Store(data, name)
	if err != nil {
		return nil, err
	}
	images := append(pair.Images, imageID)
	if err := uc.pairs.UpdateImages(ctx, productID, colorID, images); err != nil {
		// El archivo ya quedó en disco pero la fila no lo referencia: se
		// intenta retirar para no dejar huérfanos.
		_ = uc.files.Delete(imageID)
		return nil, err
	}
	return images, nil
}

// RemovePairImage quita la primera ocurrencia del id en la lista del par.
// Un id inexistente es un no-op exitoso: la lista queda igual. El archivo
// físico se purga solo cuando no quedan más ocurrencias en la lista.
func (uc *ProductUseCase) RemovePairImage(ctx context.Context, productID, colorID, imageID string) ([]string, error) {
	pair, err := uc.pairs.Get(ctx, productID, colorID)
	if err != nil {
		return nil, err
	}
	if pair == nil {
		return nil, domain.ErrPairNotFound
	}
	idx := -1
	for i, img := range pair.Images {
		if img == imageID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return pair.Images, nil
	}
	images := append(append([]string{}, pair.Images[:idx]...), pair.Images[idx+1:]...)

	remaining := false
	for _, img := range images {
		if img == imageID {
			remaining = true
			break
		}
	}
	if !remaining {
		if err := uc.files.Delete(imageID); err != nil {
			return nil, &domain.PurgeError{Failed: []string{imageID}}
		}
	}
	if err := uc.pairs.UpdateImages(ctx, productID, colorID, images); err != nil {
		return nil, err
	}
	return images, nil
}

// RemoveColorAssociation elimina una fila asociativa puntual: purga sus
// imágenes y luego borra la fila. Falla con ErrPairNotFound si no existe.
func (uc *ProductUseCase) RemoveColorAssociation(ctx context.Context, productID, colorID string) error {
	pair, err := uc.pairs.Get(ctx, productID, colorID)
	if err != nil {
		return err
	}
	if pair == nil {
		return domain.ErrPairNotFound
	}
	if err := uc.purgeImages(pair.Images); err != nil {
		return err
	}
	return uc.pairs.Delete(ctx, productID, colorID)
}

// purgeImages elimina los archivos de forma secuencial y síncrona. Un archivo
// ausente cuenta como purgado; cualquier otra falla se acumula y se reporta
// completa, sin perder rastro de qué imágenes quedaron.
func (uc *ProductUseCase) purgeImages(images []string) error {
	var failed []string
	for _, img := range images {
		if err := uc.files.Delete(img); err != nil {
			failed = append(failed, img)
		}
	}
	if len(failed) > 0 {
		return &domain.PurgeError{Failed: failed}
	}
	return nil
}

func (uc *ProductUseCase) buildResponse(ctx context.Context, p *entity.Product) (*dto.ProductResponse, error) {
	pairsList, err := uc.pairs.ListByProduct(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	colors := make([]dto.ProductColorResponse, 0, len(pairsList))
	for _, pair := range pairsList {
		pc, err := uc.toPairResponse(ctx, pair)
		if err != nil {
			return nil, err
		}
		colors = append(colors, *pc)
	}
	promosList, err := uc.promos.ListByProduct(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	promos := make([]dto.PromotionSummary, 0, len(promosList))
	for _, promo := range promosList {
		promos = append(promos, dto.PromotionSummary{
			ID:              promo.ID,
			Title:           promo.Title,
			ValidFrom:       promo.ValidFrom.Format(dto.DateLayout),
			ValidUntil:      promo.ValidUntil.Format(dto.DateLayout),
			DiscountPercent: promo.DiscountPercent,
		})
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		BrandID:     p.BrandID,
		Colors:      colors,
		Promotions:  promos,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

func (uc *ProductUseCase) toPairResponse(ctx context.Context, pair *entity.ProductColor) (*dto.ProductColorResponse, error) {
	color, err := uc.colors.GetByID(ctx, pair.ColorID)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductColorResponse{
		ColorID: pair.ColorID,
		Stock:   pair.Stock,
		Images:  pair.Images,
	}
	if color != nil {
		resp.Name = color.Name
		resp.Background = color.Background
	}
	return resp, nil
}

// dedup conserva el orden de primera aparición.
func dedup(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// diffColors separa los colores a agregar (en effective y sin fila actual) de
// las filas a quitar (con fila actual y fuera de effective).
func diffColors(current []*entity.ProductColor, effective []string) (toAdd []string, toRemove []*entity.ProductColor) {
	have := make(map[string]*entity.ProductColor, len(current))
	for _, pair := range current {
		have[pair.ColorID] = pair
	}
	want := make(map[string]struct{}, len(effective))
	for _, id := range effective {
		want[id] = struct{}{}
		if _, ok := have[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}
	for _, pair := range current {
		if _, ok := want[pair.ColorID]; !ok {
			toRemove = append(toRemove, pair)
		}
	}
	return toAdd, toRemove
}
