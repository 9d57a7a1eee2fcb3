package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jquiroga/tienda-api/internal/application/usecase"
	"github.com/jquiroga/tienda-api/internal/domain"
	"github.com/jquiroga/tienda-api/internal/domain/entity"
	"github.com/jquiroga/tienda-api/internal/domain/repository"
)

// memDB estado compartido de los repositorios en memoria. Cada fake opera
// sobre el mismo mapa, igual que los repos reales sobre la misma base.
type memDB struct {
	products map[string]*entity.Product
	pairs    map[string]*entity.ProductColor // clave productID+"/"+colorID
	pairKeys []string                        // orden de inserción
	colors   map[string]*entity.Color
	promos   map[string]*entity.Promotion
	links    map[string][]string // productID -> promotionIDs

	failPairImages bool // fuerza error en UpdateImages
	failBanners    bool // fuerza error en UpdateBanners
}

func newMemDB() *memDB {
	return &memDB{
		products: map[string]*entity.Product{},
		pairs:    map[string]*entity.ProductColor{},
		colors:   map[string]*entity.Color{},
		promos:   map[string]*entity.Promotion{},
		links:    map[string][]string{},
	}
}

func pairKey(productID, colorID string) string { return productID + "/" + colorID }

func testColor(id, name string) *entity.Color {
	now := time.Now()
	return &entity.Color{ID: id, Name: name, Background: "#ff0000", CreatedAt: now, UpdatedAt: now}
}

// ── ProductRepository ────────────────────────────────────────────────────────

type memProductRepo struct{ db *memDB }

var _ repository.ProductRepository = (*memProductRepo)(nil)

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	if _, ok := r.db.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	r.db.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.db.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetByName(_ context.Context, name string) (*entity.Product, error) {
	for _, p := range r.db.products {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	ids := make([]string, 0, len(r.db.products))
	for id := range r.db.products {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		cp := *r.db.products[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.db.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.db.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	delete(r.db.products, id)
	return nil
}

func (r *memProductRepo) CountByCategory(_ context.Context, categoryID string) (int, error) {
	n := 0
	for _, p := range r.db.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *memProductRepo) CountByBrand(_ context.Context, brandID string) (int, error) {
	n := 0
	for _, p := range r.db.products {
		if p.BrandID == brandID {
			n++
		}
	}
	return n, nil
}

func (r *memProductRepo) ReplacePromotions(_ context.Context, productID string, promotionIDs []string) error {
	r.db.links[productID] = append([]string{}, promotionIDs...)
	return nil
}

func (r *memProductRepo) DeletePromotions(_ context.Context, productID string) error {
	delete(r.db.links, productID)
	return nil
}

// ── ProductColorRepository ───────────────────────────────────────────────────

type memPairRepo struct{ db *memDB }

var _ repository.ProductColorRepository = (*memPairRepo)(nil)

func (r *memPairRepo) Create(_ context.Context, pair *entity.ProductColor) error {
	key := pairKey(pair.ProductID, pair.ColorID)
	if _, ok := r.db.pairs[key]; ok {
		return domain.ErrDuplicate
	}
	cp := *pair
	cp.Images = append([]string{}, pair.Images...)
	r.db.pairs[key] = &cp
	known := false
	for _, k := range r.db.pairKeys {
		if k == key {
			known = true
			break
		}
	}
	if !known {
		r.db.pairKeys = append(r.db.pairKeys, key)
	}
	return nil
}

func (r *memPairRepo) Get(_ context.Context, productID, colorID string) (*entity.ProductColor, error) {
	pair, ok := r.db.pairs[pairKey(productID, colorID)]
	if !ok {
		return nil, nil
	}
	cp := *pair
	cp.Images = append([]string{}, pair.Images...)
	return &cp, nil
}

func (r *memPairRepo) ListByProduct(_ context.Context, productID string) ([]*entity.ProductColor, error) {
	var out []*entity.ProductColor
	for _, key := range r.db.pairKeys {
		pair, ok := r.db.pairs[key]
		if !ok || pair.ProductID != productID {
			continue
		}
		cp := *pair
		cp.Images = append([]string{}, pair.Images...)
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memPairRepo) SetStock(_ context.Context, productID, colorID string, stock int) error {
	pair, ok := r.db.pairs[pairKey(productID, colorID)]
	if !ok {
		return domain.ErrPairNotFound
	}
	pair.Stock = stock
	return nil
}

func (r *memPairRepo) UpdateImages(_ context.Context, productID, colorID string, images []string) error {
	if r.db.failPairImages {
		return fmt.Errorf("update images: conexión perdida")
	}
	pair, ok := r.db.pairs[pairKey(productID, colorID)]
	if !ok {
		return domain.ErrPairNotFound
	}
	pair.Images = append([]string{}, images...)
	return nil
}

func (r *memPairRepo) Delete(_ context.Context, productID, colorID string) error {
	key := pairKey(productID, colorID)
	if _, ok := r.db.pairs[key]; !ok {
		return domain.ErrPairNotFound
	}
	delete(r.db.pairs, key)
	return nil
}

func (r *memPairRepo) DeleteAllByProduct(_ context.Context, productID string) error {
	for key, pair := range r.db.pairs {
		if pair.ProductID == productID {
			delete(r.db.pairs, key)
		}
	}
	return nil
}

func (r *memPairRepo) CountByColor(_ context.Context, colorID string) (int, error) {
	n := 0
	for _, pair := range r.db.pairs {
		if pair.ColorID == colorID {
			n++
		}
	}
	return n, nil
}

// ── ColorRepository ──────────────────────────────────────────────────────────

type memColorRepo struct{ db *memDB }

var _ repository.ColorRepository = (*memColorRepo)(nil)

func (r *memColorRepo) Create(_ context.Context, c *entity.Color) error {
	if _, ok := r.db.colors[c.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *c
	r.db.colors[c.ID] = &cp
	return nil
}

func (r *memColorRepo) GetByID(_ context.Context, id string) (*entity.Color, error) {
	c, ok := r.db.colors[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memColorRepo) GetByName(_ context.Context, name string) (*entity.Color, error) {
	for _, c := range r.db.colors {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memColorRepo) List(_ context.Context) ([]*entity.Color, error) {
	ids := make([]string, 0, len(r.db.colors))
	for id := range r.db.colors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*entity.Color, 0, len(ids))
	for _, id := range ids {
		cp := *r.db.colors[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memColorRepo) Update(_ context.Context, c *entity.Color) error {
	if _, ok := r.db.colors[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.db.colors[c.ID] = &cp
	return nil
}

func (r *memColorRepo) Delete(_ context.Context, id string) error {
	delete(r.db.colors, id)
	return nil
}

// ── PromotionRepository ──────────────────────────────────────────────────────

type memPromoRepo struct{ db *memDB }

var _ repository.PromotionRepository = (*memPromoRepo)(nil)

func (r *memPromoRepo) Create(_ context.Context, p *entity.Promotion) error {
	if _, ok := r.db.promos[p.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	cp.Banners = append([]string{}, p.Banners...)
	r.db.promos[p.ID] = &cp
	return nil
}

func (r *memPromoRepo) GetByID(_ context.Context, id string) (*entity.Promotion, error) {
	p, ok := r.db.promos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	cp.Banners = append([]string{}, p.Banners...)
	return &cp, nil
}

func (r *memPromoRepo) GetByTitle(_ context.Context, title string) (*entity.Promotion, error) {
	for _, p := range r.db.promos {
		if p.Title == title {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memPromoRepo) List(_ context.Context) ([]*entity.Promotion, error) {
	ids := make([]string, 0, len(r.db.promos))
	for id := range r.db.promos {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*entity.Promotion, 0, len(ids))
	for _, id := range ids {
		cp := *r.db.promos[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memPromoRepo) ListOngoing(_ context.Context, now time.Time) ([]*entity.Promotion, error) {
	all, _ := r.List(context.Background())
	var out []*entity.Promotion
	for _, p := range all {
		if p.Ongoing(now) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPromoRepo) ListOngoingByProduct(_ context.Context, productID string, now time.Time) ([]*entity.Promotion, error) {
	var out []*entity.Promotion
	for _, promoID := range r.db.links[productID] {
		p, ok := r.db.promos[promoID]
		if ok && p.Ongoing(now) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memPromoRepo) ListByProduct(_ context.Context, productID string) ([]*entity.Promotion, error) {
	var out []*entity.Promotion
	for _, promoID := range r.db.links[productID] {
		if p, ok := r.db.promos[promoID]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memPromoRepo) ListProductIDs(_ context.Context, promotionID string) ([]string, error) {
	var ids []string
	productIDs := make([]string, 0, len(r.db.links))
	for productID := range r.db.links {
		productIDs = append(productIDs, productID)
	}
	sort.Strings(productIDs)
	for _, productID := range productIDs {
		for _, promoID := range r.db.links[productID] {
			if promoID == promotionID {
				ids = append(ids, productID)
				break
			}
		}
	}
	return ids, nil
}

func (r *memPromoRepo) LinkProduct(_ context.Context, promotionID, productID string) error {
	if _, ok := r.db.products[productID]; !ok {
		return domain.ErrNotFound
	}
	for _, existing := range r.db.links[productID] {
		if existing == promotionID {
			return nil
		}
	}
	r.db.links[productID] = append(r.db.links[productID], promotionID)
	return nil
}

func (r *memPromoRepo) ReplaceProducts(ctx context.Context, promotionID string, productIDs []string) error {
	for productID, promoIDs := range r.db.links {
		kept := promoIDs[:0]
		for _, promoID := range promoIDs {
			if promoID != promotionID {
				kept = append(kept, promoID)
			}
		}
		r.db.links[productID] = kept
	}
	for _, productID := range productIDs {
		if err := r.LinkProduct(ctx, promotionID, productID); err != nil {
			return err
		}
	}
	return nil
}

func (r *memPromoRepo) Update(_ context.Context, p *entity.Promotion) error {
	current, ok := r.db.promos[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *p
	cp.Banners = append([]string{}, current.Banners...)
	r.db.promos[p.ID] = &cp
	return nil
}

func (r *memPromoRepo) UpdateBanners(_ context.Context, id string, banners []string) error {
	if r.db.failBanners {
		return fmt.Errorf("update banners: conexión perdida")
	}
	p, ok := r.db.promos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Banners = append([]string{}, banners...)
	return nil
}

func (r *memPromoRepo) Delete(_ context.Context, id string) error {
	delete(r.db.promos, id)
	for productID, promoIDs := range r.db.links {
		kept := promoIDs[:0]
		for _, promoID := range promoIDs {
			if promoID != id {
				kept = append(kept, promoID)
			}
		}
		r.db.links[productID] = kept
	}
	return nil
}

// ── TxRunner y FileStore ─────────────────────────────────────────────────────

// memTx ejecuta el callback directamente sobre los repos en memoria.
type memTx struct{ db *memDB }

var _ usecase.TxRunner = (*memTx)(nil)

func (t *memTx) Run(_ context.Context, fn func(repository.ProductRepository, repository.ProductColorRepository) error) error {
	return fn(&memProductRepo{db: t.db}, &memPairRepo{db: t.db})
}

// memFiles almacenamiento en memoria. failOn fuerza fallas de borrado para
// probar la propagación de PurgeError; borrar un archivo ausente no es error.
type memFiles struct {
	stored map[string][]byte
	failOn map[string]bool
}

var _ usecase.FileStore = (*memFiles)(nil)

func newMemFiles() *memFiles {
	return &memFiles{stored: map[string][]byte{}, failOn: map[string]bool{}}
}

func (f *memFiles) Store(data []byte, name string) (string, error) {
	f.stored[name] = data
	return name, nil
}

func (f *memFiles) Delete(id string) error {
	if f.failOn[id] {
		return fmt.Errorf("disco de solo lectura: %s", id)
	}
	delete(f.stored, id)
	return nil
}

func (f *memFiles) Path(id string) string { return "/tmp/uploads/" + id }
