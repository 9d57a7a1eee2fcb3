package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jquiroga/tienda-api/internal/domain"
	"github.com/jquiroga/tienda-api/internal/domain/entity"
	"github.com/jquiroga/tienda-api/internal/domain/repository"
)

var _ repository.PromotionRepository = (*PromotionRepo)(nil)

// PromotionRepo implementación del puerto PromotionRepository sobre PostgreSQL.
// El predicado de vigencia es valid_from <= día <= valid_until, ambos extremos
// inclusivos; se compara contra el día calendario del instante consultado.
type PromotionRepo struct {
	q Querier
}

// NewPromotionRepository construye el adaptador de persistencia para promociones.
func NewPromotionRepository(q Querier) *PromotionRepo {
	return &PromotionRepo{q: q}
}

const promotionColumns = `id, title, description, valid_from, valid_until, discount_percent, banners, created_at, updated_at`

// Create persiste una nueva promoción.
func (r *PromotionRepo) Create(ctx context.Context, promotion *entity.Promotion) error {
	if promotion.Banners == nil {
		promotion.Banners = []string{}
	}
	query := `
		INSERT INTO promotions (id, title, description, valid_from, valid_until, discount_percent, banners, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		promotion.ID, promotion.Title, promotion.Description, promotion.ValidFrom,
		promotion.ValidUntil, promotion.DiscountPercent, promotion.Banners,
		promotion.CreatedAt, promotion.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert promotion: %w", err)
	}
	return nil
}

// GetByID obtiene una promoción por ID.
func (r *PromotionRepo) GetByID(ctx context.Context, id string) (*entity.Promotion, error) {
	return r.scanOne(r.q.QueryRow(ctx,
		`SELECT `+promotionColumns+` FROM promotions WHERE id = $1`, id), "get promotion")
}

// GetByTitle obtiene una promoción por título (único).
func (r *PromotionRepo) GetByTitle(ctx context.Context, title string) (*entity.Promotion, error) {
	return r.scanOne(r.q.QueryRow(ctx,
		`SELECT `+promotionColumns+` FROM promotions WHERE title = $1`, title), "get promotion by title")
}

// List lista todas las promociones.
func (r *PromotionRepo) List(ctx context.Context) ([]*entity.Promotion, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+promotionColumns+` FROM promotions ORDER BY valid_from`)
	if err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}
	return r.collect(rows)
}

// ListOngoing lista las promociones cuya ventana contiene el instante dado.
func (r *PromotionRepo) ListOngoing(ctx context.Context, now time.Time) ([]*entity.Promotion, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+promotionColumns+` FROM promotions
		 WHERE valid_from <= $1::date AND valid_until >= $1::date
		 ORDER BY valid_from`, now)
	if err != nil {
		return nil, fmt.Errorf("list ongoing promotions: %w", err)
	}
	return r.collect(rows)
}

// ListOngoingByProduct lista las promociones vigentes asociadas a un producto.
// Un producto inexistente o sin promociones produce lista vacía, no error.
func (r *PromotionRepo) ListOngoingByProduct(ctx context.Context, productID string, now time.Time) ([]*entity.Promotion, error) {
	rows, err := r.q.Query(ctx,
		`SELECT p.id, p.title, p.description, p.valid_from, p.valid_until, p.discount_percent, p.banners, p.created_at, p.updated_at
		 FROM promotions p
		 JOIN product_promotions pp ON pp.promotion_id = p.id
		 WHERE pp.product_id = $1 AND p.valid_from <= $2::date AND p.valid_until >= $2::date
		 ORDER BY p.valid_from`, productID, now)
	if err != nil {
		return nil, fmt.Errorf("list ongoing promotions by product: %w", err)
	}
	return r.collect(rows)
}

// ListByProduct lista todas las promociones asociadas a un producto.
func (r *PromotionRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Promotion, error) {
	rows, err := r.q.Query(ctx,
		`SELECT p.id, p.title, p.description, p.valid_from, p.valid_until, p.discount_percent, p.banners, p.created_at, p.updated_at
		 FROM promotions p
		 JOIN product_promotions pp ON pp.promotion_id = p.id
		 WHERE pp.product_id = $1
		 ORDER BY p.valid_from`, productID)
	if err != nil {
		return nil, fmt.Errorf("list promotions by product: %w", err)
	}
	return r.collect(rows)
}

// ListProductIDs devuelve los ids de producto asociados a una promoción.
func (r *PromotionRepo) ListProductIDs(ctx context.Context, promotionID string) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT product_id FROM product_promotions WHERE promotion_id = $1`, promotionID)
	if err != nil {
		return nil, fmt.Errorf("list promotion products: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan product id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// LinkProduct vincula un producto a la promoción. Vínculos repetidos se ignoran;
// un producto inexistente produce ErrNotFound.
func (r *PromotionRepo) LinkProduct(ctx context.Context, promotionID, productID string) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO product_promotions (product_id, promotion_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`, productID, promotionID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("link promotion product: %w", err)
	}
	return nil
}

// ReplaceProducts reemplaza el conjunto de productos vinculados a la promoción.
func (r *PromotionRepo) ReplaceProducts(ctx context.Context, promotionID string, productIDs []string) error {
	if _, err := r.q.Exec(ctx,
		`DELETE FROM product_promotions WHERE promotion_id = $1`, promotionID); err != nil {
		return fmt.Errorf("clear promotion products: %w", err)
	}
	for _, productID := range productIDs {
		if err := r.LinkProduct(ctx, promotionID, productID); err != nil {
			return err
		}
	}
	return nil
}

// Update actualiza una promoción existente.
func (r *PromotionRepo) Update(ctx context.Context, promotion *entity.Promotion) error {
	query := `
		UPDATE promotions SET title = $2, description = $3, valid_from = $4, valid_until = $5, discount_percent = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		promotion.ID, promotion.Title, promotion.Description, promotion.ValidFrom,
		promotion.ValidUntil, promotion.DiscountPercent, promotion.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update promotion: %w", err)
	}
	return nil
}

// UpdateBanners sobrescribe la lista de banners (update puntual de columna).
func (r *PromotionRepo) UpdateBanners(ctx context.Context, id string, banners []string) error {
	if banners == nil {
		banners = []string{}
	}
	cmd, err := r.q.Exec(ctx,
		`UPDATE promotions SET banners = $2, updated_at = now() WHERE id = $1`, id, banners)
	if err != nil {
		return fmt.Errorf("update promotion banners: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una promoción y sus vínculos con productos.
func (r *PromotionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM product_promotions WHERE promotion_id = $1`, id); err != nil {
		return fmt.Errorf("delete promotion links: %w", err)
	}
	_, err := r.q.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete promotion: %w", err)
	}
	return nil
}

func (r *PromotionRepo) collect(rows pgx.Rows) ([]*entity.Promotion, error) {
	defer rows.Close()
	var list []*entity.Promotion
	for rows.Next() {
		var p entity.Promotion
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.ValidFrom, &p.ValidUntil,
			&p.DiscountPercent, &p.Banners, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan promotion: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *PromotionRepo) scanOne(row pgx.Row, op string) (*entity.Promotion, error) {
	var p entity.Promotion
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ValidFrom, &p.ValidUntil,
		&p.DiscountPercent, &p.Banners, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
