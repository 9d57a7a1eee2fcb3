package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jquiroga/tienda-api/internal/domain"
	"github.com/jquiroga/tienda-api/internal/domain/entity"
	"github.com/jquiroga/tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, stock, category_id, brand_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.Stock,
		product.CategoryID, product.BrandID, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // categoría o marca inexistente
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, name, description, price, stock, category_id, brand_id, created_at, updated_at
		FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get product")
}

// GetByName obtiene un producto por nombre (único).
func (r *ProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	query := `
		SELECT id, name, description, price, stock, category_id, brand_id, created_at, updated_at
		FROM products WHERE name = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, name), "get product by name")
}

// List lista todos los productos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, name, description, price, stock, category_id, brand_id, created_at, updated_at
		FROM products ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
			&p.CategoryID, &p.BrandID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, stock = $5, category_id = $6, brand_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.Stock,
		product.CategoryID, product.BrandID, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID. Las filas asociativas y los vínculos de
// promoción deben limpiarse antes (el caso de uso lo garantiza en una tx).
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// CountByCategory cuenta productos de una categoría (chequeo previo al borrado).
func (r *ProductRepo) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM products WHERE category_id = $1`, categoryID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return n, nil
}

// CountByBrand cuenta productos de una marca (chequeo previo al borrado).
func (r *ProductRepo) CountByBrand(ctx context.Context, brandID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM products WHERE brand_id = $1`, brandID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products by brand: %w", err)
	}
	return n, nil
}

// ReplacePromotions reemplaza los vínculos producto-promoción del lado dueño.
func (r *ProductRepo) ReplacePromotions(ctx context.Context, productID string, promotionIDs []string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM product_promotions WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("clear product promotions: %w", err)
	}
	for _, promoID := range promotionIDs {
		_, err := r.q.Exec(ctx,
			`INSERT INTO product_promotions (product_id, promotion_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			productID, promoID,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrNotFound // promoción inexistente
			}
			return fmt.Errorf("link promotion: %w", err)
		}
	}
	return nil
}

// DeletePromotions elimina todos los vínculos de promoción del producto.
func (r *ProductRepo) DeletePromotions(ctx context.Context, productID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM product_promotions WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete product promotions: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
		&p.CategoryID, &p.BrandID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
