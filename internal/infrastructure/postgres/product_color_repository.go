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

var _ repository.ProductColorRepository = (*ProductColorRepo)(nil)

// ProductColorRepo implementación del puerto ProductColorRepository sobre
// PostgreSQL (usable con pool o tx). La lista de imágenes se guarda como JSONB
// y conserva el orden de inserción.
type ProductColorRepo struct {
	q Querier
}

// NewProductColorRepository construye el adaptador de las filas asociativas.
// Pasar pool o tx (Querier).
func NewProductColorRepository(q Querier) *ProductColorRepo {
	return &ProductColorRepo{q: q}
}

// Create inserta una fila asociativa. La clave compuesta garantiza una fila
// por par (producto, color).
func (r *ProductColorRepo) Create(ctx context.Context, pair *entity.ProductColor) error {
	if pair.Images == nil {
		pair.Images = []string{}
	}
	query := `
		INSERT INTO product_colors (product_id, color_id, stock, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		pair.ProductID, pair.ColorID, pair.Stock, pair.Images, pair.CreatedAt, pair.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // producto o color inexistente
		}
		return fmt.Errorf("insert product color: %w", err)
	}
	return nil
}

// Get obtiene la fila asociativa por clave compuesta.
func (r *ProductColorRepo) Get(ctx context.Context, productID, colorID string) (*entity.ProductColor, error) {
	query := `
		SELECT product_id, color_id, stock, images, created_at, updated_at
		FROM product_colors WHERE product_id = $1 AND color_id = $2`
	var pc entity.ProductColor
	err := r.q.QueryRow(ctx, query, productID, colorID).Scan(
		&pc.ProductID, &pc.ColorID, &pc.Stock, &pc.Images, &pc.CreatedAt, &pc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product color: %w", err)
	}
	return &pc, nil
}

// ListByProduct lista las filas asociativas de un producto.
func (r *ProductColorRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.ProductColor, error) {
	query := `
		SELECT product_id, color_id, stock, images, created_at, updated_at
		FROM product_colors WHERE product_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product colors: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductColor
	for rows.Next() {
		var pc entity.ProductColor
		if err := rows.Scan(&pc.ProductID, &pc.ColorID, &pc.Stock, &pc.Images,
			&pc.CreatedAt, &pc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product color: %w", err)
		}
		list = append(list, &pc)
	}
	return list, rows.Err()
}

// SetStock sobrescribe el stock del par (no incrementa). Update puntual de
// columna, sin cargar el agregado.
func (r *ProductColorRepo) SetStock(ctx context.Context, productID, colorID string, stock int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE product_colors SET stock = $3, updated_at = now() WHERE product_id = $1 AND color_id = $2`,
		productID, colorID, stock,
	)
	if err != nil {
		return fmt.Errorf("set pair stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrPairNotFound
	}
	return nil
}

// UpdateImages sobrescribe la lista de imágenes del par. Update puntual de
// columna, sin cargar el agregado.
func (r *ProductColorRepo) UpdateImages(ctx context.Context, productID, colorID string, images []string) error {
	if images == nil {
		images = []string{}
	}
	cmd, err := r.q.Exec(ctx,
		`UPDATE product_colors SET images = $3, updated_at = now() WHERE product_id = $1 AND color_id = $2`,
		productID, colorID, images,
	)
	if err != nil {
		return fmt.Errorf("update pair images: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrPairNotFound
	}
	return nil
}

// Delete elimina la fila asociativa. La purga de imágenes corre antes, en el
// caso de uso.
func (r *ProductColorRepo) Delete(ctx context.Context, productID, colorID string) error {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM product_colors WHERE product_id = $1 AND color_id = $2`,
		productID, colorID,
	)
	if err != nil {
		return fmt.Errorf("delete product color: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrPairNotFound
	}
	return nil
}

// DeleteAllByProduct elimina todas las filas asociativas del producto.
func (r *ProductColorRepo) DeleteAllByProduct(ctx context.Context, productID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM product_colors WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete product colors: %w", err)
	}
	return nil
}

// CountByColor cuenta las filas asociativas que referencian un color (chequeo
// previo al borrado del color).
func (r *ProductColorRepo) CountByColor(ctx context.Context, colorID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM product_colors WHERE color_id = $1`, colorID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pairs by color: %w", err)
	}
	return n, nil
}
