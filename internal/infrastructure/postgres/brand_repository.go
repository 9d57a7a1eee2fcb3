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

var _ repository.BrandRepository = (*BrandRepo)(nil)

// BrandRepo implementación del puerto BrandRepository sobre PostgreSQL.
type BrandRepo struct {
	q Querier
}

// NewBrandRepository construye el adaptador de persistencia para marcas.
func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{q: q}
}

// Create persiste una nueva marca.
func (r *BrandRepo) Create(ctx context.Context, brand *entity.Brand) error {
	query := `
		INSERT INTO brands (id, name, logo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		brand.ID, brand.Name, brand.Logo, brand.CreatedAt, brand.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert brand: %w", err)
	}
	return nil
}

// GetByID obtiene una marca por ID.
func (r *BrandRepo) GetByID(ctx context.Context, id string) (*entity.Brand, error) {
	return r.scanOne(r.q.QueryRow(ctx,
		`SELECT id, name, logo, created_at, updated_at FROM brands WHERE id = $1`, id), "get brand")
}

// GetByName obtiene una marca por nombre (único).
func (r *BrandRepo) GetByName(ctx context.Context, name string) (*entity.Brand, error) {
	return r.scanOne(r.q.QueryRow(ctx,
		`SELECT id, name, logo, created_at, updated_at FROM brands WHERE name = $1`, name), "get brand by name")
}

// List lista todas las marcas.
func (r *BrandRepo) List(ctx context.Context) ([]*entity.Brand, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, logo, created_at, updated_at FROM brands ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()
	var list []*entity.Brand
	for rows.Next() {
		var b entity.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Logo, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update actualiza una marca existente.
func (r *BrandRepo) Update(ctx context.Context, brand *entity.Brand) error {
	query := `
		UPDATE brands SET name = $2, logo = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, brand.ID, brand.Name, brand.Logo, brand.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update brand: %w", err)
	}
	return nil
}

// Delete elimina una marca por ID. FK violada -> domain.ErrConflict.
func (r *BrandRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete brand: %w", err)
	}
	return nil
}

func (r *BrandRepo) scanOne(row pgx.Row, op string) (*entity.Brand, error) {
	var b entity.Brand
	err := row.Scan(&b.ID, &b.Name, &b.Logo, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &b, nil
}
