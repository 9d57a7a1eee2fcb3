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

var _ repository.ColorRepository = (*ColorRepo)(nil)

// ColorRepo implementación del puerto ColorRepository sobre PostgreSQL.
type ColorRepo struct {
	q Querier
}

// NewColorRepository construye el adaptador de persistencia para colores.
func NewColorRepository(q Querier) *ColorRepo {
	return &ColorRepo{q: q}
}

// Create persiste un nuevo color.
func (r *ColorRepo) Create(ctx context.Context, color *entity.Color) error {
	query := `
		INSERT INTO colors (id, name, background, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		color.ID, color.Name, color.Background, color.CreatedAt, color.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert color: %w", err)
	}
	return nil
}

// GetByID obtiene un color por ID.
func (r *ColorRepo) GetByID(ctx context.Context, id string) (*entity.Color, error) {
	return r.scanOne(r.q.QueryRow(ctx,
		`SELECT id, name, background, created_at, updated_at FROM colors WHERE id = $1`, id), "get color")
}

// GetByName obtiene un color por nombre (único).
func (r *ColorRepo) GetByName(ctx context.Context, name string) (*entity.Color, error) {
	return r.scanOne(r.q.QueryRow(ctx,
		`SELECT id, name, background, created_at, updated_at FROM colors WHERE name = $1`, name), "get color by name")
}

// List lista todos los colores.
func (r *ColorRepo) List(ctx context.Context) ([]*entity.Color, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, background, created_at, updated_at FROM colors ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Color
	for rows.Next() {
		var c entity.Color
		if err := rows.Scan(&c.ID, &c.Name, &c.Background, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan color: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un color existente.
func (r *ColorRepo) Update(ctx context.Context, color *entity.Color) error {
	query := `
		UPDATE colors SET name = $2, background = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, color.ID, color.Name, color.Background, color.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update color: %w", err)
	}
	return nil
}

// Delete elimina un color por ID. La violación de FK se traduce a
// domain.ErrConflict como respaldo del chequeo explícito del caso de uso.
func (r *ColorRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM colors WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete color: %w", err)
	}
	return nil
}

func (r *ColorRepo) scanOne(row pgx.Row, op string) (*entity.Color, error) {
	var c entity.Color
	err := row.Scan(&c.ID, &c.Name, &c.Background, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}
