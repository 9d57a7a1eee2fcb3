package usecase

import (
	"context"

	"github.com/jquiroga/tienda-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el producto y sus filas
// asociativas cambien de forma atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		pairs repository.ProductColorRepository,
	) error) error
}

// FileStore es el colaborador de almacenamiento de archivos. El nombre lo
// aporta el llamador y ya debe ser único; Delete de un archivo ausente no es
// error, cualquier otra falla sí.
type FileStore interface {
	Store(data []byte, name string) (string, error)
	Delete(id string) error
	Path(id string) string
}
