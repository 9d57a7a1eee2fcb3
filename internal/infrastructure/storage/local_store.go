package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jquiroga/tienda-api/internal/application/usecase"
)

var _ usecase.FileStore = (*LocalStore)(nil)

// LocalStore guarda los archivos subidos (imágenes de pares producto-color,
// banners, logos) en un directorio local. El nombre lo aporta el llamador y ya
// debe ser único (prefijado con timestamp); el id devuelto es ese nombre.
type LocalStore struct {
	dir string
}

// NewLocalStore crea el directorio si no existe y devuelve el store.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de almacenamiento: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Store escribe el archivo y devuelve su identificador.
func (s *LocalStore) Store(data []byte, name string) (string, error) {
	id := filepath.Base(name) // sin rutas relativas
	if id == "." || id == string(filepath.Separator) {
		return "", fmt.Errorf("nombre de archivo inválido: %q", name)
	}
	if err := os.WriteFile(filepath.Join(s.dir, id), data, 0o644); err != nil {
		return "", fmt.Errorf("guardar archivo %s: %w", id, err)
	}
	return id, nil
}

// Delete elimina el archivo. Un archivo ya ausente no es error; cualquier otra
// falla se propaga.
func (s *LocalStore) Delete(id string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(id)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("eliminar archivo %s: %w", id, err)
	}
	return nil
}

// Path devuelve la ruta en disco del archivo (para servirlo con SendFile).
func (s *LocalStore) Path(id string) string {
	return filepath.Join(s.dir, filepath.Base(id))
}
