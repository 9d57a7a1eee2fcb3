package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jquiroga/tienda-api/internal/infrastructure/storage"
)

func TestLocalStore_StoreYPath(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir)
	require.NoError(t, err)

	id, err := store.Store([]byte("contenido"), "1700000000000-frente.png")
	require.NoError(t, err)
	assert.Equal(t, "1700000000000-frente.png", id)

	data, err := os.ReadFile(store.Path(id))
	require.NoError(t, err)
	assert.Equal(t, []byte("contenido"), data)
}

func TestLocalStore_StoreSanitizaRutas(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir)
	require.NoError(t, err)

	id, err := store.Store([]byte("x"), "../../etc/passwd")
	require.NoError(t, err)
	assert.Equal(t, "passwd", id, "el id nunca conserva componentes de ruta")
	assert.FileExists(t, filepath.Join(dir, "passwd"))
}

func TestLocalStore_DeleteAusenteNoEsError(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete("no-existe.png"),
		"borrar un archivo ya ausente cuenta como purgado")
}

func TestLocalStore_DeleteEliminaElArchivo(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	id, err := store.Store([]byte("x"), "a.png")
	require.NoError(t, err)

	require.NoError(t, store.Delete(id))
	assert.NoFileExists(t, store.Path(id))
}
