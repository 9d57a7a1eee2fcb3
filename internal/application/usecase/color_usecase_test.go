package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jquiroga/tienda-api/internal/application/dto"
	"github.com/jquiroga/tienda-api/internal/application/usecase"
	"github.com/jquiroga/tienda-api/internal/application/validate"
	"github.com/jquiroga/tienda-api/internal/domain"
)

type colorEnv struct {
	db    *memDB
	uc    *usecase.ColorUseCase
	prods *usecase.ProductUseCase
}

func newColorEnv() *colorEnv {
	db := newMemDB()
	val := validate.New()
	uc := usecase.NewColorUseCase(&memColorRepo{db: db}, &memPairRepo{db: db}, val)
	prods := usecase.NewProductUseCase(
		&memProductRepo{db: db},
		&memPairRepo{db: db},
		&memColorRepo{db: db},
		&memPromoRepo{db: db},
		&memTx{db: db},
		newMemFiles(),
		val,
	)
	return &colorEnv{db: db, uc: uc, prods: prods}
}

func TestColorCreate_ValidaLongitudes(t *testing.T) {
	e := newColorEnv()

	_, err := e.uc.Create(context.Background(), dto.CreateColorRequest{Name: "r", Background: "#f0"})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "name")
	assert.Contains(t, vErr.Fields, "background")

	// El mínimo es inclusivo: 4 caracteres exactos son válidos.
	_, err = e.uc.Create(context.Background(), dto.CreateColorRequest{Name: "rojo", Background: "#f00"})
	assert.NoError(t, err)
}

func TestColorDelete_EnUsoFallaConConflicto(t *testing.T) {
	e := newColorEnv()
	out, err := e.uc.Create(context.Background(), dto.CreateColorRequest{Name: "rojo", Background: "#ff0000"})
	require.NoError(t, err)

	_, err = e.prods.Create(context.Background(), validCreateRequest(out.ID))
	require.NoError(t, err)

	err = e.uc.Delete(context.Background(), out.ID)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"un color referenciado por una fila asociativa no puede eliminarse")
}

func TestColorDelete_SinUsosElimina(t *testing.T) {
	e := newColorEnv()
	out, err := e.uc.Create(context.Background(), dto.CreateColorRequest{Name: "rojo", Background: "#ff0000"})
	require.NoError(t, err)

	require.NoError(t, e.uc.Delete(context.Background(), out.ID))
	assert.Empty(t, e.db.colors)
}

func TestColorDelete_TrasBorrarElProductoVuelveASerEliminable(t *testing.T) {
	e := newColorEnv()
	out, err := e.uc.Create(context.Background(), dto.CreateColorRequest{Name: "rojo", Background: "#ff0000"})
	require.NoError(t, err)

	prod, err := e.prods.Create(context.Background(), validCreateRequest(out.ID))
	require.NoError(t, err)
	require.ErrorIs(t, e.uc.Delete(context.Background(), out.ID), domain.ErrConflict)

	// La cascada del producto libera el color.
	require.NoError(t, e.prods.Delete(context.Background(), prod.ID))
	assert.NoError(t, e.uc.Delete(context.Background(), out.ID))
}

func TestColorUpdate_ParcheRevalidado(t *testing.T) {
	e := newColorEnv()
	out, err := e.uc.Create(context.Background(), dto.CreateColorRequest{Name: "rojo", Background: "#ff0000"})
	require.NoError(t, err)

	bad := "x"
	_, err = e.uc.Update(context.Background(), out.ID, dto.UpdateColorRequest{Name: &bad})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)

	good := "carmesí"
	updated, err := e.uc.Update(context.Background(), out.ID, dto.UpdateColorRequest{Name: &good})
	require.NoError(t, err)
	assert.Equal(t, "carmesí", updated.Name)
	assert.Equal(t, "#ff0000", updated.Background, "el campo ausente del parche no se toca")
}

func TestColorDuplicado_Falla(t *testing.T) {
	e := newColorEnv()
	_, err := e.uc.Create(context.Background(), dto.CreateColorRequest{Name: "rojo", Background: "#ff0000"})
	require.NoError(t, err)

	_, err = e.uc.Create(context.Background(), dto.CreateColorRequest{Name: "rojo", Background: "#00ff00"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
