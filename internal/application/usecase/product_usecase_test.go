package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jquiroga/tienda-api/internal/application/dto"
	"github.com/jquiroga/tienda-api/internal/application/usecase"
	"github.com/jquiroga/tienda-api/internal/application/validate"
	"github.com/jquiroga/tienda-api/internal/domain"
)

// env agrupa el caso de uso bajo prueba con sus colaboradores en memoria.
type env struct {
	db    *memDB
	files *memFiles
	uc    *usecase.ProductUseCase
}

func newEnv() *env {
	db := newMemDB()
	files := newMemFiles()
	uc := usecase.NewProductUseCase(
		&memProductRepo{db: db},
		&memPairRepo{db: db},
		&memColorRepo{db: db},
		&memPromoRepo{db: db},
		&memTx{db: db},
		files,
		validate.New(),
	)
	return &env{db: db, files: files, uc: uc}
}

func (e *env) seedColor(id, name string) {
	e.db.colors[id] = testColor(id, name)
}

func validCreateRequest(colors ...string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:       "Zapatilla urbana",
		Price:      decimal.NewFromInt(150),
		CategoryID: "cat-1",
		BrandID:    "brand-1",
		Colors:     colors,
	}
}

func TestProductCreate_CreaUnParPorColor(t *testing.T) {
	e := newEnv()
	e.seedColor("c1", "rojo")
	e.seedColor("c2", "azul")

	out, err := e.uc.Create(context.Background(), validCreateRequest("c1", "c2"))
	require.NoError(t, err)
	require.NotNil(t, out)

	require.Len(t, out.Colors, 2, "cada color declarado gana su fila asociativa")
	for _, pc := range out.Colors {
		assert.Equal(t, 0, pc.Stock, "los pares nacen con stock 0")
		assert.Empty(t, pc.Images, "los pares nacen sin imágenes")
	}
	assert.Equal(t, "rojo", out.Colors[0].Name)
	assert.Equal(t, "azul", out.Colors[1].Name)
}

func TestProductCreate_ColoresRepetidosSeDeduplican(t *testing.T) {
	e := newEnv()
	e.seedColor("c1", "rojo")

	out, err := e.uc.Create(context.Background(), validCreateRequest("c1", "c1", "c1"))
	require.NoError(t, err)
	assert.Len(t, out.Colors, 1)
}

func TestProductCreate_SinColoresFallaValidacion(t *testing.T) {
	e := newEnv()

	_, err := e.uc.Create(context.Background(), validCreateRequest())

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "colors")
}

func TestProductCreate_PrecioNoPositivoFalla(t *testing.T) {
	e := newEnv()
	e.seedColor("c1", "rojo")

	in := validCreateRequest("c1")
	in.Price = decimal.Zero

	_, err := e.uc.Create(context.Background(), in)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "price")
}

func TestProductCreate_NombreDuplicadoFalla(t *testing.T) {
	e := newEnv()
	e.seedColor("c1", "rojo")

	_, err := e.uc.Create(context.Background(), validCreateRequest("c1"))
	require.NoError(t, err)

	_, err = e.uc.Create(context.Background(), validCreateRequest("c1"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSetPairStock_SobrescribeYEsIdempotente(t *testing.T) {
	e := newEnv()
	e.seedColor("c1", "rojo")
	out, err := e.uc.Create(context.Background(), validCreateRequest("c1"))
	require.NoError(t, err)

	pc, err := e.uc.SetPairStock(context.Background(), out.ID, "c1", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, pc.Stock)

	// Repetir la misma llamada deja el mismo stock (no incrementa).
	pc, err = e.uc.SetPairStock(context.Background(), out.ID, "c1", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, pc.Stock)
}

func TestSetPairStock_NegativoFalla(t *testing.T) {
	e := newEnv()
	e.seedColor("c1", "rojo")
	out, err := e.uc.Create(context.Background(), validCreateRequest("c1"))
	require.NoError(t, err)

	_, err = e.uc.SetPairStock(context.Background(), out.ID, "c1", -1)

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestSetPairStock_ParInexistenteFalla(t *testing.T) {
	e := newEnv()

	_, err := e.uc.SetPairStock(context.Background(), "no-existe", "c1", 5)
	assert.ErrorIs(t, err, domain.ErrPairNotFound)
}

func TestPairImages_AgregarYQuitar(t *testing.T) {
	e := newEnv()
	e.seedColor("c1", "rojo")
	out, err := e.uc.Create(context.Background(), validCreateRequest("c1"))
	require.NoError(t, err)

	images, err := e.uc.AddPairImage(context.Background(), out.ID, "c1", []byte("png"), "frente.png")
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Contains(t, images[0], "frente.png", "el nombre original queda como sufijo del id")
	assert.Contains(t, e.files.stored, images[0], "el archivo físico quedó almacenado")

	images, err = e.uc.RemovePairImage(context.Background(), out.ID, "c1", images[0])
	require.NoError(t, err)
	assert.Empty(t, images)
	assert.Empty(t, e.files.stored, "sin ocurrencias restantes el archivo se purga")
}

func TestRemovePairImage_IdInexistenteEsNoOp(t *testing.T) {
	e := newEnv()
	e.seedColor("c1", "rojo")
	out, err := e.uc.Create(context.Background(), validCreateRequest("c1"))
	require.NoError(t, err)

	_, err = e.uc.AddPairImage(context.Background(), out.ID, "c1", []byte("png"), "frente.png")
	require.NoError(t, err)

	images, err := e.uc.RemovePairImage(context.Background(), out.ID, "c1", "fantasma.png")
	require.NoError(t, err, "quitar un id ausente es un no-op exitoso")
	assert.Len(t, images, 1)
}

func TestRemovePairImage_ConDuplicadosPurgaSoloAlFinal(t *testing.T) {
	e := newEnv()
	e.seedColor("c1", "rojo")
	out, err := e.uc.Create(context.Background(), validCreateRequest("c1"))
	require.NoError(t, err)

	images, err := e.uc.AddPairImage(context.Background(), out.ID, "c1", []byte("png"), "frente.png")
	require.NoError(t, err)
	id := images[0]

	// Se duplica el mismo id en la lista: los duplicados están permitidos.
	pairs := &memPairRepo{db: e.db}
	require.NoError(t, pairs.UpdateImages(context.Background(), out.ID, "c1", []string{id, id}))

	images, err = e.uc.RemovePairImage(context.Background(), out.ID, "c1", id)
	require.NoError(t, err)
	assert.Equal(t, []string{id}, images, "solo se quita la primera ocurrencia")
	assert.Contains(t, e.files.stored, id, "con una ocurrencia restante el archivo no se purga")

	images, err = e.uc.RemovePairImage(context.Background(), out.ID, "c1", id)
	require.NoError(t, err)
	assert.Empty(t, images)
	assert.NotContains(t, e.files.stored, id, "sin ocurrencias el archivo físico se purga")
}

func TestAddPairImage_FallaDeFilaRetiraElArchivo(t *testing.T) {
	e := newEnv()
	e.seedColor("c1", "rojo")
	out, err := e.uc.Create(context.Background(), validCreateRequest("c1"))
	require.NoError(t, err)

	e.db.failPairImages = true
	_, err = e.uc.AddPairImage(context.Background(), out.ID, "c1", []byte("png"), "frente.png")
	require.Error(t, err)
	assert.Empty(t, e.files.stored, "si la fila no registró la imagen el archivo no queda huérfano")
}

func TestProductUpdate_ReemplazaColores(t *testing.T) {
	e := newEnv()
	e.seedColor("c1", "rojo")
	e.seedColor("c2", "azul")
	out, err := e.uc.Create(context.Background(), validCreateRequest("c1"))
	require.NoError(t, err)

	// Imagen en el par que va a desaparecer: debe purgarse con él.
	images, err := e.uc.AddPairImage(context.Background(), out.ID, "c1", []byte("png"), "frente.png")
	require.NoError(t, err)
	require.Len(t, images, 1)

	colors := []string{"c2"}
	updated, err := e.uc.Update(context.Background(), out.ID, dto.UpdateProductRequest{Colors: &colors})
	require.NoError(t, err)

	require.Len(t, updated.Colors, 1)
	assert.Equal(t, "c2", updated.Colors[0].ColorID)
	assert.Equal(t, 0, updated.Colors[0].Stock, "el par nuevo nace con stock 0")
	assert.Empty(t, e.files.stored, "las imágenes del par quitado se purgaron")
}

func TestProductUpdate_ParcheParcialConservaElResto(t *testing.T) {
	e := newEnv()
	e.seedColor("c1", "rojo")
	out, err := e.uc.Create(context.Background(), validCreateRequest("c1"))
	require.NoError(t, err)

	name := "Zapatilla trail"
	updated, err := e.uc.Update(context.Background(), out.ID, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Zapatilla trail", updated.Name)
	assert.True(t, out.Price.Equal(updated.Price), "los campos ausentes del parche no se tocan")
	assert.Len(t, updated.Colors, 1)
}

func TestProductDelete_CascadaCompleta(t *testing.T) {
	e := newEnv()
	e.seedColor("c1", "rojo")
	e.seedColor("c2", "azul")
	out, err := e.uc.Create(context.Background(), validCreateRequest("c1", "c2"))
	require.NoError(t, err)

	_, err = e.uc.AddPairImage(context.Background(), out.ID, "c1", []byte("a"), "a.png")
	require.NoError(t, err)
	_, err = e.uc.AddPairImage(context.Background(), out.ID, "c2", []byte("b"), "b.png")
	require.NoError(t, err)

	require.NoError(t, e.uc.Delete(context.Background(), out.ID))

	assert.Empty(t, e.db.pairs, "ninguna fila asociativa sobrevive")
	assert.Empty(t, e.db.products)
	assert.Empty(t, e.files.stored, "todas las imágenes se purgaron")
	assert.NotContains(t, e.db.links, out.ID, "los vínculos de promoción se eliminaron")
}

func TestProductDelete_PurgaFallidaAbortaSinBorrarFilas(t *testing.T) {
	e := newEnv()
	e.seedColor("c1", "rojo")
	out, err := e.uc.Create(context.Background(), validCreateRequest("c1"))
	require.NoError(t, err)

	images, err := e.uc.AddPairImage(context.Background(), out.ID, "c1", []byte("a"), "a.png")
	require.NoError(t, err)
	e.files.failOn[images[0]] = true

	err = e.uc.Delete(context.Background(), out.ID)

	var pErr *domain.PurgeError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, []string{images[0]}, pErr.Failed, "se reporta exactamente qué imágenes fallaron")
	assert.Contains(t, e.db.products, out.ID, "ninguna fila se eliminó")
	assert.Len(t, e.db.pairs, 1)
}

func TestRemoveColorAssociation_PurgaYBorraLaFila(t *testing.T) {
	e := newEnv()
	e.seedColor("c1", "rojo")
	e.seedColor("c2", "azul")
	out, err := e.uc.Create(context.Background(), validCreateRequest("c1", "c2"))
	require.NoError(t, err)

	_, err = e.uc.AddPairImage(context.Background(), out.ID, "c1", []byte("a"), "a.png")
	require.NoError(t, err)

	require.NoError(t, e.uc.RemoveColorAssociation(context.Background(), out.ID, "c1"))

	assert.Empty(t, e.files.stored)
	assert.Len(t, e.db.pairs, 1, "el otro par queda intacto")

	err = e.uc.RemoveColorAssociation(context.Background(), out.ID, "c1")
	assert.ErrorIs(t, err, domain.ErrPairNotFound)
}
