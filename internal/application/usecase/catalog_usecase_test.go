package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/e2e-commerce/internal/application/dto"
	"github.com/jhoicas/e2e-commerce/internal/application/store"
	"github.com/jhoicas/e2e-commerce/internal/application/usecase"
	"github.com/jhoicas/e2e-commerce/internal/domain"
	"github.com/jhoicas/e2e-commerce/internal/infrastructure/kv"
	"github.com/jhoicas/e2e-commerce/internal/infrastructure/persistence"
	"github.com/jhoicas/e2e-commerce/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	gw := persistence.NewGateway(kv.NewMemoryStore(), logger.Quiet())
	st, err := store.New(context.Background(), gw)
	require.NoError(t, err, "el store debe inicializar contra un almacén vacío")
	return st
}

func productRequest(title string) dto.UpsertProductRequest {
	return dto.UpsertProductRequest{
		Title:       title,
		Description: "Descripción suficientemente larga para pasar la validación.",
		Category:    "electrónica",
		Price:       decimal.NewFromFloat(100.50),
		Stock:       10,
		Image:       "https://example.com/img.png",
	}
}

func mustUpsert(t *testing.T, uc *usecase.CatalogUseCase, in dto.UpsertProductRequest) *dto.ProductResponse {
	t.Helper()
	out, err := uc.Upsert(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Upsert
// ──────────────────────────────────────────────────────────────────────────────

func TestUpsert_Alta_AsignaIDYActivo(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newTestStore(t))

	out := mustUpsert(t, uc, productRequest("Mouse inalámbrico"))

	assert.NotEmpty(t, out.ID, "el alta debe asignar un id nuevo")
	assert.True(t, out.Active, "todo producto nuevo nace activo")
	assert.False(t, out.CreatedAt.IsZero(), "el alta debe fijar la fecha de creación")
}

func TestUpsert_InputInvalido_NoMutaNada(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newTestStore(t))

	in := productRequest("abc") // título demasiado corto
	in.Description = "corta"
	out, err := uc.Upsert(context.Background(), in)

	require.Error(t, err)
	assert.Nil(t, out)

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs, "el rechazo debe ser una lista de violaciones")
	assert.Len(t, verrs, 2, "una violación por regla incumplida")

	assert.Empty(t, uc.ListActive().Items, "un input rechazado no debe insertar nada")
}

func TestUpsert_Edicion_PreservaCreatedAt(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newTestStore(t))
	original := mustUpsert(t, uc, productRequest("Mouse inalámbrico"))

	edit := productRequest("Mouse inalámbrico PRO")
	edit.ID = original.ID
	edit.Price = decimal.NewFromFloat(149.90)
	edited := mustUpsert(t, uc, edit)

	assert.Equal(t, original.ID, edited.ID, "la edición conserva el id")
	assert.Equal(t, original.CreatedAt, edited.CreatedAt, "la edición conserva la fecha de creación")
	assert.Equal(t, "Mouse inalámbrico PRO", edited.Title)
	assert.True(t, edit.Price.Equal(edited.Price))

	list := uc.ListActive()
	require.Len(t, list.Items, 1, "editar no duplica el producto")
}

func TestUpsert_IDDesconocido_CreaConIDNuevo(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newTestStore(t))

	in := productRequest("Teclado mecánico")
	in.ID = "id-que-no-existe"
	out := mustUpsert(t, uc, in)

	assert.NotEqual(t, "id-que-no-existe", out.ID, "un id desconocido no se adopta: se genera uno nuevo")
}

// ──────────────────────────────────────────────────────────────────────────────
// SoftDelete y ListActive
// ──────────────────────────────────────────────────────────────────────────────

func TestSoftDelete_ExcluyeDeListadoPeroNoBorra(t *testing.T) {
	st := newTestStore(t)
	uc := usecase.NewCatalogUseCase(st)
	p := mustUpsert(t, uc, productRequest("Mouse inalámbrico"))

	require.NoError(t, uc.SoftDelete(context.Background(), p.ID))

	assert.Empty(t, uc.ListActive().Items, "el producto inactivo no se lista")
	st.View(func(s *store.State) {
		require.NotNil(t, s.FindProduct(p.ID), "el borrado es lógico: el registro sigue almacenado")
		assert.False(t, s.FindProduct(p.ID).Active)
	})
}

func TestSoftDelete_IDInexistente_NoEsError(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newTestStore(t))
	assert.NoError(t, uc.SoftDelete(context.Background(), "nope"))
}

func TestListActive_ConservaOrdenDeInsercion(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newTestStore(t))
	mustUpsert(t, uc, productRequest("Producto alfa"))
	mustUpsert(t, uc, productRequest("Producto beta"))
	mustUpsert(t, uc, productRequest("Producto gamma"))

	list := uc.ListActive()
	require.Len(t, list.Items, 3)
	assert.Equal(t, "Producto alfa", list.Items[0].Title)
	assert.Equal(t, "Producto beta", list.Items[1].Title)
	assert.Equal(t, "Producto gamma", list.Items[2].Title)
}

// ──────────────────────────────────────────────────────────────────────────────
// Search
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: un activo "Wireless Mouse" y un inactivo "Wireless Keyboard";
// buscar "wireless" devuelve solo el activo.
func TestSearch_SoloProductosActivos(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newTestStore(t))
	mustUpsert(t, uc, productRequest("Wireless Mouse"))
	keyboard := mustUpsert(t, uc, productRequest("Wireless Keyboard"))
	require.NoError(t, uc.SoftDelete(context.Background(), keyboard.ID))

	res := uc.Search("wireless")
	require.Len(t, res.Items, 1, "el inactivo queda fuera de la búsqueda")
	assert.Equal(t, "Wireless Mouse", res.Items[0].Title)
}

func TestSearch_IgnoraMayusculasYBuscaEnTresCampos(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newTestStore(t))
	in := productRequest("Teclado mecánico")
	in.Description = "Teclado con switches rojos y retroiluminación RGB configurable."
	in.Category = "periféricos"
	mustUpsert(t, uc, in)

	assert.Len(t, uc.Search("TECLADO").Items, 1, "match por título sin distinguir mayúsculas")
	assert.Len(t, uc.Search("rgb").Items, 1, "match por descripción")
	assert.Len(t, uc.Search("PERIFÉRICOS").Items, 1, "match por categoría")
	assert.Empty(t, uc.Search("inexistente").Items)
}

func TestSearch_TerminoEnBlanco_EquivaleAListActive(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newTestStore(t))
	mustUpsert(t, uc, productRequest("Producto alfa"))
	mustUpsert(t, uc, productRequest("Producto beta"))

	assert.Equal(t, uc.ListActive(), uc.Search("   "), "término en blanco = listado completo de activos")
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_InactivoONoExistente_NotFound(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newTestStore(t))
	p := mustUpsert(t, uc, productRequest("Mouse inalámbrico"))
	require.NoError(t, uc.SoftDelete(context.Background(), p.ID))

	var nf *domain.NotFoundError
	_, err := uc.GetByID(p.ID)
	require.ErrorAs(t, err, &nf, "un producto inactivo no es visible por detalle")

	_, err = uc.GetByID("nope")
	require.ErrorAs(t, err, &nf)
}

// Invariante: todo producto almacenado cumple el predicado de validación.
func TestInvariante_ProductosAlmacenadosSiempreValidos(t *testing.T) {
	st := newTestStore(t)
	uc := usecase.NewCatalogUseCase(st)
	mustUpsert(t, uc, productRequest("Producto alfa"))
	mustUpsert(t, uc, productRequest("Producto beta"))

	st.View(func(s *store.State) {
		for _, p := range s.Products {
			errs := domain.ValidateProduct(domain.ProductInput{
				Title:       p.Title,
				Description: p.Description,
				Category:    p.Category,
				Price:       p.Price,
				Stock:       p.Stock,
				Image:       p.Image,
			})
			assert.Empty(t, errs, "el producto %s debe cumplir el predicado", p.ID)
			assert.GreaterOrEqual(t, p.Stock, 0)
		}
	})
}
