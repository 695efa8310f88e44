package middleware

import (
	"net/http"
	"testing"
	"time"

	"github.com/AgusMolinaCode/Evaluacion_Api/internal/models"
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBibliotecaRouter(store *MockBibliotecaStore) *gin.Engine {
	service := services.NewBibliotecaService(store, time.Minute, zap.NewNop())
	handler := NewBibliotecaHandler(service, zap.NewNop())
	router := gin.New()
	router.GET("/biblioteca/categorias", handler.ListCategorias)
	router.GET("/biblioteca/categorias/:id/items", handler.ListItems)
	router.POST("/biblioteca/items/:id/valores", handler.ExpandItem)
	return router
}

func TestListCategoriasHandler(t *testing.T) {
	store := new(MockBibliotecaStore)
	store.On("ListCategorias", mock.Anything).Return([]models.CategoriaFlujo{{ID: "c1", Nombre: "Inversión"}}, nil)

	w := doRequest(t, newBibliotecaRouter(store), http.MethodGet, "/biblioteca/categorias", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got []models.CategoriaFlujo
	decode(t, w, &got)
	assert.Equal(t, "Inversión", got[0].Nombre)
}

func TestExpandItemHandler(t *testing.T) {
	store := new(MockBibliotecaStore)
	store.On("GetItem", mock.Anything, "i1").Return(&models.ItemFlujoBase{
		ID:            "i1",
		TipoFlujo:     models.TipoFlujoEgreso,
		MontoSugerido: decimal.NewFromInt(200),
		Frecuencia:    models.FrecuenciaMensual,
	}, nil)
	store.On("GetItem", mock.Anything, "falta").Return(nil, models.ErrNotFound)

	router := newBibliotecaRouter(store)

	t.Run("expande", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/biblioteca/items/i1/valores?horizonte=3", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			ValoresAnuales []float64 `json:"valoresAnuales"`
		}
		decode(t, w, &resp)
		assert.Equal(t, []float64{0, -2400, -2400}, resp.ValoresAnuales)
	})

	t.Run("horizonte inválido", func(t *testing.T) {
		for _, q := range []string{"", "?horizonte=0", "?horizonte=abc", "?horizonte=21"} {
			w := doRequest(t, router, http.MethodPost, "/biblioteca/items/i1/valores"+q, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code, q)
		}
	})

	t.Run("ítem inexistente", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/biblioteca/items/falta/valores?horizonte=3", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
