package middleware

import (
	"net/http"
	"testing"

	"github.com/AgusMolinaCode/Evaluacion_Api/internal/analysis"
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAnalisisRouter(proyectos *MockProyectoStore) *gin.Engine {
	handler := NewAnalisisHandler(proyectos, analysis.NewService(zap.NewNop(), nil), zap.NewNop())
	router := gin.New()
	router.GET("/analisis/:projectId", withUser("u1"), handler.Get)
	return router
}

func TestGetAnalisis(t *testing.T) {
	proyecto := &models.Proyecto{
		ID:                "p1",
		UserID:            "u1",
		HorizonteAnalisis: 5,
		TasaDescuento:     12,
		Flujos: []models.FlujoFinanciero{
			{ID: "f1", TipoFlujo: models.TipoFlujoEgreso, ValoresAnuales: []float64{-1000, 0, 0, 0, 0}},
			{ID: "f2", TipoFlujo: models.TipoFlujoIngreso, ValoresAnuales: []float64{0, 300, 300, 300, 300}},
		},
	}
	proyectos := new(MockProyectoStore)
	proyectos.On("GetWithFlows", mock.Anything, "p1").Return(proyecto, nil)

	w := doRequest(t, newAnalisisRouter(proyectos), http.MethodGet, "/analisis/p1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.Analisis
	decode(t, w, &got)
	assert.InDelta(t, -88.7952, got.ValorActualNeto, 1e-3)
	require.NotNil(t, got.TasaInternaRetorno)
	assert.InDelta(t, 7.7138, *got.TasaInternaRetorno, 1e-3)
	require.NotNil(t, got.PeriodoRecuperacion)
	assert.InDelta(t, 3.3333, *got.PeriodoRecuperacion, 1e-3)
	assert.Equal(t, []float64{-1000, 300, 300, 300, 300}, got.FlujosCajaNetos)
	assert.Equal(t, []float64{-1000, -700, -400, -100, 200}, got.FlujosCajaAcumulados)
	assert.False(t, got.EsViable)
	assert.False(t, got.TirSuperaTasa)
}

func TestGetAnalisisSinTIR(t *testing.T) {
	proyecto := &models.Proyecto{
		ID:                "p1",
		UserID:            "u1",
		HorizonteAnalisis: 3,
		TasaDescuento:     10,
		Flujos: []models.FlujoFinanciero{
			{ID: "f1", TipoFlujo: models.TipoFlujoEgreso, ValoresAnuales: []float64{-500, -100, -100}},
		},
	}
	proyectos := new(MockProyectoStore)
	proyectos.On("GetWithFlows", mock.Anything, "p1").Return(proyecto, nil)

	w := doRequest(t, newAnalisisRouter(proyectos), http.MethodGet, "/analisis/p1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	decode(t, w, &resp)
	assert.Nil(t, resp["tasaInternaRetorno"])
	assert.Nil(t, resp["periodoRecuperacion"])
}

func TestGetAnalisisDatosInconsistentes(t *testing.T) {
	proyecto := &models.Proyecto{
		ID:                "p1",
		UserID:            "u1",
		HorizonteAnalisis: 4,
		TasaDescuento:     10,
		Flujos: []models.FlujoFinanciero{
			{ID: "f1", Nombre: "ventas", TipoFlujo: models.TipoFlujoIngreso, ValoresAnuales: []float64{0, 100, 100}},
		},
	}
	proyectos := new(MockProyectoStore)
	proyectos.On("GetWithFlows", mock.Anything, "p1").Return(proyecto, nil)

	w := doRequest(t, newAnalisisRouter(proyectos), http.MethodGet, "/analisis/p1", nil)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp map[string]string
	decode(t, w, &resp)
	assert.Contains(t, resp["detalle"], "ventas")
}

func TestGetAnalisisProyectoAjeno(t *testing.T) {
	proyectos := new(MockProyectoStore)
	proyectos.On("GetWithFlows", mock.Anything, "p1").Return(&models.Proyecto{ID: "p1", UserID: "u2", HorizonteAnalisis: 1}, nil)

	w := doRequest(t, newAnalisisRouter(proyectos), http.MethodGet, "/analisis/p1", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
