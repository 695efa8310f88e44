package middleware

import (
	"net/http"
	"testing"

	"github.com/AgusMolinaCode/Evaluacion_Api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProyectoRouter(proyectos *MockProyectoStore) *gin.Engine {
	handler := NewProyectoHandler(proyectos, zap.NewNop())
	router := gin.New()
	group := router.Group("/proyectos", withUser("u1"))
	group.GET("", handler.List)
	group.POST("", handler.Create)
	group.GET("/:id", handler.Get)
	group.PATCH("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)
	return router
}

func proyectoDe(userID string, flujos ...models.FlujoFinanciero) *models.Proyecto {
	return &models.Proyecto{
		ID:                "p1",
		UserID:            userID,
		Nombre:            "Panadería",
		HorizonteAnalisis: 3,
		TasaDescuento:     12,
		Flujos:            flujos,
	}
}

func TestCreateProyecto(t *testing.T) {
	proyectos := new(MockProyectoStore)
	proyectos.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Proyecto) bool {
		return p.UserID == "u1" && p.Nombre == "Panadería" && p.HorizonteAnalisis == 5 && p.TasaDescuento == 0
	})).Return(nil)

	router := newProyectoRouter(proyectos)
	w := doRequest(t, router, http.MethodPost, "/proyectos", gin.H{
		"nombre": "Panadería", "horizonteAnalisis": 5, "tasaDescuento": 0,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var got models.Proyecto
	decode(t, w, &got)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "u1", got.UserID)
	proyectos.AssertExpectations(t)
}

func TestCreateProyectoValidation(t *testing.T) {
	tests := []struct {
		name string
		body gin.H
	}{
		{"horizonte mayor a 20", gin.H{"nombre": "x", "horizonteAnalisis": 21, "tasaDescuento": 10}},
		{"horizonte cero", gin.H{"nombre": "x", "horizonteAnalisis": 0, "tasaDescuento": 10}},
		{"tasa negativa", gin.H{"nombre": "x", "horizonteAnalisis": 5, "tasaDescuento": -1}},
		{"tasa mayor a 100", gin.H{"nombre": "x", "horizonteAnalisis": 5, "tasaDescuento": 150}},
		{"sin tasa", gin.H{"nombre": "x", "horizonteAnalisis": 5}},
		{"sin nombre", gin.H{"horizonteAnalisis": 5, "tasaDescuento": 10}},
	}

	router := newProyectoRouter(new(MockProyectoStore))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPost, "/proyectos", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetProyectoOwnership(t *testing.T) {
	proyectos := new(MockProyectoStore)
	proyectos.On("GetWithFlows", mock.Anything, "p1").Return(proyectoDe("u1"), nil)
	proyectos.On("GetWithFlows", mock.Anything, "ajeno").Return(proyectoDe("u2"), nil)
	proyectos.On("GetWithFlows", mock.Anything, "falta").Return(nil, models.ErrNotFound)

	router := newProyectoRouter(proyectos)

	assert.Equal(t, http.StatusOK, doRequest(t, router, http.MethodGet, "/proyectos/p1", nil).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(t, router, http.MethodGet, "/proyectos/ajeno", nil).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(t, router, http.MethodGet, "/proyectos/falta", nil).Code)
}

func TestUpdateProyectoHorizonteConFlujos(t *testing.T) {
	flujo := models.FlujoFinanciero{ID: "f1", TipoFlujo: models.TipoFlujoIngreso, ValoresAnuales: []float64{0, 1, 2}}
	proyectos := new(MockProyectoStore)
	proyectos.On("GetWithFlows", mock.Anything, "p1").Return(proyectoDe("u1", flujo), nil)

	router := newProyectoRouter(proyectos)
	w := doRequest(t, router, http.MethodPatch, "/proyectos/p1", gin.H{"horizonteAnalisis": 5})

	assert.Equal(t, http.StatusConflict, w.Code)
	proyectos.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateProyectoParcial(t *testing.T) {
	proyectos := new(MockProyectoStore)
	proyectos.On("GetWithFlows", mock.Anything, "p1").Return(proyectoDe("u1"), nil)
	proyectos.On("Update", mock.Anything, mock.MatchedBy(func(p *models.Proyecto) bool {
		return p.Nombre == "Panadería" && p.TasaDescuento == 8.5 && p.HorizonteAnalisis == 10
	})).Return(nil)

	router := newProyectoRouter(proyectos)
	w := doRequest(t, router, http.MethodPatch, "/proyectos/p1", gin.H{"tasaDescuento": 8.5, "horizonteAnalisis": 10})

	require.Equal(t, http.StatusOK, w.Code)
	proyectos.AssertExpectations(t)
}

func TestDeleteProyecto(t *testing.T) {
	proyectos := new(MockProyectoStore)
	proyectos.On("GetWithFlows", mock.Anything, "p1").Return(proyectoDe("u1"), nil)
	proyectos.On("Delete", mock.Anything, "p1").Return(nil)

	router := newProyectoRouter(proyectos)
	w := doRequest(t, router, http.MethodDelete, "/proyectos/p1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	proyectos.AssertExpectations(t)
}
