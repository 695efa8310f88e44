package middleware

import (
	"net/http"

	"github.com/AgusMolinaCode/Evaluacion_Api/internal/models"
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/repository"
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FlujoHandler struct {
	flujos    repository.FlujoStore
	proyectos repository.ProyectoStore
	logger    *zap.Logger
}

func NewFlujoHandler(flujos repository.FlujoStore, proyectos repository.ProyectoStore, logger *zap.Logger) *FlujoHandler {
	return &FlujoHandler{flujos: flujos, proyectos: proyectos, logger: logger}
}

type flujoRequest struct {
	ProyectoID      string                `json:"proyectoId" binding:"required"`
	Nombre          string                `json:"nombre" binding:"required,max=100"`
	Descripcion     string                `json:"descripcion" binding:"max=500"`
	TipoFlujo       models.TipoFlujo      `json:"tipoFlujo" binding:"required,enum"`
	Tipo            models.Tipo           `json:"tipo" binding:"required,enum"`
	Comportamiento  models.Comportamiento `json:"comportamiento" binding:"required,enum"`
	Naturaleza      models.Naturaleza     `json:"naturaleza" binding:"required,enum"`
	ValoresAnuales  []float64             `json:"valoresAnuales" binding:"required"`
	CategoriaID     *string               `json:"categoriaId"`
	ItemFlujoBaseID *string               `json:"itemFlujoBaseId"`
}

func (r flujoRequest) toModel(id string) *models.FlujoFinanciero {
	return &models.FlujoFinanciero{
		ID:              id,
		ProyectoID:      r.ProyectoID,
		Nombre:          r.Nombre,
		Descripcion:     r.Descripcion,
		TipoFlujo:       r.TipoFlujo,
		Tipo:            r.Tipo,
		Comportamiento:  r.Comportamiento,
		Naturaleza:      r.Naturaleza,
		ValoresAnuales:  r.ValoresAnuales,
		CategoriaID:     r.CategoriaID,
		ItemFlujoBaseID: r.ItemFlujoBaseID,
	}
}

func (h *FlujoHandler) Create(c *gin.Context) {
	var req flujoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	proyecto, err := ownedProject(c.Request.Context(), h.proyectos, req.ProyectoID, c.GetString(userIDKey))
	if err != nil {
		respondError(c, h.logger, "flujos.Create", err)
		return
	}

	flujo := req.toModel(uuid.NewString())
	if err := services.PrepararFlujo(flujo, proyecto); err != nil {
		respondError(c, h.logger, "flujos.Create", err)
		return
	}

	if err := h.flujos.Create(c.Request.Context(), flujo); err != nil {
		respondError(c, h.logger, "flujos.Create", err)
		return
	}
	c.JSON(http.StatusCreated, flujo)
}

func (h *FlujoHandler) Get(c *gin.Context) {
	flujo, _, err := h.ownedFlujo(c)
	if err != nil {
		respondError(c, h.logger, "flujos.Get", err)
		return
	}
	c.JSON(http.StatusOK, flujo)
}

// Update reemplaza el flujo completo; el proyecto no puede cambiar
func (h *FlujoHandler) Update(c *gin.Context) {
	var req flujoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	actual, proyecto, err := h.ownedFlujo(c)
	if err != nil {
		respondError(c, h.logger, "flujos.Update", err)
		return
	}
	if req.ProyectoID != actual.ProyectoID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se puede mover un flujo a otro proyecto"})
		return
	}

	flujo := req.toModel(actual.ID)
	flujo.CreatedAt = actual.CreatedAt
	if err := services.PrepararFlujo(flujo, proyecto); err != nil {
		respondError(c, h.logger, "flujos.Update", err)
		return
	}

	if err := h.flujos.Update(c.Request.Context(), flujo); err != nil {
		respondError(c, h.logger, "flujos.Update", err)
		return
	}
	c.JSON(http.StatusOK, flujo)
}

func (h *FlujoHandler) Delete(c *gin.Context) {
	flujo, _, err := h.ownedFlujo(c)
	if err != nil {
		respondError(c, h.logger, "flujos.Delete", err)
		return
	}

	if err := h.flujos.Delete(c.Request.Context(), flujo.ID); err != nil {
		respondError(c, h.logger, "flujos.Delete", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Flujo eliminado"})
}

// ownedFlujo carga el flujo del parámetro :id y el proyecto al que pertenece,
// verificando que el proyecto sea del usuario
func (h *FlujoHandler) ownedFlujo(c *gin.Context) (*models.FlujoFinanciero, *models.Proyecto, error) {
	flujo, err := h.flujos.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		return nil, nil, err
	}
	proyecto, err := ownedProject(c.Request.Context(), h.proyectos, flujo.ProyectoID, c.GetString(userIDKey))
	if err != nil {
		return nil, nil, err
	}
	return flujo, proyecto, nil
}
