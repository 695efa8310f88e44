package middleware

import (
	"context"
	"net/http"

	"github.com/AgusMolinaCode/Evaluacion_Api/internal/models"
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProyectoHandler struct {
	proyectos repository.ProyectoStore
	logger    *zap.Logger
}

func NewProyectoHandler(proyectos repository.ProyectoStore, logger *zap.Logger) *ProyectoHandler {
	return &ProyectoHandler{proyectos: proyectos, logger: logger}
}

type crearProyectoRequest struct {
	Nombre            string   `json:"nombre" binding:"required,min=1,max=100"`
	Descripcion       string   `json:"descripcion" binding:"max=500"`
	HorizonteAnalisis int      `json:"horizonteAnalisis" binding:"required,min=1,max=20"`
	TasaDescuento     *float64 `json:"tasaDescuento" binding:"required,min=0,max=100"`
}

// los campos nulos no se modifican
type actualizarProyectoRequest struct {
	Nombre            *string  `json:"nombre" binding:"omitempty,min=1,max=100"`
	Descripcion       *string  `json:"descripcion" binding:"omitempty,max=500"`
	HorizonteAnalisis *int     `json:"horizonteAnalisis" binding:"omitempty,min=1,max=20"`
	TasaDescuento     *float64 `json:"tasaDescuento" binding:"omitempty,min=0,max=100"`
}

// List devuelve los proyectos del usuario, sin flujos
func (h *ProyectoHandler) List(c *gin.Context) {
	proyectos, err := h.proyectos.ListByUser(c.Request.Context(), c.GetString(userIDKey))
	if err != nil {
		respondError(c, h.logger, "proyectos.List", err)
		return
	}
	c.JSON(http.StatusOK, proyectos)
}

func (h *ProyectoHandler) Create(c *gin.Context) {
	var req crearProyectoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	proyecto := &models.Proyecto{
		ID:                uuid.NewString(),
		UserID:            c.GetString(userIDKey),
		Nombre:            req.Nombre,
		Descripcion:       req.Descripcion,
		HorizonteAnalisis: req.HorizonteAnalisis,
		TasaDescuento:     *req.TasaDescuento,
	}
	if err := h.proyectos.Create(c.Request.Context(), proyecto); err != nil {
		respondError(c, h.logger, "proyectos.Create", err)
		return
	}

	proyecto.Flujos = []models.FlujoFinanciero{}
	c.JSON(http.StatusCreated, proyecto)
}

// Get devuelve el proyecto con todos sus flujos
func (h *ProyectoHandler) Get(c *gin.Context) {
	proyecto, err := ownedProject(c.Request.Context(), h.proyectos, c.Param("id"), c.GetString(userIDKey))
	if err != nil {
		respondError(c, h.logger, "proyectos.Get", err)
		return
	}
	c.JSON(http.StatusOK, proyecto)
}

func (h *ProyectoHandler) Update(c *gin.Context) {
	var req actualizarProyectoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	proyecto, err := ownedProject(c.Request.Context(), h.proyectos, c.Param("id"), c.GetString(userIDKey))
	if err != nil {
		respondError(c, h.logger, "proyectos.Update", err)
		return
	}

	if req.HorizonteAnalisis != nil && *req.HorizonteAnalisis != proyecto.HorizonteAnalisis {
		// los flujos guardados tienen un valor por año del horizonte anterior
		if len(proyecto.Flujos) > 0 {
			respondError(c, h.logger, "proyectos.Update", models.ErrHorizonteConFlujo)
			return
		}
		proyecto.HorizonteAnalisis = *req.HorizonteAnalisis
	}
	if req.Nombre != nil {
		proyecto.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		proyecto.Descripcion = *req.Descripcion
	}
	if req.TasaDescuento != nil {
		proyecto.TasaDescuento = *req.TasaDescuento
	}

	if err := h.proyectos.Update(c.Request.Context(), proyecto); err != nil {
		respondError(c, h.logger, "proyectos.Update", err)
		return
	}
	c.JSON(http.StatusOK, proyecto)
}

func (h *ProyectoHandler) Delete(c *gin.Context) {
	proyecto, err := ownedProject(c.Request.Context(), h.proyectos, c.Param("id"), c.GetString(userIDKey))
	if err != nil {
		respondError(c, h.logger, "proyectos.Delete", err)
		return
	}

	if err := h.proyectos.Delete(c.Request.Context(), proyecto.ID); err != nil {
		respondError(c, h.logger, "proyectos.Delete", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Proyecto eliminado"})
}

// ownedProject carga el proyecto con sus flujos y verifica que pertenezca al
// usuario
func ownedProject(ctx context.Context, proyectos repository.ProyectoStore, id, userID string) (*models.Proyecto, error) {
	proyecto, err := proyectos.GetWithFlows(ctx, id)
	if err != nil {
		return nil, err
	}
	if proyecto.UserID != userID {
		return nil, models.ErrForbidden
	}
	return proyecto, nil
}
