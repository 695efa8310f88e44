package middleware

import (
	"net/http"
	"strconv"

	"github.com/AgusMolinaCode/Evaluacion_Api/internal/models"
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BibliotecaHandler struct {
	service *services.BibliotecaService
	logger  *zap.Logger
}

func NewBibliotecaHandler(service *services.BibliotecaService, logger *zap.Logger) *BibliotecaHandler {
	return &BibliotecaHandler{service: service, logger: logger}
}

func (h *BibliotecaHandler) ListCategorias(c *gin.Context) {
	categorias, err := h.service.ListCategorias(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "biblioteca.ListCategorias", err)
		return
	}
	c.JSON(http.StatusOK, categorias)
}

func (h *BibliotecaHandler) ListItems(c *gin.Context) {
	items, err := h.service.ListItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "biblioteca.ListItems", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ExpandItem devuelve los valores anuales que genera la plantilla para el
// horizonte pedido, listos para enviar a POST /flujos
func (h *BibliotecaHandler) ExpandItem(c *gin.Context) {
	horizonte, err := strconv.Atoi(c.Query("horizonte"))
	if err != nil || horizonte < models.HorizonteMinimo || horizonte > models.HorizonteMaximo {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El parámetro horizonte debe ser un entero entre 1 y 20"})
		return
	}

	item, valores, err := h.service.ExpandItem(c.Request.Context(), c.Param("id"), horizonte)
	if err != nil {
		respondError(c, h.logger, "biblioteca.ExpandItem", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item":           item,
		"valoresAnuales": valores,
	})
}
