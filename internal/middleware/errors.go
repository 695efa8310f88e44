package middleware

import (
	"errors"
	"net/http"

	"github.com/AgusMolinaCode/Evaluacion_Api/internal/analysis"
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError traduce los errores de dominio a respuestas HTTP. Los errores
// no reconocidos se registran y se responden con un mensaje genérico.
func respondError(c *gin.Context, logger *zap.Logger, op string, err error) {
	switch {
	case analysis.IsInputError(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Los datos del proyecto no permiten calcular el análisis",
			"detalle": err.Error(),
		})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Recurso no encontrado"})
	case errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes acceso a este recurso"})
	case errors.Is(err, models.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": "El email ya está registrado"})
	case errors.Is(err, models.ErrHorizonteConFlujo):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("error interno",
			zap.String("op", op),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
	}
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
