package middleware

import (
	"net/http"

	"github.com/AgusMolinaCode/Evaluacion_Api/internal/analysis"
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AnalisisHandler calcula el análisis financiero a pedido. El resultado no se
// guarda: cada GET lo recalcula con los flujos actuales.
type AnalisisHandler struct {
	proyectos repository.ProyectoStore
	service   *analysis.Service
	logger    *zap.Logger
}

func NewAnalisisHandler(proyectos repository.ProyectoStore, service *analysis.Service, logger *zap.Logger) *AnalisisHandler {
	return &AnalisisHandler{proyectos: proyectos, service: service, logger: logger}
}

func (h *AnalisisHandler) Get(c *gin.Context) {
	proyecto, err := ownedProject(c.Request.Context(), h.proyectos, c.Param("projectId"), c.GetString(userIDKey))
	if err != nil {
		respondError(c, h.logger, "analisis.Get", err)
		return
	}

	analisis, err := h.service.Compute(proyecto)
	if err != nil {
		if analysis.IsInputError(err) {
			h.logger.Info("análisis rechazado",
				zap.String("op", "analisis.Get"),
				zap.String("proyectoId", proyecto.ID),
				zap.String("motivo", analysis.ErrorKind(err)),
				zap.Error(err),
			)
		}
		respondError(c, h.logger, "analisis.Get", err)
		return
	}
	c.JSON(http.StatusOK, analisis)
}
