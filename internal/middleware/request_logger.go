package middleware

import (
	"time"

	"github.com/AgusMolinaCode/Evaluacion_Api/internal/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger registra cada solicitud con zap y alimenta las métricas HTTP.
// Las rutas se etiquetan con el patrón registrado para no multiplicar series
// por cada id.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "sin_ruta"
		}
		status := c.Writer.Status()
		metrics.ObserveRequest(c.Request.Method, route, status, duration)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.ClientIP()),
		}
		if userID := c.GetString(userIDKey); userID != "" {
			fields = append(fields, zap.String("userId", userID))
		}

		switch {
		case status >= 500:
			logger.Error("solicitud", fields...)
		case status >= 400:
			logger.Warn("solicitud", fields...)
		default:
			logger.Info("solicitud", fields...)
		}
	}
}
