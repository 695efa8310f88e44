package routes

import (
	"net/http"

	"github.com/AgusMolinaCode/Evaluacion_Api/internal/metrics"
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers agrupa los handlers que expone la API
type Handlers struct {
	Auth       *middleware.AuthHandler
	Proyectos  *middleware.ProyectoHandler
	Flujos     *middleware.FlujoHandler
	Analisis   *middleware.AnalisisHandler
	Biblioteca *middleware.BibliotecaHandler
}

func RegisterRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.GET("/me", h.Auth.AuthMiddleware(), h.Auth.Me)
	}

	protected := router.Group("/")
	protected.Use(h.Auth.AuthMiddleware())
	{
		protected.GET("/proyectos", h.Proyectos.List)
		protected.POST("/proyectos", h.Proyectos.Create)
		protected.GET("/proyectos/:id", h.Proyectos.Get)
		protected.PATCH("/proyectos/:id", h.Proyectos.Update)
		protected.DELETE("/proyectos/:id", h.Proyectos.Delete)

		protected.POST("/flujos", h.Flujos.Create)
		protected.GET("/flujos/:id", h.Flujos.Get)
		protected.PATCH("/flujos/:id", h.Flujos.Update)
		protected.DELETE("/flujos/:id", h.Flujos.Delete)

		protected.GET("/analisis/:projectId", h.Analisis.Get)

		protected.GET("/biblioteca/categorias", h.Biblioteca.ListCategorias)
		protected.GET("/biblioteca/categorias/:id/items", h.Biblioteca.ListItems)
		protected.POST("/biblioteca/items/:id/valores", h.Biblioteca.ExpandItem)
	}
}
