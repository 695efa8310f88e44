package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AgusMolinaCode/Evaluacion_Api/internal/analysis"
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/config"
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/database"
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/logger"
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/metrics"
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/middleware"
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/repository"
	routes "github.com/AgusMolinaCode/Evaluacion_Api/internal/server"
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error al cargar la configuración: %v", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel, cfg.LogFormat, cfg.LogOutputFile)
	if err != nil {
		log.Fatalf("Error al crear el logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	if err := run(cfg, zapLogger); err != nil {
		zapLogger.Fatal("la API terminó con error", zap.Error(err))
	}
}

func run(cfg *config.Config, zapLogger *zap.Logger) error {
	// los montos de la biblioteca viajan como números en el JSON
	decimal.MarshalJSONWithoutQuotes = true
	metrics.InitRegistry()
	if err := middleware.RegisterValidations(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.InitDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db, zapLogger); err != nil {
		return err
	}

	userRepo := repository.NewUserRepository(db)
	proyectoRepo := repository.NewProyectoRepository(db)
	flujoRepo := repository.NewFlujoRepository(db)
	bibliotecaRepo := repository.NewBibliotecaRepository(db)

	analysisService := analysis.NewService(zapLogger, analysis.NewIRRSolver(analysis.DefaultIRRSolverConfig()))
	bibliotecaService := services.NewBibliotecaService(bibliotecaRepo, cfg.LibraryCacheTTL, zapLogger)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer rateLimiter.Stop()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(zapLogger))

	// Configurar CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = true
	corsConfig.ExposeHeaders = []string{"Content-Length"}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.RateLimitMiddleware(rateLimiter))

	routes.RegisterRoutes(router, routes.Handlers{
		Auth:       middleware.NewAuthHandler(userRepo, cfg.JWTSecret, cfg.JWTTTL, zapLogger),
		Proyectos:  middleware.NewProyectoHandler(proyectoRepo, zapLogger),
		Flujos:     middleware.NewFlujoHandler(flujoRepo, proyectoRepo, zapLogger),
		Analisis:   middleware.NewAnalisisHandler(proyectoRepo, analysisService, zapLogger),
		Biblioteca: middleware.NewBibliotecaHandler(bibliotecaService, zapLogger),
	})

	server := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		zapLogger.Info("API escuchando", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		zapLogger.Info("apagando la API", zap.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	zapLogger.Info("API detenida")
	return nil
}
