package services

import (
	"context"
	"fmt"
	"time"

	"github.com/AgusMolinaCode/Evaluacion_Api/internal/models"
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/repository"
	cache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const categoriasKey = "categorias"

// mesesPorAnio convierte montos mensuales en anuales
var mesesPorAnio = decimal.NewFromInt(12)

// BibliotecaService sirve la biblioteca de plantillas de flujos. Las
// categorías y los ítems cambian poco, por eso se guardan en memoria.
type BibliotecaService struct {
	repo   repository.BibliotecaStore
	cache  *cache.Cache
	logger *zap.Logger
}

// NewBibliotecaService crea el servicio con el TTL de caché indicado
func NewBibliotecaService(repo repository.BibliotecaStore, ttl time.Duration, logger *zap.Logger) *BibliotecaService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BibliotecaService{
		repo:   repo,
		cache:  cache.New(ttl, 2*ttl),
		logger: logger,
	}
}

func (s *BibliotecaService) ListCategorias(ctx context.Context) ([]models.CategoriaFlujo, error) {
	if cached, ok := s.cache.Get(categoriasKey); ok {
		return cached.([]models.CategoriaFlujo), nil
	}

	categorias, err := s.repo.ListCategorias(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(categoriasKey, categorias)
	return categorias, nil
}

func (s *BibliotecaService) ListItems(ctx context.Context, categoriaID string) ([]models.ItemFlujoBase, error) {
	key := "items:" + categoriaID
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]models.ItemFlujoBase), nil
	}

	items, err := s.repo.ListItems(ctx, categoriaID)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(key, items)
	return items, nil
}

// ExpandItem obtiene la plantilla y la convierte en valores anuales
func (s *BibliotecaService) ExpandItem(ctx context.Context, itemID string, horizonte int) (*models.ItemFlujoBase, []float64, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}

	valores, err := ExpandirPlantilla(item, horizonte)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Debug("plantilla expandida",
		zap.String("op", "services.ExpandItem"),
		zap.String("itemId", itemID),
		zap.String("frecuencia", string(item.Frecuencia)),
		zap.Int("horizonte", horizonte),
	)
	return item, valores, nil
}

// ExpandirPlantilla reparte el monto sugerido en el horizonte según la
// frecuencia: UNICO en el año 0, ANUAL cada año desde el 1 y MENSUAL doce
// veces el monto cada año desde el 1. El signo sigue al tipo de flujo.
func ExpandirPlantilla(item *models.ItemFlujoBase, horizonte int) ([]float64, error) {
	if horizonte < models.HorizonteMinimo || horizonte > models.HorizonteMaximo {
		return nil, fmt.Errorf("horizonte fuera de rango [%d, %d]: %d", models.HorizonteMinimo, models.HorizonteMaximo, horizonte)
	}

	monto := item.MontoSugerido.Abs()
	if item.TipoFlujo == models.TipoFlujoEgreso {
		monto = monto.Neg()
	}

	valores := make([]float64, horizonte)
	switch item.Frecuencia {
	case models.FrecuenciaUnico:
		valores[0] = monto.InexactFloat64()
	case models.FrecuenciaAnual:
		for i := 1; i < horizonte; i++ {
			valores[i] = monto.InexactFloat64()
		}
	case models.FrecuenciaMensual:
		anual := monto.Mul(mesesPorAnio).InexactFloat64()
		for i := 1; i < horizonte; i++ {
			valores[i] = anual
		}
	default:
		return nil, fmt.Errorf("frecuencia desconocida %q en el ítem %s", item.Frecuencia, item.ID)
	}
	return valores, nil
}
