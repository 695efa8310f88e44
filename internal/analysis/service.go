package analysis

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/AgusMolinaCode/Evaluacion_Api/internal/metrics"
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/models"
	"go.uber.org/zap"
)

// Service arma el análisis financiero completo de un proyecto. No guarda
// estado entre llamadas y puede usarse desde varias goroutines.
type Service struct {
	logger *zap.Logger
	solver *IRRSolver
}

// NewService crea el servicio. Con solver nil se usa la configuración por
// defecto del IRRSolver.
func NewService(logger *zap.Logger, solver *IRRSolver) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if solver == nil {
		solver = NewIRRSolver(DefaultIRRSolverConfig())
	}
	return &Service{logger: logger, solver: solver}
}

// Compute calcula VAN, TIR, período de recuperación y las series de flujos
// netos y acumulados del proyecto. Los flujos deben venir cargados.
func (s *Service) Compute(proyecto *models.Proyecto) (*models.Analisis, error) {
	start := time.Now()
	analisis, err := s.compute(proyecto)
	metrics.ObserveAnalysis(time.Since(start), ErrorKind(err))
	if err != nil {
		return nil, err
	}
	return analisis, nil
}

func (s *Service) compute(proyecto *models.Proyecto) (*models.Analisis, error) {
	if proyecto == nil {
		return nil, &ValidationError{Campo: "proyecto", Motivo: "no puede ser nulo"}
	}
	if err := validateProject(proyecto); err != nil {
		return nil, err
	}

	netos, err := NetCashFlows(proyecto.HorizonteAnalisis, proyecto.Flujos)
	if err != nil {
		return nil, err
	}

	van, err := NPV(netos, proyecto.TasaDescuento/100)
	if err != nil {
		return nil, err
	}

	tir, err := s.solver.Solve(netos)
	if err != nil {
		return nil, err
	}
	if tir.Unconverged > 0 {
		metrics.IRRNonConvergence.Add(float64(tir.Unconverged))
		s.logger.Warn("descartando raíces de la TIR que no convergen",
			zap.String("op", "analysis.Compute"),
			zap.String("proyectoId", proyecto.ID),
			zap.Int("intervalos", tir.Unconverged),
			zap.Error(ErrNonConvergence),
		)
	}

	analisis := &models.Analisis{
		ValorActualNeto:      van,
		TasaInternaRetorno:   tir.Rate,
		PeriodoRecuperacion:  Payback(netos),
		FlujosCajaNetos:      netos,
		FlujosCajaAcumulados: CumulativeCashFlows(netos),
		EsViable:             van > 0,
		TirSuperaTasa:        tir.Rate != nil && *tir.Rate > proyecto.TasaDescuento,
	}

	s.logger.Debug("análisis calculado",
		zap.String("op", "analysis.Compute"),
		zap.String("proyectoId", proyecto.ID),
		zap.Int("horizonte", proyecto.HorizonteAnalisis),
		zap.Int("flujos", len(proyecto.Flujos)),
		zap.Float64("van", van),
		zap.Int("raices", len(tir.Roots)),
	)
	return analisis, nil
}

func validateProject(proyecto *models.Proyecto) error {
	if proyecto.HorizonteAnalisis < models.HorizonteMinimo {
		return &ValidationError{
			Campo:  "horizonteAnalisis",
			Motivo: fmt.Sprintf("debe ser al menos %d, se recibió %d", models.HorizonteMinimo, proyecto.HorizonteAnalisis),
		}
	}
	if math.IsNaN(proyecto.TasaDescuento) || math.IsInf(proyecto.TasaDescuento, 0) || proyecto.TasaDescuento < 0 {
		return &ValidationError{
			Campo:  "tasaDescuento",
			Motivo: fmt.Sprintf("debe ser un porcentaje no negativo, se recibió %g", proyecto.TasaDescuento),
		}
	}
	return nil
}

// ErrorKind clasifica un error del motor para métricas y logs
func ErrorKind(err error) string {
	var integrity *DataIntegrityError
	var rate *InvalidRateError
	var validation *ValidationError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &integrity):
		return "data_integrity"
	case errors.As(err, &rate):
		return "invalid_rate"
	case errors.As(err, &validation):
		return "validation"
	default:
		return "internal"
	}
}
