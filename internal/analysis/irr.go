package analysis

import (
	"math"
)

// IRRSolverConfig define el dominio de búsqueda y los límites del
// refinamiento de raíces.
type IRRSolverConfig struct {
	MinRate       float64 // tasa mínima explorada, como fracción
	MaxRate       float64 // tasa máxima explorada, como fracción
	Steps         int     // cantidad de subintervalos del barrido
	Tolerance     float64 // tolerancia sobre la tasa
	MaxIterations int     // iteraciones máximas por raíz
}

// DefaultIRRSolverConfig barre de -99% a 1000% en 1000 pasos
func DefaultIRRSolverConfig() IRRSolverConfig {
	return IRRSolverConfig{
		MinRate:       -0.99,
		MaxRate:       10.0,
		Steps:         1000,
		Tolerance:     1e-9,
		MaxIterations: 100,
	}
}

// IRRResult detalla el resultado de la búsqueda de la TIR
type IRRResult struct {
	Rate          *float64  // TIR elegida en porcentaje, nil si no hay
	Roots         []float64 // raíces encontradas, como fracción y en orden ascendente
	Unconverged   int       // intervalos con cambio de signo que no convergieron
	SignChanges   int       // cambios de signo en la serie de flujos
	ScannedRanges int       // intervalos del barrido evaluados
}

// IRRSolver busca la tasa que anula el VAN de una serie de flujos netos
type IRRSolver struct {
	cfg IRRSolverConfig
}

// NewIRRSolver crea un solver. Los campos no positivos de cfg toman el valor
// por defecto.
func NewIRRSolver(cfg IRRSolverConfig) *IRRSolver {
	def := DefaultIRRSolverConfig()
	if cfg.Steps <= 0 {
		cfg.Steps = def.Steps
	}
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = def.Tolerance
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = def.MaxIterations
	}
	if cfg.MinRate <= -1 || cfg.MaxRate <= cfg.MinRate {
		cfg.MinRate = def.MinRate
		cfg.MaxRate = def.MaxRate
	}
	return &IRRSolver{cfg: cfg}
}

// IRR calcula la TIR en porcentaje con la configuración por defecto
func IRR(netos []float64) (*float64, error) {
	result, err := NewIRRSolver(DefaultIRRSolverConfig()).Solve(netos)
	if err != nil {
		return nil, err
	}
	return result.Rate, nil
}

// Solve barre el dominio de tasas, acota cada cambio de signo del VAN y
// refina la raíz con Newton protegido por bisección.
//
// Con varias raíces se elige la menor no negativa; si todas son negativas,
// la más cercana a cero. Una serie de menos de dos años o sin cambios de
// signo no tiene TIR. Solo devuelve error ante datos no numéricos.
func (s *IRRSolver) Solve(netos []float64) (IRRResult, error) {
	var result IRRResult
	if err := validateSeries(netos); err != nil {
		return result, err
	}

	result.SignChanges = countSignChanges(netos)
	if len(netos) < 2 || result.SignChanges == 0 {
		return result, nil
	}

	paso := (s.cfg.MaxRate - s.cfg.MinRate) / float64(s.cfg.Steps)
	tasaEn := func(i int) float64 {
		if i == s.cfg.Steps {
			return s.cfg.MaxRate
		}
		return s.cfg.MinRate + float64(i)*paso
	}

	anterior := tasaEn(0)
	vanAnterior, _ := npvAndDerivative(netos, anterior)
	for i := 1; i <= s.cfg.Steps; i++ {
		actual := tasaEn(i)
		vanActual, _ := npvAndDerivative(netos, actual)
		result.ScannedRanges++

		switch {
		case !finite(vanAnterior) || !finite(vanActual):
		case vanAnterior == 0:
			result.Roots = append(result.Roots, anterior)
		case vanActual != 0 && math.Signbit(vanAnterior) != math.Signbit(vanActual):
			raiz, err := s.refine(netos, anterior, actual, vanAnterior)
			if err != nil {
				result.Unconverged++
			} else {
				result.Roots = append(result.Roots, raiz)
			}
		}

		anterior, vanAnterior = actual, vanActual
	}
	if vanAnterior == 0 {
		result.Roots = append(result.Roots, anterior)
	}

	if raiz, ok := s.selectRoot(result.Roots); ok {
		porcentaje := raiz * 100
		result.Rate = &porcentaje
	}
	return result, nil
}

// refine busca la raíz dentro de [lo, hi] sabiendo que VAN(lo) = vanLo y que
// el VAN cambia de signo en el intervalo.
func (s *IRRSolver) refine(netos []float64, lo, hi, vanLo float64) (float64, error) {
	tasa := (lo + hi) / 2
	for i := 0; i < s.cfg.MaxIterations; i++ {
		van, derivada := npvAndDerivative(netos, tasa)
		if !finite(van) {
			return 0, ErrNonConvergence
		}
		if van == 0 {
			return tasa, nil
		}

		// achica el intervalo conservando el cambio de signo
		if math.Signbit(van) == math.Signbit(vanLo) {
			lo, vanLo = tasa, van
		} else {
			hi = tasa
		}

		siguiente := tasa - van/derivada
		if derivada == 0 || !finite(siguiente) || siguiente <= lo || siguiente >= hi {
			siguiente = (lo + hi) / 2
		}

		if math.Abs(siguiente-tasa) < s.cfg.Tolerance || hi-lo < s.cfg.Tolerance {
			return siguiente, nil
		}
		tasa = siguiente
	}
	return 0, ErrNonConvergence
}

func (s *IRRSolver) selectRoot(raices []float64) (float64, bool) {
	if len(raices) == 0 {
		return 0, false
	}

	mejor := math.NaN()
	for _, r := range raices {
		if math.Abs(r) < s.cfg.Tolerance {
			r = 0
		}
		if r >= 0 && (math.IsNaN(mejor) || r < mejor) {
			mejor = r
		}
	}
	if !math.IsNaN(mejor) {
		return mejor, true
	}

	mejor = raices[0]
	for _, r := range raices[1:] {
		if math.Abs(r) < math.Abs(mejor) {
			mejor = r
		}
	}
	return mejor, true
}

// countSignChanges cuenta los cambios de signo ignorando los ceros
func countSignChanges(netos []float64) int {
	cambios := 0
	signo := 0
	for _, v := range netos {
		actual := 0
		switch {
		case v > 0:
			actual = 1
		case v < 0:
			actual = -1
		}
		if actual == 0 {
			continue
		}
		if signo != 0 && actual != signo {
			cambios++
		}
		signo = actual
	}
	return cambios
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
