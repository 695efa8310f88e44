package analysis

import (
	"errors"
	"fmt"
)

// DataIntegrityError indica que los datos del proyecto no permiten calcular
// el análisis, por ejemplo un flujo con más o menos valores que años tiene
// el horizonte.
type DataIntegrityError struct {
	FlujoID  string
	Nombre   string
	Esperado int
	Obtenido int
	Motivo   string
}

func (e *DataIntegrityError) Error() string {
	if e.Motivo != "" {
		return "datos inconsistentes: " + e.Motivo
	}
	return fmt.Sprintf("datos inconsistentes: el flujo %q (%s) tiene %d valores anuales y el horizonte es de %d años",
		e.Nombre, e.FlujoID, e.Obtenido, e.Esperado)
}

// InvalidRateError indica una tasa con la que el descuento no está definido
type InvalidRateError struct {
	Tasa   float64
	Motivo string
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("tasa de descuento inválida (%g): %s", e.Tasa, e.Motivo)
}

// ValidationError indica parámetros del proyecto fuera de su dominio
type ValidationError struct {
	Campo  string
	Motivo string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s inválido: %s", e.Campo, e.Motivo)
}

// ErrNonConvergence se devuelve cuando el refinamiento de una raíz no alcanza
// la tolerancia dentro del límite de iteraciones. El servicio lo traduce en
// una TIR nula.
var ErrNonConvergence = errors.New("la TIR no converge dentro del límite de iteraciones")

// IsInputError informa si err proviene de datos de entrada incorrectos
func IsInputError(err error) bool {
	var integrity *DataIntegrityError
	var rate *InvalidRateError
	var validation *ValidationError
	return errors.As(err, &integrity) || errors.As(err, &rate) || errors.As(err, &validation)
}
