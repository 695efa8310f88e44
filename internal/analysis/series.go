package analysis

import (
	"fmt"
	"math"

	"github.com/AgusMolinaCode/Evaluacion_Api/internal/models"
	"github.com/shopspring/decimal"
)

// NetCashFlows suma, año por año, los valores de todos los flujos del
// proyecto. Un flujo cuya cantidad de valores no coincide con el horizonte
// produce un *DataIntegrityError: no se rellena con ceros ni se trunca.
//
// La suma se hace en decimal para que el resultado no dependa del orden de
// los flujos.
func NetCashFlows(horizonte int, flujos []models.FlujoFinanciero) ([]float64, error) {
	if horizonte < models.HorizonteMinimo {
		return nil, &DataIntegrityError{Motivo: fmt.Sprintf("horizonte de análisis %d menor a %d", horizonte, models.HorizonteMinimo)}
	}

	totales := make([]decimal.Decimal, horizonte)
	for _, flujo := range flujos {
		if len(flujo.ValoresAnuales) != horizonte {
			return nil, &DataIntegrityError{
				FlujoID:  flujo.ID,
				Nombre:   flujo.Nombre,
				Esperado: horizonte,
				Obtenido: len(flujo.ValoresAnuales),
			}
		}
		for i, valor := range flujo.ValoresAnuales {
			if math.IsNaN(valor) || math.IsInf(valor, 0) {
				return nil, &DataIntegrityError{
					FlujoID: flujo.ID,
					Nombre:  flujo.Nombre,
					Motivo:  fmt.Sprintf("el flujo %q tiene un valor no numérico en el año %d", flujo.Nombre, i),
				}
			}
			totales[i] = totales[i].Add(decimal.NewFromFloat(valor))
		}
	}

	return toFloats(totales), nil
}

// CumulativeCashFlows devuelve la suma acumulada de la serie de flujos netos
func CumulativeCashFlows(netos []float64) []float64 {
	acumulados := make([]decimal.Decimal, len(netos))
	total := decimal.Zero
	for i, valor := range netos {
		total = total.Add(decimal.NewFromFloat(valor))
		acumulados[i] = total
	}
	return toFloats(acumulados)
}

func toFloats(valores []decimal.Decimal) []float64 {
	resultado := make([]float64, len(valores))
	for i, v := range valores {
		resultado[i] = v.InexactFloat64()
	}
	return resultado
}

func validateSeries(netos []float64) error {
	for i, valor := range netos {
		if math.IsNaN(valor) || math.IsInf(valor, 0) {
			return &DataIntegrityError{Motivo: fmt.Sprintf("flujo neto no numérico en el año %d", i)}
		}
	}
	return nil
}
