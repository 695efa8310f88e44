package analysis

import "math"

// NPV calcula el valor actual neto de la serie a la tasa indicada como
// fracción decimal (0.12 para 12%). El año 0 no se descuenta.
func NPV(netos []float64, tasa float64) (float64, error) {
	valores, err := PresentValues(netos, tasa)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, v := range valores {
		total += v
	}
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, &InvalidRateError{Tasa: tasa, Motivo: "el valor actual neto no es finito"}
	}
	return total, nil
}

// PresentValues devuelve el valor presente de cada año de la serie
func PresentValues(netos []float64, tasa float64) ([]float64, error) {
	if math.IsNaN(tasa) || math.IsInf(tasa, 0) {
		return nil, &InvalidRateError{Tasa: tasa, Motivo: "la tasa no es un número finito"}
	}
	if tasa <= -1 {
		return nil, &InvalidRateError{Tasa: tasa, Motivo: "el factor de descuento (1+r) debe ser positivo"}
	}
	if err := validateSeries(netos); err != nil {
		return nil, err
	}

	valores := make([]float64, len(netos))
	factor := 1.0
	for t, neto := range netos {
		if t > 0 {
			factor *= 1 + tasa
		}
		valores[t] = neto / factor
		if math.IsNaN(valores[t]) || math.IsInf(valores[t], 0) {
			return nil, &InvalidRateError{Tasa: tasa, Motivo: "el descuento produce un valor no finito"}
		}
	}
	return valores, nil
}

// npvAndDerivative evalúa VAN(r) y dVAN/dr sin validar la entrada
func npvAndDerivative(netos []float64, tasa float64) (float64, float64) {
	base := 1 + tasa
	factor := 1.0
	van, derivada := 0.0, 0.0
	for t, neto := range netos {
		if t > 0 {
			factor *= base
		}
		van += neto / factor
		derivada -= float64(t) * neto / (factor * base)
	}
	return van, derivada
}
