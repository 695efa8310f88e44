package analysis

// Payback devuelve el año, con fracción, en que el flujo acumulado deja de
// ser negativo. Dentro del año de recuperación se interpola linealmente
// suponiendo que el flujo neto se distribuye de forma pareja. Devuelve nil
// si la inversión no se recupera dentro del horizonte.
func Payback(netos []float64) *float64 {
	if len(netos) == 0 {
		return nil
	}

	acumulados := CumulativeCashFlows(netos)
	if acumulados[0] >= 0 {
		cero := 0.0
		return &cero
	}

	for k := 1; k < len(acumulados); k++ {
		if acumulados[k] < 0 || acumulados[k-1] >= 0 {
			continue
		}
		// un flujo nulo no recupera nada dentro del año
		if netos[k] <= 0 {
			continue
		}
		periodo := float64(k-1) + (-acumulados[k-1] / netos[k])
		return &periodo
	}
	return nil
}
