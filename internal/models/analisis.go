package models

// Analisis es el resultado de la evaluación financiera de un proyecto.
// Se recalcula en cada solicitud y nunca se persiste.
type Analisis struct {
	ValorActualNeto      float64   `json:"valorActualNeto"`
	TasaInternaRetorno   *float64  `json:"tasaInternaRetorno"`  // porcentaje, null si no existe
	PeriodoRecuperacion  *float64  `json:"periodoRecuperacion"` // años, null si no se recupera
	FlujosCajaNetos      []float64 `json:"flujosCajaNetos"`
	FlujosCajaAcumulados []float64 `json:"flujosCajaAcumulados"`
	EsViable             bool      `json:"esViable"`      // VAN > 0
	TirSuperaTasa        bool      `json:"tirSuperaTasa"` // TIR > tasa de descuento
}
