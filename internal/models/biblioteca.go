package models

import "github.com/shopspring/decimal"

// Frecuencia indica cómo se reparte el monto sugerido de una plantilla
type Frecuencia string

const (
	FrecuenciaUnico   Frecuencia = "UNICO"   // solo en el año 0
	FrecuenciaAnual   Frecuencia = "ANUAL"   // cada año desde el año 1
	FrecuenciaMensual Frecuencia = "MENSUAL" // 12 veces el monto cada año desde el año 1
)

// CategoriaFlujo agrupa plantillas de flujos de la biblioteca
type CategoriaFlujo struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// ItemFlujoBase es una plantilla reutilizable para crear flujos financieros
type ItemFlujoBase struct {
	ID             string          `json:"id"`
	CategoriaID    string          `json:"categoriaId"`
	Nombre         string          `json:"nombre"`
	Descripcion    string          `json:"descripcion"`
	TipoFlujo      TipoFlujo       `json:"tipoFlujo"`
	Tipo           Tipo            `json:"tipo"`
	Comportamiento Comportamiento  `json:"comportamiento"`
	Naturaleza     Naturaleza      `json:"naturaleza"`
	MontoSugerido  decimal.Decimal `json:"montoSugerido"`
	Frecuencia     Frecuencia      `json:"frecuencia"`
}
