package models

import "time"

// Proyecto es la unidad de evaluación financiera de un usuario
type Proyecto struct {
	ID                string            `json:"id"`
	UserID            string            `json:"userId"`
	Nombre            string            `json:"nombre"`
	Descripcion       string            `json:"descripcion"`
	HorizonteAnalisis int               `json:"horizonteAnalisis"` // años
	TasaDescuento     float64           `json:"tasaDescuento"`     // porcentaje, 12 = 12%
	Flujos            []FlujoFinanciero `json:"flujos,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// Límites aceptados por la API al crear o modificar un proyecto
const (
	HorizonteMinimo       = 1
	HorizonteMaximo       = 20
	TasaDescuentoMaxima   = 100.0
	NombreLongitudMaxima  = 100
	DescripcionLongMaxima = 500
)

// Ingresos devuelve los flujos de tipo INGRESO del proyecto
func (p *Proyecto) Ingresos() []FlujoFinanciero {
	return p.filtrarPorTipoFlujo(TipoFlujoIngreso)
}

// Egresos devuelve los flujos de tipo EGRESO del proyecto
func (p *Proyecto) Egresos() []FlujoFinanciero {
	return p.filtrarPorTipoFlujo(TipoFlujoEgreso)
}

func (p *Proyecto) filtrarPorTipoFlujo(tipo TipoFlujo) []FlujoFinanciero {
	resultado := []FlujoFinanciero{}
	for _, f := range p.Flujos {
		if f.TipoFlujo == tipo {
			resultado = append(resultado, f)
		}
	}
	return resultado
}
