package models

import (
	"math"
	"time"
)

type TipoFlujo string

const (
	TipoFlujoIngreso TipoFlujo = "INGRESO"
	TipoFlujoEgreso  TipoFlujo = "EGRESO"
)

type Tipo string

const (
	TipoDirecto   Tipo = "DIRECTO"
	TipoIndirecto Tipo = "INDIRECTO"
)

type Comportamiento string

const (
	ComportamientoFijo     Comportamiento = "FIJO"
	ComportamientoVariable Comportamiento = "VARIABLE"
)

type Naturaleza string

const (
	NaturalezaTangible   Naturaleza = "TANGIBLE"
	NaturalezaIntangible Naturaleza = "INTANGIBLE"
)

// FlujoFinanciero es un ingreso o egreso del proyecto con un valor por año.
// ValoresAnuales[0] corresponde al año 0. Los egresos se guardan con signo
// negativo y los ingresos con signo positivo.
type FlujoFinanciero struct {
	ID              string         `json:"id"`
	ProyectoID      string         `json:"proyectoId"`
	Nombre          string         `json:"nombre"`
	Descripcion     string         `json:"descripcion"`
	TipoFlujo       TipoFlujo      `json:"tipoFlujo"`
	Tipo            Tipo           `json:"tipo"`
	Comportamiento  Comportamiento `json:"comportamiento"`
	Naturaleza      Naturaleza     `json:"naturaleza"`
	ValoresAnuales  []float64      `json:"valoresAnuales"`
	CategoriaID     *string        `json:"categoriaId,omitempty"`
	ItemFlujoBaseID *string        `json:"itemFlujoBaseId,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// Signo devuelve -1 para egresos y 1 para ingresos
func (t TipoFlujo) Signo() float64 {
	if t == TipoFlujoEgreso {
		return -1
	}
	return 1
}

// NormalizarSignos aplica la convención de signos según el tipo de flujo:
// los egresos quedan no positivos y los ingresos no negativos.
func (f *FlujoFinanciero) NormalizarSignos() {
	signo := f.TipoFlujo.Signo()
	for i, v := range f.ValoresAnuales {
		// evita guardar -0 en los años sin monto
		if v == 0 {
			f.ValoresAnuales[i] = 0
			continue
		}
		f.ValoresAnuales[i] = signo * math.Abs(v)
	}
}

func (t TipoFlujo) Valid() bool {
	return t == TipoFlujoIngreso || t == TipoFlujoEgreso
}

func (t Tipo) Valid() bool {
	return t == TipoDirecto || t == TipoIndirecto
}

func (c Comportamiento) Valid() bool {
	return c == ComportamientoFijo || c == ComportamientoVariable
}

func (n Naturaleza) Valid() bool {
	return n == NaturalezaTangible || n == NaturalezaIntangible
}
