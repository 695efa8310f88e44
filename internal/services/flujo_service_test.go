package services

import (
	"testing"

	"github.com/AgusMolinaCode/Evaluacion_Api/internal/analysis"
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepararFlujoNormalizesSigns(t *testing.T) {
	proyecto := &models.Proyecto{ID: "p1", HorizonteAnalisis: 3}

	egreso := &models.FlujoFinanciero{TipoFlujo: models.TipoFlujoEgreso, ValoresAnuales: []float64{1000, -50, 0}}
	require.NoError(t, PrepararFlujo(egreso, proyecto))
	assert.Equal(t, []float64{-1000, -50, 0}, egreso.ValoresAnuales)
	assert.Equal(t, "p1", egreso.ProyectoID)

	ingreso := &models.FlujoFinanciero{TipoFlujo: models.TipoFlujoIngreso, ValoresAnuales: []float64{0, -300, 300}}
	require.NoError(t, PrepararFlujo(ingreso, proyecto))
	assert.Equal(t, []float64{0, 300, 300}, ingreso.ValoresAnuales)
}

func TestPrepararFlujoRejectsWrongLength(t *testing.T) {
	proyecto := &models.Proyecto{ID: "p1", HorizonteAnalisis: 5}
	flujo := &models.FlujoFinanciero{ID: "f1", Nombre: "ventas", TipoFlujo: models.TipoFlujoIngreso, ValoresAnuales: []float64{1, 2}}

	err := PrepararFlujo(flujo, proyecto)

	var integrity *analysis.DataIntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Equal(t, 5, integrity.Esperado)
	assert.Equal(t, 2, integrity.Obtenido)
	assert.Equal(t, []float64{1, 2}, flujo.ValoresAnuales)
}
