package services

import (
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/analysis"
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/models"
)

// PrepararFlujo valida que el flujo tenga un valor por año del horizonte y
// normaliza los signos antes de guardarlo. El motor de análisis no vuelve a
// ajustar signos, por eso los egresos se niegan aquí.
func PrepararFlujo(flujo *models.FlujoFinanciero, proyecto *models.Proyecto) error {
	if len(flujo.ValoresAnuales) != proyecto.HorizonteAnalisis {
		return &analysis.DataIntegrityError{
			FlujoID:  flujo.ID,
			Nombre:   flujo.Nombre,
			Esperado: proyecto.HorizonteAnalisis,
			Obtenido: len(flujo.ValoresAnuales),
		}
	}
	// reutiliza la validación numérica del motor
	if _, err := analysis.NetCashFlows(proyecto.HorizonteAnalisis, []models.FlujoFinanciero{*flujo}); err != nil {
		return err
	}

	flujo.ProyectoID = proyecto.ID
	flujo.NormalizarSignos()
	return nil
}
