package database

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

type categoriaSeed struct {
	id          string
	nombre      string
	descripcion string
	items       []itemSeed
}

type itemSeed struct {
	id             string
	nombre         string
	descripcion    string
	tipoFlujo      string
	tipo           string
	comportamiento string
	naturaleza     string
	monto          string
	frecuencia     string
}

// biblioteca inicial de plantillas de flujos
var bibliotecaInicial = []categoriaSeed{
	{
		id: "cat-inversion", nombre: "Inversión inicial", descripcion: "Desembolsos del año 0",
		items: []itemSeed{
			{"item-equipos", "Equipos", "Compra de maquinaria y equipos", "EGRESO", "DIRECTO", "FIJO", "TANGIBLE", "25000.00", "UNICO"},
			{"item-licencias", "Licencias de software", "Licencias perpetuas", "EGRESO", "INDIRECTO", "FIJO", "INTANGIBLE", "5000.00", "UNICO"},
			{"item-capacitacion", "Capacitación", "Formación del personal", "EGRESO", "INDIRECTO", "FIJO", "INTANGIBLE", "3000.00", "UNICO"},
		},
	},
	{
		id: "cat-operacion", nombre: "Costos operativos", descripcion: "Costos recurrentes de operación",
		items: []itemSeed{
			{"item-personal", "Personal", "Sueldos del equipo", "EGRESO", "DIRECTO", "FIJO", "TANGIBLE", "4000.00", "MENSUAL"},
			{"item-mantenimiento", "Mantenimiento", "Mantenimiento anual de equipos", "EGRESO", "DIRECTO", "VARIABLE", "TANGIBLE", "2500.00", "ANUAL"},
			{"item-servicios", "Servicios", "Energía, agua e internet", "EGRESO", "INDIRECTO", "VARIABLE", "TANGIBLE", "350.00", "MENSUAL"},
		},
	},
	{
		id: "cat-beneficios", nombre: "Beneficios", descripcion: "Ingresos y ahorros del proyecto",
		items: []itemSeed{
			{"item-ventas", "Ventas", "Ingresos por ventas", "INGRESO", "DIRECTO", "VARIABLE", "TANGIBLE", "6000.00", "MENSUAL"},
			{"item-ahorro", "Ahorro de costos", "Reducción de costos operativos", "INGRESO", "INDIRECTO", "FIJO", "TANGIBLE", "12000.00", "ANUAL"},
			{"item-imagen", "Mejora de imagen", "Beneficio de reputación estimado", "INGRESO", "INDIRECTO", "VARIABLE", "INTANGIBLE", "2000.00", "ANUAL"},
		},
	},
}

// RunMigrations carga la biblioteca de plantillas. Es idempotente: las
// filas existentes no se modifican.
func RunMigrations(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	logger.Info("Ejecutando migraciones de la base de datos", zap.String("op", "database.RunMigrations"))

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error al iniciar la migración: %w", err)
	}
	defer tx.Rollback()

	insertados := 0
	for _, cat := range bibliotecaInicial {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO categorias_flujo (id, nombre, descripcion) VALUES ($1, $2, $3)
			 ON CONFLICT (id) DO NOTHING`,
			cat.id, cat.nombre, cat.descripcion)
		if err != nil {
			return fmt.Errorf("error al cargar la categoría %s: %w", cat.id, err)
		}
		insertados += rowsAffected(res)

		for _, item := range cat.items {
			res, err := tx.ExecContext(ctx,
				`INSERT INTO items_flujo_base
				 (id, categoria_id, nombre, descripcion, tipo_flujo, tipo, comportamiento, naturaleza, monto_sugerido, frecuencia)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
				 ON CONFLICT (id) DO NOTHING`,
				item.id, cat.id, item.nombre, item.descripcion, item.tipoFlujo, item.tipo,
				item.comportamiento, item.naturaleza, item.monto, item.frecuencia)
			if err != nil {
				return fmt.Errorf("error al cargar el ítem %s: %w", item.id, err)
			}
			insertados += rowsAffected(res)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error al confirmar la migración: %w", err)
	}

	logger.Info("Biblioteca de flujos cargada",
		zap.String("op", "database.RunMigrations"),
		zap.Int("filas_nuevas", insertados),
	)
	return nil
}

func rowsAffected(res sql.Result) int {
	n, err := res.RowsAffected()
	if err != nil {
		return 0
	}
	return int(n)
}
