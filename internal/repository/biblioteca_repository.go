package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AgusMolinaCode/Evaluacion_Api/internal/models"
)

type BibliotecaRepository struct {
	db *sql.DB
}

func NewBibliotecaRepository(db *sql.DB) *BibliotecaRepository {
	return &BibliotecaRepository{db: db}
}

func (r *BibliotecaRepository) ListCategorias(ctx context.Context) ([]models.CategoriaFlujo, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, nombre, descripcion FROM categorias_flujo ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("error al listar categorías: %w", err)
	}
	defer rows.Close()

	categorias := []models.CategoriaFlujo{}
	for rows.Next() {
		var c models.CategoriaFlujo
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Descripcion); err != nil {
			return nil, fmt.Errorf("error escaneando categoría: %w", err)
		}
		categorias = append(categorias, c)
	}
	return categorias, rows.Err()
}

const selectItems = `
		SELECT id, categoria_id, nombre, descripcion, tipo_flujo, tipo, comportamiento, naturaleza,
			monto_sugerido, frecuencia
		FROM items_flujo_base`

func (r *BibliotecaRepository) ListItems(ctx context.Context, categoriaID string) ([]models.ItemFlujoBase, error) {
	rows, err := r.db.QueryContext(ctx, selectItems+` WHERE categoria_id = $1 ORDER BY nombre`, categoriaID)
	if err != nil {
		return nil, fmt.Errorf("error al listar ítems: %w", err)
	}
	defer rows.Close()

	items := []models.ItemFlujoBase{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *BibliotecaRepository) GetItem(ctx context.Context, id string) (*models.ItemFlujoBase, error) {
	item, err := scanItem(r.db.QueryRowContext(ctx, selectItems+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	return item, err
}

func scanItem(row rowScanner) (*models.ItemFlujoBase, error) {
	var (
		item                                       models.ItemFlujoBase
		tipoFlujo, tipo, comp, naturaleza, frecuen string
	)
	// monto_sugerido es NUMERIC y decimal.Decimal implementa sql.Scanner
	err := row.Scan(&item.ID, &item.CategoriaID, &item.Nombre, &item.Descripcion, &tipoFlujo, &tipo,
		&comp, &naturaleza, &item.MontoSugerido, &frecuen)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("error escaneando ítem: %w", err)
	}
	item.TipoFlujo = models.TipoFlujo(tipoFlujo)
	item.Tipo = models.Tipo(tipo)
	item.Comportamiento = models.Comportamiento(comp)
	item.Naturaleza = models.Naturaleza(naturaleza)
	item.Frecuencia = models.Frecuencia(frecuen)
	return &item, nil
}
