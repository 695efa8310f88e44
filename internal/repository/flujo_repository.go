package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AgusMolinaCode/Evaluacion_Api/internal/models"
	"github.com/lib/pq"
)

const selectFlujos = `
		SELECT id, proyecto_id, nombre, descripcion, tipo_flujo, tipo, comportamiento, naturaleza,
			valores_anuales, categoria_id, item_flujo_base_id, created_at, updated_at
		FROM flujos_financieros`

type FlujoRepository struct {
	db *sql.DB
}

func NewFlujoRepository(db *sql.DB) *FlujoRepository {
	return &FlujoRepository{db: db}
}

func (r *FlujoRepository) Create(ctx context.Context, f *models.FlujoFinanciero) error {
	query := `
		INSERT INTO flujos_financieros
			(id, proyecto_id, nombre, descripcion, tipo_flujo, tipo, comportamiento, naturaleza,
			 valores_anuales, categoria_id, item_flujo_base_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		f.ID, f.ProyectoID, f.Nombre, f.Descripcion,
		string(f.TipoFlujo), string(f.Tipo), string(f.Comportamiento), string(f.Naturaleza),
		pq.Array(f.ValoresAnuales), nullString(f.CategoriaID), nullString(f.ItemFlujoBaseID),
	).Scan(&f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error al crear flujo: %w", err)
	}
	return nil
}

func (r *FlujoRepository) GetByID(ctx context.Context, id string) (*models.FlujoFinanciero, error) {
	row := r.db.QueryRowContext(ctx, selectFlujos+` WHERE id = $1`, id)
	flujo, err := scanFlujo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	return flujo, err
}

func (r *FlujoRepository) Update(ctx context.Context, f *models.FlujoFinanciero) error {
	query := `
		UPDATE flujos_financieros
		SET nombre = $1, descripcion = $2, tipo_flujo = $3, tipo = $4, comportamiento = $5,
			naturaleza = $6, valores_anuales = $7, categoria_id = $8, item_flujo_base_id = $9,
			updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		f.Nombre, f.Descripcion, string(f.TipoFlujo), string(f.Tipo), string(f.Comportamiento),
		string(f.Naturaleza), pq.Array(f.ValoresAnuales), nullString(f.CategoriaID),
		nullString(f.ItemFlujoBaseID), f.ID,
	).Scan(&f.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("error al actualizar flujo: %w", err)
	}
	return nil
}

func (r *FlujoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM flujos_financieros WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar flujo: %w", err)
	}
	return expectOneRow(res)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFlujo(row rowScanner) (*models.FlujoFinanciero, error) {
	var (
		f           models.FlujoFinanciero
		tipoFlujo   string
		tipo        string
		comp        string
		naturaleza  string
		valores     pq.Float64Array
		categoriaID sql.NullString
		itemID      sql.NullString
	)
	err := row.Scan(&f.ID, &f.ProyectoID, &f.Nombre, &f.Descripcion, &tipoFlujo, &tipo, &comp,
		&naturaleza, &valores, &categoriaID, &itemID, &f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("error escaneando flujo: %w", err)
	}

	f.TipoFlujo = models.TipoFlujo(tipoFlujo)
	f.Tipo = models.Tipo(tipo)
	f.Comportamiento = models.Comportamiento(comp)
	f.Naturaleza = models.Naturaleza(naturaleza)
	f.ValoresAnuales = []float64(valores)
	if f.ValoresAnuales == nil {
		f.ValoresAnuales = []float64{}
	}
	if categoriaID.Valid {
		f.CategoriaID = &categoriaID.String
	}
	if itemID.Valid {
		f.ItemFlujoBaseID = &itemID.String
	}
	return &f, nil
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
