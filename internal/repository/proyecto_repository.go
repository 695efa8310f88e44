package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AgusMolinaCode/Evaluacion_Api/internal/models"
)

type ProyectoRepository struct {
	db *sql.DB
}

func NewProyectoRepository(db *sql.DB) *ProyectoRepository {
	return &ProyectoRepository{db: db}
}

// ListByUser devuelve los proyectos del usuario sin sus flujos
func (r *ProyectoRepository) ListByUser(ctx context.Context, userID string) ([]models.Proyecto, error) {
	query := `
		SELECT id, user_id, nombre, descripcion, horizonte_analisis, tasa_descuento, created_at, updated_at
		FROM proyectos
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error al listar proyectos: %w", err)
	}
	defer rows.Close()

	proyectos := []models.Proyecto{}
	for rows.Next() {
		var p models.Proyecto
		if err := rows.Scan(&p.ID, &p.UserID, &p.Nombre, &p.Descripcion,
			&p.HorizonteAnalisis, &p.TasaDescuento, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error escaneando proyecto: %w", err)
		}
		proyectos = append(proyectos, p)
	}
	return proyectos, rows.Err()
}

func (r *ProyectoRepository) Create(ctx context.Context, p *models.Proyecto) error {
	query := `
		INSERT INTO proyectos (id, user_id, nombre, descripcion, horizonte_analisis, tasa_descuento)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, p.ID, p.UserID, p.Nombre, p.Descripcion,
		p.HorizonteAnalisis, p.TasaDescuento).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error al crear proyecto: %w", err)
	}
	return nil
}

// GetWithFlows carga el proyecto y todos sus flujos financieros
func (r *ProyectoRepository) GetWithFlows(ctx context.Context, id string) (*models.Proyecto, error) {
	query := `
		SELECT id, user_id, nombre, descripcion, horizonte_analisis, tasa_descuento, created_at, updated_at
		FROM proyectos
		WHERE id = $1`

	p := &models.Proyecto{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.UserID, &p.Nombre, &p.Descripcion,
		&p.HorizonteAnalisis, &p.TasaDescuento, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error al obtener proyecto: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, selectFlujos+` WHERE proyecto_id = $1 ORDER BY created_at, id`, id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener flujos del proyecto: %w", err)
	}
	defer rows.Close()

	p.Flujos = []models.FlujoFinanciero{}
	for rows.Next() {
		flujo, err := scanFlujo(rows)
		if err != nil {
			return nil, err
		}
		p.Flujos = append(p.Flujos, *flujo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer flujos del proyecto: %w", err)
	}
	return p, nil
}

func (r *ProyectoRepository) Update(ctx context.Context, p *models.Proyecto) error {
	query := `
		UPDATE proyectos
		SET nombre = $1, descripcion = $2, horizonte_analisis = $3, tasa_descuento = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query, p.Nombre, p.Descripcion, p.HorizonteAnalisis,
		p.TasaDescuento, p.ID).Scan(&p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("error al actualizar proyecto: %w", err)
	}
	return nil
}

// Delete elimina el proyecto; sus flujos se borran en cascada
func (r *ProyectoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM proyectos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar proyecto: %w", err)
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar filas afectadas: %w", err)
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}
