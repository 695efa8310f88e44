package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// InitDB abre la conexión a PostgreSQL y crea las tablas que falten
func InitDB(ctx context.Context, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error al abrir la base de datos: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error al conectar con la base de datos: %w", err)
	}

	if err := createSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func createSchema(ctx context.Context, db *sql.DB) error {
	statements := []struct {
		name string
		sql  string
	}{
		{"users", `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`},
		{"proyectos", `
	CREATE TABLE IF NOT EXISTS proyectos (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		nombre TEXT NOT NULL,
		descripcion TEXT NOT NULL DEFAULT '',
		horizonte_analisis INTEGER NOT NULL CHECK (horizonte_analisis >= 1),
		tasa_descuento DOUBLE PRECISION NOT NULL CHECK (tasa_descuento >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`},
		{"categorias_flujo", `
	CREATE TABLE IF NOT EXISTS categorias_flujo (
		id TEXT PRIMARY KEY,
		nombre TEXT NOT NULL UNIQUE,
		descripcion TEXT NOT NULL DEFAULT ''
	);`},
		{"items_flujo_base", `
	CREATE TABLE IF NOT EXISTS items_flujo_base (
		id TEXT PRIMARY KEY,
		categoria_id TEXT NOT NULL REFERENCES categorias_flujo(id) ON DELETE CASCADE,
		nombre TEXT NOT NULL,
		descripcion TEXT NOT NULL DEFAULT '',
		tipo_flujo TEXT NOT NULL,
		tipo TEXT NOT NULL,
		comportamiento TEXT NOT NULL,
		naturaleza TEXT NOT NULL,
		monto_sugerido NUMERIC(18, 2) NOT NULL DEFAULT 0,
		frecuencia TEXT NOT NULL,
		UNIQUE (categoria_id, nombre)
	);`},
		{"flujos_financieros", `
	CREATE TABLE IF NOT EXISTS flujos_financieros (
		id TEXT PRIMARY KEY,
		proyecto_id TEXT NOT NULL REFERENCES proyectos(id) ON DELETE CASCADE,
		nombre TEXT NOT NULL,
		descripcion TEXT NOT NULL DEFAULT '',
		tipo_flujo TEXT NOT NULL,
		tipo TEXT NOT NULL,
		comportamiento TEXT NOT NULL,
		naturaleza TEXT NOT NULL,
		valores_anuales DOUBLE PRECISION[] NOT NULL,
		categoria_id TEXT REFERENCES categorias_flujo(id) ON DELETE SET NULL,
		item_flujo_base_id TEXT REFERENCES items_flujo_base(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`},
		{"idx_proyectos_user", `
	CREATE INDEX IF NOT EXISTS idx_proyectos_user ON proyectos(user_id);`},
		{"idx_flujos_proyecto", `
	CREATE INDEX IF NOT EXISTS idx_flujos_proyecto ON flujos_financieros(proyecto_id);`},
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt.sql); err != nil {
			return fmt.Errorf("error al crear %s: %w", stmt.name, err)
		}
	}
	return nil
}
