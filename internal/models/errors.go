package models

import "errors"

// Errores de dominio compartidos entre repositorios y handlers
var (
	ErrNotFound          = errors.New("registro no encontrado")
	ErrForbidden         = errors.New("el recurso pertenece a otro usuario")
	ErrDuplicateEmail    = errors.New("el email ya está registrado")
	ErrHorizonteConFlujo = errors.New("no se puede cambiar el horizonte de un proyecto con flujos registrados")
)
