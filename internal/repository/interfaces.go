package repository

import (
	"context"

	"github.com/AgusMolinaCode/Evaluacion_Api/internal/models"
)

// UserStore define las operaciones de usuarios que usan los handlers
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserById(ctx context.Context, id string) (*models.User, error)
}

// ProyectoStore define las operaciones de proyectos
type ProyectoStore interface {
	ListByUser(ctx context.Context, userID string) ([]models.Proyecto, error)
	Create(ctx context.Context, proyecto *models.Proyecto) error
	// GetWithFlows devuelve el proyecto con todos sus flujos cargados
	GetWithFlows(ctx context.Context, id string) (*models.Proyecto, error)
	Update(ctx context.Context, proyecto *models.Proyecto) error
	Delete(ctx context.Context, id string) error
}

// FlujoStore define las operaciones de flujos financieros
type FlujoStore interface {
	Create(ctx context.Context, flujo *models.FlujoFinanciero) error
	GetByID(ctx context.Context, id string) (*models.FlujoFinanciero, error)
	Update(ctx context.Context, flujo *models.FlujoFinanciero) error
	Delete(ctx context.Context, id string) error
}

// BibliotecaStore define las consultas de la biblioteca de plantillas
type BibliotecaStore interface {
	ListCategorias(ctx context.Context) ([]models.CategoriaFlujo, error)
	ListItems(ctx context.Context, categoriaID string) ([]models.ItemFlujoBase, error)
	GetItem(ctx context.Context, id string) (*models.ItemFlujoBase, error)
}
