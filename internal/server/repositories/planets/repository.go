// Package planets persists planets of the Star Wars universe.
package planets

import (
	"context"

	"github.com/dmitrijs2005/starwars/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, planet *models.Planet) (*models.Planet, error)
	GetByID(ctx context.Context, id int64) (*models.Planet, error)
	List(ctx context.Context) ([]*models.Planet, error)
}
