// Package people persists Star Wars characters.
package people

import (
	"context"

	"github.com/dmitrijs2005/starwars/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, person *models.Person) (*models.Person, error)
	GetByID(ctx context.Context, id int64) (*models.Person, error)
	List(ctx context.Context) ([]*models.Person, error)
}
