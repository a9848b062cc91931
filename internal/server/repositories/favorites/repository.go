// Package favorites persists per-user bookmarks of people and planets.
package favorites

import (
	"context"

	"github.com/dmitrijs2005/starwars/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, fav *models.Favorite) (*models.Favorite, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Favorite, error)
	// DeleteByPerson and DeleteByPlanet return common.ErrorNotFound when the
	// user had no such favorite.
	DeleteByPerson(ctx context.Context, userID, peopleID int64) error
	DeleteByPlanet(ctx context.Context, userID, planetID int64) error
}
