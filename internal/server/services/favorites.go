package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/starwars/internal/common"
	"github.com/dmitrijs2005/starwars/internal/dbx"
	"github.com/dmitrijs2005/starwars/internal/server/models"
	"github.com/dmitrijs2005/starwars/internal/server/repositories/repomanager"
)

type FavoriteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewFavoriteService(db *sql.DB, m repomanager.RepositoryManager) *FavoriteService {
	return &FavoriteService{db: db, repomanager: m}
}

func (s *FavoriteService) ListForUser(ctx context.Context, userID int64) ([]*models.Favorite, error) {
	return s.repomanager.Favorites(s.db).ListByUser(ctx, userID)
}

func (s *FavoriteService) AddPlanet(ctx context.Context, userID, planetID int64) (*models.Favorite, error) {
	return s.add(ctx, userID, models.TargetPlanet, planetID)
}

func (s *FavoriteService) AddPerson(ctx context.Context, userID, peopleID int64) (*models.Favorite, error) {
	return s.add(ctx, userID, models.TargetPerson, peopleID)
}

// RemovePlanet returns common.ErrorNotFound when there was nothing to delete.
func (s *FavoriteService) RemovePlanet(ctx context.Context, userID, planetID int64) error {
	if err := positiveID("planet_id", planetID); err != nil {
		return err
	}
	return s.repomanager.Favorites(s.db).DeleteByPlanet(ctx, userID, planetID)
}

// RemovePerson returns common.ErrorNotFound when there was nothing to delete.
func (s *FavoriteService) RemovePerson(ctx context.Context, userID, peopleID int64) error {
	if err := positiveID("people_id", peopleID); err != nil {
		return err
	}
	return s.repomanager.Favorites(s.db).DeleteByPerson(ctx, userID, peopleID)
}

// add checks that the user and the target exist and inserts the favorite in
// one transaction. A missing reference is a conflict.
func (s *FavoriteService) add(ctx context.Context, userID int64, kind models.TargetKind, targetID int64) (*models.Favorite, error) {
	field := "planet_id"
	if kind == models.TargetPerson {
		field = "people_id"
	}
	if err := positiveID(field, targetID); err != nil {
		return nil, err
	}

	fav, err := models.NewFavorite(userID, kind, targetID)
	if err != nil {
		return nil, err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Users(tx).GetByID(ctx, userID); err != nil {
			return missingReference(err, fmt.Sprintf("User %d does not exist", userID))
		}

		var lookupErr error
		switch kind {
		case models.TargetPlanet:
			_, lookupErr = s.repomanager.Planets(tx).GetByID(ctx, targetID)
			lookupErr = missingReference(lookupErr, fmt.Sprintf("Planet %d does not exist", targetID))
		case models.TargetPerson:
			_, lookupErr = s.repomanager.People(tx).GetByID(ctx, targetID)
			lookupErr = missingReference(lookupErr, fmt.Sprintf("Character %d does not exist", targetID))
		}
		if lookupErr != nil {
			return lookupErr
		}

		created, err := s.repomanager.Favorites(tx).Create(ctx, fav)
		if err != nil {
			return err
		}
		fav = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return fav, nil
}

// missingReference turns a lookup miss into a conflict. The miss is not kept
// as the cause so the result never matches common.ErrorNotFound.
func missingReference(err error, msg string) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.NewConflictError(msg, nil)
	}
	return err
}
