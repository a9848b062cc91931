package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/starwars/internal/common"
	"github.com/dmitrijs2005/starwars/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func favoriteFixture() *fakeRepoManager {
	rm := newFakeRepoManager()
	rm.u.byID = map[int64]*models.User{1: {ID: 1}}
	rm.pl.byID = map[int64]*models.Planet{1: {ID: 1, Name: "Tatooine"}}
	rm.pe.byID = map[int64]*models.Person{1: {ID: 1, Name: "Luke Skywalker"}}
	return rm
}

func TestAddPlanet_Commits(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := favoriteFixture()
	s := NewFavoriteService(db, rm)

	fav, err := s.AddPlanet(context.Background(), 1, 1)
	require.NoError(t, err)

	kind, id, err := fav.Target()
	require.NoError(t, err)
	assert.Equal(t, models.TargetPlanet, kind)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, int64(1), fav.UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddPerson_MissingTargetRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := favoriteFixture()
	s := NewFavoriteService(db, rm)

	_, err := s.AddPerson(context.Background(), 1, 99)
	require.ErrorIs(t, err, common.ErrorConflict)
	assert.Equal(t, "Character 99 does not exist", err.Error())
	assert.NotErrorIs(t, err, common.ErrorNotFound)
	assert.Empty(t, rm.f.created)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddPlanet_MissingUser(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	s := NewFavoriteService(db, favoriteFixture())

	_, err := s.AddPlanet(context.Background(), 2, 1)
	require.ErrorIs(t, err, common.ErrorConflict)
	assert.Equal(t, "User 2 does not exist", err.Error())
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestAddPlanet_InvalidID(t *testing.T) {
	db, mock := newSQLMockDB(t)

	s := NewFavoriteService(db, favoriteFixture())

	_, err := s.AddPlanet(context.Background(), 1, 0)
	var verr *common.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "planet_id", verr.Field)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddPlanet_BeginError(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin().WillReturnError(errors.New("no tx"))

	s := NewFavoriteService(db, favoriteFixture())

	_, err := s.AddPlanet(context.Background(), 1, 1)
	assert.ErrorContains(t, err, "no tx")
}

func TestRemove(t *testing.T) {
	rm := favoriteFixture()
	s := NewFavoriteService(nil, rm)

	require.NoError(t, s.RemovePlanet(context.Background(), 1, 1))
	require.NoError(t, s.RemovePerson(context.Background(), 1, 1))
	assert.Equal(t, []string{"planet", "people"}, rm.f.deleted)

	rm.f.deleteErr = common.ErrorNotFound
	assert.ErrorIs(t, s.RemovePlanet(context.Background(), 1, 1), common.ErrorNotFound)

	var verr *common.ValidationError
	require.ErrorAs(t, s.RemovePerson(context.Background(), 1, -1), &verr)
	assert.Equal(t, "people_id", verr.Field)
}

func TestFavoriteService_SQLite(t *testing.T) {
	db, rm := newSQLiteStore(t)
	ctx := context.Background()

	users := NewUserService(db, rm, testConfig())
	planets := NewPlanetService(db, rm)
	people := NewPeopleService(db, rm)
	favs := NewFavoriteService(db, rm)

	u, err := users.Register(ctx, "luke@rebels.org", "usetheforce", boolPtr(true))
	require.NoError(t, err)
	pl, err := planets.Create(ctx, &models.Planet{Name: "Tatooine"})
	require.NoError(t, err)
	pe, err := people.Create(ctx, &models.Person{Name: "Leia Organa"})
	require.NoError(t, err)

	_, err = favs.AddPlanet(ctx, u.ID, pl.ID)
	require.NoError(t, err)
	_, err = favs.AddPerson(ctx, u.ID, pe.ID)
	require.NoError(t, err)

	_, err = favs.AddPlanet(ctx, u.ID, pl.ID)
	assert.ErrorIs(t, err, common.ErrorConflict, "duplicate favorite")

	_, err = favs.AddPlanet(ctx, u.ID, 999)
	assert.ErrorIs(t, err, common.ErrorConflict, "missing planet")

	list, err := favs.ListForUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, favs.RemovePlanet(ctx, u.ID, pl.ID))
	assert.ErrorIs(t, favs.RemovePlanet(ctx, u.ID, pl.ID), common.ErrorNotFound)

	list, err = favs.ListForUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].PeopleID)
	assert.Equal(t, pe.ID, *list[0].PeopleID)
}
