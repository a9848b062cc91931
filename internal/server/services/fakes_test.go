package services

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/starwars/internal/common"
	"github.com/dmitrijs2005/starwars/internal/dbx"
	"github.com/dmitrijs2005/starwars/internal/server/config"
	"github.com/dmitrijs2005/starwars/internal/server/models"
	favoritesrepo "github.com/dmitrijs2005/starwars/internal/server/repositories/favorites"
	peoplerepo "github.com/dmitrijs2005/starwars/internal/server/repositories/people"
	planetsrepo "github.com/dmitrijs2005/starwars/internal/server/repositories/planets"
	"github.com/dmitrijs2005/starwars/internal/server/repositories/repomanager"
	usersrepo "github.com/dmitrijs2005/starwars/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// newSQLiteStore opens a private in-memory database with the real schema.
func newSQLiteStore(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, dialect, err := dbx.Open(context.Background(), "", "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rm, err := repomanager.NewSQLRepositoryManager(dialect)
	require.NoError(t, err)
	require.NoError(t, rm.RunMigrations(context.Background(), db))
	return db, rm
}

func testConfig() *config.Config {
	return &config.Config{SecretKey: "k", AccessTokenValidityDuration: time.Hour}
}

type fakeUsersRepo struct {
	created   *models.User
	createErr error

	byID    map[int64]*models.User
	byEmail map[string]*models.User
	getErr  error
	list    []*models.User
	listErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = 1
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) List(ctx context.Context) ([]*models.User, error) {
	return f.list, f.listErr
}

type fakePeopleRepo struct {
	created   *models.Person
	createErr error
	byID      map[int64]*models.Person
	list      []*models.Person
}

func (f *fakePeopleRepo) Create(ctx context.Context, p *models.Person) (*models.Person, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	p.ID = 1
	f.created = p
	return p, nil
}

func (f *fakePeopleRepo) GetByID(ctx context.Context, id int64) (*models.Person, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakePeopleRepo) List(ctx context.Context) ([]*models.Person, error) {
	return f.list, nil
}

type fakePlanetsRepo struct {
	created   *models.Planet
	createErr error
	byID      map[int64]*models.Planet
	list      []*models.Planet
}

func (f *fakePlanetsRepo) Create(ctx context.Context, p *models.Planet) (*models.Planet, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	p.ID = 1
	f.created = p
	return p, nil
}

func (f *fakePlanetsRepo) GetByID(ctx context.Context, id int64) (*models.Planet, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakePlanetsRepo) List(ctx context.Context) ([]*models.Planet, error) {
	return f.list, nil
}

type fakeFavoritesRepo struct {
	created   []*models.Favorite
	createErr error
	list      []*models.Favorite
	deleteErr error
	deleted   []string
}

func (f *fakeFavoritesRepo) Create(ctx context.Context, fav *models.Favorite) (*models.Favorite, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	fav.ID = int64(len(f.created) + 1)
	f.created = append(f.created, fav)
	return fav, nil
}

func (f *fakeFavoritesRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Favorite, error) {
	return f.list, nil
}

func (f *fakeFavoritesRepo) DeleteByPerson(ctx context.Context, userID, peopleID int64) error {
	f.deleted = append(f.deleted, "people")
	return f.deleteErr
}

func (f *fakeFavoritesRepo) DeleteByPlanet(ctx context.Context, userID, planetID int64) error {
	f.deleted = append(f.deleted, "planet")
	return f.deleteErr
}

type fakeRepoManager struct {
	u  *fakeUsersRepo
	pe *fakePeopleRepo
	pl *fakePlanetsRepo
	f  *fakeFavoritesRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		u:  &fakeUsersRepo{},
		pe: &fakePeopleRepo{},
		pl: &fakePlanetsRepo{},
		f:  &fakeFavoritesRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error   { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository         { return m.u }
func (m *fakeRepoManager) People(db dbx.DBTX) peoplerepo.Repository       { return m.pe }
func (m *fakeRepoManager) Planets(db dbx.DBTX) planetsrepo.Repository     { return m.pl }
func (m *fakeRepoManager) Favorites(db dbx.DBTX) favoritesrepo.Repository { return m.f }
