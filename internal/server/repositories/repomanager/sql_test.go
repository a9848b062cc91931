package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/starwars/internal/dbx"
	"github.com/dmitrijs2005/starwars/internal/server/repositories/favorites"
	"github.com/dmitrijs2005/starwars/internal/server/repositories/people"
	"github.com/dmitrijs2005/starwars/internal/server/repositories/planets"
	"github.com/dmitrijs2005/starwars/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestNewSQLRepositoryManager(t *testing.T) {
	m, err := NewSQLRepositoryManager(dbx.DialectPostgres)
	require.NoError(t, err)
	var _ RepositoryManager = m

	_, err = NewSQLRepositoryManager(dbx.Dialect("oracle"))
	assert.Error(t, err)
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := &SQLRepositoryManager{dialect: dbx.DialectSQLite}

	var _ users.Repository = m.Users(db)
	var _ people.Repository = m.People(db)
	var _ planets.Repository = m.Planets(db)
	var _ favorites.Repository = m.Favorites(db)

	assert.NotNil(t, m.Users(db))
	assert.NotNil(t, m.People(db))
	assert.NotNil(t, m.Planets(db))
	assert.NotNil(t, m.Favorites(db))
}

func TestRunMigrations_UsesDialectDirectory(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	for _, d := range []dbx.Dialect{dbx.DialectPostgres, dbx.DialectSQLite} {
		var gotDir string
		gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
			gotDir = dir
			return nil
		}

		m := &SQLRepositoryManager{dialect: d}
		require.NoError(t, m.RunMigrations(context.Background(), db))
		assert.Equal(t, string(d), gotDir)
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := &SQLRepositoryManager{dialect: dbx.DialectPostgres}
	if err := m.RunMigrations(context.Background(), db); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}

// Applies the real sqlite schema and checks the favorites constraints.
func TestRunMigrations_SQLiteSchema(t *testing.T) {
	db, dialect, err := dbx.Open(context.Background(), "", "file:repomanager_schema?mode=memory&cache=shared")
	require.NoError(t, err)
	defer db.Close()

	m, err := NewSQLRepositoryManager(dialect)
	require.NoError(t, err)
	require.NoError(t, m.RunMigrations(context.Background(), db))

	_, err = db.Exec(`INSERT INTO users (email, password, is_active) VALUES ('a@b.c', 'x', 1)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO planets (name) VALUES ('Tatooine')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO favorites (user_id, planet_id) VALUES (1, 1)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO favorites (user_id, planet_id) VALUES (1, 1)`)
	assert.Equal(t, dbx.ConstraintUnique, dbx.Constraint(err))

	_, err = db.Exec(`INSERT INTO favorites (user_id) VALUES (1)`)
	assert.Equal(t, dbx.ConstraintCheck, dbx.Constraint(err))

	_, err = db.Exec(`INSERT INTO favorites (user_id, people_id) VALUES (1, 42)`)
	assert.Equal(t, dbx.ConstraintForeignKey, dbx.Constraint(err))

	// Re-running is a no-op.
	require.NoError(t, m.RunMigrations(context.Background(), db))
}
