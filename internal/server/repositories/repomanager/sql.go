// Package repomanager provides a concrete RepositoryManager for the SQL
// engines we support, wiring together repository constructors and database
// migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/starwars/internal/dbx"
	"github.com/dmitrijs2005/starwars/internal/server/migrations"
	"github.com/dmitrijs2005/starwars/internal/server/repositories/favorites"
	"github.com/dmitrijs2005/starwars/internal/server/repositories/people"
	"github.com/dmitrijs2005/starwars/internal/server/repositories/planets"
	"github.com/dmitrijs2005/starwars/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// SQLRepositoryManager vends repositories for one dialect and exposes a
// schema migration hook.
type SQLRepositoryManager struct {
	dialect dbx.Dialect
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db, m.dialect)
}

// People returns a people.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) People(db dbx.DBTX) people.Repository {
	return people.NewSQLRepository(db, m.dialect)
}

// Planets returns a planets.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Planets(db dbx.DBTX) planets.Repository {
	return planets.NewSQLRepository(db, m.dialect)
}

// Favorites returns a favorites.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Favorites(db dbx.DBTX) favorites.Repository {
	return favorites.NewSQLRepository(db, m.dialect)
}

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations of the manager's dialect.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(m.dialect.GooseDialect()); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, string(m.dialect)); err != nil {
		return err
	}
	return nil
}

// NewSQLRepositoryManager constructs a RepositoryManager for dialect.
func NewSQLRepositoryManager(dialect dbx.Dialect) (RepositoryManager, error) {
	switch dialect {
	case dbx.DialectPostgres, dbx.DialectSQLite:
		return &SQLRepositoryManager{dialect: dialect}, nil
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
}
