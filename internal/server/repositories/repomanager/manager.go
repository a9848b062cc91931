package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/starwars/internal/dbx"
	"github.com/dmitrijs2005/starwars/internal/server/repositories/favorites"
	"github.com/dmitrijs2005/starwars/internal/server/repositories/people"
	"github.com/dmitrijs2005/starwars/internal/server/repositories/planets"
	"github.com/dmitrijs2005/starwars/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	People(db dbx.DBTX) people.Repository
	Planets(db dbx.DBTX) planets.Repository
	Favorites(db dbx.DBTX) favorites.Repository
}
