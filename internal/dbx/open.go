package dbx

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/starwars/internal/filex"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// Open connects to PostgreSQL when dsn is set, otherwise to the SQLite file
// at sqlitePath. The connection is pinged before it is returned.
func Open(ctx context.Context, dsn, sqlitePath string) (*sql.DB, Dialect, error) {
	if strings.TrimSpace(dsn) != "" {
		db, err := openAndPing(ctx, DialectPostgres, dsn)
		return db, DialectPostgres, err
	}

	if strings.TrimSpace(sqlitePath) == "" {
		return nil, "", fmt.Errorf("either a database DSN or a sqlite path is required")
	}

	if !strings.HasPrefix(sqlitePath, "file:") {
		if _, err := filex.EnsureParentDir(sqlitePath); err != nil {
			return nil, "", err
		}
	}

	db, err := openAndPing(ctx, DialectSQLite, SQLiteDSN(sqlitePath))
	if err != nil {
		return nil, "", err
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	return db, DialectSQLite, nil
}

// SQLiteDSN turns a file path (or a "file:" URI) into a modernc DSN with
// foreign keys enforced.
func SQLiteDSN(path string) string {
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + sqlitePragmas
}

func openAndPing(ctx context.Context, dialect Dialect, dsn string) (*sql.DB, error) {
	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", dialect, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s db: %w", dialect, err)
	}
	return db, nil
}
