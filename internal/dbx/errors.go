package dbx

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/starwars/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// ConstraintKind classifies a store-level constraint failure.
type ConstraintKind int

const (
	ConstraintNone ConstraintKind = iota
	ConstraintUnique
	ConstraintForeignKey
	ConstraintNotNull
	ConstraintCheck
	ConstraintLength
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"

	// class 22, data exception: value too long for VARCHAR(n).
	pgStringTruncation = "22001"
)

// Constraint reports which constraint, if any, err violated. Both the pgx and
// the modernc sqlite drivers are recognized.
func Constraint(err error) ConstraintKind {
	if err == nil {
		return ConstraintNone
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ConstraintUnique
		case pgForeignKeyViolation:
			return ConstraintForeignKey
		case pgNotNullViolation:
			return ConstraintNotNull
		case pgCheckViolation:
			return ConstraintCheck
		case pgStringTruncation:
			return ConstraintLength
		}
		return ConstraintNone
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
			return ConstraintUnique
		case sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY:
			return ConstraintForeignKey
		case sqlite3lib.SQLITE_CONSTRAINT_NOTNULL:
			return ConstraintNotNull
		case sqlite3lib.SQLITE_CONSTRAINT_CHECK:
			return ConstraintCheck
		}
	}

	return ConstraintNone
}

// ClassifyError turns a raw driver error into the project's typed errors:
//   - sql.ErrNoRows becomes common.ErrorNotFound
//   - unique violations become a conflict carrying uniqueMsg
//   - foreign key and check violations become conflicts
//   - not-null violations become a validation error naming the column
//   - over-long values become a validation error
//
// Anything else is wrapped as a plain db error.
func ClassifyError(err error, uniqueMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}

	switch Constraint(err) {
	case ConstraintUnique:
		return common.NewConflictError(uniqueMsg, err)
	case ConstraintForeignKey:
		return common.NewConflictError("referenced record does not exist", err)
	case ConstraintCheck:
		return common.NewConflictError("record violates a store constraint", err)
	case ConstraintNotNull:
		return common.NewValidationError(notNullColumn(err), "")
	case ConstraintLength:
		return common.NewValidationError(lengthColumn(err), "value too long")
	}

	return fmt.Errorf("db error: %w", err)
}

// lengthColumn names the column when the server reports it. PostgreSQL
// usually leaves it empty for 22001.
func lengthColumn(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	return "value"
}

func notNullColumn(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}

	// sqlite: "NOT NULL constraint failed: planets.name"
	msg := err.Error()
	idx := strings.LastIndex(msg, "failed: ")
	if idx == -1 {
		return "unknown"
	}
	col := strings.Fields(msg[idx+len("failed: "):])
	if len(col) == 0 {
		return "unknown"
	}
	name := col[0]
	if dot := strings.LastIndex(name, "."); dot != -1 {
		name = name[dot+1:]
	}
	return name
}
