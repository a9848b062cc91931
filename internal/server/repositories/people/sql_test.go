package people

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/starwars/internal/common"
	"github.com/dmitrijs2005/starwars/internal/dbx"
	"github.com/dmitrijs2005/starwars/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewSQLRepository(db, dbx.DialectPostgres), mock, db
}

const (
	insertQuery = `(?s)^INSERT INTO people \(name,height,mass,gender,birth_year,created_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6\) RETURNING id$`
	selectQuery = `(?s)^SELECT id, name, height, mass, gender, birth_year, created_at FROM people WHERE id = \$1$`
	listQuery   = `(?s)^SELECT id, name, height, mass, gender, birth_year, created_at FROM people ORDER BY id$`
)

func strPtr(s string) *string { return &s }

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs("Luke Skywalker", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	got, err := repo.Create(context.Background(), &models.Person{Name: "Luke Skywalker", Height: strPtr("172")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateName(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.Person{Name: "Luke Skywalker"})
	require.ErrorIs(t, err, common.ErrorConflict)
	assert.Equal(t, "character already exists", err.Error())
}

func TestCreate_MissingName(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).WillReturnError(&pgconn.PgError{Code: "23502", ColumnName: "name"})

	_, err := repo.Create(context.Background(), &models.Person{})
	var verr *common.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQuery).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(3), "Leia Organa", "150", nil, "female", "19BBY", time.Now()))

	got, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Leia Organa", got.Name)
	require.NotNil(t, got.Height)
	assert.Equal(t, "150", *got.Height)
	assert.Nil(t, got.Mass)
	require.NotNil(t, got.BirthYear)
	assert.Equal(t, "19BBY", *got.BirthYear)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQuery).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestList(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQuery).WillReturnRows(sqlmock.NewRows(columns).
		AddRow(int64(1), "Luke Skywalker", "172", "77", "male", "19BBY", time.Now()).
		AddRow(int64(2), "C-3PO", nil, nil, nil, nil, time.Now()))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "C-3PO", got[1].Name)
	assert.Nil(t, got[1].Gender)
}

func TestList_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQuery).WillReturnError(errors.New("db err"))

	_, err := repo.List(context.Background())
	assert.ErrorContains(t, err, "db error")
}
