package favorites

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/starwars/internal/common"
	"github.com/dmitrijs2005/starwars/internal/dbx"
	"github.com/dmitrijs2005/starwars/internal/server/models"
)

const duplicateFavorite = "favorite already exists"

var columns = []string{"id", "user_id", "people_id", "planet_id"}

type SQLRepository struct {
	db dbx.DBTX
	sb sq.StatementBuilderType
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, sb: dialect.Builder()}
}

func (r *SQLRepository) Create(ctx context.Context, fav *models.Favorite) (*models.Favorite, error) {
	if _, _, err := fav.Target(); err != nil {
		return nil, common.NewConflictError(err.Error(), err)
	}

	query, args, err := r.sb.Insert("favorites").
		Columns("user_id", "people_id", "planet_id").
		Values(fav.UserID, fav.PeopleID, fav.PlanetID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&fav.ID); err != nil {
		return nil, dbx.ClassifyError(err, duplicateFavorite)
	}

	return fav, nil
}

func (r *SQLRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Favorite, error) {
	query, args, err := r.sb.Select(columns...).
		From("favorites").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbx.ClassifyError(err, duplicateFavorite)
	}
	defer rows.Close()

	result := make([]*models.Favorite, 0)
	for rows.Next() {
		f := &models.Favorite{}
		if err := rows.Scan(&f.ID, &f.UserID, &f.PeopleID, &f.PlanetID); err != nil {
			return nil, dbx.ClassifyError(err, duplicateFavorite)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.ClassifyError(err, duplicateFavorite)
	}

	return result, nil
}

func (r *SQLRepository) DeleteByPerson(ctx context.Context, userID, peopleID int64) error {
	return r.delete(ctx, userID, "people_id", peopleID)
}

func (r *SQLRepository) DeleteByPlanet(ctx context.Context, userID, planetID int64) error {
	return r.delete(ctx, userID, "planet_id", planetID)
}

func (r *SQLRepository) delete(ctx context.Context, userID int64, column string, targetID int64) error {
	query, args, err := r.sb.Delete("favorites").
		Where(sq.And{sq.Eq{"user_id": userID}, sq.Eq{column: targetID}}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return dbx.ClassifyError(err, duplicateFavorite)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
