package users

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/starwars/internal/dbx"
	"github.com/dmitrijs2005/starwars/internal/server/models"
)

const duplicateEmail = "email already exists"

var columns = []string{"id", "email", "password", "is_active", "created_at"}

type SQLRepository struct {
	db dbx.DBTX
	sb sq.StatementBuilderType
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, sb: dialect.Builder()}
}

func (r *SQLRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query, args, err := r.sb.Insert("users").
		Columns("email", "password", "is_active", "created_at").
		Values(user.Email, user.Password, user.IsActive, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		return nil, dbx.ClassifyError(err, duplicateEmail)
	}

	return user, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *SQLRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, sq.Eq{"email": email})
}

func (r *SQLRepository) getOne(ctx context.Context, where sq.Eq) (*models.User, error) {
	query, args, err := r.sb.Select(columns...).From("users").Where(where).ToSql()
	if err != nil {
		return nil, err
	}

	user := &models.User{}
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.ID, &user.Email, &user.Password, &user.IsActive, &user.CreatedAt)
	if err != nil {
		return nil, dbx.ClassifyError(err, duplicateEmail)
	}

	return user, nil
}

func (r *SQLRepository) List(ctx context.Context) ([]*models.User, error) {
	query, args, err := r.sb.Select(columns...).From("users").OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbx.ClassifyError(err, duplicateEmail)
	}
	defer rows.Close()

	result := make([]*models.User, 0)
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Email, &user.Password, &user.IsActive, &user.CreatedAt); err != nil {
			return nil, dbx.ClassifyError(err, duplicateEmail)
		}
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.ClassifyError(err, duplicateEmail)
	}

	return result, nil
}
