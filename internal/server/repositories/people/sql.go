package people

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/starwars/internal/dbx"
	"github.com/dmitrijs2005/starwars/internal/server/models"
)

const duplicateName = "character already exists"

var columns = []string{"id", "name", "height", "mass", "gender", "birth_year", "created_at"}

type SQLRepository struct {
	db dbx.DBTX
	sb sq.StatementBuilderType
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, sb: dialect.Builder()}
}

func (r *SQLRepository) Create(ctx context.Context, p *models.Person) (*models.Person, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	query, args, err := r.sb.Insert("people").
		Columns("name", "height", "mass", "gender", "birth_year", "created_at").
		Values(p.Name, p.Height, p.Mass, p.Gender, p.BirthYear, p.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&p.ID); err != nil {
		return nil, dbx.ClassifyError(err, duplicateName)
	}

	return p, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id int64) (*models.Person, error) {
	query, args, err := r.sb.Select(columns...).From("people").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	p := &models.Person{}
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&p.ID, &p.Name, &p.Height, &p.Mass, &p.Gender, &p.BirthYear, &p.CreatedAt)
	if err != nil {
		return nil, dbx.ClassifyError(err, duplicateName)
	}

	return p, nil
}

func (r *SQLRepository) List(ctx context.Context) ([]*models.Person, error) {
	query, args, err := r.sb.Select(columns...).From("people").OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbx.ClassifyError(err, duplicateName)
	}
	defer rows.Close()

	result := make([]*models.Person, 0)
	for rows.Next() {
		p := &models.Person{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Height, &p.Mass, &p.Gender, &p.BirthYear, &p.CreatedAt); err != nil {
			return nil, dbx.ClassifyError(err, duplicateName)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.ClassifyError(err, duplicateName)
	}

	return result, nil
}
