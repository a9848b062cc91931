package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/starwars/internal/server/models"
	"github.com/dmitrijs2005/starwars/internal/server/repositories/repomanager"
)

type PeopleService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPeopleService(db *sql.DB, m repomanager.RepositoryManager) *PeopleService {
	return &PeopleService{db: db, repomanager: m}
}

func (s *PeopleService) Create(ctx context.Context, p *models.Person) (*models.Person, error) {
	name, err := required("name", p.Name, maxNameLen)
	if err != nil {
		return nil, err
	}

	person := &models.Person{Name: name}
	if person.Height, err = optional("height", p.Height, maxHeightLen); err != nil {
		return nil, err
	}
	if person.Mass, err = optional("mass", p.Mass, maxMassLen); err != nil {
		return nil, err
	}
	if person.Gender, err = optional("gender", p.Gender, maxGenderLen); err != nil {
		return nil, err
	}
	if person.BirthYear, err = optional("birth_year", p.BirthYear, maxBirthYearLen); err != nil {
		return nil, err
	}

	return s.repomanager.People(s.db).Create(ctx, person)
}

func (s *PeopleService) Get(ctx context.Context, id int64) (*models.Person, error) {
	return s.repomanager.People(s.db).GetByID(ctx, id)
}

func (s *PeopleService) List(ctx context.Context) ([]*models.Person, error) {
	return s.repomanager.People(s.db).List(ctx)
}
