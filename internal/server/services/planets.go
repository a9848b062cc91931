package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/starwars/internal/server/models"
	"github.com/dmitrijs2005/starwars/internal/server/repositories/repomanager"
)

type PlanetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPlanetService(db *sql.DB, m repomanager.RepositoryManager) *PlanetService {
	return &PlanetService{db: db, repomanager: m}
}

func (s *PlanetService) Create(ctx context.Context, p *models.Planet) (*models.Planet, error) {
	name, err := required("name", p.Name, maxNameLen)
	if err != nil {
		return nil, err
	}

	planet := &models.Planet{Name: name}
	if planet.Climate, err = optional("climate", p.Climate, maxClimateLen); err != nil {
		return nil, err
	}
	if planet.Terrain, err = optional("terrain", p.Terrain, maxTerrainLen); err != nil {
		return nil, err
	}
	if planet.Population, err = optional("population", p.Population, maxPopulationLen); err != nil {
		return nil, err
	}

	return s.repomanager.Planets(s.db).Create(ctx, planet)
}

func (s *PlanetService) Get(ctx context.Context, id int64) (*models.Planet, error) {
	return s.repomanager.Planets(s.db).GetByID(ctx, id)
}

func (s *PlanetService) List(ctx context.Context) ([]*models.Planet, error) {
	return s.repomanager.Planets(s.db).List(ctx)
}
