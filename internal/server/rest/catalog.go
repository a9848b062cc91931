package rest

import (
	"net/http"

	"github.com/dmitrijs2005/starwars/internal/server/models"
	"github.com/julienschmidt/httprouter"
)

const (
	characterNotFound = "Character not found"
	planetNotFound    = "Planet not found"
)

func (s *Server) createPersonHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Name      string  `json:"name"`
		Height    *string `json:"height"`
		Mass      *string `json:"mass"`
		Gender    *string `json:"gender"`
		BirthYear *string `json:"birth_year"`
	}
	if err := s.readJSON(w, r, &input); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	person, err := s.services.People.Create(r.Context(), &models.Person{
		Name:      input.Name,
		Height:    input.Height,
		Mass:      input.Mass,
		Gender:    input.Gender,
		BirthYear: input.BirthYear,
	})
	if err != nil {
		s.writeError(w, r, err, characterNotFound)
		return
	}

	s.writeJSON(w, r, http.StatusCreated, person.Serialize())
}

func (s *Server) listPeopleHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	people, err := s.services.People.List(r.Context())
	if err != nil {
		s.serverErrorResponse(w, r, err)
		return
	}

	out := make([]models.PersonView, 0, len(people))
	for _, p := range people {
		out = append(out, p.Serialize())
	}
	s.writeJSON(w, r, http.StatusOK, out)
}

func (s *Server) showPersonHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := idParam(ps, "id")
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}

	person, err := s.services.People.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, characterNotFound)
		return
	}

	s.writeJSON(w, r, http.StatusOK, person.Serialize())
}

func (s *Server) createPlanetHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Name       string  `json:"name"`
		Climate    *string `json:"climate"`
		Terrain    *string `json:"terrain"`
		Population *string `json:"population"`
	}
	if err := s.readJSON(w, r, &input); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	planet, err := s.services.Planets.Create(r.Context(), &models.Planet{
		Name:       input.Name,
		Climate:    input.Climate,
		Terrain:    input.Terrain,
		Population: input.Population,
	})
	if err != nil {
		s.writeError(w, r, err, planetNotFound)
		return
	}

	s.writeJSON(w, r, http.StatusCreated, planet.Serialize())
}

func (s *Server) listPlanetsHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	planets, err := s.services.Planets.List(r.Context())
	if err != nil {
		s.serverErrorResponse(w, r, err)
		return
	}

	out := make([]models.PlanetView, 0, len(planets))
	for _, p := range planets {
		out = append(out, p.Serialize())
	}
	s.writeJSON(w, r, http.StatusOK, out)
}

func (s *Server) showPlanetHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := idParam(ps, "id")
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}

	planet, err := s.services.Planets.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, planetNotFound)
		return
	}

	s.writeJSON(w, r, http.StatusOK, planet.Serialize())
}
