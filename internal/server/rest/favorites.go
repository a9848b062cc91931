package rest

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/starwars/internal/server/models"
	"github.com/julienschmidt/httprouter"
)

const favoriteNotFound = "Favorite not found"

func (s *Server) listFavoritesHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	favs, err := s.services.Favorites.ListForUser(r.Context(), userID)
	if err != nil {
		s.serverErrorResponse(w, r, err)
		return
	}

	out := make([]models.FavoriteView, 0, len(favs))
	for _, f := range favs {
		out = append(out, f.Serialize())
	}
	s.writeJSON(w, r, http.StatusOK, out)
}

type addFavoriteFunc func(ctx context.Context, userID, targetID int64) (*models.Favorite, error)

type removeFavoriteFunc func(ctx context.Context, userID, targetID int64) error

func (s *Server) addFavorite(param string, add addFavoriteFunc) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		userID, ok := s.requireUser(w, r)
		if !ok {
			return
		}

		targetID, err := idParam(ps, param)
		if err != nil {
			s.writeError(w, r, err, "")
			return
		}

		fav, err := add(r.Context(), userID, targetID)
		if err != nil {
			s.writeError(w, r, err, favoriteNotFound)
			return
		}

		s.writeJSON(w, r, http.StatusCreated, fav.Serialize())
	}
}

func (s *Server) removeFavorite(param string, remove removeFavoriteFunc) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		userID, ok := s.requireUser(w, r)
		if !ok {
			return
		}

		targetID, err := idParam(ps, param)
		if err != nil {
			s.writeError(w, r, err, "")
			return
		}

		if err := remove(r.Context(), userID, targetID); err != nil {
			s.writeError(w, r, err, favoriteNotFound)
			return
		}

		s.writeJSON(w, r, http.StatusOK, envelope{"msg": "Favorite deleted"})
	}
}

func (s *Server) addFavoritePlanetHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s.addFavorite("planet_id", s.services.Favorites.AddPlanet)(w, r, ps)
}

func (s *Server) addFavoritePersonHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s.addFavorite("people_id", s.services.Favorites.AddPerson)(w, r, ps)
}

func (s *Server) deleteFavoritePlanetHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s.removeFavorite("planet_id", s.services.Favorites.RemovePlanet)(w, r, ps)
}

func (s *Server) deleteFavoritePersonHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s.removeFavorite("people_id", s.services.Favorites.RemovePerson)(w, r, ps)
}
