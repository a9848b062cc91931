package rest

import (
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
)

type route struct {
	method      string
	path        string
	description string
	handle      httprouter.Handle
}

// endpoint is one sitemap entry.
type endpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

func (s *Server) routeTable() []route {
	return []route{
		{http.MethodGet, "/", "List all endpoints", s.sitemapHandler},
		{http.MethodPost, "/login", "Issue an access token for email and password", s.loginHandler},

		{http.MethodPost, "/users", "Register a user", s.createUserHandler},
		{http.MethodGet, "/users", "List all users", s.listUsersHandler},
		{http.MethodGet, "/users/favorites", "List favorites of the current user", s.listFavoritesHandler},

		{http.MethodPost, "/people", "Create a character", s.createPersonHandler},
		{http.MethodGet, "/people", "List all characters", s.listPeopleHandler},
		{http.MethodGet, "/people/:id", "Get one character", s.showPersonHandler},

		{http.MethodPost, "/planets", "Create a planet", s.createPlanetHandler},
		{http.MethodGet, "/planets", "List all planets", s.listPlanetsHandler},
		{http.MethodGet, "/planets/:id", "Get one planet", s.showPlanetHandler},

		{http.MethodPost, "/favorite/planet/:planet_id", "Add a planet to the current user's favorites", s.addFavoritePlanetHandler},
		{http.MethodDelete, "/favorite/planet/:planet_id", "Remove a planet from the current user's favorites", s.deleteFavoritePlanetHandler},
		{http.MethodPost, "/favorite/people/:people_id", "Add a character to the current user's favorites", s.addFavoritePersonHandler},
		{http.MethodDelete, "/favorite/people/:people_id", "Remove a character from the current user's favorites", s.deleteFavoritePersonHandler},
	}
}

func (s *Server) routes() http.Handler {
	router := httprouter.New()
	router.NotFound = http.HandlerFunc(s.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(s.methodNotAllowedResponse)

	for _, rt := range s.routeTable() {
		router.Handle(rt.method, rt.path, rt.handle)
	}

	return router
}

// sitemap is derived from the route table, sorted by path then method.
func (s *Server) sitemap() []endpoint {
	table := s.routeTable()
	out := make([]endpoint, 0, len(table))
	for _, rt := range table {
		out = append(out, endpoint{Method: rt.method, Path: rt.path, Description: rt.description})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}

func (s *Server) sitemapHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.writeJSON(w, r, http.StatusOK, envelope{"endpoints": s.sitemap()})
}
