package rest

import (
	"net/http"

	"github.com/dmitrijs2005/starwars/internal/server/models"
	"github.com/julienschmidt/httprouter"
)

func (s *Server) createUserHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		IsActive *bool  `json:"is_active"`
	}
	if err := s.readJSON(w, r, &input); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	user, err := s.services.Users.Register(r.Context(), input.Email, input.Password, input.IsActive)
	if err != nil {
		s.writeError(w, r, err, "User not found")
		return
	}

	s.writeJSON(w, r, http.StatusCreated, user.Serialize())
}

func (s *Server) listUsersHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	users, err := s.services.Users.List(r.Context())
	if err != nil {
		s.serverErrorResponse(w, r, err)
		return
	}

	out := make([]models.UserView, 0, len(users))
	for _, u := range users {
		out = append(out, u.Serialize())
	}
	s.writeJSON(w, r, http.StatusOK, out)
}

func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := s.readJSON(w, r, &input); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	token, err := s.services.Users.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}

	s.writeJSON(w, r, http.StatusOK, envelope{"access_token": token, "token_type": "Bearer"})
}
