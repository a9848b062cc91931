package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/starwars/internal/common"
	"github.com/julienschmidt/httprouter"
)

const maxBodyBytes = 1 << 20

type envelope map[string]any

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		s.logger.Error(r.Context(), "encode response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// readJSON decodes a single JSON object from the body. Malformed bodies and
// wrongly typed fields come back as *common.ValidationError.
func (s *Server) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &typeErr) && typeErr.Field != "":
			return common.NewValidationError(typeErr.Field, fmt.Sprintf("must be a %s", typeErr.Type))
		case errors.As(err, &maxErr):
			return common.NewValidationError("body", fmt.Sprintf("must not be larger than %d bytes", maxErr.Limit))
		case errors.Is(err, io.EOF):
			return common.NewValidationError("body", "must not be empty")
		default:
			return common.NewValidationError("body", "malformed JSON")
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return common.NewValidationError("body", "must contain a single JSON object")
	}

	return nil
}

func idParam(ps httprouter.Params, name string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(ps.ByName(name)), 10, 64)
	if err != nil || id <= 0 {
		return 0, common.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

// writeError maps typed errors to status codes. notFound is the message used
// for common.ErrorNotFound. Conflicts are matched before lookup misses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var verr *common.ValidationError
	var cerr *common.ConflictError

	switch {
	case errors.As(err, &verr):
		s.writeJSON(w, r, http.StatusBadRequest, envelope{"error": verr.Error(), "field": verr.Field})
	case errors.As(err, &cerr):
		s.writeJSON(w, r, http.StatusConflict, envelope{"error": cerr.Message})
	case errors.Is(err, common.ErrorNotFound):
		s.writeJSON(w, r, http.StatusNotFound, envelope{"error": notFound})
	case errors.Is(err, common.ErrTokenExpired):
		s.writeJSON(w, r, http.StatusUnauthorized, envelope{"error": "token expired"})
	case errors.Is(err, common.ErrInvalidToken):
		s.writeJSON(w, r, http.StatusUnauthorized, envelope{"error": "invalid token"})
	case errors.Is(err, common.ErrorUnauthorized):
		s.writeJSON(w, r, http.StatusUnauthorized, envelope{"error": "unauthorized"})
	default:
		s.serverErrorResponse(w, r, err)
	}
}

func (s *Server) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), "request failed",
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
	)
	s.writeJSON(w, r, http.StatusInternalServerError, envelope{"error": "internal server error"})
}

func (s *Server) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusNotFound, envelope{"error": "resource not found"})
}

func (s *Server) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusMethodNotAllowed, envelope{"error": fmt.Sprintf("method %s not allowed", r.Method)})
}
