package rest

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/starwars/internal/common"
	"github.com/dmitrijs2005/starwars/internal/server/auth"
	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/tomasen/realip"
)

const requestIDHeader = "X-Request-ID"

// middleware wraps next, outermost first.
func (s *Server) middleware(next http.Handler) http.Handler {
	return s.recoverPanic(s.logRequest(s.rateLimit(s.authenticate(next))))
}

func (s *Server) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				w.Header().Set("Connection", "close")
				s.serverErrorResponse(w, r, fmt.Errorf("panic: %v", p))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		m := httpsnoop.CaptureMetrics(next, w, r)

		s.logger.Info(r.Context(), "request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", m.Code,
			"bytes", m.Written,
			"duration", m.Duration,
			"client_ip", realip.FromRequest(r),
		)
	})
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	if s.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.allow(realip.FromRequest(r)) {
			s.writeJSON(w, r, http.StatusTooManyRequests, envelope{"error": "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// authenticate resolves the acting user from a bearer token. Without a
// header the configured default user acts, unless authentication is
// required. A bad token is always a 401.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", common.AuthorizationHeaderName)

		header := r.Header.Get(common.AuthorizationHeaderName)
		if header == "" {
			if !s.requireAuth {
				r = contextSetUserID(r, s.defaultUserID)
			}
			next.ServeHTTP(w, r)
			return
		}

		if !strings.HasPrefix(header, common.BearerPrefix) {
			s.writeError(w, r, common.ErrInvalidToken, "")
			return
		}

		userID, err := auth.GetUserIDFromToken(strings.TrimPrefix(header, common.BearerPrefix), s.jwtSecret)
		if err != nil {
			s.writeError(w, r, err, "")
			return
		}

		next.ServeHTTP(w, contextSetUserID(r, userID))
	})
}

// requireUser writes a 401 and returns false for anonymous requests.
func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := contextGetUserID(r)
	if !ok {
		s.writeJSON(w, r, http.StatusUnauthorized, envelope{"error": "authentication required"})
		return 0, false
	}
	return userID, true
}
