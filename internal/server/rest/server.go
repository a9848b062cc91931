// Package rest serves the public JSON API over HTTP.
package rest

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/starwars/internal/logging"
	"github.com/dmitrijs2005/starwars/internal/server/config"
	"github.com/dmitrijs2005/starwars/internal/server/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type UserService interface {
	Register(ctx context.Context, email, password string, isActive *bool) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type PeopleService interface {
	Create(ctx context.Context, p *models.Person) (*models.Person, error)
	Get(ctx context.Context, id int64) (*models.Person, error)
	List(ctx context.Context) ([]*models.Person, error)
}

type PlanetService interface {
	Create(ctx context.Context, p *models.Planet) (*models.Planet, error)
	Get(ctx context.Context, id int64) (*models.Planet, error)
	List(ctx context.Context) ([]*models.Planet, error)
}

type FavoriteService interface {
	ListForUser(ctx context.Context, userID int64) ([]*models.Favorite, error)
	AddPlanet(ctx context.Context, userID, planetID int64) (*models.Favorite, error)
	AddPerson(ctx context.Context, userID, peopleID int64) (*models.Favorite, error)
	RemovePlanet(ctx context.Context, userID, planetID int64) error
	RemovePerson(ctx context.Context, userID, peopleID int64) error
}

type Services struct {
	Users     UserService
	People    PeopleService
	Planets   PlanetService
	Favorites FavoriteService
}

type Server struct {
	address         string
	logger          logging.Logger
	services        Services
	jwtSecret       []byte
	defaultUserID   int64
	requireAuth     bool
	limiter         *clientLimiter
	shutdownTimeout time.Duration
	handler         http.Handler
}

func NewServer(cfg *config.Config, l logging.Logger, svc Services) *Server {
	s := &Server{
		address:         cfg.EndpointAddrHTTP,
		logger:          l.With("module", "rest_server"),
		services:        svc,
		jwtSecret:       []byte(cfg.SecretKey),
		defaultUserID:   cfg.DefaultUserID,
		requireAuth:     cfg.RequireAuth,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
	if cfg.RateLimitEnabled {
		s.limiter = newClientLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	s.handler = otelhttp.NewHandler(s.middleware(s.routes()), "starwars-api")
	return s
}

// Handler exposes the fully wrapped handler, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is done, then shuts down gracefully within
// the configured timeout.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       time.Minute,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	if s.limiter != nil {
		go s.limiter.cleanup(ctx, time.Minute)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(lis)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
