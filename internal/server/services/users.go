package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/starwars/internal/common"
	"github.com/dmitrijs2005/starwars/internal/server/auth"
	"github.com/dmitrijs2005/starwars/internal/server/config"
	"github.com/dmitrijs2005/starwars/internal/server/models"
	"github.com/dmitrijs2005/starwars/internal/server/repositories/repomanager"
)

// bcrypt ignores input past this length.
const maxPasswordBytes = 72

type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates an account. isActive is required; a nil value is a
// validation error.
func (s *UserService) Register(ctx context.Context, email, password string, isActive *bool) (*models.User, error) {
	email, err := required("email", email, maxEmailLen)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, common.NewValidationError("password", "")
	}
	if len(password) > maxPasswordBytes {
		return nil, common.NewValidationError("password", "must be at most 72 bytes")
	}
	if isActive == nil {
		return nil, common.NewValidationError("is_active", "")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    email,
		Password: hash,
		IsActive: *isActive,
	}

	return s.repomanager.Users(s.db).Create(ctx, user)
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}

// Login checks credentials and returns a signed access token. Unknown
// emails, wrong passwords and inactive accounts all yield
// common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	email, err := required("email", email, maxEmailLen)
	if err != nil {
		return "", err
	}
	if password == "" {
		return "", common.NewValidationError("password", "")
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", err
	}

	ok, err := auth.CheckPassword(user.Password, password)
	if err != nil {
		return "", err
	}
	if !ok || !user.IsActive {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}
