// Package services contains the server-side business logic: identity,
// authorization gates, the feedback store and dashboard aggregation.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/feedbackhub/internal/common"
	"github.com/dmitrijs2005/feedbackhub/internal/dbx"
	"github.com/dmitrijs2005/feedbackhub/internal/server/auth"
	"github.com/dmitrijs2005/feedbackhub/internal/server/config"
	"github.com/dmitrijs2005/feedbackhub/internal/server/models"
	"github.com/dmitrijs2005/feedbackhub/internal/server/repositories/repomanager"
)

// RegisterInput is the raw registration request.
type RegisterInput struct {
	Name         string `validate:"required"`
	Email        string `validate:"required,email"`
	Password     string `validate:"required"`
	Role         string `validate:"required,oneof=manager employee"`
	ManagerEmail string
}

// Session is the result of a successful login.
type Session struct {
	Token string
	User  *models.User
}

// IdentityService handles registration, login and user lookups.
type IdentityService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	bcryptCost                  int
}

// NewIdentityService constructs an IdentityService from repositories and server config.
func NewIdentityService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *IdentityService {
	return &IdentityService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		bcryptCost:                  cfg.BcryptCost,
	}
}

// Register creates a manager or an employee. Employees must name an
// existing manager by email; the link is stored by the manager's id.
func (s *IdentityService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	role, err := models.ParseRole(in.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	var created *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetByEmail(ctx, in.Email)
		switch {
		case err == nil:
			return fmt.Errorf("%w: email already registered", common.ErrConflict)
		case !errors.Is(err, common.ErrNotFound):
			return fmt.Errorf("lookup email: %w", err)
		}

		user := &models.User{Name: in.Name, Email: in.Email, Role: role}

		if role == models.RoleEmployee {
			if in.ManagerEmail == "" {
				return fmt.Errorf("%w: manager email required for employee", common.ErrValidation)
			}
			manager, err := repo.GetByEmail(ctx, in.ManagerEmail)
			if err != nil && !errors.Is(err, common.ErrNotFound) {
				return fmt.Errorf("lookup manager: %w", err)
			}
			if manager == nil || !manager.IsManager() {
				return fmt.Errorf("%w: manager not found", common.ErrNotFound)
			}
			user.ManagerID = &manager.ID
		}

		hash, err := auth.HashPassword(in.Password, s.bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash

		created, err = repo.Create(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Authenticate checks credentials and issues a token bound to the user's email.
func (s *IdentityService) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: missing fields", common.ErrValidation)
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrAuth
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrAuth
	}

	token, err := auth.GenerateToken(user.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("%w: token: %v", common.ErrInternal, err)
	}

	return &Session{Token: token, User: user}, nil
}

// GetByEmail is an exact lookup. A miss returns (nil, nil).
func (s *IdentityService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// Profile returns the user behind email together with their manager summary.
func (s *IdentityService) Profile(ctx context.Context, email string) (*models.User, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", common.ErrNotFound)
	}
	return user, nil
}

// ListManagers returns every manager; used to populate registration forms.
func (s *IdentityService) ListManagers(ctx context.Context) ([]models.ManagerSummary, error) {
	return s.repomanager.Users(s.db).ListManagers(ctx)
}

// ListEmployeesOf returns the employees assigned to managerID.
func (s *IdentityService) ListEmployeesOf(ctx context.Context, managerID int64) ([]*models.User, error) {
	return s.repomanager.Users(s.db).ListByManager(ctx, managerID)
}

// TokenEmail resolves an access token to the email it is bound to.
func (s *IdentityService) TokenEmail(token string) (string, error) {
	return auth.GetEmailFromToken(token, s.jwtSecret)
}
