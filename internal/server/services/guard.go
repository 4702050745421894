package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/feedbackhub/internal/common"
	"github.com/dmitrijs2005/feedbackhub/internal/server/config"
	"github.com/dmitrijs2005/feedbackhub/internal/server/models"
	"github.com/dmitrijs2005/feedbackhub/internal/server/repositories/repomanager"
)

var errNotYourEmployee = fmt.Errorf("%w: employee not found or not under your management", common.ErrNotFound)

// Guard holds the authorization rules. Every check returns an error value;
// absence and foreign ownership are both reported as common.ErrNotFound.
type Guard struct {
	db                  *sql.DB
	repomanager         repomanager.RepositoryManager
	allowAnyManagerEdit bool
}

// NewGuard constructs a Guard. cfg.AllowAnyManagerEdit relaxes the edit ownership rule.
func NewGuard(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *Guard {
	return &Guard{db: db, repomanager: m, allowAnyManagerEdit: cfg.AllowAnyManagerEdit}
}

// Caller loads the authenticated user. A token for an email that no longer
// resolves is treated as unauthorized.
func (g *Guard) Caller(ctx context.Context, email string) (*models.User, error) {
	user, err := g.repomanager.Users(g.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown user", common.ErrUnauthorized)
		}
		return nil, err
	}
	return user, nil
}

// RequireRole loads the caller and checks it holds role.
func (g *Guard) RequireRole(ctx context.Context, email string, role models.Role) (*models.User, error) {
	user, err := g.Caller(ctx, email)
	if err != nil {
		return nil, err
	}
	if user.Role != role {
		return nil, fmt.Errorf("%w: %s role required", common.ErrUnauthorized, role)
	}
	return user, nil
}

// ManagedEmployee returns the employee with employeeID if it reports to manager.
func (g *Guard) ManagedEmployee(ctx context.Context, manager *models.User, employeeID int64) (*models.User, error) {
	emp, err := g.repomanager.Users(g.db).GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, errNotYourEmployee
		}
		return nil, err
	}
	if !emp.ManagedBy(manager.ID) {
		return nil, errNotYourEmployee
	}
	return emp, nil
}

// CanEditFeedback allows only the author to edit, unless the server runs
// with allow_any_manager_edit.
func (g *Guard) CanEditFeedback(manager *models.User, fb *models.Feedback) error {
	if !manager.IsManager() {
		return fmt.Errorf("%w: manager role required", common.ErrUnauthorized)
	}
	if g.allowAnyManagerEdit || fb.ManagerID == manager.ID {
		return nil
	}
	return fmt.Errorf("%w: feedback not found", common.ErrNotFound)
}

// CanAcknowledgeFeedback allows only the subject employee.
func (g *Guard) CanAcknowledgeFeedback(employee *models.User, fb *models.Feedback) error {
	if fb.EmployeeID != employee.ID {
		return fmt.Errorf("%w: feedback not found", common.ErrNotFound)
	}
	return nil
}
