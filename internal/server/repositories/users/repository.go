// Package users declares the identity store contract and its PostgreSQL
// implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/feedbackhub/internal/server/models"
)

// Repository persists user records and the manager→employee assignment.
//
// Lookups return common.ErrNotFound on a miss. Single-user lookups populate
// User.Manager when the user has a manager.
type Repository interface {
	// Create inserts user and fills in ID and CreatedAt. A duplicate email
	// yields common.ErrConflict.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	ListManagers(ctx context.Context) ([]models.ManagerSummary, error)
	// ListByManager returns the employees assigned to managerID in id order.
	ListByManager(ctx context.Context, managerID int64) ([]*models.User, error)
}
