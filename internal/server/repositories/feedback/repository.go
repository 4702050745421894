// Package feedback declares the feedback store contract and its PostgreSQL
// implementation.
package feedback

import (
	"context"

	"github.com/dmitrijs2005/feedbackhub/internal/server/models"
)

// Repository persists feedback records. Lookups return common.ErrNotFound
// on a miss. Lists are returned in insertion (id) order.
type Repository interface {
	// Create inserts fb and fills in its ID.
	Create(ctx context.Context, fb *models.Feedback) (*models.Feedback, error)
	GetByID(ctx context.Context, id int64) (*models.Feedback, error)
	// GetForUpdate is GetByID with a row lock; use it inside a transaction.
	GetForUpdate(ctx context.Context, id int64) (*models.Feedback, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]*models.Feedback, error)
	// ListByManagerTeam returns feedback about every employee currently
	// assigned to managerID, whoever wrote it.
	ListByManagerTeam(ctx context.Context, managerID int64) ([]*models.Feedback, error)
	// UpdateContent overwrites strengths, improvements and sentiment.
	UpdateContent(ctx context.Context, fb *models.Feedback) error
	MarkAcknowledged(ctx context.Context, id int64) error
}
