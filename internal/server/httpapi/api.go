// Package httpapi exposes the feedback services over HTTP/JSON using gin.
package httpapi

import (
	"context"

	"github.com/dmitrijs2005/feedbackhub/internal/logging"
	"github.com/dmitrijs2005/feedbackhub/internal/server/models"
	"github.com/dmitrijs2005/feedbackhub/internal/server/services"
)

// Identity is the subset of services.IdentityService the handlers use.
type Identity interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*services.Session, error)
	Profile(ctx context.Context, email string) (*models.User, error)
	ListManagers(ctx context.Context) ([]models.ManagerSummary, error)
	ListEmployeesOf(ctx context.Context, managerID int64) ([]*models.User, error)
	TokenEmail(token string) (string, error)
}

// Guard resolves and gates the caller.
type Guard interface {
	RequireRole(ctx context.Context, email string, role models.Role) (*models.User, error)
}

// Feedback is the subset of services.FeedbackService the handlers use.
type Feedback interface {
	Submit(ctx context.Context, manager *models.User, in services.SubmitInput) (*models.Feedback, error)
	ListForEmployee(ctx context.Context, employeeID int64) ([]*models.Feedback, error)
	Acknowledge(ctx context.Context, employee *models.User, feedbackID int64) (*models.Feedback, error)
	Update(ctx context.Context, manager *models.User, feedbackID int64, patch models.FeedbackPatch) (*models.Feedback, error)
	ManagerView(ctx context.Context, manager *models.User, employeeID int64, history bool) ([]*models.Feedback, error)
}

// Dashboard builds manager aggregates.
type Dashboard interface {
	Dashboard(ctx context.Context, manager *models.User) ([]models.DashboardRow, error)
}

// Handler owns the route handlers and their dependencies.
type Handler struct {
	identity  Identity
	guard     Guard
	feedback  Feedback
	dashboard Dashboard
	logger    logging.Logger
}

func NewHandler(l logging.Logger, id Identity, g Guard, fb Feedback, d Dashboard) *Handler {
	return &Handler{
		identity:  id,
		guard:     g,
		feedback:  fb,
		dashboard: d,
		logger:    l.With("module", "httpapi"),
	}
}
