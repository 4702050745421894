package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/feedbackhub/internal/common"
	"github.com/dmitrijs2005/feedbackhub/internal/dbx"
	"github.com/dmitrijs2005/feedbackhub/internal/server/models"
	"github.com/dmitrijs2005/feedbackhub/internal/server/repositories/repomanager"
)

// SubmitInput is a new feedback record as sent by a manager.
type SubmitInput struct {
	EmployeeEmail string `validate:"required"`
	Strengths     string `validate:"required"`
	Improvements  string `validate:"required"`
	Sentiment     string `validate:"required"`
}

// FeedbackService creates, reads, updates and acknowledges feedback.
type FeedbackService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	guard       *Guard
	now         func() time.Time
}

// NewFeedbackService constructs a FeedbackService; guard decides who may touch which record.
func NewFeedbackService(db *sql.DB, m repomanager.RepositoryManager, guard *Guard) *FeedbackService {
	return &FeedbackService{db: db, repomanager: m, guard: guard, now: time.Now}
}

// WithClock replaces the timestamp source.
func (s *FeedbackService) WithClock(now func() time.Time) *FeedbackService {
	s.now = now
	return s
}

// Submit records feedback from manager about one of their own employees.
func (s *FeedbackService) Submit(ctx context.Context, manager *models.User, in SubmitInput) (*models.Feedback, error) {
	if !manager.IsManager() {
		return nil, fmt.Errorf("%w: manager role required", common.ErrUnauthorized)
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	sentiment, err := models.ParseSentiment(in.Sentiment)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	emp, err := s.repomanager.Users(s.db).GetByEmail(ctx, in.EmployeeEmail)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	if emp == nil || !emp.ManagedBy(manager.ID) {
		return nil, errNotYourEmployee
	}

	return s.repomanager.Feedback(s.db).Create(ctx, &models.Feedback{
		ManagerID:    manager.ID,
		EmployeeID:   emp.ID,
		Strengths:    in.Strengths,
		Improvements: in.Improvements,
		Sentiment:    sentiment,
		CreatedAt:    s.now().UTC(),
	})
}

// ListForEmployee returns all feedback about employeeID in insertion order.
func (s *FeedbackService) ListForEmployee(ctx context.Context, employeeID int64) ([]*models.Feedback, error) {
	return s.repomanager.Feedback(s.db).ListByEmployee(ctx, employeeID)
}

// History returns feedback about employeeID, newest first. Records sharing a
// timestamp keep insertion order.
func (s *FeedbackService) History(ctx context.Context, employeeID int64) ([]*models.Feedback, error) {
	list, err := s.ListForEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(list, func(a, b *models.Feedback) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return list, nil
}

// ManagerView returns the feedback of one of manager's employees, either in
// insertion order or as history.
func (s *FeedbackService) ManagerView(ctx context.Context, manager *models.User, employeeID int64, history bool) ([]*models.Feedback, error) {
	if _, err := s.guard.ManagedEmployee(ctx, manager, employeeID); err != nil {
		return nil, err
	}
	if history {
		return s.History(ctx, employeeID)
	}
	return s.ListForEmployee(ctx, employeeID)
}

// Acknowledge marks feedback as seen by its subject. Repeating it is a no-op.
func (s *FeedbackService) Acknowledge(ctx context.Context, employee *models.User, feedbackID int64) (*models.Feedback, error) {
	var fb *models.Feedback
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Feedback(tx)

		var err error
		fb, err = loadFeedback(ctx, repo.GetForUpdate, feedbackID)
		if err != nil {
			return err
		}
		if err := s.guard.CanAcknowledgeFeedback(employee, fb); err != nil {
			return err
		}
		if fb.Acknowledged {
			return nil
		}
		if err := repo.MarkAcknowledged(ctx, fb.ID); err != nil {
			return err
		}
		fb.Acknowledged = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fb, nil
}

// Update applies patch to feedback the manager may edit. Omitted fields keep
// their stored values.
func (s *FeedbackService) Update(ctx context.Context, manager *models.User, feedbackID int64, patch models.FeedbackPatch) (*models.Feedback, error) {
	var fb *models.Feedback
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Feedback(tx)

		var err error
		fb, err = loadFeedback(ctx, repo.GetForUpdate, feedbackID)
		if err != nil {
			return err
		}
		if err := s.guard.CanEditFeedback(manager, fb); err != nil {
			return err
		}
		if err := applyPatch(fb, patch); err != nil {
			return err
		}
		if patch.IsEmpty() {
			return nil
		}
		return repo.UpdateContent(ctx, fb)
	})
	if err != nil {
		return nil, err
	}
	return fb, nil
}

func loadFeedback(ctx context.Context, get func(context.Context, int64) (*models.Feedback, error), id int64) (*models.Feedback, error) {
	fb, err := get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("%w: feedback not found", common.ErrNotFound)
		}
		return nil, err
	}
	return fb, nil
}

func applyPatch(fb *models.Feedback, patch models.FeedbackPatch) error {
	if patch.Strengths != nil {
		if *patch.Strengths == "" {
			return fmt.Errorf("%w: strengths must not be empty", common.ErrValidation)
		}
		fb.Strengths = *patch.Strengths
	}
	if patch.Improvements != nil {
		if *patch.Improvements == "" {
			return fmt.Errorf("%w: improvements must not be empty", common.ErrValidation)
		}
		fb.Improvements = *patch.Improvements
	}
	if patch.Sentiment != nil {
		sentiment, err := models.ParseSentiment(*patch.Sentiment)
		if err != nil {
			return fmt.Errorf("%w: %v", common.ErrValidation, err)
		}
		fb.Sentiment = sentiment
	}
	return nil
}
