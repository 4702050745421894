package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/feedbackhub/internal/dbx"
	"github.com/dmitrijs2005/feedbackhub/internal/server/models"
	"github.com/dmitrijs2005/feedbackhub/internal/server/repositories/repomanager"
)

// DashboardService builds per-employee aggregates for a manager.
type DashboardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewDashboardService constructs a DashboardService over the given pool.
func NewDashboardService(db *sql.DB, m repomanager.RepositoryManager) *DashboardService {
	return &DashboardService{db: db, repomanager: m}
}

// Dashboard returns one row per employee of manager, in employee id order.
// Employees without feedback get a zero row. Both reads share one
// read-only snapshot.
func (s *DashboardService) Dashboard(ctx context.Context, manager *models.User) ([]models.DashboardRow, error) {
	var (
		employees []*models.User
		feedback  []*models.Feedback
	)
	opts := &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	err := dbx.WithTx(ctx, s.db, opts, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		if employees, err = s.repomanager.Users(tx).ListByManager(ctx, manager.ID); err != nil {
			return err
		}
		feedback, err = s.repomanager.Feedback(tx).ListByManagerTeam(ctx, manager.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return aggregate(employees, feedback)
}

func aggregate(employees []*models.User, feedback []*models.Feedback) ([]models.DashboardRow, error) {
	rows := make([]models.DashboardRow, len(employees))
	index := make(map[int64]int, len(employees))
	for i, e := range employees {
		rows[i] = models.DashboardRow{EmployeeID: e.ID, EmployeeName: e.Name}
		index[e.ID] = i
	}

	for _, fb := range feedback {
		i, ok := index[fb.EmployeeID]
		if !ok {
			continue
		}
		if err := rows[i].SentimentBreakdown.Add(fb.Sentiment); err != nil {
			return nil, fmt.Errorf("feedback %d: %w (%q)", fb.ID, err, fb.Sentiment)
		}
		rows[i].FeedbackCount++
	}
	return rows, nil
}
