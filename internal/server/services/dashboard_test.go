package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/feedbackhub/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	db, mock := newSQLMockDB(t)
	rm := newFakeRepoManager()
	ann, bob, carl, dina := seedTeam(rm)
	eve := rm.u.add(models.User{Name: "Eve", Email: "eve@example.com", Role: models.RoleEmployee, ManagerID: &ann.ID})
	ctx := context.Background()

	for _, s := range []models.Sentiment{models.SentimentPositive, models.SentimentPositive, models.SentimentNegative} {
		_, _ = rm.f.Create(ctx, &models.Feedback{ManagerID: ann.ID, EmployeeID: bob.ID, Sentiment: s})
	}
	_, _ = rm.f.Create(ctx, &models.Feedback{ManagerID: carl.ID, EmployeeID: dina.ID, Sentiment: models.SentimentNeutral})

	mock.ExpectBegin()
	mock.ExpectCommit()
	rows, err := NewDashboardService(db, rm).Dashboard(ctx, ann)
	require.NoError(t, err)

	assert.Equal(t, []models.DashboardRow{
		{EmployeeID: bob.ID, EmployeeName: "Bob", FeedbackCount: 3, SentimentBreakdown: models.SentimentBreakdown{Positive: 2, Negative: 1}},
		{EmployeeID: eve.ID, EmployeeName: "Eve"},
	}, rows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboard_NoEmployees(t *testing.T) {
	db, mock := newSQLMockDB(t)
	rm := newFakeRepoManager()
	mgr := rm.u.add(models.User{Name: "Solo", Email: "solo@example.com", Role: models.RoleManager})

	mock.ExpectBegin()
	mock.ExpectCommit()
	rows, err := NewDashboardService(db, rm).Dashboard(context.Background(), mgr)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDashboard_RepoError(t *testing.T) {
	db, mock := newSQLMockDB(t)
	rm := newFakeRepoManager()
	ann, _, _, _ := seedTeam(rm)
	rm.f.err = errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := NewDashboardService(db, rm).Dashboard(context.Background(), ann)
	assert.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAggregate_UnknownSentiment(t *testing.T) {
	emps := []*models.User{{ID: 2, Name: "Bob"}}
	fbs := []*models.Feedback{
		{ID: 1, EmployeeID: 2, Sentiment: models.SentimentPositive},
		{ID: 2, EmployeeID: 2, Sentiment: "ecstatic"},
	}
	_, err := aggregate(emps, fbs)
	assert.ErrorIs(t, err, models.ErrUnknownSentiment)
}
