package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/feedbackhub/internal/common"
	"github.com/dmitrijs2005/feedbackhub/internal/dbx"
	"github.com/dmitrijs2005/feedbackhub/internal/server/config"
	"github.com/dmitrijs2005/feedbackhub/internal/server/models"
	feedbackrepo "github.com/dmitrijs2005/feedbackhub/internal/server/repositories/feedback"
	usersrepo "github.com/dmitrijs2005/feedbackhub/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                   "k",
		AccessTokenValidityDuration: time.Hour,
		BcryptCost:                  bcrypt.MinCost,
	}
}

// memUsers is an in-memory users repository.
type memUsers struct {
	rows []*models.User
	err  error
}

func (m *memUsers) add(u models.User) *models.User {
	u.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, &u)
	return &u
}

func (m *memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, r := range m.rows {
		if r.Email == u.Email {
			return nil, common.ErrConflict
		}
	}
	return m.add(*u), nil
}

func (m *memUsers) find(pred func(*models.User) bool) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, r := range m.rows {
		if pred(r) {
			c := *r
			return &c, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return m.find(func(u *models.User) bool { return u.Email == email })
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	return m.find(func(u *models.User) bool { return u.ID == id })
}

func (m *memUsers) ListManagers(context.Context) ([]models.ManagerSummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []models.ManagerSummary{}
	for _, r := range m.rows {
		if r.IsManager() {
			out = append(out, models.ManagerSummary{ID: r.ID, Name: r.Name, Email: r.Email})
		}
	}
	return out, nil
}

func (m *memUsers) ListByManager(_ context.Context, managerID int64) ([]*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []*models.User{}
	for _, r := range m.rows {
		if r.ManagedBy(managerID) {
			c := *r
			out = append(out, &c)
		}
	}
	return out, nil
}

// memFeedback is an in-memory feedback repository. It hands out copies so
// callers cannot mutate stored rows without going through a write.
type memFeedback struct {
	users  *memUsers
	rows   []*models.Feedback
	err    error
	writes int
}

func (m *memFeedback) Create(_ context.Context, fb *models.Feedback) (*models.Feedback, error) {
	if m.err != nil {
		return nil, m.err
	}
	c := *fb
	c.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, &c)
	out := c
	return &out, nil
}

func (m *memFeedback) GetByID(_ context.Context, id int64) (*models.Feedback, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, r := range m.rows {
		if r.ID == id {
			c := *r
			return &c, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memFeedback) GetForUpdate(ctx context.Context, id int64) (*models.Feedback, error) {
	return m.GetByID(ctx, id)
}

func (m *memFeedback) list(pred func(*models.Feedback) bool) ([]*models.Feedback, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []*models.Feedback{}
	for _, r := range m.rows {
		if pred(r) {
			c := *r
			out = append(out, &c)
		}
	}
	return out, nil
}

func (m *memFeedback) ListByEmployee(_ context.Context, employeeID int64) ([]*models.Feedback, error) {
	return m.list(func(fb *models.Feedback) bool { return fb.EmployeeID == employeeID })
}

func (m *memFeedback) ListByManagerTeam(_ context.Context, managerID int64) ([]*models.Feedback, error) {
	return m.list(func(fb *models.Feedback) bool {
		for _, u := range m.users.rows {
			if u.ID == fb.EmployeeID {
				return u.ManagedBy(managerID)
			}
		}
		return false
	})
}

func (m *memFeedback) UpdateContent(_ context.Context, fb *models.Feedback) error {
	for _, r := range m.rows {
		if r.ID == fb.ID {
			r.Strengths, r.Improvements, r.Sentiment = fb.Strengths, fb.Improvements, fb.Sentiment
			m.writes++
			return nil
		}
	}
	return common.ErrNotFound
}

func (m *memFeedback) MarkAcknowledged(_ context.Context, id int64) error {
	for _, r := range m.rows {
		if r.ID == id {
			r.Acknowledged = true
			m.writes++
			return nil
		}
	}
	return common.ErrNotFound
}

type fakeRepoManager struct {
	u *memUsers
	f *memFeedback
}

func newFakeRepoManager() *fakeRepoManager {
	u := &memUsers{}
	return &fakeRepoManager{u: u, f: &memFeedback{users: u}}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository        { return m.u }
func (m *fakeRepoManager) Feedback(dbx.DBTX) feedbackrepo.Repository  { return m.f }

// seedTeam creates two managers, each with one employee:
// ann(1) manages bob(2); carl(3) manages dina(4).
func seedTeam(rm *fakeRepoManager) (ann, bob, carl, dina *models.User) {
	ann = rm.u.add(models.User{Name: "Ann", Email: "ann@example.com", Role: models.RoleManager})
	bob = rm.u.add(models.User{Name: "Bob", Email: "bob@example.com", Role: models.RoleEmployee, ManagerID: &ann.ID})
	carl = rm.u.add(models.User{Name: "Carl", Email: "carl@example.com", Role: models.RoleManager})
	dina = rm.u.add(models.User{Name: "Dina", Email: "dina@example.com", Role: models.RoleEmployee, ManagerID: &carl.ID})
	return
}
