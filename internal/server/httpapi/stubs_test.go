package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/feedbackhub/internal/common"
	"github.com/dmitrijs2005/feedbackhub/internal/logging"
	"github.com/dmitrijs2005/feedbackhub/internal/server/models"
	"github.com/dmitrijs2005/feedbackhub/internal/server/services"
	"github.com/gin-gonic/gin"
)

type stubIdentity struct {
	registerFn func(services.RegisterInput) (*models.User, error)
	authFn     func(email, password string) (*services.Session, error)
	profileFn  func(email string) (*models.User, error)
	managers   []models.ManagerSummary
	employees  []*models.User
	err        error
}

func (s *stubIdentity) Register(_ context.Context, in services.RegisterInput) (*models.User, error) {
	return s.registerFn(in)
}
func (s *stubIdentity) Authenticate(_ context.Context, email, password string) (*services.Session, error) {
	return s.authFn(email, password)
}
func (s *stubIdentity) Profile(_ context.Context, email string) (*models.User, error) {
	return s.profileFn(email)
}
func (s *stubIdentity) ListManagers(context.Context) ([]models.ManagerSummary, error) {
	return s.managers, s.err
}
func (s *stubIdentity) ListEmployeesOf(context.Context, int64) ([]*models.User, error) {
	return s.employees, s.err
}

// TokenEmail accepts tokens of the form "tok:<email>".
func (s *stubIdentity) TokenEmail(token string) (string, error) {
	email, ok := strings.CutPrefix(token, "tok:")
	if !ok {
		return "", common.ErrInvalidToken
	}
	return email, nil
}

type stubGuard struct {
	users map[string]*models.User
}

func (g *stubGuard) RequireRole(_ context.Context, email string, role models.Role) (*models.User, error) {
	u, ok := g.users[email]
	if !ok || u.Role != role {
		return nil, common.ErrUnauthorized
	}
	return u, nil
}

type stubFeedback struct {
	submitFn func(manager *models.User, in services.SubmitInput) (*models.Feedback, error)
	list     []*models.Feedback
	err      error

	gotID      int64
	gotPatch   models.FeedbackPatch
	gotHistory bool
}

func (f *stubFeedback) Submit(_ context.Context, m *models.User, in services.SubmitInput) (*models.Feedback, error) {
	return f.submitFn(m, in)
}
func (f *stubFeedback) ListForEmployee(context.Context, int64) ([]*models.Feedback, error) {
	return f.list, f.err
}
func (f *stubFeedback) Acknowledge(_ context.Context, _ *models.User, id int64) (*models.Feedback, error) {
	f.gotID = id
	return &models.Feedback{ID: id, Acknowledged: true}, f.err
}
func (f *stubFeedback) Update(_ context.Context, _ *models.User, id int64, p models.FeedbackPatch) (*models.Feedback, error) {
	f.gotID, f.gotPatch = id, p
	return &models.Feedback{ID: id}, f.err
}
func (f *stubFeedback) ManagerView(_ context.Context, _ *models.User, id int64, history bool) ([]*models.Feedback, error) {
	f.gotID, f.gotHistory = id, history
	return f.list, f.err
}

type stubDashboard struct {
	rows []models.DashboardRow
	err  error
}

func (d *stubDashboard) Dashboard(context.Context, *models.User) ([]models.DashboardRow, error) {
	return d.rows, d.err
}

var (
	mgrAnn = &models.User{ID: 1, Name: "Ann", Email: "ann@example.com", Role: models.RoleManager}
	empBob = &models.User{ID: 2, Name: "Bob", Email: "bob@example.com", Role: models.RoleEmployee,
		Manager: &models.ManagerSummary{ID: 1, Name: "Ann", Email: "ann@example.com"}}
)

type testAPI struct {
	identity  *stubIdentity
	feedback  *stubFeedback
	dashboard *stubDashboard
	engine    *gin.Engine
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	api := &testAPI{
		identity:  &stubIdentity{},
		feedback:  &stubFeedback{},
		dashboard: &stubDashboard{},
	}
	guard := &stubGuard{users: map[string]*models.User{mgrAnn.Email: mgrAnn, empBob.Email: empBob}}
	h := NewHandler(logging.Nop(), api.identity, guard, api.feedback, api.dashboard)
	api.engine = h.Routes(0)
	return api
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	rec := httptest.NewRecorder()
	a.engine.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func tokenFor(u *models.User) string { return "tok:" + u.Email }

