package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/dmitrijs2005/feedbackhub/internal/client/api"
	"github.com/dmitrijs2005/feedbackhub/internal/client/session"
)

type fakeAPI struct {
	token string
	calls []string

	loginResp  *api.LoginResponse
	err        error
	managers   []api.ManagerItem
	feedback   []api.Feedback
	team       []api.Person
	dashboard  []api.DashboardRow
	gotReg     api.RegisterRequest
	gotSubmit  api.SubmitRequest
	gotUpdate  api.UpdateRequest
	gotID      int64
	gotHistory bool
}

func (f *fakeAPI) SetToken(token string) { f.token = token }
func (f *fakeAPI) Register(_ context.Context, r api.RegisterRequest) (string, error) {
	f.calls = append(f.calls, "register")
	f.gotReg = r
	return r.Role + " registered successfully", f.err
}
func (f *fakeAPI) Login(_ context.Context, email, password string) (*api.LoginResponse, error) {
	f.calls = append(f.calls, "login")
	if f.err != nil {
		return nil, f.err
	}
	return f.loginResp, nil
}
func (f *fakeAPI) Me(context.Context) (*api.Profile, error) {
	f.calls = append(f.calls, "me")
	if f.err != nil {
		return nil, f.err
	}
	return &api.Profile{ID: 1, Name: "Ann", Email: "ann@example.com", Role: "manager"}, nil
}
func (f *fakeAPI) Managers(context.Context) ([]api.ManagerItem, error) {
	f.calls = append(f.calls, "managers")
	return f.managers, f.err
}
func (f *fakeAPI) SubmitFeedback(_ context.Context, r api.SubmitRequest) (int64, error) {
	f.calls = append(f.calls, "submit")
	f.gotSubmit = r
	return 7, f.err
}
func (f *fakeAPI) MyFeedback(context.Context) ([]api.Feedback, error) {
	f.calls = append(f.calls, "mine")
	return f.feedback, f.err
}
func (f *fakeAPI) Acknowledge(_ context.Context, id int64) error {
	f.calls = append(f.calls, "ack")
	f.gotID = id
	return f.err
}
func (f *fakeAPI) UpdateFeedback(_ context.Context, id int64, r api.UpdateRequest) error {
	f.calls = append(f.calls, "edit")
	f.gotID, f.gotUpdate = id, r
	return f.err
}
func (f *fakeAPI) Team(context.Context) ([]api.Person, error) {
	f.calls = append(f.calls, "team")
	return f.team, f.err
}
func (f *fakeAPI) Dashboard(context.Context) ([]api.DashboardRow, error) {
	f.calls = append(f.calls, "dashboard")
	return f.dashboard, f.err
}
func (f *fakeAPI) EmployeeFeedback(_ context.Context, id int64, history bool) ([]api.Feedback, error) {
	f.calls = append(f.calls, "employee-feedback")
	f.gotID, f.gotHistory = id, history
	return f.feedback, f.err
}

type memSessions struct {
	saved   *session.Session
	cleared int
	closed  bool
}

func (m *memSessions) Save(_ context.Context, s session.Session) error { m.saved = &s; return nil }
func (m *memSessions) Load(context.Context) (*session.Session, error)  { return m.saved, nil }
func (m *memSessions) Clear(context.Context) error                     { m.saved = nil; m.cleared++; return nil }
func (m *memSessions) Close() error                                    { m.closed = true; return nil }

func unauthorized() error {
	return &api.Error{Status: http.StatusUnauthorized, Message: "token expired"}
}

// newTestApp wires an App over fakes with the given stdin lines.
func newTestApp(t *testing.T, f *fakeAPI, s *memSessions, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	a := newApp(f, s, strings.NewReader(strings.Join(lines, "\n")+"\n"), out)
	if err := a.resume(context.Background()); err != nil {
		t.Fatalf("resume: %v", err)
	}
	return a, out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func loggedInAs(role string) *memSessions {
	return &memSessions{saved: &session.Session{Token: "jwt", Email: role + "@example.com", Name: role, Role: role}}
}

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}
