package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/dmitrijs2005/feedbackhub/internal/client/api"
	"github.com/dmitrijs2005/feedbackhub/internal/client/config"
	"github.com/dmitrijs2005/feedbackhub/internal/client/session"
	"github.com/dmitrijs2005/feedbackhub/internal/filex"
)

const (
	roleManager  = "manager"
	roleEmployee = "employee"

	sessionDirName  = "feedbackctl"
	sessionFileName = "session.db"
)

// API is the server surface the CLI talks to; *api.Client implements it.
type API interface {
	SetToken(token string)
	Register(ctx context.Context, r api.RegisterRequest) (string, error)
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
	Me(ctx context.Context) (*api.Profile, error)
	Managers(ctx context.Context) ([]api.ManagerItem, error)
	SubmitFeedback(ctx context.Context, r api.SubmitRequest) (int64, error)
	MyFeedback(ctx context.Context) ([]api.Feedback, error)
	Acknowledge(ctx context.Context, id int64) error
	UpdateFeedback(ctx context.Context, id int64, r api.UpdateRequest) error
	Team(ctx context.Context) ([]api.Person, error)
	Dashboard(ctx context.Context) ([]api.DashboardRow, error)
	EmployeeFeedback(ctx context.Context, employeeID int64, history bool) ([]api.Feedback, error)
}

// SessionStore persists the logged-in identity between runs.
type SessionStore interface {
	Save(ctx context.Context, s session.Session) error
	Load(ctx context.Context) (*session.Session, error)
	Clear(ctx context.Context) error
	Close() error
}

type App struct {
	api      API
	sessions SessionStore
	current  *session.Session
	reader   *bufio.Reader
	out      io.Writer
}

// AppFactory builds an App; the cobra root takes one so tests can inject fakes.
type AppFactory func(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) (*App, error)

// NewApp opens the session cache under cfg.SessionDir and resumes any saved session.
func NewApp(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) (*App, error) {
	dir, err := filex.EnsureSubDir(cfg.SessionDir, sessionDirName)
	if err != nil {
		return nil, err
	}

	store, err := session.Open(ctx, filepath.Join(dir, sessionFileName))
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}

	a := newApp(api.NewClient(cfg.ServerAddr, cfg.RequestTimeout), store, in, out)
	if err := a.resume(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return a, nil
}

func newApp(c API, store SessionStore, in io.Reader, out io.Writer) *App {
	return &App{api: c, sessions: store, reader: bufio.NewReader(in), out: out}
}

func (a *App) resume(ctx context.Context) error {
	s, err := a.sessions.Load(ctx)
	if err != nil {
		return err
	}
	if s != nil {
		a.current = s
		a.api.SetToken(s.Token)
	}
	return nil
}

func (a *App) Close() error {
	return a.sessions.Close()
}

func (a *App) isLoggedIn() bool {
	return a.current != nil
}

func (a *App) role() string {
	if a.current == nil {
		return ""
	}
	return a.current.Role
}

func (a *App) getStatus() string {
	if a.current == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.current.Email, a.current.Role)
}

func (a *App) requireRole(role string) error {
	if a.current == nil {
		return errors.New("not logged in, use 'login' first")
	}
	if a.current.Role != role {
		return fmt.Errorf("this command needs a %s account", role)
	}
	return nil
}

// checkSession drops a cached session the server no longer accepts.
func (a *App) checkSession(ctx context.Context, err error) error {
	if err != nil && a.current != nil && api.IsStatus(err, http.StatusUnauthorized) {
		a.forget(ctx)
		return fmt.Errorf("session expired, please log in again: %w", err)
	}
	return err
}

func (a *App) forget(ctx context.Context) {
	a.current = nil
	a.api.SetToken("")
	if err := a.sessions.Clear(ctx); err != nil {
		fmt.Fprintln(a.out, "warning: could not clear session:", err)
	}
}
