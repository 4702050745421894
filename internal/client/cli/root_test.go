package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/feedbackhub/internal/client/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type factoryProbe struct {
	cfg      *config.Config
	api      *fakeAPI
	sessions *memSessions
}

func (p *factoryProbe) factory(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) (*App, error) {
	p.cfg = cfg
	a := newApp(p.api, p.sessions, in, out)
	return a, a.resume(ctx)
}

func runRoot(t *testing.T, p *factoryProbe, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(p.factory)
	out := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_Tree(t *testing.T) {
	cmd := NewRootCommand((&factoryProbe{}).factory)
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"register", "login", "logout", "me", "managers", "submit", "mine",
		"ack", "edit", "team", "dashboard", "feedback", "history"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCommand_FlagsOverrideConfig(t *testing.T) {
	p := &factoryProbe{api: &fakeAPI{}, sessions: &memSessions{}}

	_, err := runRoot(t, p, "", "--server", "http://api:9000", "--session-dir", t.TempDir(), "managers")
	require.NoError(t, err)
	assert.Equal(t, "http://api:9000", p.cfg.ServerAddr)
	assert.Equal(t, []string{"managers"}, p.api.calls)
	assert.True(t, p.sessions.closed)
}

func TestRootCommand_ArgValidation(t *testing.T) {
	p := &factoryProbe{api: &fakeAPI{}, sessions: loggedInAs(roleEmployee)}

	_, err := runRoot(t, p, "", "ack")
	require.Error(t, err)
	assert.Empty(t, p.api.calls)

	_, err = runRoot(t, p, "", "ack", "3")
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.api.gotID)
}

func TestRootCommand_StartsShell(t *testing.T) {
	capturePrintln(t)
	p := &factoryProbe{api: &fakeAPI{}, sessions: loggedInAs(roleManager)}

	out, err := runRoot(t, p, "team\nexit\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome to feedbackctl")
	assert.Contains(t, out, "Resumed session for manager@example.com")
	assert.Equal(t, []string{"team"}, p.api.calls)
}
