package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/feedbackhub/internal/client/api"
	"github.com/dmitrijs2005/feedbackhub/internal/client/session"
)

// getSimpleText, getMultiline and getPassword are indirections used to
// facilitate testing.
var (
	getSimpleText = GetSimpleText
	getMultiline  = GetMultiline
	getPassword   = GetPassword
)

// Register creates a manager or employee account. Employees pick their
// manager by email from the list the server offers.
func (a *App) Register(ctx context.Context, _ []string) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	role, err := getSimpleText(a.reader, "Role (manager/employee)", a.out)
	if err != nil {
		return err
	}

	var managerEmail string
	if role == roleEmployee {
		if err := a.Managers(ctx, nil); err != nil {
			return err
		}
		managerEmail, err = getSimpleText(a.reader, "Manager email", a.out)
		if err != nil {
			return err
		}
	}

	msg, err := a.api.Register(ctx, api.RegisterRequest{
		Name:         name,
		Email:        email,
		Password:     string(password),
		Role:         role,
		ManagerEmail: managerEmail,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, msg)
	return nil
}

// Login authenticates and caches the session for later runs.
func (a *App) Login(ctx context.Context, _ []string) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	resp, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	s := session.Session{Token: resp.Token, Email: email, Name: resp.Name, Role: resp.Role}
	if err := a.sessions.Save(ctx, s); err != nil {
		return err
	}
	a.current = &s
	a.api.SetToken(s.Token)

	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", resp.Name, resp.Role)
	if resp.Manager != nil {
		fmt.Fprintf(a.out, "Manager: %s <%s>\n", resp.Manager.Name, resp.Manager.Email)
	}
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	a.forget(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Me(ctx context.Context, _ []string) error {
	if !a.isLoggedIn() {
		return fmt.Errorf("not logged in, use 'login' first")
	}
	p, err := a.api.Me(ctx)
	if err != nil {
		return a.checkSession(ctx, err)
	}

	fmt.Fprintf(a.out, "#%d %s <%s> %s\n", p.ID, p.Name, p.Email, p.Role)
	if p.Manager != nil {
		fmt.Fprintf(a.out, "Manager: %s <%s>\n", p.Manager.Name, p.Manager.Email)
	}
	return nil
}

func (a *App) Managers(ctx context.Context, _ []string) error {
	list, err := a.api.Managers(ctx)
	if err != nil {
		return err
	}
	printManagers(a.out, list)
	return nil
}
