package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

type commandFunc func(ctx context.Context, args []string) error

// execIface is the command surface the REPL dispatches to. *App satisfies it.
type execIface interface {
	isLoggedIn() bool
	role() string
	Register(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Me(ctx context.Context, args []string) error
	Managers(ctx context.Context, args []string) error
	Submit(ctx context.Context, args []string) error
	Mine(ctx context.Context, args []string) error
	Ack(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Team(ctx context.Context, args []string) error
	Dashboard(ctx context.Context, args []string) error
	Feedback(ctx context.Context, args []string) error
	History(ctx context.Context, args []string) error
}

func commandTable(a execIface) map[string]commandFunc {
	return map[string]commandFunc{
		"register":  a.Register,
		"login":     a.Login,
		"logout":    a.Logout,
		"me":        a.Me,
		"managers":  a.Managers,
		"submit":    a.Submit,
		"mine":      a.Mine,
		"ack":       a.Ack,
		"edit":      a.Edit,
		"team":      a.Team,
		"dashboard": a.Dashboard,
		"feedback":  a.Feedback,
		"history":   a.History,
	}
}

func helpText(a execIface) string {
	switch {
	case !a.isLoggedIn():
		return "Available commands: register, login, managers, exit"
	case a.role() == roleManager:
		return "Available commands: me, team, submit, edit <id>, dashboard, feedback <employee-id>, history <employee-id>, logout, exit"
	default:
		return "Available commands: me, mine, ack <id>, logout, exit"
	}
}

// runREPL reads commands from scanner until EOF or exit/quit. Command
// errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	commands := commandTable(a)

	for {
		printlnFn(fmt.Sprintf("fb%s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText(a))
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		run, ok := commands[cmd]
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if err := run(ctx, args); err != nil {
			printlnFn("error:", err)
		}
	}
}

// Root runs the interactive shell over the App's input.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to feedbackctl (type 'help' for commands)")
	if a.isLoggedIn() {
		fmt.Fprintf(a.out, "Resumed session for %s\n", a.current.Email)
	}

	scanner := bufio.NewScanner(a.reader)
	runREPL(ctx, a, func() string {
		if s := a.getStatus(); s != "" {
			return " " + s
		}
		return ""
	}, scanner)
}
