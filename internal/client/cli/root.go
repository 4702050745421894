package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/feedbackhub/internal/client/config"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the feedbackctl command tree. Without a subcommand
// it starts the interactive shell; each subcommand runs one action.
func NewRootCommand(factory AppFactory) *cobra.Command {
	var (
		configPath string
		serverAddr string
		timeout    time.Duration
		sessionDir string
		app        *App
	)

	root := &cobra.Command{
		Use:           "feedbackctl",
		Short:         "Terminal client for the feedbackhub API",
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var args []string
			if configPath != "" {
				args = []string{"-c", configPath}
			}
			cfg, err := config.Load(args)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("server") {
				cfg.ServerAddr = serverAddr
			}
			if flags.Changed("timeout") {
				cfg.RequestTimeout = timeout
			}
			if flags.Changed("session-dir") {
				cfg.SessionDir = sessionDir
			}

			app, err = factory(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
			return err
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.Root(cmd.Context())
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "path to JSON config file")
	pf.StringVarP(&serverAddr, "server", "a", "", "feedbackhub API base URL")
	pf.DurationVar(&timeout, "timeout", 0, "per-request timeout")
	pf.StringVar(&sessionDir, "session-dir", "", "directory holding the session cache")

	add := func(use, short string, args cobra.PositionalArgs, pick func(*App) commandFunc) {
		root.AddCommand(&cobra.Command{
			Use:   use,
			Short: short,
			Args:  args,
			RunE: func(cmd *cobra.Command, args []string) error {
				return pick(app)(cmd.Context(), args)
			},
		})
	}

	add("register", "Create a manager or employee account", cobra.NoArgs, func(a *App) commandFunc { return a.Register })
	add("login", "Log in and cache the session", cobra.NoArgs, func(a *App) commandFunc { return a.Login })
	add("logout", "Forget the cached session", cobra.NoArgs, func(a *App) commandFunc { return a.Logout })
	add("me", "Show the logged-in user", cobra.NoArgs, func(a *App) commandFunc { return a.Me })
	add("managers", "List managers", cobra.NoArgs, func(a *App) commandFunc { return a.Managers })
	add("submit", "Submit feedback about an employee", cobra.NoArgs, func(a *App) commandFunc { return a.Submit })
	add("mine", "List feedback about me", cobra.NoArgs, func(a *App) commandFunc { return a.Mine })
	add("ack <feedback-id>", "Acknowledge feedback", cobra.ExactArgs(1), func(a *App) commandFunc { return a.Ack })
	add("edit <feedback-id>", "Edit feedback you wrote", cobra.ExactArgs(1), func(a *App) commandFunc { return a.Edit })
	add("team", "List my employees", cobra.NoArgs, func(a *App) commandFunc { return a.Team })
	add("dashboard", "Show per-employee sentiment counts", cobra.NoArgs, func(a *App) commandFunc { return a.Dashboard })
	add("feedback <employee-id>", "List feedback about an employee", cobra.ExactArgs(1), func(a *App) commandFunc { return a.Feedback })
	add("history <employee-id>", "List feedback about an employee, newest first", cobra.ExactArgs(1), func(a *App) commandFunc { return a.History })

	return root
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context, factory AppFactory) error {
	return NewRootCommand(factory).ExecuteContext(ctx)
}
