package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/feedbackhub/internal/client/api"
)

func parseID(args []string, what string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: <%s>", what)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", what, args[0])
	}
	return id, nil
}

// Submit writes feedback about one of the manager's employees.
func (a *App) Submit(ctx context.Context, _ []string) error {
	if err := a.requireRole(roleManager); err != nil {
		return err
	}

	employee, err := getSimpleText(a.reader, "Employee email", a.out)
	if err != nil {
		return err
	}
	strengths, err := getMultiline(a.reader, "Strengths", a.out)
	if err != nil {
		return err
	}
	improvements, err := getMultiline(a.reader, "Areas to improve", a.out)
	if err != nil {
		return err
	}
	sentiment, err := getSimpleText(a.reader, "Sentiment (positive/neutral/negative)", a.out)
	if err != nil {
		return err
	}

	id, err := a.api.SubmitFeedback(ctx, api.SubmitRequest{
		EmployeeEmail: employee,
		Strengths:     strengths,
		Improvements:  improvements,
		Sentiment:     sentiment,
	})
	if err != nil {
		return a.checkSession(ctx, err)
	}

	fmt.Fprintf(a.out, "Feedback #%d submitted\n", id)
	return nil
}

// Mine lists feedback received by the logged-in employee.
func (a *App) Mine(ctx context.Context, _ []string) error {
	if err := a.requireRole(roleEmployee); err != nil {
		return err
	}
	list, err := a.api.MyFeedback(ctx)
	if err != nil {
		return a.checkSession(ctx, err)
	}
	printFeedback(a.out, list, false)
	return nil
}

func (a *App) Ack(ctx context.Context, args []string) error {
	if err := a.requireRole(roleEmployee); err != nil {
		return err
	}
	id, err := parseID(args, "feedback-id")
	if err != nil {
		return err
	}
	if err := a.api.Acknowledge(ctx, id); err != nil {
		return a.checkSession(ctx, err)
	}
	fmt.Fprintf(a.out, "Feedback #%d acknowledged\n", id)
	return nil
}

// Edit updates feedback fields; an empty answer keeps the stored value.
func (a *App) Edit(ctx context.Context, args []string) error {
	if err := a.requireRole(roleManager); err != nil {
		return err
	}
	id, err := parseID(args, "feedback-id")
	if err != nil {
		return err
	}

	var req api.UpdateRequest
	fmt.Fprintln(a.out, "Leave a field empty to keep it unchanged.")
	for _, f := range []struct {
		prompt    string
		multiline bool
		dst       **string
	}{
		{"Strengths", true, &req.Strengths},
		{"Areas to improve", true, &req.Improvements},
		{"Sentiment (positive/neutral/negative)", false, &req.Sentiment},
	} {
		read := getSimpleText
		if f.multiline {
			read = getMultiline
		}
		v, err := read(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		if v != "" {
			*f.dst = &v
		}
	}

	if req.Strengths == nil && req.Improvements == nil && req.Sentiment == nil {
		fmt.Fprintln(a.out, "Nothing to change")
		return nil
	}

	if err := a.api.UpdateFeedback(ctx, id, req); err != nil {
		return a.checkSession(ctx, err)
	}
	fmt.Fprintf(a.out, "Feedback #%d updated\n", id)
	return nil
}

func (a *App) Team(ctx context.Context, _ []string) error {
	if err := a.requireRole(roleManager); err != nil {
		return err
	}
	list, err := a.api.Team(ctx)
	if err != nil {
		return a.checkSession(ctx, err)
	}
	printPeople(a.out, list)
	return nil
}

func (a *App) Dashboard(ctx context.Context, _ []string) error {
	if err := a.requireRole(roleManager); err != nil {
		return err
	}
	rows, err := a.api.Dashboard(ctx)
	if err != nil {
		return a.checkSession(ctx, err)
	}
	printDashboard(a.out, rows)
	return nil
}

// Feedback lists feedback about one employee in the order it was written.
func (a *App) Feedback(ctx context.Context, args []string) error {
	return a.employeeFeedback(ctx, args, false)
}

// History lists feedback about one employee, newest first.
func (a *App) History(ctx context.Context, args []string) error {
	return a.employeeFeedback(ctx, args, true)
}

func (a *App) employeeFeedback(ctx context.Context, args []string, history bool) error {
	if err := a.requireRole(roleManager); err != nil {
		return err
	}
	id, err := parseID(args, "employee-id")
	if err != nil {
		return err
	}
	list, err := a.api.EmployeeFeedback(ctx, id, history)
	if err != nil {
		return a.checkSession(ctx, err)
	}
	printFeedback(a.out, list, history)
	return nil
}
