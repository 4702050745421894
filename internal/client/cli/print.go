package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/feedbackhub/internal/client/api"
)

func table(w io.Writer, header string, rows func(tw *tabwriter.Writer)) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)
	_ = tw.Flush()
}

func printManagers(w io.Writer, list []api.ManagerItem) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No managers registered")
		return
	}
	table(w, "NAME\tEMAIL", func(tw *tabwriter.Writer) {
		for _, m := range list {
			fmt.Fprintf(tw, "%s\t%s\n", m.Name, m.Email)
		}
	})
}

func printPeople(w io.Writer, list []api.Person) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No employees")
		return
	}
	table(w, "ID\tNAME\tEMAIL", func(tw *tabwriter.Writer) {
		for _, p := range list {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", p.ID, p.Name, p.Email)
		}
	})
}

func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", " / ")
}

func printFeedback(w io.Writer, list []api.Feedback, withTime bool) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No feedback")
		return
	}
	header := "ID\tSENTIMENT\tACK\tSTRENGTHS\tIMPROVEMENTS"
	if withTime {
		header = "ID\tWHEN\tSENTIMENT\tACK\tSTRENGTHS\tIMPROVEMENTS"
	}
	table(w, header, func(tw *tabwriter.Writer) {
		for _, f := range list {
			ack := "no"
			if f.Acknowledged {
				ack = "yes"
			}
			if withTime {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", f.ID, f.Timestamp.Local().Format(time.DateTime),
					f.Sentiment, ack, oneLine(f.Strengths), oneLine(f.Improvements))
				continue
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", f.ID, f.Sentiment, ack, oneLine(f.Strengths), oneLine(f.Improvements))
		}
	})
}

func printDashboard(w io.Writer, rows []api.DashboardRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No employees")
		return
	}
	table(w, "ID\tEMPLOYEE\tFEEDBACK\tPOSITIVE\tNEUTRAL\tNEGATIVE", func(tw *tabwriter.Writer) {
		for _, r := range rows {
			b := r.SentimentBreakdown
			fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\n", r.EmployeeID, r.EmployeeName, r.FeedbackCount, b.Positive, b.Neutral, b.Negative)
		}
	})
}
