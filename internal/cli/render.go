package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/example/requesthub/internal/models"
)

const dateLayout = "2006-01-02"

func printRequests(requests []models.ResourceRequest) {
	if len(requests) == 0 {
		fmt.Println("No requests found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tSCHOLAR\tTYPE\tPRIORITY\tSTATUS\tNEEDED BY\tOWNER\tUPDATED")
	fmt.Fprintln(w, "--\t-------\t----\t--------\t------\t---------\t-----\t-------")
	for _, r := range requests {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID,
			r.ScholarName,
			r.RequestType,
			colorPriority(r.Priority),
			colorStatus(r.Status),
			formatDate(r.NeededBy),
			orDash(r.Owner),
			r.UpdatedAt.Format(dateLayout),
		)
	}
	w.Flush()
}

func printTriage(records []models.TriageRecord) {
	if len(records) == 0 {
		fmt.Println("Nothing to triage.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tSCHOLAR\tTYPE\tPRIORITY\tSTATUS\tNEEDED BY\tDAYS DUE\tOWNER")
	fmt.Fprintln(w, "--\t-------\t----\t--------\t------\t---------\t--------\t-----")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID,
			r.ScholarName,
			r.RequestType,
			colorPriority(r.Priority),
			colorStatus(r.Status),
			formatDate(r.NeededBy),
			formatDaysDue(r.DaysUntilDue),
			orDash(r.Owner),
		)
	}
	w.Flush()
}

func printStats(stats models.RequestStats) {
	fmt.Println("Status counts:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "STATUS\tCOUNT")
	fmt.Fprintln(w, "------\t-----")
	for _, row := range stats.StatusCounts {
		fmt.Fprintf(w, "%s\t%d\n", colorStatus(row.Status), row.Count)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Priority counts:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "PRIORITY\tCOUNT")
	fmt.Fprintln(w, "--------\t-----")
	for _, row := range stats.PriorityCounts {
		fmt.Fprintf(w, "%s\t%d\n", colorPriority(row.Priority), row.Count)
	}
	w.Flush()

	fmt.Println()
	avgText := "n/a"
	if stats.AverageDaysOpen != nil {
		avgText = fmt.Sprintf("%.1f days", *stats.AverageDaysOpen)
	}
	fmt.Printf("Average days open (open/in_progress): %s\n", avgText)
}

func colorPriority(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return color.New(color.FgRed).Sprint(p)
	case models.PriorityMedium:
		return color.New(color.FgYellow).Sprint(p)
	case models.PriorityLow:
		return color.New(color.FgGreen).Sprint(p)
	}
	return string(p)
}

func colorStatus(s models.Status) string {
	switch s {
	case models.StatusOpen:
		return color.New(color.FgHiBlue).Sprint(s)
	case models.StatusInProgress:
		return color.New(color.FgCyan).Sprint(s)
	case models.StatusFulfilled:
		return color.New(color.FgHiGreen).Sprint(s)
	case models.StatusClosed:
		return color.New(color.Faint).Sprint(s)
	}
	return string(s)
}

func formatDaysDue(days int) string {
	if days < 0 {
		return color.New(color.FgRed, color.Bold).Sprintf("%d (overdue)", days)
	}
	return fmt.Sprintf("%d", days)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(dateLayout)
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
