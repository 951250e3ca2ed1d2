// Package triage selects open requests whose due date needs attention
// now or within a caller-chosen window.
package triage

import (
	"sort"
	"strings"
	"time"

	"github.com/example/requesthub/internal/models"
)

// hoursPerDay converts calendar-date differences once both sides are
// truncated to midnight.
const hoursPerDay = 24

// Day truncates a moment to its UTC calendar date.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Select filters, sorts, and truncates triage candidates. A record is
// eligible when it is still open (not fulfilled/closed), carries a due
// date, and that date falls on or before today+WindowDays. Overdue
// records stay in: an open request already past due is the most urgent
// case of all. DaysUntilDue is computed against the same today.
func Select(records []models.ResourceRequest, filter models.TriageFilter, today time.Time) []models.TriageRecord {
	today = Day(today)
	horizon := today.AddDate(0, 0, filter.WindowDays)

	var selected []models.TriageRecord
	for _, rec := range records {
		if rec.Status.Terminal() || rec.NeededBy == nil {
			continue
		}
		due := Day(*rec.NeededBy)
		if due.After(horizon) {
			continue
		}
		if filter.Priority != nil && rec.Priority != *filter.Priority {
			continue
		}
		if filter.Owner != nil {
			if rec.Owner == nil || !strings.EqualFold(*rec.Owner, *filter.Owner) {
				continue
			}
		}
		selected = append(selected, models.TriageRecord{
			ResourceRequest: rec,
			DaysUntilDue:    int(due.Sub(today).Hours() / hoursPerDay),
		})
	}

	sort.SliceStable(selected, func(i, j int) bool {
		di, dj := Day(*selected[i].NeededBy), Day(*selected[j].NeededBy)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return selected[i].UpdatedAt.Before(selected[j].UpdatedAt)
	})

	if filter.Limit > 0 && len(selected) > filter.Limit {
		selected = selected[:filter.Limit]
	}
	return selected
}
