// Package stats computes grouped counts and the average-age metric
// over a record set in process. The postgres repository performs the
// same aggregation in SQL; repositories without storage-side
// aggregation can delegate to Compute instead, and the tests here pin
// the semantics both must satisfy.
package stats

import (
	"sort"
	"time"

	"github.com/example/requesthub/internal/models"
)

const secondsPerDay = 86400.0

// Compute groups the record set by status and by priority and derives
// the mean age in days of open/in_progress requests relative to now.
// Groups are ordered by count descending; ties break on category name
// so output is deterministic for any input ordering.
func Compute(records []models.ResourceRequest, now time.Time) models.RequestStats {
	statusCounts := map[models.Status]int{}
	priorityCounts := map[models.Priority]int{}

	var openAgeSeconds float64
	var openCount int
	for _, rec := range records {
		statusCounts[rec.Status]++
		priorityCounts[rec.Priority]++
		if rec.Status == models.StatusOpen || rec.Status == models.StatusInProgress {
			openAgeSeconds += now.Sub(rec.CreatedAt).Seconds()
			openCount++
		}
	}

	result := models.RequestStats{}
	for status, count := range statusCounts {
		result.StatusCounts = append(result.StatusCounts, models.StatusStat{Status: status, Count: count})
	}
	sort.Slice(result.StatusCounts, func(i, j int) bool {
		a, b := result.StatusCounts[i], result.StatusCounts[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Status < b.Status
	})

	for priority, count := range priorityCounts {
		result.PriorityCounts = append(result.PriorityCounts, models.PriorityStat{Priority: priority, Count: count})
	}
	sort.Slice(result.PriorityCounts, func(i, j int) bool {
		a, b := result.PriorityCounts[i], result.PriorityCounts[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Priority < b.Priority
	})

	if openCount > 0 {
		avg := openAgeSeconds / secondsPerDay / float64(openCount)
		result.AverageDaysOpen = &avg
	}
	return result
}
