package postgres

import (
	"time"

	"github.com/example/requesthub/internal/models"
)

func str(s string) *string { return &s }

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

// SampleRequests returns the demo fixtures inserted by the seed
// command, spanning every priority and status.
func SampleRequests() []models.NewRequest {
	return []models.NewRequest{
		{
			ScholarName: "Aisha Thompson",
			RequestType: "Laptop replacement",
			Priority:    models.PriorityHigh,
			Status:      models.StatusOpen,
			NeededBy:    date(2026, time.February, 20),
			Owner:       str("Casework"),
			Channel:     str("email"),
			Notes:       str("Current device failing during midterm projects."),
		},
		{
			ScholarName: "Miguel Santos",
			RequestType: "Textbook voucher",
			Priority:    models.PriorityMedium,
			Status:      models.StatusInProgress,
			NeededBy:    date(2026, time.February, 16),
			Owner:       str("Operations"),
			Channel:     str("form"),
			Notes:       str("Biology lab manual and access code."),
		},
		{
			ScholarName: "Priya Desai",
			RequestType: "Transit pass",
			Priority:    models.PriorityLow,
			Status:      models.StatusFulfilled,
			NeededBy:    date(2026, time.February, 12),
			Owner:       str("Operations"),
			Channel:     str("slack"),
			Notes:       str("Renewed monthly pass for campus commute."),
		},
		{
			ScholarName: "Jordan Lee",
			RequestType: "Emergency grant",
			Priority:    models.PriorityHigh,
			Status:      models.StatusOpen,
			NeededBy:    date(2026, time.February, 11),
			Owner:       str("Financial Aid"),
			Channel:     str("phone"),
			Notes:       str("Housing deposit due within 72 hours."),
		},
		{
			ScholarName: "Sofia Ramirez",
			RequestType: "Childcare support",
			Priority:    models.PriorityMedium,
			Status:      models.StatusInProgress,
			NeededBy:    date(2026, time.February, 25),
			Owner:       str("Student Support"),
			Channel:     str("email"),
			Notes:       str("Looking for after-school coverage for two weeks."),
		},
		{
			ScholarName: "Noah Patel",
			RequestType: "Testing accommodations",
			Priority:    models.PriorityMedium,
			Status:      models.StatusFulfilled,
			NeededBy:    date(2026, time.February, 14),
			Owner:       str("Student Support"),
			Channel:     str("form"),
			Notes:       str("Approved extra time for certification exam."),
		},
		{
			ScholarName: "Emma Robinson",
			RequestType: "Mentoring match",
			Priority:    models.PriorityLow,
			Status:      models.StatusClosed,
			NeededBy:    nil,
			Owner:       str("Mentorship"),
			Channel:     str("email"),
			Notes:       str("Matched with volunteer in data science."),
		},
		{
			ScholarName: "Kai Nguyen",
			RequestType: "Interview attire stipend",
			Priority:    models.PriorityHigh,
			Status:      models.StatusOpen,
			NeededBy:    date(2026, time.February, 18),
			Owner:       str("Career Services"),
			Channel:     str("form"),
			Notes:       str("Interview scheduled with partner on Feb 19."),
		},
	}
}
