// Package request holds the pure validation rules applied to request
// drafts before they reach storage.
package request

import (
	"strings"

	"github.com/example/requesthub/internal/models"
)

// Result reports the outcome of validating a draft. Issues lists
// every violated rule in rule order, not just the first.
type Result struct {
	Valid  bool
	Issues []string
}

// Validate checks a draft against the required-field and vocabulary
// rules. It has no side effects and never touches storage.
func Validate(in models.RequestInput) Result {
	var issues []string

	if strings.TrimSpace(in.ScholarName) == "" {
		issues = append(issues, "scholar name is required")
	}
	if strings.TrimSpace(in.RequestType) == "" {
		issues = append(issues, "request type is required")
	}
	if _, ok := models.ParsePriority(in.Priority); !ok {
		issues = append(issues, "priority must be low, medium, or high")
	}
	if _, ok := models.ParseStatus(in.Status); !ok {
		issues = append(issues, "status must be open, in_progress, fulfilled, or closed")
	}

	return Result{Valid: len(issues) == 0, Issues: issues}
}
