package app

import "strings"

// ValidationError carries every violated rule from a rejected draft.
// It is an expected, recoverable outcome: the caller fixes the input
// and resubmits.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + strings.Join(e.Issues, "; ")
}
