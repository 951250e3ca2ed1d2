package request

import (
	"strings"
	"testing"

	"github.com/example/requesthub/internal/models"
)

func validDraft() models.RequestInput {
	return models.RequestInput{
		ScholarName: "Jordan",
		RequestType: "Transit pass",
		Priority:    "medium",
		Status:      "open",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*models.RequestInput)
		wantValid  bool
		wantIssues []string
	}{
		{
			name:      "valid draft",
			mutate:    func(in *models.RequestInput) {},
			wantValid: true,
		},
		{
			name:      "case-insensitive vocabularies",
			mutate:    func(in *models.RequestInput) { in.Priority = "HIGH"; in.Status = "In_Progress" },
			wantValid: true,
		},
		{
			name:       "missing scholar name",
			mutate:     func(in *models.RequestInput) { in.ScholarName = "" },
			wantIssues: []string{"scholar name is required"},
		},
		{
			name:       "blank scholar name",
			mutate:     func(in *models.RequestInput) { in.ScholarName = "   " },
			wantIssues: []string{"scholar name is required"},
		},
		{
			name:       "missing request type",
			mutate:     func(in *models.RequestInput) { in.RequestType = "" },
			wantIssues: []string{"request type is required"},
		},
		{
			name:       "unknown priority",
			mutate:     func(in *models.RequestInput) { in.Priority = "urgent" },
			wantIssues: []string{"priority must be low, medium, or high"},
		},
		{
			name:       "unknown status",
			mutate:     func(in *models.RequestInput) { in.Status = "done" },
			wantIssues: []string{"status must be open, in_progress, fulfilled, or closed"},
		},
		{
			name: "all rules reported together",
			mutate: func(in *models.RequestInput) {
				in.ScholarName = ""
				in.RequestType = " "
				in.Priority = "asap"
				in.Status = "pending"
			},
			wantIssues: []string{
				"scholar name is required",
				"request type is required",
				"priority must be low, medium, or high",
				"status must be open, in_progress, fulfilled, or closed",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validDraft()
			tt.mutate(&in)

			result := Validate(in)
			if result.Valid != tt.wantValid {
				t.Fatalf("Valid = %v, want %v (issues: %v)", result.Valid, tt.wantValid, result.Issues)
			}
			if len(result.Issues) != len(tt.wantIssues) {
				t.Fatalf("got %d issues %v, want %d", len(result.Issues), result.Issues, len(tt.wantIssues))
			}
			for i, want := range tt.wantIssues {
				if result.Issues[i] != want {
					t.Errorf("issue[%d] = %q, want %q", i, result.Issues[i], want)
				}
			}
		})
	}
}

func TestValidateMentionsFieldInIssue(t *testing.T) {
	in := validDraft()
	in.ScholarName = ""
	result := Validate(in)
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	found := false
	for _, issue := range result.Issues {
		if strings.Contains(issue, "scholar") {
			found = true
		}
	}
	if !found {
		t.Errorf("no issue mentions the scholar field: %v", result.Issues)
	}
}
