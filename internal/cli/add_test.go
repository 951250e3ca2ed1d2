package cli

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *time.Time
	}{
		{name: "valid date", value: "2026-02-20", want: timePtr(time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC))},
		{name: "empty is absent", value: ""},
		{name: "unparseable is absent", value: "20/02/2026"},
		{name: "date with time is absent", value: "2026-02-20T10:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseDate(tt.value)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("parseDate(%q) = %v, want %v", tt.value, got, tt.want)
			}
			if got != nil && !got.Equal(*tt.want) {
				t.Errorf("parseDate(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestOptional(t *testing.T) {
	if optional("") != nil {
		t.Error("empty string should map to absent")
	}
	if got := optional("email"); got == nil || *got != "email" {
		t.Errorf("optional(\"email\") = %v", got)
	}
}
