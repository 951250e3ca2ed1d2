package models

import "testing"

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   Priority
		wantOK bool
	}{
		{name: "lowercase", raw: "high", want: PriorityHigh, wantOK: true},
		{name: "mixed case", raw: "MeDiUm", want: PriorityMedium, wantOK: true},
		{name: "padded", raw: "  low ", want: PriorityLow, wantOK: true},
		{name: "unknown", raw: "urgent", wantOK: false},
		{name: "empty", raw: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePriority(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParsePriority(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParsePriority(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   Status
		wantOK bool
	}{
		{name: "open", raw: "open", want: StatusOpen, wantOK: true},
		{name: "uppercase", raw: "IN_PROGRESS", want: StatusInProgress, wantOK: true},
		{name: "fulfilled", raw: "Fulfilled", want: StatusFulfilled, wantOK: true},
		{name: "closed", raw: "closed", want: StatusClosed, wantOK: true},
		{name: "unknown", raw: "done", wantOK: false},
		{name: "empty", raw: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseStatus(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseStatus(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	if StatusOpen.Terminal() || StatusInProgress.Terminal() {
		t.Error("open and in_progress must not be terminal")
	}
	if !StatusFulfilled.Terminal() || !StatusClosed.Terminal() {
		t.Error("fulfilled and closed must be terminal")
	}
}
