// Package models defines the resource request entity and its views.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Priority is the urgency bucket assigned to a request.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority matches a raw value against the priority vocabulary,
// case-insensitively. The stored form is always lowercase.
func ParsePriority(raw string) (Priority, bool) {
	switch Priority(strings.ToLower(strings.TrimSpace(raw))) {
	case PriorityLow:
		return PriorityLow, true
	case PriorityMedium:
		return PriorityMedium, true
	case PriorityHigh:
		return PriorityHigh, true
	}
	return "", false
}

// Status is the lifecycle state of a request.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusFulfilled  Status = "fulfilled"
	StatusClosed     Status = "closed"
)

// ParseStatus matches a raw value against the status vocabulary,
// case-insensitively.
func ParseStatus(raw string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusOpen:
		return StatusOpen, true
	case StatusInProgress:
		return StatusInProgress, true
	case StatusFulfilled:
		return StatusFulfilled, true
	case StatusClosed:
		return StatusClosed, true
	}
	return "", false
}

// Terminal reports whether a status takes a request out of triage.
func (s Status) Terminal() bool {
	return s == StatusFulfilled || s == StatusClosed
}

// ResourceRequest is a tracked need raised on behalf of a scholar.
// Instances are value copies of persisted rows; timestamps are UTC.
type ResourceRequest struct {
	ID          uuid.UUID
	ScholarName string
	RequestType string
	Priority    Priority
	Status      Status
	NeededBy    *time.Time // date only, midnight UTC
	Owner       *string
	Channel     *string
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RequestInput is the unvalidated draft a caller submits before
// persistence. Priority and status are raw text until the validator
// has checked them against the vocabularies.
type RequestInput struct {
	ScholarName string
	RequestType string
	Priority    string
	Status      string
	NeededBy    *time.Time
	Owner       *string
	Channel     *string
	Notes       *string
}

// NewRequest is a validated draft ready for persistence.
type NewRequest struct {
	ScholarName string
	RequestType string
	Priority    Priority
	Status      Status
	NeededBy    *time.Time
	Owner       *string
	Channel     *string
	Notes       *string
}

// RequestFilter narrows list and export queries. Nil predicates mean
// no constraint.
type RequestFilter struct {
	Status   *Status
	Priority *Priority
	Limit    int
}

// TriageFilter selects due-soon open requests.
type TriageFilter struct {
	WindowDays int
	Priority   *Priority
	Owner      *string
	Limit      int
}

// TriageRecord is a request projection with its due-date distance.
// DaysUntilDue is negative for overdue items.
type TriageRecord struct {
	ResourceRequest
	DaysUntilDue int
}

// StatusStat is a per-status row count.
type StatusStat struct {
	Status Status
	Count  int
}

// PriorityStat is a per-priority row count.
type PriorityStat struct {
	Priority Priority
	Count    int
}

// RequestStats aggregates the stored record set. AverageDaysOpen is
// nil when no request is open or in progress.
type RequestStats struct {
	StatusCounts    []StatusStat
	PriorityCounts  []PriorityStat
	AverageDaysOpen *float64
}
