package todo

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Validation limits for task fields.
const (
	MaxTitleLen       = 200
	MaxDescriptionLen = 1000
	MaxTags           = 10
)

// Validation and precondition errors surfaced by Create and Update.
// Callers translate these into user-facing messages; they are never
// silently coerced away.
var (
	ErrEmptyTitle                = errors.New("title cannot be empty or whitespace")
	ErrTitleTooLong              = fmt.Errorf("title cannot exceed %d characters", MaxTitleLen)
	ErrDescriptionTooLong        = fmt.Errorf("description cannot exceed %d characters", MaxDescriptionLen)
	ErrTooManyTags               = fmt.Errorf("maximum %d tags allowed per task", MaxTags)
	ErrRecurrenceRequiresDueDate = errors.New("recurrence pattern requires a due date")
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// ParseStatus validates a status literal received at a boundary
// (CLI flag, serialized file).
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusCompleted:
		return Status(s), nil
	}
	return "", fmt.Errorf("invalid status %q (expected pending, in_progress, or completed)", s)
}

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority validates a priority literal received at a boundary.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s), nil
	}
	return "", fmt.Errorf("invalid priority %q (expected high, medium, or low)", s)
}

// rank orders priorities with the most urgent first.
func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Pattern is a recurrence interval. The empty string means no recurrence.
type Pattern string

const (
	PatternNone    Pattern = ""
	PatternDaily   Pattern = "daily"
	PatternWeekly  Pattern = "weekly"
	PatternMonthly Pattern = "monthly"
	PatternYearly  Pattern = "yearly"
)

// ParsePattern validates a recurrence literal received at a boundary.
func ParsePattern(s string) (Pattern, error) {
	switch Pattern(s) {
	case PatternDaily, PatternWeekly, PatternMonthly, PatternYearly:
		return Pattern(s), nil
	}
	return "", fmt.Errorf("invalid recurrence pattern %q (expected daily, weekly, monthly, or yearly)", s)
}

// Task is a single trackable unit of work. Timestamps serialize as RFC 3339;
// status, priority, and recurrence serialize as their literal string values.
type Task struct {
	ID                 int        `yaml:"id" json:"id"`
	Title              string     `yaml:"title" json:"title"`
	Description        string     `yaml:"description,omitempty" json:"description,omitempty"`
	Status             Status     `yaml:"status" json:"status"`
	Priority           Priority   `yaml:"priority" json:"priority"`
	Tags               []string   `yaml:"tags,omitempty" json:"tags,omitempty"`
	DueDate            *time.Time `yaml:"due_date,omitempty" json:"due_date,omitempty"`
	RecurrencePattern  Pattern    `yaml:"recurrence_pattern,omitempty" json:"recurrence_pattern,omitempty"`
	RecurrenceParentID int        `yaml:"recurrence_parent_id,omitempty" json:"recurrence_parent_id,omitempty"`
	CreatedAt          time.Time  `yaml:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `yaml:"updated_at" json:"updated_at"`
}

// Recurring reports whether completing the task should spawn a successor.
func (t Task) Recurring() bool {
	return t.RecurrencePattern != PatternNone && t.DueDate != nil
}

// Open reports whether the task still needs attention (pending or in progress).
func (t Task) Open() bool {
	return t.Status == StatusPending || t.Status == StatusInProgress
}

// HasTag reports whether the task carries the given normalized tag.
func (t Task) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}

// validateTitle trims the title and enforces the length constraints.
func validateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", ErrEmptyTitle
	}
	if utf8.RuneCountInString(trimmed) > MaxTitleLen {
		return "", ErrTitleTooLong
	}
	return trimmed, nil
}

func validateDescription(desc string) error {
	if utf8.RuneCountInString(desc) > MaxDescriptionLen {
		return ErrDescriptionTooLong
	}
	return nil
}

// NormalizeTags cleans a tag list: entries are trimmed, empty entries
// dropped, lowercased, and every run of characters outside [a-z0-9] is
// collapsed to a single hyphen with leading/trailing hyphens stripped.
// More than MaxTags surviving entries is an error, not a truncation.
func NormalizeTags(tags []string) ([]string, error) {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if strings.TrimSpace(tag) != "" {
			cleaned = append(cleaned, strings.TrimSpace(tag))
		}
	}
	if len(cleaned) > MaxTags {
		return nil, ErrTooManyTags
	}

	normalized := make([]string, 0, len(cleaned))
	for _, tag := range cleaned {
		if n := normalizeTag(tag); n != "" {
			normalized = append(normalized, n)
		}
	}
	return normalized, nil
}

func normalizeTag(tag string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(tag) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		} else {
			b.WriteRune('-')
		}
	}

	// Collapse hyphen runs and strip the ends.
	parts := strings.Split(b.String(), "-")
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "-")
}
