// Package models defines the todo and user types shared by repositories,
// services and the CLI.
package models

import "time"

// Layouts used everywhere a date or time crosses a package boundary.
// Dates and times are carried as strings in these layouts; both collate
// chronologically as plain text, which the store's ORDER BY relies on.
const (
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04"
	TimestampLayout = "2006-01-02 15:04:05"
)

// Priority ranks a todo. Scheduling views order high before medium before low.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Status tracks completion. A todo is either pending or completed.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Todo is one task as stored. Date is a DateLayout string. DueTime is an
// optional TimeLayout string; nil means no due time. CompletedDate is a
// TimestampLayout string set when the todo was last marked completed and is
// kept even if the todo is later reopened.
type Todo struct {
	ID            int64
	UserID        int64
	Date          string
	Title         string
	Description   string
	Status        Status
	DueTime       *string
	CompletedDate *string
	Priority      Priority
}

// OverdueAt reports whether the todo is overdue as of now. Only pending
// todos can be overdue: either the date has passed, or it is due today at a
// time that has passed. Todos for today with no due time are never overdue.
func (t Todo) OverdueAt(now time.Time) bool {
	if t.Status != StatusPending {
		return false
	}
	today := now.Format(DateLayout)
	if t.Date < today {
		return true
	}
	return t.Date == today && t.DueTime != nil && *t.DueTime < now.Format(TimeLayout)
}

// Stats is the per-user completion summary.
type Stats struct {
	Completed int
	Pending   int
	Overdue   int
}

// Total is the number of todos the stats cover.
func (s Stats) Total() int {
	return s.Completed + s.Pending
}
