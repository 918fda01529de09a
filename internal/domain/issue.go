package domain

import (
	"time"

	"github.com/google/uuid"
)

// Issue is a tracked work item scoped to a project.
type Issue struct {
	ID         uuid.UUID
	Project    string
	Title      string
	Text       string
	CreatedBy  string
	AssignedTo string
	StatusText string
	Open       bool
	CreatedOn  time.Time
	UpdatedOn  time.Time
}

// NewIssue holds the fields of an issue before the store has assigned
// its identifier and timestamps.
type NewIssue struct {
	Project    string
	Title      string
	Text       string
	CreatedBy  string
	AssignedTo string
	StatusText string
	Open       bool
}

// IssueFilter contains equality filters plus sort/limit parameters for
// issue listings. Nil pointer fields mean "not filtered".
type IssueFilter struct {
	Project    string
	ID         *uuid.UUID
	Title      *string
	Text       *string
	CreatedBy  *string
	AssignedTo *string
	StatusText *string
	Open       *bool

	// SortBy reorders results by one of the issue columns.
	// Empty means insertion order (created_on, id).
	SortBy string

	// Limit caps the result count when > 0.
	Limit int
}

// IssueUpdate contains the fields of a partial update. Nil pointer
// fields are left untouched; updated_on is always refreshed.
type IssueUpdate struct {
	Title      *string
	Text       *string
	CreatedBy  *string
	AssignedTo *string
	StatusText *string
	Open       *bool
}

// IsEmpty reports whether the update carries no fields at all.
func (u IssueUpdate) IsEmpty() bool {
	return u.Title == nil &&
		u.Text == nil &&
		u.CreatedBy == nil &&
		u.AssignedTo == nil &&
		u.StatusText == nil &&
		u.Open == nil
}
