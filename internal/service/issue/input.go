package issue

import "github.com/heartmarshall/issuetracker-backend/internal/domain"

// CreateIssueInput holds the parameters for creating an issue.
// Optional fields default to the empty string.
type CreateIssueInput struct {
	Project    string
	Title      string
	Text       string
	CreatedBy  string
	AssignedTo string
	StatusText string
}

// Validate checks all required fields and collects all errors.
// An empty string counts as missing; values are not trimmed.
func (i CreateIssueInput) Validate() error {
	var errs []domain.FieldError

	if i.Project == "" {
		errs = append(errs, domain.FieldError{Field: "project", Message: "required"})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "issue_title", Message: "required"})
	}
	if i.Text == "" {
		errs = append(errs, domain.FieldError{Field: "issue_text", Message: "required"})
	}
	if i.CreatedBy == "" {
		errs = append(errs, domain.FieldError{Field: "created_by", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListIssuesInput holds the raw, allow-listed query parameters of a
// listing request. Nil pointers mean the parameter was absent.
type ListIssuesInput struct {
	Project    string
	ID         *string
	Title      *string
	Text       *string
	CreatedBy  *string
	AssignedTo *string
	StatusText *string
	Open       *string // "true"/"false"; anything else is ignored
	SortBy     string
	Limit      string // positive integer; anything else is ignored
}

// UpdateIssueInput holds the parameters of a partial update.
// Empty-string fields are treated as not supplied, so an empty form
// input can never blank a stored value.
type UpdateIssueInput struct {
	ID         string
	Title      string
	Text       string
	CreatedBy  string
	AssignedTo string
	StatusText string
	Open       string // "true"/"false"
}

// Validate checks that the target id is present.
func (i UpdateIssueInput) Validate() error {
	if i.ID == "" {
		return domain.NewValidationError("_id", "required")
	}
	return nil
}

// fields converts the supplied (non-empty) values into an update set.
func (i UpdateIssueInput) fields() domain.IssueUpdate {
	var u domain.IssueUpdate
	if i.Title != "" {
		u.Title = &i.Title
	}
	if i.Text != "" {
		u.Text = &i.Text
	}
	if i.CreatedBy != "" {
		u.CreatedBy = &i.CreatedBy
	}
	if i.AssignedTo != "" {
		u.AssignedTo = &i.AssignedTo
	}
	if i.StatusText != "" {
		u.StatusText = &i.StatusText
	}
	u.Open = parseBool(i.Open)
	return u
}

// DeleteIssueInput holds the parameters for deleting an issue.
type DeleteIssueInput struct {
	ID string
}

// Validate checks that the target id is present.
func (i DeleteIssueInput) Validate() error {
	if i.ID == "" {
		return domain.NewValidationError("_id", "required")
	}
	return nil
}
