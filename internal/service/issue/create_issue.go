package issue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// Create validates the input and persists a new issue. Optional fields
// default to "", open defaults to true, and the store assigns the id
// and both timestamps. Nothing is written on validation failure.
func (s *Service) Create(ctx context.Context, input CreateIssueInput) (*domain.Issue, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	issue, err := s.issues.Insert(ctx, domain.NewIssue{
		Project:    input.Project,
		Title:      input.Title,
		Text:       input.Text,
		CreatedBy:  input.CreatedBy,
		AssignedTo: input.AssignedTo,
		StatusText: input.StatusText,
		Open:       true,
	})
	if err != nil {
		return nil, fmt.Errorf("create issue: %w", err)
	}

	s.log.InfoContext(ctx, "issue created",
		slog.String("project", issue.Project),
		slog.String("issue_id", issue.ID.String()),
		slog.String("created_by", issue.CreatedBy),
	)

	return issue, nil
}
