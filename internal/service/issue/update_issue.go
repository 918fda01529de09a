package issue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// Update applies the supplied non-empty fields to an issue and refreshes
// its updated_on timestamp. Checks run in a fixed order: missing id,
// then empty update set, then lookup — the store is never touched before
// all request-shape checks pass. A malformed id behaves as not found.
func (s *Service) Update(ctx context.Context, input UpdateIssueInput) (*domain.Issue, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	update := input.fields()
	if update.IsEmpty() {
		return nil, fmt.Errorf("issue %s: %w", input.ID, domain.ErrNoUpdateFields)
	}

	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, fmt.Errorf("issue %s: %w", input.ID, domain.ErrNotFound)
	}

	issue, err := s.issues.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update issue: %w", err)
	}

	s.log.InfoContext(ctx, "issue updated",
		slog.String("project", issue.Project),
		slog.String("issue_id", issue.ID.String()),
	)

	return issue, nil
}
