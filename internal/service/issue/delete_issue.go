package issue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// Delete permanently removes an issue. There is no soft-delete: a second
// delete of the same id reports not found. A malformed id behaves the
// same as an unknown one.
func (s *Service) Delete(ctx context.Context, input DeleteIssueInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	id, err := uuid.Parse(input.ID)
	if err != nil {
		return fmt.Errorf("issue %s: %w", input.ID, domain.ErrNotFound)
	}

	if err := s.issues.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete issue: %w", err)
	}

	s.log.InfoContext(ctx, "issue deleted",
		slog.String("issue_id", id.String()),
	)

	return nil
}
