package issue

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// List returns all issues of the project matching the given filters.
// Malformed parameter values are uniformly treated as absent: a
// non-boolean open, a non-UUID _id, a non-positive limit, and an
// unrecognized sort key all filter nothing. There is no error path for
// a well-formed request; no match yields an empty slice.
func (s *Service) List(ctx context.Context, input ListIssuesInput) ([]*domain.Issue, error) {
	filter := domain.IssueFilter{
		Project:    input.Project,
		Title:      input.Title,
		Text:       input.Text,
		CreatedBy:  input.CreatedBy,
		AssignedTo: input.AssignedTo,
		StatusText: input.StatusText,
		SortBy:     input.SortBy,
	}

	if input.ID != nil {
		if id, err := uuid.Parse(*input.ID); err == nil {
			filter.ID = &id
		}
	}

	if input.Open != nil {
		filter.Open = parseBool(*input.Open)
	}

	if n, err := strconv.Atoi(input.Limit); err == nil && n > 0 {
		filter.Limit = n
	}
	if s.cfg.MaxListLimit > 0 && (filter.Limit == 0 || filter.Limit > s.cfg.MaxListLimit) {
		filter.Limit = s.cfg.MaxListLimit
	}

	issues, err := s.issues.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}

	return issues, nil
}
