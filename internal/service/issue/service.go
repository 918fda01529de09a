// Package issue implements the issue lifecycle: creation defaults,
// filter construction, partial-update semantics, and removal.
package issue

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/issuetracker-backend/internal/config"
	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

type issueRepo interface {
	Insert(ctx context.Context, in domain.NewIssue) (*domain.Issue, error)
	Find(ctx context.Context, filter domain.IssueFilter) ([]*domain.Issue, error)
	UpdateByID(ctx context.Context, id uuid.UUID, update domain.IssueUpdate) (*domain.Issue, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// Service provides issue management operations.
type Service struct {
	issues issueRepo
	cfg    config.IssuesConfig
	log    *slog.Logger
}

// NewService creates a new issue service.
func NewService(
	log *slog.Logger,
	cfg config.IssuesConfig,
	issues issueRepo,
) *Service {
	return &Service{
		issues: issues,
		cfg:    cfg,
		log:    log.With("service", "issue"),
	}
}

// parseBool coerces the stringified booleans the wire format uses.
// Anything other than "true"/"false" is treated as not supplied.
func parseBool(s string) *bool {
	switch s {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}
