package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedIssue inserts an issue for the given project with generated field
// values, letting the database assign id and timestamps.
// Returns the persisted domain.Issue.
func SeedIssue(t *testing.T, pool *pgxpool.Pool, project string) domain.Issue {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	issue := domain.Issue{
		Project:    project,
		Title:      "Issue " + suffix,
		Text:       "Something is broken " + suffix,
		CreatedBy:  "reporter-" + suffix,
		AssignedTo: "",
		StatusText: "",
		Open:       true,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO issues (project, issue_title, issue_text, created_by, assigned_to, status_text, open)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_on, updated_on`,
		issue.Project, issue.Title, issue.Text, issue.CreatedBy, issue.AssignedTo, issue.StatusText, issue.Open,
	).Scan(&issue.ID, &issue.CreatedOn, &issue.UpdatedOn)
	if err != nil {
		t.Fatalf("testhelper: SeedIssue insert: %v", err)
	}

	return issue
}

// SeedClosedIssue is SeedIssue with open=false and a status text.
func SeedClosedIssue(t *testing.T, pool *pgxpool.Pool, project string) domain.Issue {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	issue := domain.Issue{
		Project:    project,
		Title:      "Closed issue " + suffix,
		Text:       "Was broken " + suffix,
		CreatedBy:  "reporter-" + suffix,
		AssignedTo: "fixer-" + suffix,
		StatusText: "resolved",
		Open:       false,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO issues (project, issue_title, issue_text, created_by, assigned_to, status_text, open)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_on, updated_on`,
		issue.Project, issue.Title, issue.Text, issue.CreatedBy, issue.AssignedTo, issue.StatusText, issue.Open,
	).Scan(&issue.ID, &issue.CreatedOn, &issue.UpdatedOn)
	if err != nil {
		t.Fatalf("testhelper: SeedClosedIssue insert: %v", err)
	}

	return issue
}

// UniqueProject returns a project name unique to the test run, so parallel
// tests sharing one database do not see each other's issues.
func UniqueProject(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}
