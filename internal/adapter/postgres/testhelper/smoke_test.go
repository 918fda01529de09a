package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	issue := SeedIssue(t, pool, UniqueProject("smoke"))

	// Verify the issue exists in DB via SELECT.
	var title string
	err := pool.QueryRow(
		context.Background(),
		`SELECT issue_title FROM issues WHERE id = $1`,
		issue.ID,
	).Scan(&title)
	if err != nil {
		t.Fatalf("expected issue in DB, got error: %v", err)
	}

	if title != issue.Title {
		t.Fatalf("expected title %q, got %q", issue.Title, title)
	}
}
