// Package issue implements the issue store on PostgreSQL.
// Fixed-shape queries use raw SQL; the dynamic equality filter and the
// partial update are built with squirrel.
package issue

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/issuetracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// psql builds queries with $1-style placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const issueColumns = "id, project, issue_title, issue_text, created_by, assigned_to, status_text, open, created_on, updated_on"

// sortColumns is the allow-list for ORDER BY. Keys match the wire field
// names, which equal the column names.
var sortColumns = map[string]struct{}{
	"project":     {},
	"issue_title": {},
	"issue_text":  {},
	"created_by":  {},
	"assigned_to": {},
	"status_text": {},
	"open":        {},
	"created_on":  {},
	"updated_on":  {},
}

// Repo provides issue persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new issue repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Insert persists a new issue. The id and both timestamps are assigned by
// the database; the full persisted record is returned.
func (r *Repo) Insert(ctx context.Context, in domain.NewIssue) (*domain.Issue, error) {
	query := psql.Insert("issues").
		Columns("project", "issue_title", "issue_text", "created_by", "assigned_to", "status_text", "open").
		Values(in.Project, in.Title, in.Text, in.CreatedBy, in.AssignedTo, in.StatusText, in.Open).
		Suffix("RETURNING " + issueColumns)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	issue, err := scanIssue(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "issue", in.Project)
	}

	return issue, nil
}

// Find returns all issues matching every set field of the filter.
// Default ordering is insertion order (created_on, id); a valid SortBy
// reorders by that column. Returns an empty slice (not nil) on no match.
func (r *Repo) Find(ctx context.Context, filter domain.IssueFilter) ([]*domain.Issue, error) {
	where := sq.Eq{"project": filter.Project}
	if filter.ID != nil {
		where["id"] = *filter.ID
	}
	if filter.Title != nil {
		where["issue_title"] = *filter.Title
	}
	if filter.Text != nil {
		where["issue_text"] = *filter.Text
	}
	if filter.CreatedBy != nil {
		where["created_by"] = *filter.CreatedBy
	}
	if filter.AssignedTo != nil {
		where["assigned_to"] = *filter.AssignedTo
	}
	if filter.StatusText != nil {
		where["status_text"] = *filter.StatusText
	}
	if filter.Open != nil {
		where["open"] = *filter.Open
	}

	query := psql.Select(issueColumns).From("issues").Where(where)

	if _, ok := sortColumns[filter.SortBy]; ok {
		query = query.OrderBy(filter.SortBy+" ASC", "id ASC")
	} else {
		query = query.OrderBy("created_on ASC", "id ASC")
	}

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find: %w", err)
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find issues: %w", err)
	}
	defer rows.Close()

	issues, err := scanIssues(rows)
	if err != nil {
		return nil, fmt.Errorf("find issues: %w", err)
	}

	return issues, nil
}

// UpdateByID applies the supplied fields to the issue and refreshes
// updated_on. Returns domain.ErrNotFound if no issue has that id.
func (r *Repo) UpdateByID(ctx context.Context, id uuid.UUID, update domain.IssueUpdate) (*domain.Issue, error) {
	query := psql.Update("issues").
		Set("updated_on", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + issueColumns)

	if update.Title != nil {
		query = query.Set("issue_title", *update.Title)
	}
	if update.Text != nil {
		query = query.Set("issue_text", *update.Text)
	}
	if update.CreatedBy != nil {
		query = query.Set("created_by", *update.CreatedBy)
	}
	if update.AssignedTo != nil {
		query = query.Set("assigned_to", *update.AssignedTo)
	}
	if update.StatusText != nil {
		query = query.Set("status_text", *update.StatusText)
	}
	if update.Open != nil {
		query = query.Set("open", *update.Open)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	issue, err := scanIssue(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "issue", id)
	}

	return issue, nil
}

// DeleteByID removes the issue with that id.
// Returns domain.ErrNotFound if no issue was removed.
func (r *Repo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM issues WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "issue", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("issue %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// scanIssue scans a single row into a domain.Issue.
func scanIssue(row pgx.Row) (*domain.Issue, error) {
	var i domain.Issue
	err := row.Scan(
		&i.ID, &i.Project, &i.Title, &i.Text, &i.CreatedBy,
		&i.AssignedTo, &i.StatusText, &i.Open, &i.CreatedOn, &i.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// scanIssues scans all rows into a slice of issues.
func scanIssues(rows pgx.Rows) ([]*domain.Issue, error) {
	var result []*domain.Issue
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Issue{}
	}

	return result, nil
}
