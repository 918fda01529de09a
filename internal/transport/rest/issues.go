package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
	"github.com/heartmarshall/issuetracker-backend/internal/service/issue"
)

// issueService defines the minimal interface needed by IssueHandler.
type issueService interface {
	Create(ctx context.Context, input issue.CreateIssueInput) (*domain.Issue, error)
	List(ctx context.Context, input issue.ListIssuesInput) ([]*domain.Issue, error)
	Update(ctx context.Context, input issue.UpdateIssueInput) (*domain.Issue, error)
	Delete(ctx context.Context, input issue.DeleteIssueInput) error
}

// IssueHandler serves the issue REST resource. It is mounted at
// /api/issues/ and dispatches on the HTTP method, so one project path
// carries the full create/list/update/delete surface.
type IssueHandler struct {
	svc issueService
	log *slog.Logger
}

// NewIssueHandler creates an IssueHandler.
func NewIssueHandler(svc issueService, logger *slog.Logger) *IssueHandler {
	return &IssueHandler{svc: svc, log: logger.With("handler", "issue")}
}

const issuesPrefix = "/api/issues/"

// createIssueRequest mirrors the historical form-style body: every
// field arrives as a string.
type createIssueRequest struct {
	IssueTitle string `json:"issue_title"`
	IssueText  string `json:"issue_text"`
	CreatedBy  string `json:"created_by"`
	AssignedTo string `json:"assigned_to"`
	StatusText string `json:"status_text"`
}

type updateIssueRequest struct {
	ID         string `json:"_id"`
	IssueTitle string `json:"issue_title"`
	IssueText  string `json:"issue_text"`
	CreatedBy  string `json:"created_by"`
	AssignedTo string `json:"assigned_to"`
	StatusText string `json:"status_text"`
	Open       string `json:"open"`
}

type deleteIssueRequest struct {
	ID string `json:"_id"`
}

type issueResponse struct {
	ID         string    `json:"_id"`
	Project    string    `json:"project"`
	IssueTitle string    `json:"issue_title"`
	IssueText  string    `json:"issue_text"`
	CreatedBy  string    `json:"created_by"`
	AssignedTo string    `json:"assigned_to"`
	StatusText string    `json:"status_text"`
	Open       bool      `json:"open"`
	CreatedOn  time.Time `json:"created_on"`
	UpdatedOn  time.Time `json:"updated_on"`
}

// ServeHTTP routes a request to the per-method handler. The project
// name is the single path segment after the prefix.
func (h *IssueHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	project := strings.TrimPrefix(r.URL.Path, issuesPrefix)
	if project == "" || strings.Contains(project, "/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.list(w, r, project)
	case http.MethodPost:
		h.create(w, r, project)
	case http.MethodPut:
		h.update(w, r)
	case http.MethodDelete:
		h.delete(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// list handles GET /api/issues/{project}.
func (h *IssueHandler) list(w http.ResponseWriter, r *http.Request, project string) {
	q := r.URL.Query()

	input := issue.ListIssuesInput{
		Project:    project,
		ID:         queryParam(q, "_id"),
		Title:      queryParam(q, "issue_title"),
		Text:       queryParam(q, "issue_text"),
		CreatedBy:  queryParam(q, "created_by"),
		AssignedTo: queryParam(q, "assigned_to"),
		StatusText: queryParam(q, "status_text"),
		Open:       queryParam(q, "open"),
		SortBy:     q.Get("sort"),
		Limit:      q.Get("limit"),
	}

	issues, err := h.svc.List(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]issueResponse, 0, len(issues))
	for _, iss := range issues {
		out = append(out, toIssueResponse(iss))
	}
	writeJSON(w, http.StatusOK, out)
}

// create handles POST /api/issues/{project}.
func (h *IssueHandler) create(w http.ResponseWriter, r *http.Request, project string) {
	var req createIssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Create(r.Context(), issue.CreateIssueInput{
		Project:    project,
		Title:      req.IssueTitle,
		Text:       req.IssueText,
		CreatedBy:  req.CreatedBy,
		AssignedTo: req.AssignedTo,
		StatusText: req.StatusText,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			// Historical contract: the client test harness reads the
			// error token out of a 200 body.
			writeJSON(w, http.StatusOK, map[string]string{"error": "required field(s) missing"})
			return
		}
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toIssueResponse(result))
}

// update handles PUT /api/issues/{project}.
func (h *IssueHandler) update(w http.ResponseWriter, r *http.Request) {
	var req updateIssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Update(r.Context(), issue.UpdateIssueInput{
		ID:         req.ID,
		Title:      req.IssueTitle,
		Text:       req.IssueText,
		CreatedBy:  req.CreatedBy,
		AssignedTo: req.AssignedTo,
		StatusText: req.StatusText,
		Open:       req.Open,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeJSON(w, http.StatusOK, map[string]string{"error": "missing _id"})
		case errors.Is(err, domain.ErrNoUpdateFields):
			writeJSON(w, http.StatusOK, map[string]string{
				"error": "no update field(s) sent",
				"_id":   req.ID,
			})
		case errors.Is(err, domain.ErrNotFound):
			writeJSON(w, http.StatusOK, map[string]string{
				"error": "could not update",
				"_id":   req.ID,
			})
		default:
			h.handleError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"result": "successfully updated",
		"_id":    result.ID.String(),
	})
}

// delete handles DELETE /api/issues/{project}.
func (h *IssueHandler) delete(w http.ResponseWriter, r *http.Request) {
	var req deleteIssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.Delete(r.Context(), issue.DeleteIssueInput{ID: req.ID})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeJSON(w, http.StatusOK, map[string]string{"error": "missing _id"})
		case errors.Is(err, domain.ErrNotFound):
			writeJSON(w, http.StatusOK, map[string]string{
				"error": "could not delete",
				"_id":   req.ID,
			})
		default:
			h.handleError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"result": "successfully deleted",
		"_id":    req.ID,
	})
}

func (h *IssueHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, "internal server error")
}

// queryParam returns a pointer to the raw value when the parameter is
// present, nil when it is absent. Presence with an empty value still
// filters, matching exact string equality against stored fields.
func queryParam(q map[string][]string, key string) *string {
	vals, ok := q[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	return &vals[0]
}

func toIssueResponse(iss *domain.Issue) issueResponse {
	return issueResponse{
		ID:         iss.ID.String(),
		Project:    iss.Project,
		IssueTitle: iss.Title,
		IssueText:  iss.Text,
		CreatedBy:  iss.CreatedBy,
		AssignedTo: iss.AssignedTo,
		StatusText: iss.StatusText,
		Open:       iss.Open,
		CreatedOn:  iss.CreatedOn,
		UpdatedOn:  iss.UpdatedOn,
	}
}
