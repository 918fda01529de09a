//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	issuerepo "github.com/heartmarshall/issuetracker-backend/internal/adapter/postgres/issue"
	"github.com/heartmarshall/issuetracker-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/issuetracker-backend/internal/config"
	issuesvc "github.com/heartmarshall/issuetracker-backend/internal/service/issue"
	"github.com/heartmarshall/issuetracker-backend/internal/transport/middleware"
	"github.com/heartmarshall/issuetracker-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	repo := issuerepo.New(pool)
	svc := issuesvc.NewService(logger, config.IssuesConfig{}, repo)

	issueHandler := rest.NewIssueHandler(svc, logger)
	healthHandler := rest.NewHealthHandler(pool, "test-version")

	mux := http.NewServeMux()
	mux.HandleFunc("/live", healthHandler.Live)
	mux.HandleFunc("/ready", healthHandler.Ready)
	mux.HandleFunc("/health", healthHandler.Health)
	mux.Handle("/api/issues/", issueHandler)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// doJSON sends a request with a JSON body and returns status + decoded
// object body.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, result
}

// listIssues sends a GET and returns status + decoded array body.
func (ts *testServer) listIssues(t *testing.T, path string) (int, []map[string]any) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var result []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, result
}

