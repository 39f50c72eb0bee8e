package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finsync-server/src/middleware"
	"finsync-server/src/models"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type mockRunner struct {
	calls  int
	result models.SyncResult
	err    error
}

func (m *mockRunner) Run(ctx context.Context) (models.SyncResult, error) {
	m.calls++
	return m.result, m.err
}

func newSyncRouter(runner *mockRunner, secret string) http.Handler {
	r := chi.NewRouter()
	r.With(middleware.BearerAuth(secret)).Post("/sync", RunFullSync(runner, zerolog.Nop()))
	return r
}

func TestRunFullSyncUnauthorized(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing token", ""},
		{"wrong scheme", "Basic c2VjcmV0"},
		{"mismatched token", "Bearer wrong-secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &mockRunner{}
			router := newSyncRouter(runner, "qbo-client-secret")

			req := httptest.NewRequest(http.MethodPost, "/sync", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("got status %d, want 401", rec.Code)
			}
			if runner.calls != 0 {
				t.Error("sync must not run for an unauthorized request")
			}
		})
	}
}

func TestRunFullSyncAuthorized(t *testing.T) {
	runner := &mockRunner{
		result: models.SyncResult{
			GeneralLedger: models.LedgerSyncResult{Accounts: 4, JournalEntries: 7},
		},
	}
	router := newSyncRouter(runner, "qbo-client-secret")

	req := httptest.NewRequest(http.MethodPost, "/sync", nil)
	req.Header.Set("Authorization", "Bearer qbo-client-secret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	if runner.calls != 1 {
		t.Errorf("sync ran %d times, want 1", runner.calls)
	}
	if body := rec.Body.String(); !strings.Contains(body, `"journalEntries":7`) {
		t.Errorf("response missing sync counts: %s", body)
	}
}

func TestRunFullSyncError(t *testing.T) {
	runner := &mockRunner{err: errors.New("plaid is down")}
	router := newSyncRouter(runner, "qbo-client-secret")

	req := httptest.NewRequest(http.MethodPost, "/sync", nil)
	req.Header.Set("Authorization", "Bearer qbo-client-secret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("got status %d, want 500", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "plaid is down") {
		t.Errorf("error body missing message: %s", body)
	}
}
