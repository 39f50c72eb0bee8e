package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finsync-server/src/models"

	"github.com/rs/zerolog"
)

type mockQueryStore struct {
	calls   int
	lastQry string
	results []models.QueryResult
	err     error
}

func (m *mockQueryStore) QueryFinancialData(ctx context.Context, text string) ([]models.QueryResult, error) {
	m.calls++
	m.lastQry = text
	return m.results, m.err
}

func TestQueryFinancialDataMissingText(t *testing.T) {
	for _, body := range []string{"", "{}", `{"text": ""}`} {
		store := &mockQueryStore{}
		handler := QueryFinancialData(store, zerolog.Nop())

		req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: got status %d, want 400", body, rec.Code)
		}
		if store.calls != 0 {
			t.Errorf("body %q: query procedure should not be called", body)
		}
	}
}

func TestQueryFinancialData(t *testing.T) {
	store := &mockQueryStore{
		results: []models.QueryResult{{ResultType: "summary", ResultText: "Monthly Summary", ResultData: []byte(`{"balance": 10}`)}},
	}
	handler := QueryFinancialData(store, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(`{"text": "show me this month"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	if store.lastQry != "show me this month" {
		t.Errorf("query text %q forwarded wrong", store.lastQry)
	}
	if body := rec.Body.String(); !strings.Contains(body, `"result_type":"summary"`) {
		t.Errorf("response missing result rows: %s", body)
	}
}
