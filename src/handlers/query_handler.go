package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"finsync-server/src/models"

	"github.com/rs/zerolog"
)

// QueryStore forwards free-text queries to the remote query procedure.
type QueryStore interface {
	QueryFinancialData(ctx context.Context, text string) ([]models.QueryResult, error)
}

func QueryFinancialData(store QueryStore, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, errors.New("Missing query text"))
			return
		}
		if req.Text == "" {
			writeError(w, http.StatusBadRequest, errors.New("Missing query text"))
			return
		}

		results, err := store.QueryFinancialData(r.Context(), req.Text)
		if err != nil {
			log.Error().Err(err).Msg("financial data query failed")
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, results)
	}
}
