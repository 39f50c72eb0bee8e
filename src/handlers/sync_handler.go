package handlers

import (
	"context"
	"net/http"

	"finsync-server/src/models"
	"finsync-server/src/sync"

	"github.com/rs/zerolog"
)

// SyncRunner runs the full orchestrated sync.
type SyncRunner interface {
	Run(ctx context.Context) (models.SyncResult, error)
}

func RunFullSync(runner SyncRunner, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := runner.Run(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("full sync failed")
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func RunLedgerSync(newLedgerClient func(ctx context.Context) (sync.LedgerClient, error), store sync.Store, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qbo, err := newLedgerClient(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("quickbooks client construction failed")
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		result, err := sync.SyncGeneralLedger(r.Context(), log, qbo, store)
		if err != nil {
			log.Error().Err(err).Msg("ledger sync failed")
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func RunBankSync(bank sync.BankClient, accessToken string, store sync.Store, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := sync.SyncBankTransactions(r.Context(), log, bank, accessToken, store)
		if err != nil {
			log.Error().Err(err).Msg("bank sync failed")
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func RunAnomalyCheck(store sync.Store, notifier sync.Notifier, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := sync.CheckAnomalies(r.Context(), log, store, notifier)
		if err != nil {
			log.Error().Err(err).Msg("anomaly check failed")
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
