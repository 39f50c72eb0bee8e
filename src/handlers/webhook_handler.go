package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"finsync-server/src/sync"
	"finsync-server/src/util"

	"github.com/rs/zerolog"
)

// PlaidWebhook accepts Plaid webhooks and runs a bank sync when transaction
// data has changed upstream. The Plaid-Verification JWT is checked before
// the body is trusted.
func PlaidWebhook(keys util.JWKSource, bank sync.BankClient, accessToken string, store sync.Store, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		ok, err := util.VerifyPlaidWebhook(r.Context(), keys, body, r.Header)
		if !ok {
			log.Error().Err(err).Msg("plaid webhook verification failed")
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var webhook struct {
			WebhookType string `json:"webhook_type"`
			WebhookCode string `json:"webhook_code"`
		}
		if err := json.Unmarshal(body, &webhook); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		if webhook.WebhookType == "TRANSACTIONS" {
			result, err := sync.SyncBankTransactions(r.Context(), log, bank, accessToken, store)
			if err != nil {
				log.Error().Err(err).Str("webhook_code", webhook.WebhookCode).Msg("webhook-triggered bank sync failed")
				writeError(w, http.StatusInternalServerError, err)
				return
			}
			log.Info().
				Str("webhook_code", webhook.WebhookCode).
				Int("transactions", result.Transactions).
				Msg("webhook-triggered bank sync complete")
		}

		writeJSON(w, http.StatusOK, map[string]bool{"received": true})
	}
}
