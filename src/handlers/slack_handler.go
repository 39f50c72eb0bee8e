package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"finsync-server/src/db"
	slackfmt "finsync-server/src/slack"

	"github.com/rs/zerolog"
	slackapi "github.com/slack-go/slack"
)

// SlackCommand handles the slash-command entry point. Slack sends the shared
// verification token as a form field; responses must land inside Slack's
// deadline, so rendered responses are cached briefly per query text.
func SlackCommand(store QueryStore, verificationToken string, loc *time.Location, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slackapi.SlashCommandParse(r)
		if err != nil {
			log.Error().Err(err).Msg("failed to parse slash command")
			writeJSON(w, http.StatusInternalServerError, slackapi.Msg{
				ResponseType: slackfmt.ResponseTypeEphemeral,
				Text:         "Error processing your request: " + err.Error(),
			})
			return
		}

		if cmd.Token == "" || verificationToken == "" ||
			subtle.ConstantTimeCompare([]byte(cmd.Token), []byte(verificationToken)) != 1 {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		if cached, ok := db.GetQueryCache(cmd.Text); ok {
			if msg, ok := cached.(slackapi.Msg); ok {
				writeJSON(w, http.StatusOK, msg)
				return
			}
		}

		results, err := store.QueryFinancialData(r.Context(), cmd.Text)
		if err != nil {
			log.Error().Err(err).Str("text", cmd.Text).Msg("slash command query failed")
			writeJSON(w, http.StatusOK, slackapi.Msg{
				ResponseType: slackfmt.ResponseTypeEphemeral,
				Text:         "Error: " + err.Error(),
			})
			return
		}

		msg := slackfmt.FormatQueryResponse(results, loc)
		db.SetQueryCache(cmd.Text, msg)
		writeJSON(w, http.StatusOK, msg)
	}
}
