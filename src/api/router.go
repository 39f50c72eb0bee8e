package api

import (
	"context"
	"net/http"
	"time"

	sqldb "finsync-server/src/db/sql"
	"finsync-server/src/handlers"
	"finsync-server/src/middleware"
	"finsync-server/src/sync"
	"finsync-server/src/util"

	"github.com/go-chi/chi/v5"
	plaidapi "github.com/plaid/plaid-go/v41/plaid"
	"github.com/rs/zerolog"
)

type Deps struct {
	Store            *sqldb.Store
	Runner           *sync.Runner
	NewLedgerClient  func(ctx context.Context) (sync.LedgerClient, error)
	Bank             sync.BankClient
	BankAccessToken  string
	PlaidClient      *plaidapi.APIClient
	Notifier         sync.Notifier
	BearerSecret     string
	SlackVerifyToken string
	Location         *time.Location
	Log              zerolog.Logger
}

func NewRouter(deps Deps) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.RequestIDMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	// Slack slash commands carry their own shared-secret token; Plaid
	// webhooks carry a verification JWT. Neither uses the bearer secret.
	r.Post("/slack/command", handlers.SlackCommand(deps.Store, deps.SlackVerifyToken, deps.Location, deps.Log))
	r.Post("/plaid/webhook", handlers.PlaidWebhook(util.NewPlaidJWKSource(deps.PlaidClient), deps.Bank, deps.BankAccessToken, deps.Store, deps.Log))

	// Protected routes
	r.With(middleware.BearerAuth(deps.BearerSecret)).Group(func(r chi.Router) {
		r.Post("/sync", handlers.RunFullSync(deps.Runner, deps.Log))
		r.Post("/sync/quickbooks", handlers.RunLedgerSync(deps.NewLedgerClient, deps.Store, deps.Log))
		r.Post("/sync/plaid", handlers.RunBankSync(deps.Bank, deps.BankAccessToken, deps.Store, deps.Log))
		r.Post("/sync/anomalies", handlers.RunAnomalyCheck(deps.Store, deps.Notifier, deps.Log))
		r.Post("/query", handlers.QueryFinancialData(deps.Store, deps.Log))
	})

	return r
}
