package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"finsync-server/src/api"
	"finsync-server/src/config"
	"finsync-server/src/db"
	sqldb "finsync-server/src/db/sql"
	"finsync-server/src/logger"
	plaidclient "finsync-server/src/plaid"
	"finsync-server/src/quickbooks"
	"finsync-server/src/scheduler"
	"finsync-server/src/slack"
	"finsync-server/src/sync"
)

func main() {
	cfg := config.Load()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Connect to database
	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("DB connection failed")
	}
	defer pool.Close()

	db.InitCache()
	store := sqldb.NewStore(pool)

	plaidAPI, err := plaidclient.NewPlaidClient(cfg.PlaidClientID, cfg.PlaidSecret, cfg.PlaidEnv)
	if err != nil {
		log.Fatal().Err(err).Msg("Plaid client construction failed")
	}
	bank := plaidclient.NewBankAPI(plaidAPI)
	notifier := slack.NewNotifier(cfg.SlackWebhookURL)

	// Each sync run refreshes the QuickBooks token and gets a fresh client.
	newLedgerClient := func(ctx context.Context) (sync.LedgerClient, error) {
		return quickbooks.NewClient(ctx, log, cfg.QBOClientID, cfg.QBOClientSecret, cfg.QBORefreshToken, cfg.QBORealmID, cfg.QBOEnv)
	}

	runner := &sync.Runner{
		NewLedgerClient:   newLedgerClient,
		Bank:              bank,
		BankAccessToken:   cfg.PlaidAccessToken,
		Store:             store,
		Notifier:          notifier,
		Log:               log,
		InvalidateQueries: db.ClearAllQueryCaches,
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", cfg.Timezone).Msg("invalid TIMEZONE, using UTC")
		loc = time.UTC
	}

	// Router
	router := api.NewRouter(api.Deps{
		Store:            store,
		Runner:           runner,
		NewLedgerClient:  newLedgerClient,
		Bank:             bank,
		BankAccessToken:  cfg.PlaidAccessToken,
		PlaidClient:      plaidAPI,
		Notifier:         notifier,
		BearerSecret:     cfg.QBOClientSecret,
		SlackVerifyToken: cfg.SlackVerificationToken,
		Location:         loc,
		Log:              log,
	})

	sched := &scheduler.Scheduler{
		Interval: cfg.SyncInterval,
		Runner:   runner,
		Notifier: notifier,
		Log:      log,
	}
	go sched.Start(ctx)

	server := &http.Server{Addr: ":" + cfg.Port, Handler: router}
	go func() {
		log.Info().Str("port", cfg.Port).Msg("API server running")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
