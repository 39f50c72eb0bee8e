package scheduler

import (
	"context"
	"time"

	"finsync-server/src/models"

	"github.com/rs/zerolog"
)

type Runner interface {
	Run(ctx context.Context) (models.SyncResult, error)
}

type Notifier interface {
	PostText(ctx context.Context, text string) error
}

// Scheduler triggers the full sync on a fixed interval. A failed run sends
// one best-effort failure notification; a failure sending that notification
// is only logged.
type Scheduler struct {
	Interval time.Duration
	Runner   Runner
	Notifier Notifier
	Log      zerolog.Logger
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.Log.Info().Dur("interval", s.Interval).Msg("sync scheduler started")

	for {
		select {
		case <-ctx.Done():
			s.Log.Info().Msg("sync scheduler stopped")
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

func (s *Scheduler) RunOnce(ctx context.Context) {
	s.Log.Info().Msg("starting scheduled finance sync job")

	result, err := s.Runner.Run(ctx)
	if err != nil {
		s.Log.Error().Err(err).Msg("scheduled finance sync failed")
		if nerr := s.Notifier.PostText(ctx, "❌ Finance sync job failed: "+err.Error()); nerr != nil {
			s.Log.Error().Err(nerr).Msg("failed to send failure notification")
		}
		return
	}

	s.Log.Info().
		Int("accounts", result.GeneralLedger.Accounts).
		Int("journal_entries", result.GeneralLedger.JournalEntries).
		Int("bank_accounts", result.BankTransactions.Accounts).
		Int("bank_transactions", result.BankTransactions.Transactions).
		Int("anomalies", result.Anomalies.AnomaliesDetected).
		Msg("scheduled finance sync completed")
}
