package scheduler

import (
	"context"
	"errors"
	"strings"
	"testing"

	"finsync-server/src/models"

	"github.com/rs/zerolog"
)

type mockRunner struct {
	result models.SyncResult
	err    error
	calls  int
}

func (m *mockRunner) Run(ctx context.Context) (models.SyncResult, error) {
	m.calls++
	return m.result, m.err
}

type mockNotifier struct {
	texts []string
	err   error
}

func (m *mockNotifier) PostText(ctx context.Context, text string) error {
	if m.err != nil {
		return m.err
	}
	m.texts = append(m.texts, text)
	return nil
}

func TestRunOnceSuccess(t *testing.T) {
	runner := &mockRunner{}
	notifier := &mockNotifier{}
	s := &Scheduler{Runner: runner, Notifier: notifier, Log: zerolog.Nop()}

	s.RunOnce(context.Background())

	if runner.calls != 1 {
		t.Errorf("runner ran %d times, want 1", runner.calls)
	}
	// The runner posts its own summary; the scheduler stays quiet on success.
	if len(notifier.texts) != 0 {
		t.Errorf("scheduler posted %v on success", notifier.texts)
	}
}

func TestRunOnceFailureNotifies(t *testing.T) {
	runner := &mockRunner{err: errors.New("quickbooks timeout")}
	notifier := &mockNotifier{}
	s := &Scheduler{Runner: runner, Notifier: notifier, Log: zerolog.Nop()}

	s.RunOnce(context.Background())

	if len(notifier.texts) != 1 {
		t.Fatalf("posted %d failure notifications, want 1", len(notifier.texts))
	}
	if !strings.Contains(notifier.texts[0], "❌ Finance sync job failed: quickbooks timeout") {
		t.Errorf("failure notification wrong: %q", notifier.texts[0])
	}
}

func TestRunOnceNotificationFailureSwallowed(t *testing.T) {
	runner := &mockRunner{err: errors.New("sync failed")}
	notifier := &mockNotifier{err: errors.New("slack down")}
	s := &Scheduler{Runner: runner, Notifier: notifier, Log: zerolog.Nop()}

	// Must not panic or propagate; the double failure is logged only.
	s.RunOnce(context.Background())
}
