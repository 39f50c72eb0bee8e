package sync

import (
	"context"
	"fmt"

	"finsync-server/src/models"

	"github.com/rs/zerolog"
)

// CheckAnomalies invokes the remote detection procedure and, when it returns
// rows, posts one alert containing all of them. Detection and webhook
// failures both propagate to the caller.
func CheckAnomalies(ctx context.Context, log zerolog.Logger, store Store, notifier Notifier) (models.AnomalyCheckResult, error) {
	anomalies, err := store.DetectAnomalies(ctx)
	if err != nil {
		return models.AnomalyCheckResult{}, fmt.Errorf("detect anomalies: %w", err)
	}

	if len(anomalies) > 0 {
		if err := notifier.PostAnomalies(ctx, anomalies); err != nil {
			return models.AnomalyCheckResult{}, fmt.Errorf("post anomaly alert: %w", err)
		}
		log.Warn().Int("anomalies", len(anomalies)).Msg("anomalies detected and reported")
	}

	return models.AnomalyCheckResult{AnomaliesDetected: len(anomalies)}, nil
}
