package slack

import (
	"context"
	"fmt"
	"time"

	"finsync-server/src/models"

	"github.com/slack-go/slack"
)

// Notifier posts JSON messages to the configured incoming webhook.
type Notifier struct {
	webhookURL string
}

func NewNotifier(webhookURL string) *Notifier {
	return &Notifier{webhookURL: webhookURL}
}

func (n *Notifier) PostText(ctx context.Context, text string) error {
	return slack.PostWebhookContext(ctx, n.webhookURL, &slack.WebhookMessage{Text: text})
}

func (n *Notifier) PostAnomalies(ctx context.Context, anomalies []models.Anomaly) error {
	return slack.PostWebhookContext(ctx, n.webhookURL, BuildAnomalyMessage(anomalies, time.Now()))
}

// BuildAnomalyMessage renders one alert containing every detected anomaly.
func BuildAnomalyMessage(anomalies []models.Anomaly, detectedAt time.Time) *slack.WebhookMessage {
	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, "🚨 Financial Anomalies Detected", true, false)),
		slack.NewDividerBlock(),
	}

	for _, a := range anomalies {
		text := fmt.Sprintf("*%s*: %s\n*Severity*: %s\n*Amount*: $%.2f", a.Type, a.Description, a.Severity, a.Amount)
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil))
	}

	blocks = append(blocks, slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType, "Detected at "+detectedAt.UTC().Format(time.RFC3339), false, false)))

	return &slack.WebhookMessage{
		Text:   "🚨 Financial Anomalies Detected",
		Blocks: &slack.Blocks{BlockSet: blocks},
	}
}
