package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/plumesocial/vigile/moderation/modstore"
)

// Delivers admin notifications by POSTing JSON to an incoming-webhook URL
// (Slack-style). An LRU of already-notified record ids makes delivery
// at-most-once per record within the process; the rate limiter keeps a flood
// of blocks from hammering the channel.
type WebhookNotifier struct {
	WebhookURL string

	limiter *rate.Limiter
	seen    *lru.Cache[uint, struct{}]
}

var _ Notifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(webhookURL string) (*WebhookNotifier, error) {
	seen, err := lru.New[uint, struct{}](10_000)
	if err != nil {
		return nil, err
	}
	return &WebhookNotifier{
		WebhookURL: webhookURL,
		limiter:    rate.NewLimiter(rate.Limit(2), 10),
		seen:       seen,
	}, nil
}

type webhookBody struct {
	RecordID    uint   `json:"recordId"`
	AuthorID    string `json:"authorId"`
	ContentType string `json:"contentType"`
	Severity    string `json:"severity"`
	Score       int    `json:"score"`
	Blocked     bool   `json:"blocked"`
	Excerpt     string `json:"excerpt"`
}

func (n *WebhookNotifier) NotifyRecord(ctx context.Context, rec *modstore.ModerationRecord) error {
	if _, dupe := n.seen.Get(rec.ID); dupe {
		return nil
	}

	if err := n.limiter.Wait(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(webhookBody{
		RecordID:    rec.ID,
		AuthorID:    rec.AuthorID,
		ContentType: rec.ContentType,
		Severity:    rec.Severity,
		Score:       rec.Score,
		Blocked:     rec.Blocked,
		Excerpt:     rec.ContentExcerpt,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.WebhookURL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Add("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("failed webhook POST request. status=%d", resp.StatusCode)
	}

	// mark only after a successful delivery so failures stay retryable
	n.seen.Add(rec.ID, struct{}{})
	return nil
}
