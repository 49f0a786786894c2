package engine

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plumesocial/vigile/moderation/modstore"
)

func TestWebhookNotifierDelivery(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	var calls atomic.Int32
	var lastBody webhookBody
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &lastBody)
		w.WriteHeader(200)
	}))
	defer ts.Close()

	n, err := NewWebhookNotifier(ts.URL)
	assert.NoError(err)

	rec := &modstore.ModerationRecord{
		ID:       42,
		AuthorID: "user1",
		Severity: "CRITICAL",
		Score:    95,
		Blocked:  true,
	}
	assert.NoError(n.NotifyRecord(ctx, rec))
	assert.Equal(int32(1), calls.Load())
	assert.Equal(uint(42), lastBody.RecordID)
	assert.Equal("user1", lastBody.AuthorID)

	// retried delivery for the same record id is a no-op
	assert.NoError(n.NotifyRecord(ctx, rec))
	assert.Equal(int32(1), calls.Load())

	// a different record goes through
	other := &modstore.ModerationRecord{ID: 43, AuthorID: "user2", Severity: "HIGH", Blocked: true}
	assert.NoError(n.NotifyRecord(ctx, other))
	assert.Equal(int32(2), calls.Load())
}

func TestWebhookNotifierFailureStaysRetryable(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	fail := true
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if fail {
			w.WriteHeader(500)
			return
		}
		w.WriteHeader(200)
	}))
	defer ts.Close()

	n, err := NewWebhookNotifier(ts.URL)
	assert.NoError(err)

	rec := &modstore.ModerationRecord{ID: 7, AuthorID: "user1", Blocked: true}
	assert.Error(n.NotifyRecord(ctx, rec))

	// the failed delivery was not marked as seen; the retry succeeds
	fail = false
	assert.NoError(n.NotifyRecord(ctx, rec))
	assert.Equal(int32(2), calls.Load())
}
