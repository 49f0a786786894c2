package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/plumesocial/vigile/moderation/modstore"
)

var (
	redisNotifyQueueKey    = "vigile/notify-queue"
	redisNotifiedPrefix    = "vigile/notified/"
	redisNotifiedRetention = 7 * 24 * time.Hour
)

// Enqueues admin notifications on a redis list for an out-of-process
// delivery worker. A SETNX guard keyed on the record id makes the enqueue
// at-most-once across all engine processes, not just within one.
type RedisQueueNotifier struct {
	Client *redis.Client
}

var _ Notifier = (*RedisQueueNotifier)(nil)

func NewRedisQueueNotifier(redisURL string) (*RedisQueueNotifier, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opt)
	// check redis connection
	_, err = rdb.Ping(context.TODO()).Result()
	if err != nil {
		return nil, err
	}
	return &RedisQueueNotifier{Client: rdb}, nil
}

func (n *RedisQueueNotifier) NotifyRecord(ctx context.Context, rec *modstore.ModerationRecord) error {
	guard := fmt.Sprintf("%s%d", redisNotifiedPrefix, rec.ID)
	fresh, err := n.Client.SetNX(ctx, guard, "1", redisNotifiedRetention).Result()
	if err != nil {
		return err
	}
	if !fresh {
		// already enqueued by this or another process
		return nil
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return n.Client.LPush(ctx, redisNotifyQueueKey, payload).Err()
}
