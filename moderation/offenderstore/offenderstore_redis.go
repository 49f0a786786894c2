package offenderstore

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisOffenderPrefix string = "offender/"

const (
	fieldWarnings    = "warnings"
	fieldBlocks      = "blocks"
	fieldLastOffense = "last_offense"
)

// Redis-backed store: one hash per user. HINCRBY is atomic on the server
// side, so concurrent offenses never lose an increment.
type RedisOffenderStore struct {
	Client *redis.Client
}

var _ OffenderStore = (*RedisOffenderStore)(nil)

func NewRedisOffenderStore(redisURL string) (*RedisOffenderStore, error) {
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
	return &RedisOffenderStore{Client: rdb}, nil
}

func (s *RedisOffenderStore) Get(ctx context.Context, userID string) (*OffenderRecord, error) {
	vals, err := s.Client.HGetAll(ctx, redisOffenderPrefix+userID).Result()
	if err != nil {
		return nil, err
	}
	rec := OffenderRecord{UserID: userID}
	if len(vals) == 0 {
		return &rec, nil
	}
	rec.WarningCount, _ = strconv.Atoi(vals[fieldWarnings])
	rec.BlockCount, _ = strconv.Atoi(vals[fieldBlocks])
	if raw, ok := vals[fieldLastOffense]; ok {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			rec.LastOffenseAt = t
		}
	}
	return &rec, nil
}

func (s *RedisOffenderStore) RecordOffense(ctx context.Context, userID string, blocked bool) error {
	key := redisOffenderPrefix + userID
	field := fieldWarnings
	if blocked {
		field = fieldBlocks
	}

	// single round-trip; no expiration, offender history is retained forever
	multi := s.Client.Pipeline()
	multi.HIncrBy(ctx, key, field, 1)
	multi.HSet(ctx, key, fieldLastOffense, time.Now().UTC().Format(time.RFC3339))
	_, err := multi.Exec(ctx)
	return err
}
