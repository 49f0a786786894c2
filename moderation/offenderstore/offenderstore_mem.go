package offenderstore

import (
	"context"
	"sync"
	"time"
)

// In-process store for testing and single-node deployments. The mutex makes
// RecordOffense atomic; counters can not go backwards.
type MemOffenderStore struct {
	mu   sync.Mutex
	data map[string]OffenderRecord
}

var _ OffenderStore = (*MemOffenderStore)(nil)

func NewMemOffenderStore() *MemOffenderStore {
	return &MemOffenderStore{
		data: make(map[string]OffenderRecord),
	}
}

func (s *MemOffenderStore) Get(ctx context.Context, userID string) (*OffenderRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.data[userID]
	if !ok {
		return &OffenderRecord{UserID: userID}, nil
	}
	out := rec
	return &out, nil
}

func (s *MemOffenderStore) RecordOffense(ctx context.Context, userID string, blocked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.data[userID]
	rec.UserID = userID
	if blocked {
		rec.BlockCount++
	} else {
		rec.WarningCount++
	}
	rec.LastOffenseAt = time.Now().UTC()
	s.data[userID] = rec
	return nil
}
