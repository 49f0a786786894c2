package modstore

import (
	"context"
	"sync"
	"time"
)

// In-process store for tests.
type MemStore struct {
	mu     sync.Mutex
	nextID uint
	recs   []ModerationRecord
}

var _ Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{nextID: 1}
}

func (s *MemStore) Create(ctx context.Context, rec *ModerationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = s.nextID
	s.nextID++
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	s.recs = append(s.recs, *rec)
	return nil
}

func (s *MemStore) List(ctx context.Context, q RecordQuery) ([]ModerationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	limit := q.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var out []ModerationRecord
	// newest first
	for i := len(s.recs) - 1; i >= 0 && len(out) < limit; i-- {
		rec := s.recs[i]
		if q.Severity != "" && rec.Severity != q.Severity {
			continue
		}
		if !q.Since.IsZero() && rec.CreatedAt.Before(q.Since) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *MemStore) Summarize(ctx context.Context, q RecordQuery) (*Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum Summary
	for _, rec := range s.recs {
		if q.Severity != "" && rec.Severity != q.Severity {
			continue
		}
		if !q.Since.IsZero() && rec.CreatedAt.Before(q.Since) {
			continue
		}
		if rec.Blocked {
			sum.Blocks++
		} else {
			sum.Warnings++
		}
	}
	return &sum, nil
}
