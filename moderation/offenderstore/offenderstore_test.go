package offenderstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemOffenderStoreBasics(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	s := NewMemOffenderStore()

	rec, err := s.Get(ctx, "user1")
	assert.NoError(err)
	assert.Equal("user1", rec.UserID)
	assert.Equal(0, rec.WarningCount)
	assert.Equal(0, rec.BlockCount)
	assert.True(rec.LastOffenseAt.IsZero())

	assert.NoError(s.RecordOffense(ctx, "user1", false))
	assert.NoError(s.RecordOffense(ctx, "user1", false))
	assert.NoError(s.RecordOffense(ctx, "user1", true))

	rec, err = s.Get(ctx, "user1")
	assert.NoError(err)
	assert.Equal(2, rec.WarningCount)
	assert.Equal(1, rec.BlockCount)
	assert.False(rec.LastOffenseAt.IsZero())

	// reads never create records for other users
	rec, err = s.Get(ctx, "user2")
	assert.NoError(err)
	assert.Equal(0, rec.WarningCount)
}

// N simultaneous offenses by the same user must increase the counter by
// exactly N. Run with `-race`.
func TestMemOffenderStoreConcurrent(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	s := NewMemOffenderStore()

	var wg sync.WaitGroup
	const workers = 8
	const perWorker = 25
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				assert.NoError(s.RecordOffense(ctx, "user1", false))
				_, err := s.Get(ctx, "user1")
				assert.NoError(err)
			}
		}()
	}
	wg.Wait()

	rec, err := s.Get(ctx, "user1")
	assert.NoError(err)
	assert.Equal(workers*perWorker, rec.WarningCount)
	assert.Equal(0, rec.BlockCount)
}

// Mutating the returned record must not leak back in to the store.
func TestMemOffenderStoreCopies(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	s := NewMemOffenderStore()
	assert.NoError(s.RecordOffense(ctx, "user1", false))

	rec, err := s.Get(ctx, "user1")
	assert.NoError(err)
	rec.WarningCount = 99

	again, err := s.Get(ctx, "user1")
	assert.NoError(err)
	assert.Equal(1, again.WarningCount)
}
