package modstore

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExcerpt(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("short", Excerpt("short"))

	long := strings.Repeat("a", 500)
	ex := Excerpt(long)
	assert.Equal(ExcerptMaxLen, len([]rune(ex)))
	assert.True(strings.HasSuffix(ex, "…"))

	// multi-byte text must not be cut mid-rune
	accented := strings.Repeat("é", 300)
	assert.Equal(ExcerptMaxLen, len([]rune(Excerpt(accented))))
}

func TestHashOfContent(t *testing.T) {
	assert := assert.New(t)

	h1 := HashOfContent("bonjour")
	h2 := HashOfContent("bonjour")
	h3 := HashOfContent("bonsoir")
	assert.Equal(h1, h2)
	assert.NotEqual(h1, h3)
	assert.Equal(16, len(h1))
}

func TestMemStoreQueries(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	s := NewMemStore()
	old := time.Now().UTC().Add(-48 * time.Hour)
	assert.NoError(s.Create(ctx, &ModerationRecord{AuthorID: "u1", Severity: "LOW", Blocked: false, CreatedAt: old}))
	assert.NoError(s.Create(ctx, &ModerationRecord{AuthorID: "u1", Severity: "HIGH", Blocked: true}))
	assert.NoError(s.Create(ctx, &ModerationRecord{AuthorID: "u2", Severity: "MEDIUM", Blocked: false}))

	recs, err := s.List(ctx, RecordQuery{})
	assert.NoError(err)
	assert.Equal(3, len(recs))
	// newest first
	assert.Equal("u2", recs[0].AuthorID)

	recs, err = s.List(ctx, RecordQuery{Severity: "HIGH"})
	assert.NoError(err)
	assert.Equal(1, len(recs))
	assert.True(recs[0].Blocked)

	recs, err = s.List(ctx, RecordQuery{Since: time.Now().UTC().Add(-time.Hour)})
	assert.NoError(err)
	assert.Equal(2, len(recs))

	sum, err := s.Summarize(ctx, RecordQuery{})
	assert.NoError(err)
	assert.Equal(int64(2), sum.Warnings)
	assert.Equal(int64(1), sum.Blocks)

	sum, err = s.Summarize(ctx, RecordQuery{Since: time.Now().UTC().Add(-time.Hour)})
	assert.NoError(err)
	assert.Equal(int64(1), sum.Warnings)
	assert.Equal(int64(1), sum.Blocks)
}
