package modstore

import (
	"context"
	"fmt"
	"time"

	"github.com/spaolacci/murmur3"
)

// Maximum length (in runes) of the content excerpt kept for the review UI.
const ExcerptMaxLen = 140

// Persisted audit entry for one non-clean submission. Created exactly once,
// never mutated, retained indefinitely for the admin review surface.
type ModerationRecord struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	AuthorID    string    `gorm:"index" json:"authorId"`
	ContentType string    `json:"contentType"`
	// truncated copy of the offending content, for human review
	ContentExcerpt string `json:"contentExcerpt"`
	// compact hash of the full content, for dedupe across records
	ContentHash string `gorm:"index" json:"contentHash"`
	Score       int    `json:"score"`
	Severity    string `gorm:"index" json:"severity"`
	Blocked     bool   `gorm:"index" json:"blocked"`
	// JSON snapshot of the full verdict (issues, suggestions) as returned to
	// the caller at evaluation time
	VerdictJSON string `json:"verdictJson"`
}

// Filter for review queries. Zero values mean "no constraint".
type RecordQuery struct {
	Severity string
	Since    time.Time
	Limit    int
}

// Aggregate counts for the admin dashboard, split the way the UI displays
// them: warnings (flagged but allowed) vs blocks.
type Summary struct {
	Warnings int64 `json:"warnings"`
	Blocks   int64 `json:"blocks"`
}

type Store interface {
	Create(ctx context.Context, rec *ModerationRecord) error
	List(ctx context.Context, q RecordQuery) ([]ModerationRecord, error)
	Summarize(ctx context.Context, q RecordQuery) (*Summary, error)
}

// Truncates content for storage alongside a record.
func Excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= ExcerptMaxLen {
		return content
	}
	return string(runes[:ExcerptMaxLen-1]) + "…"
}

// Returns a fast, compact hash of the full content (murmur3, hex encoded).
func HashOfContent(content string) string {
	val := murmur3.Sum64([]byte(content))
	return fmt.Sprintf("%016x", val)
}
