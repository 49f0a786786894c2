package engine

import (
	"fmt"
	"strings"
)

// Kind of user-generated content under evaluation.
type ContentType string

const (
	ContentTypePost    ContentType = "POST"
	ContentTypeComment ContentType = "COMMENT"
	ContentTypeMessage ContentType = "MESSAGE"
)

// Immutable input to one evaluation. The author identity is resolved by the
// caller (post/comment/message service), not by this engine.
type SubmissionContext struct {
	Content     string
	ContentType ContentType
	AuthorID    string
}

// Checks that the submission is well-formed. Empty content is NOT a
// validation error: it short-circuits to a clean verdict instead.
func (s *SubmissionContext) Validate() error {
	switch s.ContentType {
	case ContentTypePost, ContentTypeComment, ContentTypeMessage:
	default:
		return fmt.Errorf("unknown content type: %q", s.ContentType)
	}
	if s.AuthorID == "" {
		return fmt.Errorf("submission missing author id")
	}
	return nil
}

// Content with surrounding whitespace removed; empty means the evaluation
// short-circuits before any detector runs.
func (s *SubmissionContext) TrimmedContent() string {
	return strings.TrimSpace(s.Content)
}
