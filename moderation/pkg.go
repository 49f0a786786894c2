package moderation

import (
	"github.com/plumesocial/vigile/moderation/engine"
)

type Engine = engine.Engine
type Detector = engine.Detector
type SubmissionContext = engine.SubmissionContext
type ContentType = engine.ContentType
type Verdict = engine.Verdict
type VerdictView = engine.VerdictView
type Issue = engine.Issue
type IssueKind = engine.IssueKind
type Severity = engine.Severity

type Notifier = engine.Notifier
type WebhookNotifier = engine.WebhookNotifier
type RedisQueueNotifier = engine.RedisQueueNotifier

var (
	ContentTypePost    = engine.ContentTypePost
	ContentTypeComment = engine.ContentTypeComment
	ContentTypeMessage = engine.ContentTypeMessage

	SeverityLow      = engine.SeverityLow
	SeverityMedium   = engine.SeverityMedium
	SeverityHigh     = engine.SeverityHigh
	SeverityCritical = engine.SeverityCritical
)
