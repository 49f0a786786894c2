// Automated content-moderation scoring for user-generated text.
//
// This package (`github.com/plumesocial/vigile/moderation`) evaluates every
// post, comment, and direct message before it is persisted, and decides
// whether to allow, flag, or block it. Detection is deterministic and
// rule-based: a set of independent text detectors each emit weighted issues,
// the issues (plus the author's offense history) aggregate in to a 0-100
// score and severity tier, and a decision table maps that to an
// allow/flag/block verdict with human-readable remediation suggestions.
// Non-clean verdicts leave an audit record and bump per-author offender
// counters; blocks and critical verdicts additionally notify admins.
//
// See `cmd/vigile` for a daemon built on this package.
package moderation
