// Package archive keeps a durable, append-only trail of guard analyses.
//
// Each processed message may be recorded as one row: identity, direction,
// resolved language, signal strengths, flags, risk delta, verdict. The
// archive backs after-the-fact review of hand-off decisions; the guard never
// reads it back, and an archive failure never aborts message processing.
//
// Retention is enforced by an age-based pruner that can run on a cron
// schedule.
package archive
