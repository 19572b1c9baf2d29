// Package guard implements the bidirectional manipulation-risk scoring
// engine.
//
// A Guard owns two Channel states, one per message direction. Each processed
// message is scored against the pattern library, the matching channel is
// updated with asymmetric time decay (risk forgets fast, safety erodes and
// recovers slowly), and both channels are combined into a bilateral verdict:
// the system is only as safe as its worse-behaving direction.
//
// Two escalation states exist and are deliberately independent:
//
//   - hand-off: sticky for the session; once a message crosses the critical
//     risk line or a velocity cap, the guard keeps reporting that a human
//     decision is required until Reset. The guard never silently
//     self-reassures back to "safe".
//   - lockdown: an explicit toggle set and cleared by the caller. Releasing
//     lockdown does not reset risk; trust is rebuilt through decay, not
//     declared.
//
// All public operations are total: they serialize internally, never panic,
// and report persistence degradation in the result instead of failing.
package guard
