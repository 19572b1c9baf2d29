// Package metrics exposes Prometheus metrics for the PhiGuard node.
//
// Metrics (namespace "phiguard"):
//
//   - phiguard_messages_total{direction, language, level}
//   - phiguard_channel_risk{direction}
//   - phiguard_channel_safety{direction}
//   - phiguard_handoffs_total
//   - phiguard_lockdown_active
//   - phiguard_state_save_failures_total
//   - phiguard_analysis_duration_seconds{direction}
//
// The collector registers against a private registry by default so tests can
// build collectors without global registration conflicts.
package metrics
