// Package server exposes the guard over HTTP.
//
// Endpoints:
//
//	POST   /v1/messages       process one message
//	GET    /v1/status         full guard status
//	POST   /v1/lockdown       trigger lockdown
//	DELETE /v1/lockdown       release lockdown
//	POST   /v1/reset          reset session state
//	GET    /v1/counter-speech one counter-speech line
//	GET    /healthz           liveness probe
//	GET    /metrics           Prometheus metrics (when enabled)
//
// The guard serializes its own state internally, so handlers call it
// directly without additional locking.
package server
