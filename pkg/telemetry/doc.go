// Package telemetry provides observability for the PhiGuard node.
//
// # Components
//
//   - logging: structured logging on log/slog with configurable level and
//     format, installed as the process default so every component's child
//     logger inherits it
//   - metrics: Prometheus metrics for message processing, channel state and
//     persistence health
//
// # Usage
//
//	logger, _ := logging.New(&cfg.Telemetry.Logging)
//	logging.SetDefault(logger)
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	collector.RecordMessage("inbound", "es", "LOW", time.Millisecond)
package telemetry
