// PhiGuard is a bidirectional, multi-language manipulation-risk guard for
// mesh network nodes.
//
// It scores every message crossing a node, in both directions, against
// per-language manipulation pattern tables, maintains asymmetric risk/safety
// dynamics per direction, and reports when a human hand-off or lockdown is
// warranted.
//
// Usage:
//
//	# Start the HTTP guard service
//	phiguard run --config /etc/phiguard/config.yaml
//
//	# Score a single message
//	phiguard analyze --direction inbound --lang auto "Es urgente! Actua ahora!"
//
//	# Show guard status from the persisted state
//	phiguard status --config /etc/phiguard/config.yaml
//
//	# Print one autonomy-supporting counter-speech line
//	phiguard counter-speech --lang pt
package main

func main() {
	Execute()
}
