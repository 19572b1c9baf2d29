package guard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"soberania-mesh/phiguard/pkg/archive"
	"soberania-mesh/phiguard/pkg/counterspeech"
	"soberania-mesh/phiguard/pkg/language"
	"soberania-mesh/phiguard/pkg/patterns"
	"soberania-mesh/phiguard/pkg/storage"
	"soberania-mesh/phiguard/pkg/telemetry/metrics"
)

// Direction selects which channel a message updates.
type Direction string

const (
	// DirectionInbound marks a received message.
	DirectionInbound Direction = "inbound"

	// DirectionOutbound marks a sent message. Monitoring outbound traffic
	// detects a compromised local node that has started manipulating.
	DirectionOutbound Direction = "outbound"
)

// ParseDirection converts a string into a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case DirectionInbound, DirectionOutbound:
		return Direction(s), true
	default:
		return "", false
	}
}

// Config carries the guard's identity.
type Config struct {
	// NodeID identifies this guard instance. Empty generates a UUID.
	NodeID string

	// PrimaryLanguage is the default language for counter-speech.
	// Empty defaults to Spanish.
	PrimaryLanguage patterns.Language
}

// Option customizes a Guard at construction.
type Option func(*Guard)

// WithLibrary supplies a compiled pattern library (default: built-ins).
func WithLibrary(lib *patterns.Library) Option {
	return func(g *Guard) { g.lib = lib }
}

// WithStore enables state persistence.
func WithStore(store storage.Store) Option {
	return func(g *Guard) { g.store = store }
}

// WithRecorder enables the analysis archive.
func WithRecorder(rec archive.Recorder) Option {
	return func(g *Guard) { g.recorder = rec }
}

// WithMetrics attaches a metrics collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(g *Guard) { g.metrics = c }
}

// WithClock injects a time source for tests.
func WithClock(clock func() time.Time) Option {
	return func(g *Guard) { g.clock = clock }
}

// WithSelector injects the counter-speech selection source for tests.
func WithSelector(sel counterspeech.Selector) Option {
	return func(g *Guard) { g.selector = sel }
}

// WithLogger sets the guard's logger (default: slog.Default).
func WithLogger(logger *slog.Logger) Option {
	return func(g *Guard) { g.logger = logger }
}

// Guard is the bidirectional manipulation-risk scoring engine for one node
// identity. All methods are safe for concurrent use; calls are serialized on
// an internal mutex.
type Guard struct {
	mu sync.Mutex

	nodeID  string
	primary patterns.Language

	lib      *patterns.Library
	detector *language.Detector

	inbound  *Channel
	outbound *Channel

	sessionStart     time.Time
	totalMessages    int
	handoffTriggered bool
	lockdownActive   bool

	clock    func() time.Time
	selector counterspeech.Selector
	store    storage.Store
	recorder archive.Recorder
	metrics  *metrics.Collector
	logger   *slog.Logger
}

// New constructs a Guard. If a store is configured and holds a prior
// document for this node, that state is restored before any message is
// processed; a malformed or unreadable document is logged and discarded,
// never failing construction.
func New(cfg Config, opts ...Option) *Guard {
	g := &Guard{
		nodeID:   cfg.NodeID,
		primary:  cfg.PrimaryLanguage,
		inbound:  newChannel(),
		outbound: newChannel(),
		clock:    time.Now,
		selector: counterspeech.NewRandomSelector(),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.nodeID == "" {
		g.nodeID = uuid.New().String()
	}
	if !g.primary.Concrete() {
		g.primary = patterns.LangSpanish
	}
	if g.lib == nil {
		g.lib = patterns.Builtin()
	}
	g.logger = g.logger.With("component", "guard", "node_id", g.nodeID)
	g.detector = language.NewDetector(g.lib)
	g.sessionStart = g.clock()

	if g.store != nil {
		g.restoreState()
	}

	return g
}

// NodeID returns the guard's identity.
func (g *Guard) NodeID() string { return g.nodeID }

// SwapLibrary replaces the compiled pattern library, e.g. after an extension
// pack reload. The library itself is immutable; only the reference moves.
func (g *Guard) SwapLibrary(lib *patterns.Library) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lib = lib
	g.detector = language.NewDetector(lib)
	g.logger.Info("pattern library swapped")
}

// ProcessMessage scores one message and updates the channel matching its
// direction. lang may be LangAuto to run detection; an explicit hint is used
// verbatim. The returned result is complete even when persistence degraded;
// StateSaved reports that condition.
func (g *Guard) ProcessMessage(text string, dir Direction, lang patterns.Language, metadata map[string]any) *Result {
	start := time.Now()

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock()
	g.totalMessages++

	if !lang.Concrete() {
		lang = g.detector.Detect(text)
	}

	signals, flags := analyzeSignals(g.lib, text, lang)
	riskDelta := computeRiskDelta(signals)

	channel := g.inbound
	if dir == DirectionOutbound {
		channel = g.outbound
	}

	chRes := channel.apply(now, signals, flags, riskDelta)

	bilateralRisk := maxFloat(g.inbound.Risk, g.outbound.Risk)
	bilateralSafety := minFloat(g.inbound.Safety, g.outbound.Safety)
	level := ComputeLevel(bilateralRisk)

	handoff := bilateralRisk >= ClampHigh || chRes.velocityExceeded
	if handoff && !g.handoffTriggered {
		g.handoffTriggered = true
		g.logger.Warn("hand-off triggered",
			"direction", string(dir),
			"bilateral_risk", bilateralRisk,
			"velocity_exceeded", chRes.velocityExceeded,
		)
	}

	result := &Result{
		Direction: dir,
		Language:  lang,
		Signals:   signals,
		Flags:     flags,
		Channel: ChannelVerdict{
			Risk:     chRes.risk,
			Safety:   chRes.safety,
			Velocity: chRes.velocity,
		},
		Bilateral: BilateralVerdict{
			Risk:   bilateralRisk,
			Safety: bilateralSafety,
		},
		Level:      level,
		Handoff:    handoff,
		Lockdown:   g.lockdownActive,
		StateSaved: true,
		Timestamp:  now,
		Metadata:   metadata,
	}
	if result.Metadata == nil {
		result.Metadata = map[string]any{}
	}

	if g.store != nil {
		if err := g.saveStateLocked(); err != nil {
			result.StateSaved = false
			g.logger.Error("state not durably saved", "error", err)
			if g.metrics != nil {
				g.metrics.RecordSaveFailure()
			}
		}
	}

	if g.recorder != nil {
		g.archiveLocked(result, riskDelta)
	}

	if g.metrics != nil {
		g.metrics.RecordMessage(string(dir), string(lang), string(level), time.Since(start))
		g.metrics.SetChannel(string(DirectionInbound), g.inbound.Risk, g.inbound.Safety)
		g.metrics.SetChannel(string(DirectionOutbound), g.outbound.Risk, g.outbound.Safety)
		if handoff {
			g.metrics.RecordHandoff()
		}
	}

	return result
}

// Status reports the guard's current state for both channels.
func (g *Guard) Status() *Status {
	g.mu.Lock()
	defer g.mu.Unlock()

	bilateralRisk := maxFloat(g.inbound.Risk, g.outbound.Risk)

	return &Status{
		NodeID:          g.nodeID,
		SessionDuration: g.clock().Sub(g.sessionStart),
		TotalMessages:   g.totalMessages,
		Inbound:         channelSummary(g.inbound),
		Outbound:        channelSummary(g.outbound),
		Bilateral: BilateralStatus{
			Risk:   bilateralRisk,
			Safety: minFloat(g.inbound.Safety, g.outbound.Safety),
			Level:  ComputeLevel(bilateralRisk),
		},
		HandoffTriggered: g.handoffTriggered,
		LockdownActive:   g.lockdownActive,
	}
}

// TriggerLockdown forces both channel risks to the intervention ceiling and
// sets the lockdown toggle.
func (g *Guard) TriggerLockdown(reason string) *LockdownReceipt {
	g.mu.Lock()
	defer g.mu.Unlock()

	if reason == "" {
		reason = "manual"
	}

	g.lockdownActive = true
	g.inbound.Risk = ClampHigh
	g.outbound.Risk = ClampHigh

	g.logger.Warn("lockdown triggered", "reason", reason)
	g.persistAfterToggle()
	if g.metrics != nil {
		g.metrics.SetLockdown(true)
		g.metrics.SetChannel(string(DirectionInbound), g.inbound.Risk, g.inbound.Safety)
		g.metrics.SetChannel(string(DirectionOutbound), g.outbound.Risk, g.outbound.Safety)
	}

	return &LockdownReceipt{
		Status:    "LOCKDOWN_ACTIVE",
		Reason:    reason,
		Timestamp: g.clock(),
	}
}

// ReleaseLockdown clears the lockdown toggle. Risk is left where it stands:
// it must decay naturally through subsequent updates.
func (g *Guard) ReleaseLockdown() *LockdownReceipt {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.lockdownActive {
		return &LockdownReceipt{Status: "NO_LOCKDOWN"}
	}

	g.lockdownActive = false
	g.logger.Info("lockdown released")
	g.persistAfterToggle()
	if g.metrics != nil {
		g.metrics.SetLockdown(false)
	}

	return &LockdownReceipt{Status: "LOCKDOWN_RELEASED"}
}

// CounterSpeech returns one autonomy-supporting message. LangAuto (or empty)
// uses the guard's primary language. Stateless with respect to channels.
func (g *Guard) CounterSpeech(lang patterns.Language) string {
	if !lang.Concrete() {
		lang = g.primary
	}
	return counterspeech.Pick(lang, g.selector)
}

// Reset clears both channels, counters and the session-sticky flags back to
// session-start defaults.
func (g *Guard) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.inbound = newChannel()
	g.outbound = newChannel()
	g.sessionStart = g.clock()
	g.totalMessages = 0
	g.handoffTriggered = false
	g.lockdownActive = false

	g.logger.Info("guard state reset")
	g.persistAfterToggle()
	if g.metrics != nil {
		g.metrics.SetLockdown(false)
		g.metrics.SetChannel(string(DirectionInbound), g.inbound.Risk, g.inbound.Safety)
		g.metrics.SetChannel(string(DirectionOutbound), g.outbound.Risk, g.outbound.Safety)
	}
}

// ComputeLevel maps a bilateral risk value to an intervention level.
func ComputeLevel(risk float64) Level {
	switch {
	case risk >= ClampHigh:
		return LevelCritical
	case risk >= 0.6:
		return LevelHigh
	case risk >= 0.3:
		return LevelModerate
	default:
		return LevelLow
	}
}

func channelSummary(c *Channel) ChannelStatus {
	return ChannelStatus{
		Risk:   c.Risk,
		Safety: c.Safety,
		Turns:  c.TurnCount,
		Flags:  c.FlagList(),
	}
}

// restoreState loads the persisted document, falling back silently to fresh
// defaults on any failure.
func (g *Guard) restoreState() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	doc, err := g.store.Load(ctx, g.nodeID)
	if err != nil {
		g.logger.Warn("failed to load persisted state, starting fresh", "error", err)
		return
	}
	if doc == nil {
		return
	}

	g.inbound.restore(doc.Inbound.Risk, doc.Inbound.Safety, doc.Inbound.Flags, doc.Inbound.TurnCount)
	g.outbound.restore(doc.Outbound.Risk, doc.Outbound.Safety, doc.Outbound.Flags, doc.Outbound.TurnCount)
	g.handoffTriggered = doc.HandoffTriggered
	g.lockdownActive = doc.LockdownActive

	g.logger.Info("persisted state restored",
		"saved_at", doc.SavedAt.Format(time.RFC3339),
		"inbound_turns", doc.Inbound.TurnCount,
		"outbound_turns", doc.Outbound.TurnCount,
	)
}

// saveStateLocked writes the current state document. Caller holds g.mu.
func (g *Guard) saveStateLocked() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return g.store.Save(ctx, &storage.StateDocument{
		NodeID: g.nodeID,
		Inbound: storage.ChannelDocument{
			Risk:      g.inbound.Risk,
			Safety:    g.inbound.Safety,
			Flags:     g.inbound.FlagList(),
			TurnCount: g.inbound.TurnCount,
		},
		Outbound: storage.ChannelDocument{
			Risk:      g.outbound.Risk,
			Safety:    g.outbound.Safety,
			Flags:     g.outbound.FlagList(),
			TurnCount: g.outbound.TurnCount,
		},
		HandoffTriggered: g.handoffTriggered,
		LockdownActive:   g.lockdownActive,
		SavedAt:          g.clock(),
	})
}

// persistAfterToggle saves state after lockdown/reset transitions so the
// toggles survive a restart. Failures degrade to a log line.
func (g *Guard) persistAfterToggle() {
	if g.store == nil {
		return
	}
	if err := g.saveStateLocked(); err != nil {
		g.logger.Error("state not durably saved", "error", err)
		if g.metrics != nil {
			g.metrics.RecordSaveFailure()
		}
	}
}

// archiveLocked appends the analysis to the archive. Caller holds g.mu.
func (g *Guard) archiveLocked(result *Result, riskDelta float64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	signals := make(map[string]float64, len(result.Signals))
	for cat, strength := range result.Signals {
		signals[string(cat)] = strength
	}

	err := g.recorder.Record(ctx, &archive.Record{
		NodeID:    g.nodeID,
		Direction: string(result.Direction),
		Language:  string(result.Language),
		Signals:   signals,
		Flags:     result.Flags,
		RiskDelta: riskDelta,
		Level:     string(result.Level),
		Handoff:   result.Handoff,
		Timestamp: result.Timestamp,
	})
	if err != nil {
		g.logger.Error("failed to archive analysis", "error", err)
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
