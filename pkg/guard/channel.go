package guard

import (
	"sort"
	"time"

	"soberania-mesh/phiguard/pkg/patterns"
)

// Channel holds the mutable risk/safety state for one message direction.
// It is owned exclusively by its Guard; all access is serialized there.
type Channel struct {
	// Risk is the short-memory threat level, in [ClampLow, ClampHigh].
	Risk float64

	// Safety is the long-memory trust level, floored at ClampLow. It erodes
	// slowly and is harder to rebuild than risk is to relieve.
	Safety float64

	// Velocity is the risk delta applied by the last update, after decay.
	Velocity float64

	// LastUpdate is zero until the first message.
	LastUpdate time.Time

	// flags accumulates composite flags for the session. It never shrinks
	// except on reset.
	flags map[string]struct{}

	// TurnCount is the number of messages applied to this channel.
	TurnCount int

	// history is a bounded ring of per-turn snapshots.
	history []Snapshot
}

// Snapshot is one history entry recorded after a channel update.
type Snapshot struct {
	Turn      int                           `json:"turn"`
	Risk      float64                       `json:"risk"`
	Safety    float64                       `json:"safety"`
	Signals   map[patterns.Category]float64 `json:"signals"`
	Flags     []string                      `json:"flags"`
	Timestamp time.Time                     `json:"timestamp"`
}

// channelResult reports the outcome of one channel update.
type channelResult struct {
	risk             float64
	safety           float64
	velocity         float64
	velocityExceeded bool
	flags            []string
}

func newChannel() *Channel {
	return &Channel{
		Risk:   ClampLow,
		Safety: 1.0,
		flags:  make(map[string]struct{}),
	}
}

// apply runs the order-sensitive update sequence for one message. Reordering
// the steps changes the numbers: decay must precede the delta, the velocity
// reads the post-decay risk, and the safety erosion in the final step uses
// the uncapped delta.
func (c *Channel) apply(now time.Time, signals map[patterns.Category]float64, flags []string, riskDelta float64) channelResult {
	c.TurnCount++

	// Time-based asymmetric decay. Full decay at a 10s gap or more.
	if !c.LastUpdate.IsZero() {
		elapsed := now.Sub(c.LastUpdate).Seconds()
		decay := elapsed / decayWindowSeconds
		if decay > 1.0 {
			decay = 1.0
		}
		c.Risk *= 1 - VolatileDecay*decay
		c.Safety = c.Safety - PersistentDecay*decay*0.1
		if c.Safety < ClampLow {
			c.Safety = ClampLow
		}
	}

	oldRisk := c.Risk
	c.Risk += riskDelta
	if c.Risk > ClampHigh {
		c.Risk = ClampHigh
	}
	c.Velocity = c.Risk - oldRisk

	// Instantaneous category intensity check, independent of the aggregate
	// delta cap.
	velocityExceeded := false
	for cat, strength := range signals {
		switch cat {
		case patterns.CategoryHarm:
			if strength*0.3 > VCapHarm {
				velocityExceeded = true
			}
		case patterns.CategoryManipulation:
			if strength*0.3 > VCapManipulation {
				velocityExceeded = true
			}
		case patterns.CategoryCoercion:
			if strength*0.3 > VCapCoercion {
				velocityExceeded = true
			}
		}
	}

	for _, f := range flags {
		c.flags[f] = struct{}{}
	}

	if c.Risk < ClampLow {
		c.Risk = ClampLow
	}

	// Harm absorbed this turn costs trust beyond the time-decay erosion.
	if riskDelta > 0 {
		c.Safety -= riskDelta * Gamma
		if c.Safety < ClampLow {
			c.Safety = ClampLow
		}
	}

	c.LastUpdate = now

	c.history = append(c.history, Snapshot{
		Turn:      c.TurnCount,
		Risk:      c.Risk,
		Safety:    c.Safety,
		Signals:   signals,
		Flags:     append([]string(nil), flags...),
		Timestamp: now,
	})
	if len(c.history) > historyLimit {
		c.history = c.history[len(c.history)-historyLimit:]
	}

	return channelResult{
		risk:             c.Risk,
		safety:           c.Safety,
		velocity:         c.Velocity,
		velocityExceeded: velocityExceeded,
		flags:            c.FlagList(),
	}
}

// FlagList returns the cumulative session flags, sorted for determinism.
func (c *Channel) FlagList() []string {
	out := make([]string, 0, len(c.flags))
	for f := range c.flags {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// History returns the bounded snapshot ring, oldest first.
func (c *Channel) History() []Snapshot {
	return c.history
}

// restore rehydrates the persisted slice of channel state. History and
// velocity are session-local and start empty.
func (c *Channel) restore(risk, safety float64, flags []string, turns int) {
	c.Risk = risk
	c.Safety = safety
	c.TurnCount = turns
	c.flags = make(map[string]struct{}, len(flags))
	for _, f := range flags {
		c.flags[f] = struct{}{}
	}
}
