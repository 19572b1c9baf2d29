package guard

// The scoring dynamics are parameterized by the golden ratio. The exact
// values matter: persisted state from one build must mean the same thing to
// the next.
const (
	// Phi is the golden ratio.
	Phi = 1.6180339887498949

	// Gamma is the gate constant, 1/(6φ) ≈ 0.103006.
	Gamma = 1 / (6 * Phi)

	// ClampHigh is the mandatory-intervention ceiling, 1-γ ≈ 0.896994.
	ClampHigh = 1 - Gamma

	// ClampLow is the minimum baseline for risk and the floor for safety.
	ClampLow = Gamma

	// VolatileDecay is the fast per-window risk decay rate, 1/φ ≈ 0.618034.
	VolatileDecay = 1 / Phi

	// PersistentDecay is the slow safety erosion rate.
	PersistentDecay = Gamma
)

// Velocity caps bound the instantaneous intensity of single categories,
// independent of the aggregate per-message delta cap.
const (
	VCapHarm         = 0.50
	VCapManipulation = 0.40
	VCapCoercion     = 0.45
)

const (
	// deltaCap bounds the risk increase any single message can cause,
	// regardless of signal density. Primary anti-blitz defense.
	deltaCap = 0.3

	// decayWindowSeconds normalizes elapsed time for decay; a gap of this
	// length or more applies full decay.
	decayWindowSeconds = 10.0

	// historyLimit bounds the per-channel snapshot ring.
	historyLimit = 100
)
