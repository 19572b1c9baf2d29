package guard

import (
	"time"

	"soberania-mesh/phiguard/pkg/patterns"
)

// MessageAnalysis is the ephemeral outcome of scoring one message. It lives
// for the duration of one ProcessMessage call and is not persisted.
type MessageAnalysis struct {
	Text      string
	Direction Direction
	Language  patterns.Language
	Signals   map[patterns.Category]float64
	Flags     []string
	RiskDelta float64
	Timestamp time.Time
}

// riskMultipliers weights each category's contribution to the risk delta.
// Unknown categories weigh 1.0.
var riskMultipliers = map[patterns.Category]float64{
	patterns.CategoryHarm:           2.0,
	patterns.CategoryManipulation:   1.5,
	patterns.CategoryCoercion:       2.0,
	patterns.CategoryFlattery:       1.0,
	patterns.CategoryIsolation:      1.5,
	patterns.CategoryUrgency:        1.25,
	patterns.CategoryAuthority:      1.0,
	patterns.CategoryMisinformation: 1.5,
	patterns.CategoryFear:           1.5,
	patterns.CategorySurrender:      1.75,
	patterns.CategoryUncertainty:    0.5,
	patterns.CategoryDistress:       0.75,
}

// analyzeSignals scores text against the resolved language's table, then
// applies the cross-language leakage check: a category that matches in any
// other supported language is raised to at least 0.3, so mixing languages to
// dodge the primary table still registers. Known false positives on
// Spanish/Portuguese cognates are an accepted calibration trade-off.
func analyzeSignals(lib *patterns.Library, text string, lang patterns.Language) (map[patterns.Category]float64, []string) {
	signals := make(map[patterns.Category]float64)

	for cat, res := range lib.Patterns(lang) {
		matches := 0
		for _, re := range res {
			matches += len(re.FindAllStringIndex(text, -1))
		}
		if matches > 0 {
			strength := float64(matches) * 0.2
			if strength > 1.0 {
				strength = 1.0
			}
			signals[cat] = strength
		}
	}

	for _, other := range patterns.Supported() {
		if other == lang {
			continue
		}
		for cat, res := range lib.Patterns(other) {
			for _, re := range res {
				if re.MatchString(text) {
					if signals[cat] < 0.3 {
						signals[cat] = 0.3
					}
					break
				}
			}
		}
	}

	return signals, compositeFlags(signals)
}

// compositeFlags derives additive, non-exclusive flags from signal
// combinations.
func compositeFlags(signals map[patterns.Category]float64) []string {
	var flags []string

	if signals[patterns.CategoryFlattery] > 0.3 && signals[patterns.CategoryIsolation] > 0.2 {
		flags = append(flags, "love_bombing")
	}
	if signals[patterns.CategoryFear] > 0.4 && signals[patterns.CategoryUrgency] > 0.3 {
		flags = append(flags, "fear_mongering")
	}
	if signals[patterns.CategoryAuthority] > 0.3 && signals[patterns.CategoryCoercion] > 0.3 {
		flags = append(flags, "authority_coercion")
	}
	if signals[patterns.CategoryIsolation] > 0.4 {
		flags = append(flags, "isolation_attempt")
	}
	if signals[patterns.CategoryMisinformation] > 0.4 {
		flags = append(flags, "disinfo_detected")
	}
	if signals[patterns.CategorySurrender] > 0.3 {
		flags = append(flags, "surrender_pressure")
	}

	return flags
}

// computeRiskDelta converts a signal map into a capped risk increase. The
// 0.3 cap means no single message, however signal-dense, moves risk by more.
func computeRiskDelta(signals map[patterns.Category]float64) float64 {
	delta := 0.0
	for cat, strength := range signals {
		mult, ok := riskMultipliers[cat]
		if !ok {
			mult = 1.0
		}
		delta += strength * mult * 0.1
	}
	if delta > deltaCap {
		delta = deltaCap
	}
	return delta
}
