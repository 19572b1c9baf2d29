package guard

import (
	"math"
	"sort"
	"testing"

	"soberania-mesh/phiguard/pkg/patterns"
)

const floatTolerance = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func TestAnalyzeSignals(t *testing.T) {
	lib := patterns.Builtin()

	tests := []struct {
		name string
		text string
		lang patterns.Language
		want map[patterns.Category]float64
	}{
		{
			name: "benign spanish logistics",
			text: "Hola, tenemos 50kg de maiz disponible en el sector 3.",
			lang: patterns.LangSpanish,
			want: map[patterns.Category]float64{},
		},
		{
			name: "spanish urgency",
			text: "Es urgente! Debes actuar ahora mismo antes de que sea tarde!",
			lang: patterns.LangSpanish,
			want: map[patterns.Category]float64{
				patterns.CategoryUrgency: 0.6,
			},
		},
		{
			name: "english fear plus urgency",
			text: "Danger! They are coming for you, act now before it's too late.",
			lang: patterns.LangEnglish,
			want: map[patterns.Category]float64{
				patterns.CategoryFear:    0.4,
				patterns.CategoryUrgency: 0.4,
			},
		},
		{
			name: "match count caps at strength 1.0",
			text: "urgente urgente urgente urgente urgente urgente urgente",
			lang: patterns.LangSpanish,
			want: map[patterns.Category]float64{
				patterns.CategoryUrgency: 1.0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := analyzeSignals(lib, tt.text, tt.lang)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d signals, got %d: %v", len(tt.want), len(got), got)
			}
			for cat, want := range tt.want {
				if !approxEqual(got[cat], want) {
					t.Errorf("signal %s = %v, want %v", cat, got[cat], want)
				}
			}
		})
	}
}

func TestAnalyzeSignalsCrossLanguage(t *testing.T) {
	lib := patterns.Builtin()

	// Spanish urgency wording in a message analyzed as English: the English
	// table misses it, the cross-language check still registers it at 0.3.
	signals, _ := analyzeSignals(lib, "amigo, es urgente", patterns.LangEnglish)
	if !approxEqual(signals[patterns.CategoryUrgency], 0.3) {
		t.Errorf("expected cross-language urgency 0.3, got %v", signals[patterns.CategoryUrgency])
	}

	// A strong primary-table score is not lowered by the cross-language floor.
	signals, _ = analyzeSignals(lib, "urgente, actua ya, no hay tiempo", patterns.LangSpanish)
	if signals[patterns.CategoryUrgency] < 0.6 {
		t.Errorf("cross-language check must not lower a primary score, got %v", signals[patterns.CategoryUrgency])
	}
}

func TestCompositeFlags(t *testing.T) {
	tests := []struct {
		name    string
		signals map[patterns.Category]float64
		want    []string
	}{
		{
			name:    "no signals no flags",
			signals: map[patterns.Category]float64{},
			want:    nil,
		},
		{
			name: "love bombing",
			signals: map[patterns.Category]float64{
				patterns.CategoryFlattery:  0.4,
				patterns.CategoryIsolation: 0.3,
			},
			want: []string{"love_bombing"},
		},
		{
			name: "love bombing thresholds are strict",
			signals: map[patterns.Category]float64{
				patterns.CategoryFlattery:  0.3,
				patterns.CategoryIsolation: 0.2,
			},
			want: nil,
		},
		{
			name: "fear mongering",
			signals: map[patterns.Category]float64{
				patterns.CategoryFear:    0.5,
				patterns.CategoryUrgency: 0.4,
			},
			want: []string{"fear_mongering"},
		},
		{
			name: "authority coercion",
			signals: map[patterns.Category]float64{
				patterns.CategoryAuthority: 0.4,
				patterns.CategoryCoercion:  0.4,
			},
			want: []string{"authority_coercion"},
		},
		{
			name: "isolation attempt stacks with love bombing",
			signals: map[patterns.Category]float64{
				patterns.CategoryFlattery:  0.4,
				patterns.CategoryIsolation: 0.5,
			},
			want: []string{"isolation_attempt", "love_bombing"},
		},
		{
			name: "disinfo detected",
			signals: map[patterns.Category]float64{
				patterns.CategoryMisinformation: 0.5,
			},
			want: []string{"disinfo_detected"},
		},
		{
			name: "surrender pressure",
			signals: map[patterns.Category]float64{
				patterns.CategorySurrender: 0.4,
			},
			want: []string{"surrender_pressure"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compositeFlags(tt.signals)
			sort.Strings(got)
			if len(got) != len(tt.want) {
				t.Fatalf("expected flags %v, got %v", tt.want, got)
			}
			for i, f := range tt.want {
				if got[i] != f {
					t.Errorf("expected flags %v, got %v", tt.want, got)
					break
				}
			}
		})
	}
}

func TestComputeRiskDelta(t *testing.T) {
	tests := []struct {
		name    string
		signals map[patterns.Category]float64
		want    float64
	}{
		{
			name:    "empty",
			signals: map[patterns.Category]float64{},
			want:    0,
		},
		{
			name: "single weighted category",
			signals: map[patterns.Category]float64{
				patterns.CategoryUrgency: 0.6,
			},
			want: 0.6 * 1.25 * 0.1,
		},
		{
			name: "unknown category weighs 1.0",
			signals: map[patterns.Category]float64{
				patterns.Category("custom"): 1.0,
			},
			want: 0.1,
		},
		{
			name: "dense signals hit the cap",
			signals: map[patterns.Category]float64{
				patterns.CategoryHarm:     1.0,
				patterns.CategoryCoercion: 1.0,
			},
			want: deltaCap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := computeRiskDelta(tt.signals); !approxEqual(got, tt.want) {
				t.Errorf("computeRiskDelta = %v, want %v", got, tt.want)
			}
		})
	}
}
