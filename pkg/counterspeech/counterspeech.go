// Package counterspeech provides autonomy-supporting responses for delivery
// alongside high-risk verdicts. Selection is pluggable so tests can pin the
// chosen template.
package counterspeech

import (
	"math/rand"

	"soberania-mesh/phiguard/pkg/patterns"
)

// Selector chooses one index in [0, n). Implementations must tolerate any
// n ≥ 1.
type Selector interface {
	Pick(n int) int
}

// randSelector is the production selector, backed by math/rand.
type randSelector struct{}

func (randSelector) Pick(n int) int { return rand.Intn(n) }

// NewRandomSelector returns the default pseudo-random selector.
func NewRandomSelector() Selector { return randSelector{} }

// templates holds five fixed autonomy-supporting messages per language.
var templates = map[patterns.Language][]string{
	patterns.LangSpanish: {
		"Toma tu tiempo para decidir. No hay prisa real.",
		"Consulta con personas de confianza antes de actuar.",
		"Verifica esta informacion con otras fuentes.",
		"Tu seguridad y autonomia son lo primero.",
		"Nadie puede obligarte a actuar contra tu voluntad.",
	},
	patterns.LangEnglish: {
		"Take your time to decide. There's no real rush.",
		"Consult with trusted people before acting.",
		"Verify this information with other sources.",
		"Your safety and autonomy come first.",
		"No one can force you to act against your will.",
	},
	patterns.LangPortuguese: {
		"Tome seu tempo para decidir. Nao ha pressa real.",
		"Consulte pessoas de confianca antes de agir.",
		"Verifique esta informacao com outras fontes.",
		"Sua seguranca e autonomia vem primeiro.",
		"Ninguem pode obriga-lo a agir contra sua vontade.",
	},
}

// Pick returns one counter-speech message in lang using sel. Languages
// without a template set (including auto) fall back to Spanish.
func Pick(lang patterns.Language, sel Selector) string {
	set, ok := templates[lang]
	if !ok {
		set = templates[patterns.LangSpanish]
	}
	return set[sel.Pick(len(set))]
}
