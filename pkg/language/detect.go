package language

import (
	"regexp"
	"strings"

	"soberania-mesh/phiguard/pkg/patterns"
)

var wordRe = regexp.MustCompile(`\w+`)

// Detector classifies message text into one of the supported languages using
// marker-word overlap. Build one per compiled pattern library; it is
// immutable and safe for concurrent use.
type Detector struct {
	markers map[patterns.Language]map[string]struct{}
}

// NewDetector builds a detector from the marker-word sets of lib.
func NewDetector(lib *patterns.Library) *Detector {
	d := &Detector{markers: make(map[patterns.Language]map[string]struct{}, 3)}
	for _, lang := range patterns.Supported() {
		set := make(map[string]struct{})
		for _, w := range lib.Markers(lang) {
			set[strings.ToLower(w)] = struct{}{}
		}
		d.markers[lang] = set
	}
	return d
}

// Detect returns the language of text.
//
// The selection rule is intentionally asymmetric: Portuguese must beat both
// other scores outright, English only needs to beat Spanish, and Spanish is
// the fixed default (including for text with zero marker overlap). Changing
// the order changes tie behavior on Spanish/Portuguese cognates.
func (d *Detector) Detect(text string) patterns.Language {
	tokens := wordRe.FindAllString(strings.ToLower(text), -1)

	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		seen[tok] = struct{}{}
	}

	es := d.overlap(patterns.LangSpanish, seen)
	pt := d.overlap(patterns.LangPortuguese, seen)
	en := d.overlap(patterns.LangEnglish, seen)

	if pt > es && pt > en {
		return patterns.LangPortuguese
	}
	if en > es {
		return patterns.LangEnglish
	}
	return patterns.LangSpanish
}

func (d *Detector) overlap(lang patterns.Language, words map[string]struct{}) int {
	n := 0
	for w := range d.markers[lang] {
		if _, ok := words[w]; ok {
			n++
		}
	}
	return n
}
