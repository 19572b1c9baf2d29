package patterns

import (
	"fmt"
	"regexp"
	"sort"
	"sync"
)

// Library is an immutable, fully compiled pattern table for all supported
// languages. Build one with Compile and treat it as read-only; swapping in
// updated patterns means compiling a new Library.
type Library struct {
	tables  map[Language]map[Category][]*regexp.Regexp
	markers map[Language][]string
}

var (
	builtinOnce sync.Once
	builtinLib  *Library
)

// Builtin returns the process-wide library compiled from the built-in tables
// only. The result is shared and compiled at most once.
func Builtin() *Library {
	builtinOnce.Do(func() {
		lib, err := Compile(nil)
		if err != nil {
			// Built-in tables are fixed source literals; a compile failure
			// is a programming error, not an input error.
			panic(fmt.Sprintf("patterns: built-in tables failed to compile: %v", err))
		}
		builtinLib = lib
	})
	return builtinLib
}

// Compile builds a Library from the built-in tables plus an optional
// extension pack. Pack entries are appended after the built-ins; they can
// never shadow or remove them.
func Compile(pack *Pack) (*Library, error) {
	lib := &Library{
		tables:  make(map[Language]map[Category][]*regexp.Regexp, len(builtinTables)),
		markers: make(map[Language][]string, len(builtinMarkers)),
	}

	for lang, cats := range builtinTables {
		compiled := make(map[Category][]*regexp.Regexp, len(cats))
		for cat, sources := range cats {
			for _, src := range sources {
				re, err := regexp.Compile(`(?i)` + src)
				if err != nil {
					return nil, fmt.Errorf("compiling built-in %s/%s pattern %q: %w", lang, cat, src, err)
				}
				compiled[cat] = append(compiled[cat], re)
			}
		}
		lib.tables[lang] = compiled
	}

	for lang, words := range builtinMarkers {
		lib.markers[lang] = append(lib.markers[lang], words...)
	}

	if pack != nil {
		if err := lib.applyPack(pack); err != nil {
			return nil, err
		}
	}

	return lib, nil
}

func (l *Library) applyPack(pack *Pack) error {
	for langKey, ext := range pack.Languages {
		lang, err := ParseLanguage(langKey)
		if err != nil {
			return fmt.Errorf("extension pack: %w", err)
		}
		if !lang.Concrete() {
			return fmt.Errorf("extension pack: language key must be concrete, got %q", langKey)
		}

		for catKey, sources := range ext.Patterns {
			cat := Category(catKey)
			for _, src := range sources {
				re, err := regexp.Compile(`(?i)` + src)
				if err != nil {
					return fmt.Errorf("extension pack: compiling %s/%s pattern %q: %w", lang, cat, src, err)
				}
				l.tables[lang][cat] = append(l.tables[lang][cat], re)
			}
		}

		l.markers[lang] = append(l.markers[lang], ext.Markers...)
	}
	return nil
}

// Patterns returns the compiled pattern sets for one language, keyed by
// category. The returned map is the library's own; callers must not modify it.
func (l *Library) Patterns(lang Language) map[Category][]*regexp.Regexp {
	return l.tables[lang]
}

// Markers returns the detector marker words for one language, built-ins
// first, pack additions after.
func (l *Library) Markers(lang Language) []string {
	return l.markers[lang]
}

// Categories returns the categories populated for one language, sorted for
// deterministic iteration.
func (l *Library) Categories(lang Language) []Category {
	cats := make([]Category, 0, len(l.tables[lang]))
	for cat := range l.tables[lang] {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}
