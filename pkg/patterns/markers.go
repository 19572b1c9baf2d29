package patterns

// builtinMarkers holds the per-language function-word markers used by the
// lexical language detector. Overlap between the sets (notably "de", "que",
// "por" shared by Spanish and Portuguese) is expected; the detector's
// selection rule, not the sets, breaks ties.
var builtinMarkers = map[Language][]string{
	LangSpanish:    {"el", "la", "de", "que", "en", "es", "por", "con", "para"},
	LangPortuguese: {"o", "a", "de", "que", "em", "e", "por", "com", "para", "nao", "voce"},
	LangEnglish:    {"the", "is", "are", "of", "to", "and", "in", "that", "you"},
}
