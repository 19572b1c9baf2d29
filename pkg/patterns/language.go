package patterns

import "fmt"

// Language identifies one of the supported pattern-table languages.
type Language string

const (
	// LangSpanish is the default language for detector ties and counter-speech.
	LangSpanish Language = "es"

	// LangEnglish is American/International English.
	LangEnglish Language = "en"

	// LangPortuguese is Brazilian/European Portuguese.
	LangPortuguese Language = "pt"

	// LangAuto requests automatic detection instead of a fixed language.
	LangAuto Language = "auto"
)

// Supported returns the languages with built-in pattern tables, in stable order.
func Supported() []Language {
	return []Language{LangSpanish, LangEnglish, LangPortuguese}
}

// ParseLanguage converts a string into a Language.
// The empty string parses as LangAuto.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LangSpanish, LangEnglish, LangPortuguese, LangAuto:
		return Language(s), nil
	case "":
		return LangAuto, nil
	default:
		return "", fmt.Errorf("unsupported language %q (want es, en, pt or auto)", s)
	}
}

// Concrete reports whether l names an actual pattern table (not auto).
func (l Language) Concrete() bool {
	return l == LangSpanish || l == LangEnglish || l == LangPortuguese
}
