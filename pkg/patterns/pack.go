package patterns

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Pack is an optional YAML extension pack layered on top of the built-in
// tables. A pack appends patterns and detector marker words; it cannot
// remove or replace built-ins.
//
// Example:
//
//	languages:
//	  es:
//	    markers: ["del", "una"]
//	    patterns:
//	      harm:
//	        - '\b(golpear|atacar|herir)\b'
type Pack struct {
	// Languages maps a concrete language code ("es", "en", "pt") to its
	// extensions.
	Languages map[string]LanguagePack `yaml:"languages"`
}

// LanguagePack holds the extensions for one language.
type LanguagePack struct {
	// Markers are additional detector marker words.
	Markers []string `yaml:"markers"`

	// Patterns maps a category name to additional regular expressions.
	// Category names outside the built-in eight are allowed; unknown
	// categories score with the default risk multiplier.
	Patterns map[string][]string `yaml:"patterns"`
}

// LoadPack reads and parses an extension pack from a YAML file.
func LoadPack(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read extension pack %q: %w", path, err)
	}

	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("failed to parse extension pack %q: %w", path, err)
	}

	return &pack, nil
}

// CompileFile loads an extension pack from path and compiles a Library with
// it. An empty path compiles the built-ins only.
func CompileFile(path string) (*Library, error) {
	if path == "" {
		return Compile(nil)
	}
	pack, err := LoadPack(path)
	if err != nil {
		return nil, err
	}
	return Compile(pack)
}
