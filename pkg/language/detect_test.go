package language

import (
	"testing"

	"soberania-mesh/phiguard/pkg/patterns"
)

func TestDetect(t *testing.T) {
	d := NewDetector(patterns.Builtin())

	tests := []struct {
		name string
		text string
		want patterns.Language
	}{
		{
			name: "plain spanish",
			text: "el convoy llega en la madrugada con suministros para el sector",
			want: patterns.LangSpanish,
		},
		{
			name: "plain english",
			text: "the convoy is expected to arrive in the morning",
			want: patterns.LangEnglish,
		},
		{
			name: "plain portuguese",
			text: "voce nao pode confiar em ninguem, o comboio chega com atraso",
			want: patterns.LangPortuguese,
		},
		{
			name: "zero marker overlap defaults to spanish",
			text: "xyzzy 40291 plugh",
			want: patterns.LangSpanish,
		},
		{
			name: "empty text defaults to spanish",
			text: "",
			want: patterns.LangSpanish,
		},
		{
			name: "spanish portuguese tie goes to spanish",
			text: "de que por para",
			want: patterns.LangSpanish,
		},
		{
			name: "english spanish tie goes to spanish",
			text: "es is",
			want: patterns.LangSpanish,
		},
		{
			name: "case insensitive markers",
			text: "THE supplies ARE ready TO ship AND waiting",
			want: patterns.LangEnglish,
		},
		{
			name: "repeated marker counts once",
			text: "the the the the la de que en es por",
			want: patterns.LangSpanish,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectPackMarkers(t *testing.T) {
	lib, err := patterns.Compile(&patterns.Pack{
		Languages: map[string]patterns.LanguagePack{
			"en": {Markers: []string{"convoy", "supplies", "ready"}},
		},
	})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	d := NewDetector(lib)

	// Without the pack markers this text has no English overlap at all.
	if got := d.Detect("convoy supplies ready"); got != patterns.LangEnglish {
		t.Errorf("expected pack markers to tip detection to en, got %q", got)
	}
}
