package patterncore

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "hello world", []string{"HELLO", "WORLD"}},
		{"punctuation stripped", "Hello, world!", []string{"HELLO", "WORLD"}},
		{"collapses whitespace", "hello   world", []string{"HELLO", "WORLD"}},
		{"strips wildcard glyphs", "i like * things", []string{"I", "LIKE", "THINGS"}},
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizePatternWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"literal pattern", "hello world", []string{"HELLO", "WORLD"}},
		{"underscore wildcard survives", "_ world", []string{"_", "WORLD"}},
		{"star wildcard survives", "i like *", []string{"I", "LIKE", "*"}},
		{"caret wildcard survives", "^ cats", []string{"^", "CATS"}},
		{"bot name token survives", "BOT_NAME rocks", []string{"BOT_NAME", "ROCKS"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizePatternWords(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("normalizePatternWords(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
