package patterncore

import "strings"

// punctuation is the fixed set of characters the normalizer treats as
// word separators.
const punctuation = "`~!@#$%^&*()-_=+[{]}\\|;:'\",<.>/?"

// Normalize uppercases text, replaces every punctuation character with a
// space, collapses whitespace, and splits into words. It is the single
// pure function the normalizer exposes, used to prepare an utterance,
// that, or topic string before matching.
func Normalize(text string) []string {
	return normalizeWords(text, "")
}

// normalizePatternWords normalizes pattern/that/topic text supplied to
// Add the same way Normalize does, except it exempts the three wildcard
// glyphs ('_', '*', '^') from punctuation stripping so they survive as
// standalone tokens for sentinel substitution.
func normalizePatternWords(text string) []string {
	return normalizeWords(text, "_*^")
}

func normalizeWords(text string, exempt string) []string {
	upper := strings.ToUpper(text)
	var b strings.Builder
	b.Grow(len(upper))
	for _, r := range upper {
		if strings.ContainsRune(punctuation, r) && !strings.ContainsRune(exempt, r) {
			b.WriteRune(' ')
		} else {
			b.WriteRune(r)
		}
	}
	return strings.Fields(b.String())
}

// normalizeSection normalizes a that/topic string for matching, replacing
// an empty (or whitespace-only) value with the supplied dummy sentinel so
// the matcher always has at least one word to work with.
func normalizeSection(text, dummy string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{dummy}
	}
	return Normalize(text)
}
