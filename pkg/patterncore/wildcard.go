package patterncore

import (
	"fmt"
	"strings"
)

// WildcardKind selects which captured span Wildcard recovers: the main
// pattern's zero-or-more wildcard (caret), the main
// pattern's one-or-more wildcards (star, counting UNDERSCORE and STAR
// edges together under one combined numbering), or the equivalent
// wildcard within the matched THAT or TOPIC section.
type WildcardKind string

const (
	KindCaretWildcard WildcardKind = "caret"
	KindStarWildcard  WildcardKind = "star"
	KindThatStar      WildcardKind = "thatstar"
	KindTopicStar     WildcardKind = "topicstar"
)

// Wildcard re-runs Match and walks the winning path against the relevant
// normalized word vector to recover the index-th (1-based) wildcard's
// captured substring, taken from the original, pre-normalization text.
// It returns ("", nil) for a clean no-match, an out-of-range index, or an
// index less than 1.
func (s *Store) Wildcard(kind WildcardKind, utterance, that, topic string, index int) (string, error) {
	switch kind {
	case KindCaretWildcard, KindStarWildcard, KindThatStar, KindTopicStar:
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidWildcardKind, kind)
	}
	if index < 1 {
		return "", nil
	}

	result, ok := s.Match(utterance, that, topic)
	if !ok {
		return "", nil
	}

	mainPath, thatPath, topicPath := splitSections(result.Path)

	var path []Key
	var words []string
	var original string
	wantCaret := kind == KindCaretWildcard

	switch kind {
	case KindCaretWildcard, KindStarWildcard:
		path, words, original = mainPath, Normalize(utterance), utterance
	case KindThatStar:
		path, words, original = thatPath, normalizeSection(that, dummyThat), that
	case KindTopicStar:
		path, words, original = topicPath, normalizeSection(topic, dummyTopic), topic
	}

	start, end, found := locateWildcard(path, words, wantCaret, index)
	if !found {
		return "", nil
	}
	return extractSpan(original, start, end), nil
}

// splitSections splits a matched path at its THAT/TOPIC separators into
// the three section sub-paths the locator walks independently.
func splitSections(path []Key) (main, that, topic []Key) {
	thatIdx, topicIdx := -1, -1
	for i, k := range path {
		switch k.Kind {
		case KindThat:
			thatIdx = i
		case KindTopic:
			topicIdx = i
		}
	}
	if thatIdx == -1 {
		main = path
	} else {
		main = path[:thatIdx]
	}
	switch {
	case thatIdx != -1 && topicIdx != -1:
		that = path[thatIdx+1 : topicIdx]
	case thatIdx != -1:
		that = path[thatIdx+1:]
	}
	if topicIdx != -1 {
		topic = path[topicIdx+1:]
	}
	return main, that, topic
}

// locateWildcard walks path and words in lockstep, counting UNDERSCORE
// and STAR edges together as the "star" sequence and CARET edges as a
// separate "caret" sequence, and returns the start/end word indices
// captured by the index-th wildcard of the requested family.
func locateWildcard(path []Key, words []string, wantCaret bool, index int) (start, end int, found bool) {
	i, j := 0, 0
	starIdx, caretIdx := 0, 0
	for j < len(path) {
		key := path[j]
		switch key.Kind {
		case KindUnderscore, KindStar:
			starIdx++
			target := !wantCaret && starIdx == index
			s := i
			e, next := scanForward(path, j, words, i, 1)
			if target {
				return s, e, true
			}
			i = next
			j++
		case KindCaret:
			caretIdx++
			target := wantCaret && caretIdx == index
			s := i
			e, next := scanForward(path, j, words, i, 0)
			if target {
				return s, e, true
			}
			// On a zero-length caret match next == i: the word cursor
			// stays put and only the pattern cursor moves, so the literal
			// that follows lines up with words[i], keeping back-to-back
			// literals aligned.
			i = next
			j++
		default:
			i++
			j++
		}
	}
	return 0, 0, false
}

// scanForward finds where the wildcard at path[j] stops: the first
// position at or after i+minConsume whose word equals the literal that
// follows the wildcard in path, or the end of words if the wildcard is
// last in its section or no such word exists. A wildcard followed by
// another non-literal key consumes exactly minConsume words.
func scanForward(path []Key, j int, words []string, i, minConsume int) (end, next int) {
	if j+1 == len(path) {
		return len(words) - 1, len(words)
	}
	lit := path[j+1]
	if lit.Kind != KindWord {
		next = i + minConsume
		return next - 1, next
	}
	from := i + minConsume
	for k := from; k < len(words); k++ {
		if words[k] == lit.Word {
			return k - 1, k
		}
	}
	return len(words) - 1, len(words)
}

// extractSpan recovers the captured substring from original (the
// pre-normalization text) using whitespace-split word indices [start,end].
func extractSpan(original string, start, end int) string {
	if end < start {
		return ""
	}
	words := strings.Fields(original)
	if start < 0 {
		start = 0
	}
	if end >= len(words) {
		end = len(words) - 1
	}
	if start > end || start >= len(words) {
		return ""
	}
	return strings.Join(words[start:end+1], " ")
}
