package patterncore

// maxMatchDepth bounds the recursive descent against pathological input.
const maxMatchDepth = 4096

// MatchResult is the outcome of a successful Match: the template stored
// at the winning leaf, and the trie path chosen during the descent (kept
// only so Wildcard can re-walk it; callers should treat it as opaque).
type MatchResult struct {
	Path     []Key
	Template any
}

// Match normalizes utterance, that, and topic and runs the recursive,
// priority-ordered backtracking search over the trie, returning the
// single best match or (nil, false). Priority at each node is
// UNDERSCORE, literal, BOT_NAME, CARET, STAR for the main pattern, and
// UNDERSCORE, literal, STAR within a THAT or TOPIC section (CARET and
// BOT_NAME edges never exist there, since Add never creates them).
func (s *Store) Match(utterance, that, topic string) (*MatchResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	words := Normalize(utterance)
	thatWords := normalizeSection(that, dummyThat)
	topicWords := normalizeSection(topic, dummyTopic)

	path, tmpl, found := s.matchPattern(s.root, words, thatWords, topicWords, 0)
	if !found {
		return nil, false
	}
	return &MatchResult{Path: path, Template: tmpl}, true
}

func (s *Store) matchPattern(n *node, words, thatWords, topicWords []string, depth int) ([]Key, any, bool) {
	if depth > maxMatchDepth {
		return nil, nil, false
	}
	if len(words) == 0 {
		return s.matchEndOfPattern(n, thatWords, topicWords, depth)
	}
	first, rest := words[0], words[1:]

	if under, ok := n.children[Underscore]; ok {
		for j := 0; j <= len(rest); j++ {
			if path, tmpl, found := s.matchPattern(under, rest[j:], thatWords, topicWords, depth+1); found {
				return prepend(Underscore, path), tmpl, true
			}
		}
	}
	if lit, ok := n.children[wordKey(first)]; ok {
		if path, tmpl, found := s.matchPattern(lit, rest, thatWords, topicWords, depth+1); found {
			return prepend(wordKey(first), path), tmpl, true
		}
	}
	if bn, ok := n.children[BotNameKey]; ok && s.botName != "" && first == s.botName {
		if path, tmpl, found := s.matchPattern(bn, rest, thatWords, topicWords, depth+1); found {
			return prepend(BotNameKey, path), tmpl, true
		}
	}
	if caret, ok := n.children[Caret]; ok {
		for j := 0; j <= len(words); j++ {
			if path, tmpl, found := s.matchPattern(caret, words[j:], thatWords, topicWords, depth+1); found {
				return prepend(Caret, path), tmpl, true
			}
		}
	}
	if star, ok := n.children[Star]; ok {
		for j := 0; j <= len(rest); j++ {
			if path, tmpl, found := s.matchPattern(star, rest[j:], thatWords, topicWords, depth+1); found {
				return prepend(Star, path), tmpl, true
			}
		}
	}
	return nil, nil, false
}

// matchEndOfPattern runs once the main word list (or a promoted
// that/topic word list) is fully consumed: try a trailing CARET, else a
// pending THAT section, else a pending TOPIC section, else return this
// node's own template. Each case is committed once its condition holds;
// there is no falling back to a later case if the chosen branch's
// recursion fails.
func (s *Store) matchEndOfPattern(n *node, thatWords, topicWords []string, depth int) ([]Key, any, bool) {
	switch {
	case n.children[Caret] != nil:
		path, tmpl, found := s.matchPattern(n.children[Caret], nil, thatWords, topicWords, depth+1)
		if !found {
			return nil, nil, false
		}
		return prepend(Caret, path), tmpl, true
	case len(thatWords) > 0 && n.children[ThatKey] != nil:
		path, tmpl, found := s.matchPattern(n.children[ThatKey], thatWords, nil, topicWords, depth+1)
		if !found {
			return nil, nil, false
		}
		return prepend(ThatKey, path), tmpl, true
	case len(topicWords) > 0 && n.children[TopicKey] != nil:
		path, tmpl, found := s.matchPattern(n.children[TopicKey], topicWords, nil, nil, depth+1)
		if !found {
			return nil, nil, false
		}
		return prepend(TopicKey, path), tmpl, true
	case n.hasTemplate:
		return nil, n.template, true
	default:
		return nil, nil, false
	}
}

func prepend(k Key, path []Key) []Key {
	out := make([]Key, 0, len(path)+1)
	out = append(out, k)
	return append(out, path...)
}
