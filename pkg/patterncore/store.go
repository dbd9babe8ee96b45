package patterncore

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

const (
	dummyThat  = "ULTRABOGUSDUMMYTHAT"
	dummyTopic = "ULTRABOGUSDUMMYTOPIC"
)

// Store is the pattern store: a trie index reached only through Add,
// SetBotName and Restore (mutators) and Match, Wildcard, NumTemplates,
// Dump and Save (readers).
// A single RWMutex gives it the reader/writer discipline a concurrent
// caller would otherwise have to implement around it, so embedding this
// package needs no extra locking of its own; the matcher itself stays a
// synchronous, single-threaded algorithm underneath.
type Store struct {
	mu            sync.RWMutex
	root          *node
	botName       string
	templateCount uint64
	logger        *slog.Logger
}

// New creates an empty Store with diagnostic logging discarded.
func New() *Store {
	return NewWithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// NewWithLogger creates an empty Store that reports Add and Restore
// activity to logger.
func NewWithLogger(logger *slog.Logger) *Store {
	return &Store{root: newNode(), logger: logger}
}

// SetBotName records name for BOT_NAME comparisons. The name is collapsed
// to single-space-joined words and uppercased so comparison against a
// normalized utterance word is a plain string equality.
func (s *Store) SetBotName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.botName = strings.ToUpper(strings.Join(strings.Fields(name), " "))
}

// Add inserts a pattern/that/topic/template category, descending through
// the main pattern and, if non-empty, a THAT section and a TOPIC section,
// creating trie nodes as needed. Re-adding the same pattern/that/topic
// replaces the stored template without incrementing the template count.
func (s *Store) Add(pattern, that, topic string, template any) error {
	patternWords := normalizePatternWords(pattern)
	thatWords := normalizePatternWords(that)
	topicWords := normalizePatternWords(topic)

	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.root
	for _, w := range patternWords {
		n = n.childFor(mainSentinel(w))
	}
	if len(thatWords) > 0 {
		n = n.childFor(ThatKey)
		for _, w := range thatWords {
			n = n.childFor(sectionSentinel(w))
		}
	}
	if len(topicWords) > 0 {
		n = n.childFor(TopicKey)
		for _, w := range topicWords {
			n = n.childFor(sectionSentinel(w))
		}
	}

	if !n.hasTemplate {
		s.templateCount++
	}
	n.hasTemplate = true
	n.template = template

	s.logger.Debug("add category", "pattern", pattern, "that", that, "topic", topic)
	return nil
}

// mainSentinel maps a main-pattern token to its trie key, recognizing all
// four sentinel tokens the main pattern supports.
func mainSentinel(word string) Key {
	switch word {
	case "_":
		return Underscore
	case "*":
		return Star
	case "^":
		return Caret
	case "BOT_NAME":
		return BotNameKey
	default:
		return wordKey(word)
	}
}

// sectionSentinel maps a that/topic token to its trie key: only '_' and
// '*' are recognized there; '^' and BOT_NAME are kept as literal,
// effectively unmatchable words.
func sectionSentinel(word string) Key {
	switch word {
	case "_":
		return Underscore
	case "*":
		return Star
	default:
		return wordKey(word)
	}
}

// NumTemplates reports the number of distinct nodes currently holding a
// template.
func (s *Store) NumTemplates() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.templateCount
}

// Dump renders the trie as an indented, deterministically ordered listing
// for debugging.
func (s *Store) Dump() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var b strings.Builder
	dumpNode(&b, s.root, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, n *node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n.hasTemplate {
		fmt.Fprintf(b, "%sTEMPLATE = %v\n", indent, n.template)
	}
	for _, k := range sortedKeys(n.children) {
		fmt.Fprintf(b, "%s%s\n", indent, keyLabel(k))
		dumpNode(b, n.children[k], depth+1)
	}
}

func sortedKeys(m map[Key]*node) []Key {
	keys := make([]Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Kind != keys[j].Kind {
			return keys[i].Kind < keys[j].Kind
		}
		return keys[i].Word < keys[j].Word
	})
	return keys
}

func keyLabel(k Key) string {
	if k.Kind == KindWord {
		return k.Word
	}
	return k.Kind.String()
}
