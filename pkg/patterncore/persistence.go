package patterncore

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// storeSnapshot is the serializable shape of a Store: template count, bot
// name, and trie. msgpack needs slice-of-struct edges rather than a map
// keyed by Key, since Key isn't a primitive msgpack map key type.
type storeSnapshot struct {
	TemplateCount uint64        `msgpack:"template_count"`
	BotName       string        `msgpack:"bot_name"`
	Root          *nodeSnapshot `msgpack:"root"`
}

type nodeSnapshot struct {
	Children    []edgeSnapshot `msgpack:"children,omitempty"`
	HasTemplate bool           `msgpack:"has_template,omitempty"`
	Template    any            `msgpack:"template,omitempty"`
}

type edgeSnapshot struct {
	Kind Kind          `msgpack:"kind"`
	Word string        `msgpack:"word,omitempty"`
	Node *nodeSnapshot `msgpack:"node"`
}

// Save serializes the store's entire state, template count, bot name,
// and trie, as one opaque msgpack blob. The format is implementation
// defined; only Restore on this package is guaranteed to read it back.
func (s *Store) Save(w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := storeSnapshot{
		TemplateCount: s.templateCount,
		BotName:       s.botName,
		Root:          toSnapshot(s.root),
	}
	if err := msgpack.NewEncoder(w).Encode(&snap); err != nil {
		return fmt.Errorf("%w: encode: %v", ErrPersistence, err)
	}
	return nil
}

// Restore replaces the store's entire state from a blob written by Save.
// The blob is fully decoded before any field is replaced, so on a decode
// failure the store keeps its previous state and the error wraps
// ErrPersistence.
func (s *Store) Restore(r io.Reader) error {
	var snap storeSnapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		s.logger.Warn("restore failed", "error", err)
		return fmt.Errorf("%w: decode: %v", ErrPersistence, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.templateCount = snap.TemplateCount
	s.botName = snap.BotName
	s.root = fromSnapshot(snap.Root)
	return nil
}

func toSnapshot(n *node) *nodeSnapshot {
	if n == nil {
		return nil
	}
	snap := &nodeSnapshot{HasTemplate: n.hasTemplate, Template: n.template}
	for k, child := range n.children {
		snap.Children = append(snap.Children, edgeSnapshot{
			Kind: k.Kind,
			Word: k.Word,
			Node: toSnapshot(child),
		})
	}
	return snap
}

func fromSnapshot(snap *nodeSnapshot) *node {
	n := newNode()
	if snap == nil {
		return n
	}
	n.hasTemplate = snap.HasTemplate
	n.template = snap.Template
	for _, edge := range snap.Children {
		n.children[Key{Kind: edge.Kind, Word: edge.Word}] = fromSnapshot(edge.Node)
	}
	return n
}
