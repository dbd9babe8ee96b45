// Package seed loads demo categories for the patterncore CLI from a plain
// YAML file. This is not an AIML loader: it is a flat
// {pattern, that, topic, template} list, kept deliberately outside the
// AIML-parsing scope the core package never grows.
package seed

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/helix90/patterncore/pkg/patterncore"
)

// Entry is one category to feed into a Store via Add.
type Entry struct {
	Pattern  string `yaml:"pattern"`
	That     string `yaml:"that"`
	Topic    string `yaml:"topic"`
	Template string `yaml:"template"`
}

// Load reads a YAML file holding a top-level list of Entry values.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a YAML list of Entry values from r.
func Decode(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("seed: decode: %w", err)
	}
	return entries, nil
}

// Apply adds every entry to store, in order, stopping at the first error.
func Apply(store *patterncore.Store, entries []Entry) error {
	for i, e := range entries {
		if err := store.Add(e.Pattern, e.That, e.Topic, e.Template); err != nil {
			return fmt.Errorf("seed: entry %d (%q): %w", i, e.Pattern, err)
		}
	}
	return nil
}
