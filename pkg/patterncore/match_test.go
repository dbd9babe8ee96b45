package patterncore

import "testing"

// TestMatchPriorityLaw verifies that when UNDERSCORE, a literal, and STAR
// all lead from the same node, UNDERSCORE wins regardless of insertion
// order.
func TestMatchPriorityLaw(t *testing.T) {
	orders := [][]string{
		{"star", "literal", "underscore"},
		{"underscore", "literal", "star"},
		{"literal", "underscore", "star"},
	}
	for _, order := range orders {
		s := New()
		for _, kind := range order {
			switch kind {
			case "underscore":
				mustAdd(t, s, "_ X", "", "", "T_UNDER")
			case "literal":
				mustAdd(t, s, "A X", "", "", "T_LITERAL")
			case "star":
				mustAdd(t, s, "* X", "", "", "T_STAR")
			}
		}
		result, ok := s.Match("a x", "", "")
		if !ok {
			t.Fatalf("order %v: Match = no match, want a match", order)
		}
		if result.Template != "T_UNDER" {
			t.Errorf("order %v: Template = %v, want T_UNDER", order, result.Template)
		}
	}
}

func TestMatchScenarios(t *testing.T) {
	t.Run("plain literal", func(t *testing.T) {
		s := New()
		mustAdd(t, s, "HELLO", "", "", "T1")
		result, ok := s.Match("hello", "", "")
		if !ok || result.Template != "T1" {
			t.Fatalf("Match(hello) = %v,%v want T1,true", result, ok)
		}
	})

	t.Run("star capture", func(t *testing.T) {
		s := New()
		mustAdd(t, s, "I LIKE *", "", "", "T2")
		result, ok := s.Match("I like cats", "", "")
		if !ok || result.Template != "T2" {
			t.Fatalf("Match = %v,%v want T2,true", result, ok)
		}
		got, err := s.Wildcard(KindStarWildcard, "I like cats", "", "", 1)
		if err != nil {
			t.Fatalf("Wildcard: %v", err)
		}
		if got != "cats" {
			t.Errorf("Wildcard(star,1) = %q, want %q", got, "cats")
		}
	})

	t.Run("underscore beats literal", func(t *testing.T) {
		s := New()
		mustAdd(t, s, "_ WORLD", "", "", "T3")
		mustAdd(t, s, "HELLO WORLD", "", "", "T4")
		result, ok := s.Match("hello world", "", "")
		if !ok || result.Template != "T3" {
			t.Fatalf("Match = %v,%v want T3,true", result, ok)
		}
	})

	t.Run("caret zero-or-more", func(t *testing.T) {
		s := New()
		mustAdd(t, s, "^ CATS", "", "", "T5")

		result, ok := s.Match("cats", "", "")
		if !ok || result.Template != "T5" {
			t.Fatalf("Match(cats) = %v,%v want T5,true", result, ok)
		}
		got, err := s.Wildcard(KindCaretWildcard, "cats", "", "", 1)
		if err != nil || got != "" {
			t.Errorf("Wildcard(caret,1) on 'cats' = %q,%v want empty,nil", got, err)
		}

		result, ok = s.Match("i love cats", "", "")
		if !ok || result.Template != "T5" {
			t.Fatalf("Match(i love cats) = %v,%v want T5,true", result, ok)
		}
		got, err = s.Wildcard(KindCaretWildcard, "i love cats", "", "", 1)
		if err != nil {
			t.Fatalf("Wildcard: %v", err)
		}
		if got != "i love" {
			t.Errorf("Wildcard(caret,1) on 'i love cats' = %q, want %q", got, "i love")
		}
	})

	t.Run("that section", func(t *testing.T) {
		s := New()
		mustAdd(t, s, "HELLO", "HOW ARE YOU", "", "T6")

		if _, ok := s.Match("hello", "How are you?", ""); !ok {
			t.Fatal("Match with matching that = no match, want a match")
		}
		if _, ok := s.Match("hello", "something else", ""); ok {
			t.Fatal("Match with non-matching that = matched, want no match")
		}
	})

	t.Run("bot name", func(t *testing.T) {
		s := New()
		s.SetBotName("Alice")
		mustAdd(t, s, "BOT_NAME ROCKS", "", "", "T7")

		result, ok := s.Match("alice rocks", "", "")
		if !ok || result.Template != "T7" {
			t.Fatalf("Match(alice rocks) = %v,%v want T7,true", result, ok)
		}
		if _, ok := s.Match("bob rocks", "", ""); ok {
			t.Fatal("Match(bob rocks) = matched, want no match")
		}
	})
}

func TestMatchNoMatch(t *testing.T) {
	s := New()
	mustAdd(t, s, "HELLO", "", "", "T1")
	if _, ok := s.Match("goodbye", "", ""); ok {
		t.Fatal("Match(goodbye) = matched, want no match")
	}
}

func mustAdd(t *testing.T, s *Store, pattern, that, topic string, template any) {
	t.Helper()
	if err := s.Add(pattern, that, topic, template); err != nil {
		t.Fatalf("Add(%q,%q,%q): %v", pattern, that, topic, err)
	}
}
