package content

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestSanitize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "hello", "hello"},
		{"csi colour", "\x1b[31mred\x1b[0m text", "red text"},
		{"two byte escape", "a\x1bMb", "ab"},
		{"control chars", "be\x07ll\x00", "bell"},
		{"crlf", "one\r\ntwo\rthree", "one\ntwo\nthree"},
		{"tabs", "a\tb", "a   b"},
		{"trailing space", "line   \nnext\t", "line\nnext"},
		{"blank edges", "\n\n  \nbody\n\n", "body"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sanitize(tc.input); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestWrapWidth(t *testing.T) {
	text := strings.Repeat("word ", 40) + "\n  indented " + strings.Repeat("x", 50) + "\n\nlast"
	lines := Wrap(text, 24)

	if len(lines) < 10 {
		t.Fatalf("Expected many wrapped lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := runewidth.StringWidth(line); w > 24 {
			t.Errorf("Line %d exceeds width: %d %q", i, w, line)
		}
	}

	// Blank paragraph separator survives
	found := false
	for _, line := range lines {
		if line == "" {
			found = true
		}
	}
	if !found {
		t.Error("Expected blank line to be preserved")
	}
	if lines[len(lines)-1] != "last" {
		t.Errorf("Expected final line 'last', got %q", lines[len(lines)-1])
	}
}

func TestWrapKeepsIndent(t *testing.T) {
	lines := Wrap("    alpha beta gamma delta epsilon zeta eta", 20)
	for i, line := range lines {
		if !strings.HasPrefix(line, "    ") {
			t.Errorf("Expected line %d to keep indentation, got %q", i, line)
		}
	}
}

func TestWrapWideRunes(t *testing.T) {
	lines := Wrap(strings.Repeat("漢", 30), 20)
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines for 60 cells, got %d", len(lines))
	}
	for i, line := range lines {
		if w := runewidth.StringWidth(line); w > 20 {
			t.Errorf("Line %d exceeds width: %d", i, w)
		}
	}
}

func TestWrapMinimumWidth(t *testing.T) {
	lines := Wrap(strings.Repeat("a ", 30), 1)
	for _, line := range lines {
		if runewidth.StringWidth(line) > 20 {
			t.Errorf("Expected width clamped to 20, got line %q", line)
		}
	}
}

func TestSplitCards(t *testing.T) {
	testCases := []struct {
		name   string
		body   string
		header string
		cards  []string
	}{
		{"no separator", "just text\nmore", "just text\nmore", nil},
		{"header and cards", "# Title\n---\none\n---\ntwo\n  detail", "# Title", []string{"one", "two\n  detail"}},
		{"empty cards dropped", "---\n\n---\nonly\n---\n", "", []string{"only"}},
		{"indented separator", "head\n  ---  \ncard", "head", []string{"card"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			header, cards := SplitCards(tc.body)
			if header != tc.header {
				t.Errorf("Expected header %q, got %q", tc.header, header)
			}
			if len(cards) != len(tc.cards) {
				t.Fatalf("Expected %d cards, got %d: %q", len(tc.cards), len(cards), cards)
			}
			for i := range cards {
				if cards[i] != tc.cards[i] {
					t.Errorf("Expected card %d %q, got %q", i, tc.cards[i], cards[i])
				}
			}
		})
	}
}
