package content

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/turntable/constants"
)

// Sanitize strips terminal escape sequences and control characters, expands
// tabs and trims trailing whitespace and surrounding blank lines
func Sanitize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(stripEscapes(text), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(expandTabs(stripControl(line)), unicode.IsSpace)
	}

	// Drop leading and trailing blank lines
	start, end := 0, len(lines)
	for start < end && lines[start] == "" {
		start++
	}
	for end > start && lines[end-1] == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

// stripEscapes removes CSI and two-byte ESC sequences
func stripEscapes(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != 0x1b {
			b.WriteRune(r)
			continue
		}
		if i+1 >= len(runes) {
			break
		}
		if runes[i+1] == '[' {
			// CSI: parameters until a final byte in 0x40-0x7e
			j := i + 2
			for j < len(runes) && (runes[j] < 0x40 || runes[j] > 0x7e) {
				j++
			}
			i = j
			continue
		}
		i++ // ESC + one byte
	}
	return b.String()
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

func expandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}

	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			pad := constants.TabWidth - col%constants.TabWidth
			b.WriteString(strings.Repeat(" ", pad))
			col += pad
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}

// Wrap breaks text into lines no wider than width display cells
// Indentation of each source line is kept on its continuation lines
func Wrap(text string, width int) []string {
	width = max(width, constants.DrawerMinWidth)
	if text == "" {
		return nil
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		if runewidth.StringWidth(line) <= width {
			out = append(out, line)
			continue
		}
		out = append(out, wrapLine(line, width)...)
	}
	return out
}

func wrapLine(line string, width int) []string {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]
	if runewidth.StringWidth(indent) > width/2 {
		indent = ""
	}
	indentWidth := runewidth.StringWidth(indent)

	var out []string
	cur := indent
	curWidth := indentWidth
	for _, word := range strings.Fields(trimmed) {
		ww := runewidth.StringWidth(word)

		if curWidth > indentWidth && curWidth+1+ww > width {
			out = append(out, cur)
			cur, curWidth = indent, indentWidth
		}

		// Hard-break words that cannot fit on an empty line
		for indentWidth+ww > width {
			head := runewidth.Truncate(word, width-indentWidth, "")
			if curWidth > indentWidth {
				out = append(out, cur)
			}
			out = append(out, indent+head)
			cur, curWidth = indent, indentWidth
			word = word[len(head):]
			ww = runewidth.StringWidth(word)
		}
		if word == "" {
			continue
		}

		if curWidth > indentWidth {
			cur += " "
			curWidth++
		}
		cur += word
		curWidth += ww
	}
	if curWidth > indentWidth {
		out = append(out, cur)
	}
	return out
}

// SplitCards separates a body into the header above the first separator and
// the cards between separators; a body without separators has no cards
func SplitCards(body string) (header string, cards []string) {
	lines := strings.Split(body, "\n")
	cut := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == constants.CardSeparator {
			cut = i
			break
		}
	}
	if cut < 0 {
		return body, nil
	}

	header = strings.TrimSpace(strings.Join(lines[:cut], "\n"))
	var cur []string
	flush := func() {
		if card := strings.Trim(strings.Join(cur, "\n"), "\n"); strings.TrimSpace(card) != "" {
			cards = append(cards, card)
		}
		cur = cur[:0]
	}
	for _, line := range lines[cut+1:] {
		if strings.TrimSpace(line) == constants.CardSeparator {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return header, cards
}
