package tui

import "strings"

// digitRows is the height of the block font used for the clock.
const digitRows = 5

var glyphs = map[rune][digitRows]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" ██", "  █", "  █", "  █", "  █"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "▪", " ", "▪", " "},
}

// bigText renders s in the block font. Runes without a glyph are skipped.
func bigText(s string) []string {
	lines := make([]string, digitRows)
	for _, r := range s {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		for i := range lines {
			if lines[i] != "" {
				lines[i] += " "
			}
			lines[i] += g[i]
		}
	}
	return lines
}

// bigClock renders the MM:SS display as a block of lines.
func bigClock(display string) string {
	return strings.Join(bigText(display), "\n")
}
