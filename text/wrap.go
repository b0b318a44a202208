package text

import (
	"unicode/utf8"

	"github.com/codalotl/termstyle/cells"
)

// Wrap breaks t into lines of at most maxWidth cells. Hard newlines
// always break and are consumed. An overflowing line breaks at the last
// space seen on it, dropping the run of spaces around the break point,
// or mid-word at the widest rune boundary that fits when the line has no
// space. A single rune wider than maxWidth occupies a line by itself.
// Each line is an independent Text with spans re-clipped as in Slice.
func (t *Text) Wrap(maxWidth int) []*Text {
	if maxWidth < 1 {
		maxWidth = 1
	}
	var lines []*Text
	lineStart := 0
	lineWidth := 0
	lastSpace := -1
	i := 0
	for i < len(t.plain) {
		r, size := utf8.DecodeRuneInString(t.plain[i:])
		if r == '\n' {
			lines = append(lines, t.Slice(lineStart, i))
			i += size
			lineStart = i
			lineWidth = 0
			lastSpace = -1
			continue
		}
		w := cells.RuneWidth(r)
		if r == utf8.RuneError && size == 1 {
			w = 0
		}
		if lineWidth+w > maxWidth && w > 0 {
			if lastSpace >= lineStart {
				lines = append(lines, t.sliceTrimEnd(lineStart, lastSpace))
				j := lastSpace
				for j < len(t.plain) && t.plain[j] == ' ' {
					j++
				}
				lineStart = j
				if i < lineStart {
					i = lineStart
				}
				lineWidth = cells.StringWidth(t.plain[lineStart:i])
				lastSpace = -1
				continue
			}
			if i > lineStart {
				lines = append(lines, t.Slice(lineStart, i))
				lineStart = i
				lineWidth = 0
				continue
			}
			// A single rune wider than the budget still goes out.
		}
		if r == ' ' {
			lastSpace = i
		}
		lineWidth += w
		i += size
	}
	if lineStart < len(t.plain) || len(lines) == 0 {
		lines = append(lines, t.Slice(lineStart, len(t.plain)))
	}
	return lines
}

// sliceTrimEnd slices [start, end) with trailing spaces removed.
func (t *Text) sliceTrimEnd(start, end int) *Text {
	for end > start && t.plain[end-1] == ' ' {
		end--
	}
	return t.Slice(start, end)
}
