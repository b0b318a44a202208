package text

import (
	"strings"
	"unicode/utf8"

	"github.com/codalotl/termstyle/cells"
)

// Truncate cuts t to at most maxCells cells, appending ellipsis when a
// cut happens. The cut reserves the ellipsis's own width, and the
// ellipsis carries only the base style. When even the ellipsis does not
// fit the budget, the text is hard-cut without one.
func (t *Text) Truncate(maxCells int, ellipsis string) *Text {
	if maxCells < 0 {
		maxCells = 0
	}
	if t.CellLen() <= maxCells {
		return t.Copy()
	}
	ellWidth := cells.StringWidth(ellipsis)
	if ellWidth > maxCells {
		return t.Slice(0, cells.PrefixByteIndex(t.plain, maxCells))
	}
	out := t.Slice(0, cells.PrefixByteIndex(t.plain, maxCells-ellWidth))
	out.plain += ellipsis
	return out
}

// AlignLeft pads t with trailing spaces to width cells. Text already
// that wide or wider is returned as a copy.
func (t *Text) AlignLeft(width int) *Text {
	pad := width - t.CellLen()
	if pad <= 0 {
		return t.Copy()
	}
	out := t.Copy()
	out.plain += strings.Repeat(" ", pad)
	return out
}

// AlignRight pads t with leading spaces to width cells, shifting spans
// past the pad.
func (t *Text) AlignRight(width int) *Text {
	pad := width - t.CellLen()
	if pad <= 0 {
		return t.Copy()
	}
	return t.pad(pad, 0)
}

// AlignCenter pads t on both sides to width cells. An odd pad leaves
// the extra space on the right.
func (t *Text) AlignCenter(width int) *Text {
	pad := width - t.CellLen()
	if pad <= 0 {
		return t.Copy()
	}
	left := pad / 2
	return t.pad(left, pad-left)
}

func (t *Text) pad(left, right int) *Text {
	out := &Text{base: t.base}
	out.plain = strings.Repeat(" ", left) + t.plain + strings.Repeat(" ", right)
	if len(t.spans) > 0 {
		out.spans = make([]Span, 0, len(t.spans))
		for _, sp := range t.spans {
			out.spans = append(out.spans, Span{Start: sp.Start + left, End: sp.End + left, Style: sp.Style})
		}
	}
	return out
}

// Justify stretches t to width cells by widening the gaps between
// space-separated words. The extra spaces distribute evenly, leftmost
// gaps first, and always land at the end of a gap, so a span over a word
// never absorbs them. With fewer than two words it degrades to
// AlignLeft.
func (t *Text) Justify(width int) *Text {
	gaps := wordGaps(t.plain)
	if len(gaps) == 0 {
		return t.AlignLeft(width)
	}
	extra := width - t.CellLen()
	if extra <= 0 {
		return t.Copy()
	}

	// Spaces inserted immediately before each old byte offset.
	inserts := make(map[int]int, len(gaps))
	for i, gapEnd := range gaps {
		n := extra / len(gaps)
		if i < extra%len(gaps) {
			n++
		}
		inserts[gapEnd] = n
	}

	// startPos maps an old offset to its new position after any spaces
	// inserted there; endPos maps it to the position before them. Span
	// starts use the former and span ends the latter, so a span touching
	// a gap boundary never stretches over the inserted spaces.
	var b strings.Builder
	b.Grow(len(t.plain) + extra)
	startPos := make([]int, len(t.plain)+1)
	endPos := make([]int, len(t.plain)+1)
	for i := 0; i < len(t.plain); i++ {
		endPos[i] = b.Len()
		for j := 0; j < inserts[i]; j++ {
			b.WriteByte(' ')
		}
		startPos[i] = b.Len()
		b.WriteByte(t.plain[i])
	}
	endPos[len(t.plain)] = b.Len()
	startPos[len(t.plain)] = b.Len()

	out := &Text{plain: b.String(), base: t.base}
	for _, sp := range t.spans {
		if sp.Start >= sp.End {
			continue
		}
		out.spans = append(out.spans, Span{Start: startPos[sp.Start], End: endPos[sp.End], Style: sp.Style})
	}
	return out
}

// wordGaps returns the byte offset at which each inter-word gap ends,
// which is the start of every word but the first. Words are maximal runs
// of non-space bytes.
func wordGaps(s string) []int {
	var gaps []int
	inWord := false
	seenWord := false
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			inWord = false
			continue
		}
		if !inWord {
			if seenWord {
				gaps = append(gaps, i)
			}
			inWord = true
			seenWord = true
		}
	}
	return gaps
}

// ExpandTabs replaces each tab with enough spaces to reach the next tab
// stop, measuring columns in cells. A tabSize below 1 defaults to 8.
func (t *Text) ExpandTabs(tabSize int) *Text {
	if tabSize < 1 {
		tabSize = 8
	}
	if !strings.Contains(t.plain, "\t") {
		return t.Copy()
	}

	var b strings.Builder
	newPos := make([]int, len(t.plain)+1)
	col := 0
	for i := 0; i < len(t.plain); {
		r, size := utf8.DecodeRuneInString(t.plain[i:])
		if r == '\t' {
			newPos[i] = b.Len()
			n := tabSize - col%tabSize
			for j := 0; j < n; j++ {
				b.WriteByte(' ')
			}
			col += n
			i++
			continue
		}
		for j := 0; j < size; j++ {
			newPos[i+j] = b.Len() + j
		}
		b.WriteString(t.plain[i : i+size])
		if r == '\n' {
			col = 0
		} else if !(r == utf8.RuneError && size == 1) {
			col += cells.RuneWidth(r)
		}
		i += size
	}
	newPos[len(t.plain)] = b.Len()

	out := &Text{plain: b.String(), base: t.base}
	for _, sp := range t.spans {
		if sp.Start >= sp.End {
			continue
		}
		out.spans = append(out.spans, Span{Start: newPos[sp.Start], End: newPos[sp.End], Style: sp.Style})
	}
	return out
}

// Split cuts t around every occurrence of a literal separator. The
// separator itself is dropped. An empty separator returns a single copy.
func (t *Text) Split(sep string) []*Text {
	if sep == "" {
		return []*Text{t.Copy()}
	}
	var out []*Text
	from := 0
	for {
		idx := strings.Index(t.plain[from:], sep)
		if idx < 0 {
			return append(out, t.Slice(from, len(t.plain)))
		}
		out = append(out, t.Slice(from, from+idx))
		from += idx + len(sep)
	}
}
