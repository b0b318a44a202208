// Package text implements a styled string: a plain UTF-8 buffer plus a
// list of spans that style half-open byte ranges of it. Spans may
// overlap; where they do, the span added last wins at render time.
//
// Every operation returns a new Text and leaves the receiver untouched,
// so values can be shared freely. Operations that reshape the plain
// string (slicing, padding, wrapping, tab expansion) re-clip and shift
// the spans to match.
package text

import (
	"strings"

	"github.com/codalotl/termstyle/cells"
	"github.com/codalotl/termstyle/style"
)

// A Span styles the byte range [Start, End) of a Text's plain string.
type Span struct {
	Start int
	End   int
	Style style.Style
}

// Text is a styled string. Build one with New or NewStyled and derive
// variants through its methods.
type Text struct {
	plain string
	spans []Span
	base  style.Style
}

// New returns an unstyled Text.
func New(plain string) *Text {
	return &Text{plain: plain}
}

// NewStyled returns a Text whose base style applies to the whole string,
// including any padding added later.
func NewStyled(plain string, st style.Style) *Text {
	return &Text{plain: plain, base: st}
}

// WithBase returns a copy of t with the base style replaced.
func (t *Text) WithBase(st style.Style) *Text {
	out := t.Copy()
	out.base = st
	return out
}

// Plain returns the text without any styling.
func (t *Text) Plain() string { return t.plain }

// Len returns the length of the plain string in bytes.
func (t *Text) Len() int { return len(t.plain) }

// CellLen returns the terminal cell width of the plain string.
func (t *Text) CellLen() int { return cells.StringWidth(t.plain) }

// Spans returns a copy of the span list.
func (t *Text) Spans() []Span {
	if len(t.spans) == 0 {
		return nil
	}
	out := make([]Span, len(t.spans))
	copy(out, t.spans)
	return out
}

// Base returns the base style.
func (t *Text) Base() style.Style { return t.base }

// Copy returns an independent copy of t.
func (t *Text) Copy() *Text {
	return &Text{plain: t.plain, spans: t.Spans(), base: t.base}
}

// Append returns t followed by other. Other's spans shift to their new
// offsets. Other's base style, when set, becomes a span covering its
// part, so the result keeps t's base without losing other's styling.
func (t *Text) Append(other *Text) *Text {
	out := t.Copy()
	off := len(out.plain)
	out.plain += other.plain
	if !other.base.IsZero() && len(other.plain) > 0 {
		out.spans = append(out.spans, Span{Start: off, End: off + len(other.plain), Style: other.base})
	}
	for _, sp := range other.spans {
		if sp.Start >= sp.End {
			continue
		}
		out.spans = append(out.spans, Span{Start: sp.Start + off, End: sp.End + off, Style: sp.Style})
	}
	return out
}

// AppendString returns t with s appended. Any styles given become spans
// over the appended range, in argument order.
func (t *Text) AppendString(s string, sts ...style.Style) *Text {
	out := t.Copy()
	off := len(out.plain)
	out.plain += s
	if len(s) == 0 {
		return out
	}
	for _, st := range sts {
		if st.IsZero() {
			continue
		}
		out.spans = append(out.spans, Span{Start: off, End: off + len(s), Style: st})
	}
	return out
}

// Slice returns the byte range [start, end) of t. The bounds are clamped
// to the string; spans are clipped to the range and rebased, and spans
// left empty are dropped.
func (t *Text) Slice(start, end int) *Text {
	if start < 0 {
		start = 0
	}
	if start > len(t.plain) {
		start = len(t.plain)
	}
	if end < start {
		end = start
	}
	if end > len(t.plain) {
		end = len(t.plain)
	}
	out := &Text{plain: t.plain[start:end], base: t.base}
	for _, sp := range t.spans {
		lo, hi := sp.Start, sp.End
		if lo < start {
			lo = start
		}
		if hi > end {
			hi = end
		}
		if lo >= hi {
			continue
		}
		out.spans = append(out.spans, Span{Start: lo - start, End: hi - start, Style: sp.Style})
	}
	return out
}

// Highlight adds a span styling [start, end), clamped to the string. An
// empty or reversed range, or a zero style, is a no-op.
func (t *Text) Highlight(start, end int, st style.Style) *Text {
	out := t.Copy()
	if start < 0 {
		start = 0
	}
	if end > len(t.plain) {
		end = len(t.plain)
	}
	if start >= end || st.IsZero() {
		return out
	}
	out.spans = append(out.spans, Span{Start: start, End: end, Style: st})
	return out
}

// HighlightPattern highlights every occurrence of a literal pattern,
// including overlapping ones.
func (t *Text) HighlightPattern(pattern string, st style.Style) *Text {
	out := t.Copy()
	if pattern == "" || st.IsZero() {
		return out
	}
	from := 0
	for {
		idx := strings.Index(out.plain[from:], pattern)
		if idx < 0 {
			return out
		}
		start := from + idx
		out.spans = append(out.spans, Span{Start: start, End: start + len(pattern), Style: st})
		from = start + 1
	}
}
