// Package segment provides the render primitive of the styling stack:
// a run of text with one optional style, or one terminal control
// operation. Higher layers reduce everything they model to a flat
// sequence of segments, and the functions here slice, pad, and render
// such sequences.
package segment

import (
	"io"

	"github.com/codalotl/termstyle/cells"
	"github.com/codalotl/termstyle/color"
	"github.com/codalotl/termstyle/style"
)

// Segment is a piece of terminal output: either a text run with an
// optional style, or a control operation. Control segments occupy no
// cells regardless of their text.
type Segment struct {
	Text    string
	Style   *style.Style
	Control *Control
}

// New returns an unstyled text segment.
func New(text string) Segment {
	return Segment{Text: text}
}

// NewStyled returns a text segment with a style.
func NewStyled(text string, st style.Style) Segment {
	return Segment{Text: text, Style: &st}
}

// NewControl returns a control segment.
func NewControl(c Control) Segment {
	return Segment{Control: &c}
}

// IsControl reports whether s is a control segment.
func (s Segment) IsControl() bool { return s.Control != nil }

// CellLen returns the cell width of the segment's text. Control
// segments are always zero wide.
func (s Segment) CellLen() int {
	if s.Control != nil {
		return 0
	}
	return cells.StringWidth(s.Text)
}

// SplitCells splits a text segment at a cell offset into two segments
// sharing the original's style. The byte position is resolved with
// cells.CellToByteIndex, so a cut inside a double-width rune keeps the
// rune on the left side. Control segments return themselves and an
// empty segment.
func (s Segment) SplitCells(cell int) (Segment, Segment) {
	if s.Control != nil {
		return s, Segment{}
	}
	idx := cells.CellToByteIndex(s.Text, cell)
	return Segment{Text: s.Text[:idx], Style: s.Style},
		Segment{Text: s.Text[idx:], Style: s.Style}
}

// Render writes the segment to w. Styled text emits the style's SGR
// sequence, the text, and a reset; a style carrying a hyperlink also
// gets the OSC-8 terminator. Unstyled text is written verbatim, and
// control segments emit their escape sequence.
func (s Segment) Render(w io.Writer, sys color.System) error {
	if s.Control != nil {
		_, err := io.WriteString(w, s.Control.Sequence())
		return err
	}
	if s.Style == nil {
		_, err := io.WriteString(w, s.Text)
		return err
	}
	if _, err := io.WriteString(w, s.Style.RenderANSI(sys)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, s.Text); err != nil {
		return err
	}
	if _, err := io.WriteString(w, style.ANSIReset); err != nil {
		return err
	}
	if s.Style.Link() != "" {
		if _, err := io.WriteString(w, style.ANSILinkClose); err != nil {
			return err
		}
	}
	return nil
}

func styleEqual(a, b *style.Style) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
