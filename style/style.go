// Package style models terminal text styles: optional foreground and
// background colors, tri-state attributes, and an optional hyperlink.
//
// Every attribute is one of unset, explicitly on, or explicitly off.
// The distinction drives Combine: an overlay only overrides what it
// explicitly sets, so styles layer the way nested markup tags expect.
// Style is a comparable value type; the zero value is the empty style.
package style

import (
	"fmt"
	"strings"

	"github.com/codalotl/termstyle/color"
)

// ANSIReset clears all SGR state.
const ANSIReset = "\x1b[0m"

// ANSILinkClose terminates an OSC-8 hyperlink.
const ANSILinkClose = "\x1b]8;;\x1b\\"

// Attr is a bit mask of text attributes.
type Attr uint16

const (
	Bold Attr = 1 << iota
	Dim
	Italic
	Underline
	Blink
	Blink2
	Reverse
	Conceal
	Strike
	Overline

	numAttrs = 10
)

var attrNames = [numAttrs]string{
	"bold", "dim", "italic", "underline", "blink",
	"blink2", "reverse", "conceal", "strike", "overline",
}

// Style is a terminal text style. The zero value styles nothing.
type Style struct {
	fg, bg       color.Color
	fgSet, bgSet bool
	attrs        Attr // attribute values, meaningful where set
	set          Attr // which attributes are explicit
	link         string
}

// New returns the empty style. It exists for call-chain readability;
// the zero Style is equivalent.
func New() Style { return Style{} }

// WithAttr returns a copy of s with every attribute in mask explicitly
// switched on or off.
func (s Style) WithAttr(mask Attr, on bool) Style {
	s.set |= mask
	if on {
		s.attrs |= mask
	} else {
		s.attrs &^= mask
	}
	return s
}

// WithBold returns a copy of s with bold explicitly on or off.
func (s Style) WithBold(on bool) Style { return s.WithAttr(Bold, on) }

// WithDim returns a copy of s with dim explicitly on or off.
func (s Style) WithDim(on bool) Style { return s.WithAttr(Dim, on) }

// WithItalic returns a copy of s with italic explicitly on or off.
func (s Style) WithItalic(on bool) Style { return s.WithAttr(Italic, on) }

// WithUnderline returns a copy of s with underline explicitly on or off.
func (s Style) WithUnderline(on bool) Style { return s.WithAttr(Underline, on) }

// WithBlink returns a copy of s with blink explicitly on or off.
func (s Style) WithBlink(on bool) Style { return s.WithAttr(Blink, on) }

// WithReverse returns a copy of s with reverse video explicitly on or off.
func (s Style) WithReverse(on bool) Style { return s.WithAttr(Reverse, on) }

// WithConceal returns a copy of s with conceal explicitly on or off.
func (s Style) WithConceal(on bool) Style { return s.WithAttr(Conceal, on) }

// WithStrike returns a copy of s with strikethrough explicitly on or off.
func (s Style) WithStrike(on bool) Style { return s.WithAttr(Strike, on) }

// WithOverline returns a copy of s with overline explicitly on or off.
func (s Style) WithOverline(on bool) Style { return s.WithAttr(Overline, on) }

// WithForeground returns a copy of s with the foreground color set.
func (s Style) WithForeground(c color.Color) Style {
	s.fg, s.fgSet = c, true
	return s
}

// WithBackground returns a copy of s with the background color set.
func (s Style) WithBackground(c color.Color) Style {
	s.bg, s.bgSet = c, true
	return s
}

// WithoutForeground returns a copy of s with no foreground color.
func (s Style) WithoutForeground() Style {
	s.fg, s.fgSet = color.Color{}, false
	return s
}

// WithoutBackground returns a copy of s with no background color.
func (s Style) WithoutBackground() Style {
	s.bg, s.bgSet = color.Color{}, false
	return s
}

// WithLink returns a copy of s with a hyperlink URL attached.
func (s Style) WithLink(url string) Style {
	s.link = url
	return s
}

// Has reports whether every attribute in mask is explicitly on.
func (s Style) Has(mask Attr) bool {
	return s.set&s.attrs&mask == mask
}

// Explicit reports whether every attribute in mask is explicitly set,
// on or off.
func (s Style) Explicit(mask Attr) bool {
	return s.set&mask == mask
}

// Foreground returns the foreground color; ok is false when unset.
func (s Style) Foreground() (c color.Color, ok bool) { return s.fg, s.fgSet }

// Background returns the background color; ok is false when unset.
func (s Style) Background() (c color.Color, ok bool) { return s.bg, s.bgSet }

// Link returns the hyperlink URL, or "" when none is attached.
func (s Style) Link() string { return s.link }

// IsZero reports whether s is the empty style.
func (s Style) IsZero() bool { return s == Style{} }

// Combine overlays another style onto s. Attributes the overlay sets
// explicitly win; everything else carries through from s. Colors and
// the hyperlink follow present-wins. Combining with the zero style is
// the identity in either position.
func (s Style) Combine(overlay Style) Style {
	out := s
	out.attrs = (s.attrs &^ overlay.set) | (overlay.attrs & overlay.set)
	out.set = s.set | overlay.set
	if overlay.fgSet {
		out.fg, out.fgSet = overlay.fg, true
	}
	if overlay.bgSet {
		out.bg, out.bgSet = overlay.bg, true
	}
	if overlay.link != "" {
		out.link = overlay.link
	}
	return out
}

// String returns the style definition in the grammar Parse accepts,
// or "none" for the empty style.
func (s Style) String() string {
	if s.IsZero() {
		return "none"
	}
	var words []string
	for bit := 0; bit < numAttrs; bit++ {
		mask := Attr(1) << bit
		if s.set&mask == 0 {
			continue
		}
		if s.attrs&mask != 0 {
			words = append(words, attrNames[bit])
		} else {
			words = append(words, "not "+attrNames[bit])
		}
	}
	if s.fgSet {
		words = append(words, s.fg.String())
	}
	if s.bgSet {
		words = append(words, "on "+s.bg.String())
	}
	if s.link != "" {
		words = append(words, "link "+s.link)
	}
	return strings.Join(words, " ")
}

// ParseError reports an unparseable style definition.
type ParseError struct {
	Token   string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("style: %s (at %q)", e.Message, e.Token)
}
