// Package color models terminal colors at the three fidelity levels
// terminals support (16-color, 256-color, 24-bit) plus the terminal
// default, and downgrades colors between them.
//
// Color is a small value type; copying and comparing with == are the
// intended usage. The package never inspects the environment: callers
// decide the target System and pass it explicitly.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// System is a terminal color fidelity level. Systems are ordered:
// a Color fits a System when it needs no downgrade to render there.
type System int

const (
	// SystemStandard is the classic 16-color system (8 + bright).
	SystemStandard System = iota
	// SystemPalette256 is the xterm 256-color system.
	SystemPalette256
	// SystemTrueColor is 24-bit direct color.
	SystemTrueColor
)

func (s System) String() string {
	switch s {
	case SystemStandard:
		return "standard"
	case SystemPalette256:
		return "256"
	case SystemTrueColor:
		return "truecolor"
	}
	return fmt.Sprintf("System(%d)", int(s))
}

// ParseSystem converts a color system name ("standard", "256",
// "truecolor") to a System.
func ParseSystem(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "16":
		return SystemStandard, nil
	case "256", "palette256":
		return SystemPalette256, nil
	case "truecolor", "24bit":
		return SystemTrueColor, nil
	}
	return 0, &ParseError{Input: s, Message: "unknown color system"}
}

// Kind discriminates the Color variants.
type Kind uint8

const (
	// KindDefault is the terminal's own default color.
	KindDefault Kind = iota
	// KindStandard is a 16-color index (0-7 classic, 8-15 bright).
	KindStandard
	// KindPalette is an xterm 256-color index.
	KindPalette
	// KindTrueColor is a 24-bit RGB color.
	KindTrueColor
)

// Color is one terminal color. The zero value is the terminal default.
type Color struct {
	kind    Kind
	index   uint8
	r, g, b uint8
}

// Default returns the terminal default color.
func Default() Color { return Color{} }

// Standard returns the classic 16-color with the given index.
// It panics if n > 15.
func Standard(n uint8) Color {
	if n > 15 {
		panic("color: standard index out of range")
	}
	return Color{kind: KindStandard, index: n}
}

// Palette returns the xterm 256-color with the given index.
func Palette(n uint8) Color {
	return Color{kind: KindPalette, index: n}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{kind: KindTrueColor, r: r, g: g, b: b}
}

// FromHex parses "#RRGGBB" or "RRGGBB" into a 24-bit color.
func FromHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, &ParseError{Input: s, Message: "hex color must have 6 digits"}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, &ParseError{Input: s, Message: "invalid hex digits"}
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Parse converts a color definition to a Color. It accepts named
// colors ("red", "bright_cyan", "grey50", "default"), hex ("#RRGGBB"
// or bare "RRGGBB"), "rgb(r,g,b)", "color(N)", and a bare decimal
// palette index.
func Parse(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch {
	case name == "":
		return Color{}, &ParseError{Input: s, Message: "empty color"}
	case name == "default":
		return Default(), nil
	}
	if n, ok := namedColors[name]; ok {
		if n < 16 {
			return Standard(uint8(n)), nil
		}
		return Palette(uint8(n)), nil
	}
	switch {
	case strings.HasPrefix(name, "#"):
		return FromHex(name)
	case strings.HasPrefix(name, "rgb(") && strings.HasSuffix(name, ")"):
		return parseRGBFunc(s, name[len("rgb(") : len(name)-1])
	case strings.HasPrefix(name, "color(") && strings.HasSuffix(name, ")"):
		n, err := parseComponent(name[len("color(") : len(name)-1])
		if err != nil {
			return Color{}, &ParseError{Input: s, Message: "palette index must be 0-255"}
		}
		return Palette(n), nil
	case len(name) == 6 && isHexDigits(name):
		return FromHex(name)
	case isDecimalDigits(name):
		n, err := parseComponent(name)
		if err != nil {
			return Color{}, &ParseError{Input: s, Message: "palette index must be 0-255"}
		}
		return Palette(n), nil
	}
	return Color{}, &ParseError{Input: s, Message: "unknown color"}
}

func parseRGBFunc(input, args string) (Color, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return Color{}, &ParseError{Input: input, Message: "rgb() needs 3 components"}
	}
	var c [3]uint8
	for i, p := range parts {
		n, err := parseComponent(strings.TrimSpace(p))
		if err != nil {
			return Color{}, &ParseError{Input: input, Message: "rgb() components must be 0-255"}
		}
		c[i] = n
	}
	return RGB(c[0], c[1], c[2]), nil
}

func parseComponent(s string) (uint8, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return 0, fmt.Errorf("out of range")
	}
	return uint8(n), nil
}

func isHexDigits(s string) bool {
	for _, r := range s {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			return false
		}
	}
	return true
}

func isDecimalDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Kind returns the variant of c.
func (c Color) Kind() Kind { return c.kind }

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool { return c.kind == KindDefault }

// Index returns the palette index for standard and 256-color values.
// It is 0 for other kinds.
func (c Color) Index() uint8 {
	if c.kind == KindStandard || c.kind == KindPalette {
		return c.index
	}
	return 0
}

// Triplet resolves c to an RGB triplet. Standard and palette indexes
// resolve through the reference palettes. The second return is false
// for the terminal default, which has no defined triplet.
func (c Color) Triplet() (Triplet, bool) {
	switch c.kind {
	case KindStandard:
		return standard16[c.index], true
	case KindPalette:
		return palette256(c.index), true
	case KindTrueColor:
		return Triplet{c.r, c.g, c.b}, true
	}
	return Triplet{}, false
}

// String returns a definition that Parse accepts: "default", a name
// for standard colors, "color(N)" for palette indexes, and "#rrggbb"
// for 24-bit colors.
func (c Color) String() string {
	switch c.kind {
	case KindStandard:
		return standardNames[c.index]
	case KindPalette:
		return fmt.Sprintf("color(%d)", c.index)
	case KindTrueColor:
		return Triplet{c.r, c.g, c.b}.Hex()
	}
	return "default"
}

// Downgrade converts c to a color renderable on target. Colors that
// already fit are returned unchanged, so downgrading is idempotent.
// The terminal default fits every system.
func (c Color) Downgrade(target System) Color {
	switch c.kind {
	case KindPalette:
		if target >= SystemPalette256 {
			return c
		}
		return Standard(nearestStandard(palette256(c.index)))
	case KindTrueColor:
		t := Triplet{c.r, c.g, c.b}
		switch {
		case target >= SystemTrueColor:
			return c
		case target == SystemPalette256:
			return Palette(paletteIndexFor(t))
		default:
			return Standard(nearestStandard(t))
		}
	}
	return c
}

// paletteIndexFor maps a 24-bit triplet onto the xterm 256 palette.
// Pure grays use the 24-step gray ramp, with near-black and near-white
// snapping to the color cube's endpoints; everything else rounds each
// channel to the nearest of the cube's 6 levels.
func paletteIndexFor(t Triplet) uint8 {
	if t.R == t.G && t.G == t.B {
		gray := int(math.Round(float64(t.R) * 25.0 / 255.0))
		switch gray {
		case 0:
			return 16
		case 25:
			return 231
		default:
			return uint8(231 + gray)
		}
	}
	r := int(math.Round(float64(t.R) * 5.0 / 255.0))
	g := int(math.Round(float64(t.G) * 5.0 / 255.0))
	b := int(math.Round(float64(t.B) * 5.0 / 255.0))
	return uint8(16 + 36*r + 6*g + b)
}

// nearestStandard returns the index of the 16-color palette entry
// closest to t by squared RGB distance. Ties keep the lowest index.
func nearestStandard(t Triplet) uint8 {
	best, bestDist := 0, math.MaxInt
	for i, ref := range standard16 {
		d := t.distanceSq(ref)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}

// ParseError reports an unparseable or out-of-range color definition.
type ParseError struct {
	Input   string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("color: cannot parse %q: %s", e.Input, e.Message)
}
