package color

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Blend interpolates linearly between a and b in RGB space, returning
// a 24-bit color. t is clamped to [0, 1]; 0 yields a's triplet, 1
// yields b's. Blending with the terminal default (which has no
// triplet) returns the other color.
func Blend(a, b Color, t float64) Color {
	ta, okA := a.Triplet()
	tb, okB := b.Triplet()
	if !okA {
		return b
	}
	if !okB {
		return a
	}
	t = clamp01(t)
	return RGB(
		lerpChannel(ta.R, tb.R, t),
		lerpChannel(ta.G, tb.G, t),
		lerpChannel(ta.B, tb.B, t),
	)
}

// BlendHSL interpolates between a and b in HSL space, taking the
// shortest arc around the hue circle. t is clamped to [0, 1].
// Blending with the terminal default returns the other color.
func BlendHSL(a, b Color, t float64) Color {
	ta, okA := a.Triplet()
	tb, okB := b.Triplet()
	if !okA {
		return b
	}
	if !okB {
		return a
	}
	t = clamp01(t)
	h1, s1, l1 := toColorful(ta).Hsl()
	h2, s2, l2 := toColorful(tb).Hsl()

	dh := h2 - h1
	if dh > 180 {
		dh -= 360
	} else if dh < -180 {
		dh += 360
	}
	h := math.Mod(h1+dh*t+360, 360)
	s := s1 + (s2-s1)*t
	l := l1 + (l2-l1)*t

	cr, cg, cb := colorful.Hsl(h, s, l).Clamped().RGB255()
	return RGB(cr, cg, cb)
}

// Luminance returns the WCAG relative luminance of c in [0, 1],
// computed over gamma-linearized channels. The terminal default has
// no triplet and reports 0.
func Luminance(c Color) float64 {
	t, ok := c.Triplet()
	if !ok {
		return 0
	}
	lr, lg, lb := toColorful(t).LinearRgb()
	return 0.2126*lr + 0.7152*lg + 0.0722*lb
}

// ContrastRatio returns the WCAG contrast ratio between a and b,
// in [1, 21], independent of argument order.
func ContrastRatio(a, b Color) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Grade is a WCAG contrast conformance level.
type Grade uint8

const (
	// GradeFail is a contrast ratio below 3.0.
	GradeFail Grade = iota
	// GradeAALarge passes AA for large text (ratio >= 3.0).
	GradeAALarge
	// GradeAA passes AA for normal text (ratio >= 4.5).
	GradeAA
	// GradeAAA passes AAA (ratio >= 7.0).
	GradeAAA
)

// GradeFor classifies a contrast ratio.
func GradeFor(ratio float64) Grade {
	switch {
	case ratio >= 7.0:
		return GradeAAA
	case ratio >= 4.5:
		return GradeAA
	case ratio >= 3.0:
		return GradeAALarge
	}
	return GradeFail
}

func (g Grade) String() string {
	switch g {
	case GradeAAA:
		return "AAA"
	case GradeAA:
		return "AA"
	case GradeAALarge:
		return "AA-large"
	}
	return "fail"
}

func toColorful(t Triplet) colorful.Color {
	return colorful.Color{
		R: float64(t.R) / 255.0,
		G: float64(t.G) / 255.0,
		B: float64(t.B) / 255.0,
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
