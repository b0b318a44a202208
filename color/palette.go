package color

import (
	"fmt"
	"strings"
)

// Triplet is an 8-bit-per-channel RGB value.
type Triplet struct {
	R, G, B uint8
}

// Hex returns t as "#rrggbb".
func (t Triplet) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", t.R, t.G, t.B)
}

func (t Triplet) distanceSq(o Triplet) int {
	dr := int(t.R) - int(o.R)
	dg := int(t.G) - int(o.G)
	db := int(t.B) - int(o.B)
	return dr*dr + dg*dg + db*db
}

// standard16 holds the reference triplets for the classic 16 colors
// (the VGA palette). Downgrades to SystemStandard measure distance
// against these values.
var standard16 = [16]Triplet{
	{0, 0, 0},       // black
	{170, 0, 0},     // red
	{0, 170, 0},     // green
	{170, 85, 0},    // yellow
	{0, 0, 170},     // blue
	{170, 0, 170},   // magenta
	{0, 170, 170},   // cyan
	{170, 170, 170}, // white
	{85, 85, 85},    // bright black
	{255, 85, 85},   // bright red
	{85, 255, 85},   // bright green
	{255, 255, 85},  // bright yellow
	{85, 85, 255},   // bright blue
	{255, 85, 255},  // bright magenta
	{85, 255, 255},  // bright cyan
	{255, 255, 255}, // bright white
}

var standardNames = [16]string{
	"black", "red", "green", "yellow",
	"blue", "magenta", "cyan", "white",
	"bright_black", "bright_red", "bright_green", "bright_yellow",
	"bright_blue", "bright_magenta", "bright_cyan", "bright_white",
}

// cubeLevels are the xterm 6x6x6 color cube channel values.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// palette256 resolves an xterm 256-color index to its triplet:
// 0-15 the standard colors, 16-231 the color cube, 232-255 the
// gray ramp.
func palette256(idx uint8) Triplet {
	switch {
	case idx < 16:
		return standard16[idx]
	case idx < 232:
		i := int(idx) - 16
		return Triplet{cubeLevels[i/36], cubeLevels[i/6%6], cubeLevels[i%6]}
	}
	v := uint8(8 + 10*(int(idx)-232))
	return Triplet{v, v, v}
}

// grayRamp maps the xterm gray names to palette indexes. grey0 and
// grey100 are the cube's black and white corners; the rest is the
// 24-step ramp.
var grayRamp = map[string]int{
	"grey0": 16, "grey3": 232, "grey7": 233, "grey11": 234,
	"grey15": 235, "grey19": 236, "grey23": 237, "grey27": 238,
	"grey30": 239, "grey35": 240, "grey39": 241, "grey42": 242,
	"grey46": 243, "grey50": 244, "grey54": 245, "grey58": 246,
	"grey62": 247, "grey66": 248, "grey70": 249, "grey74": 250,
	"grey78": 251, "grey82": 252, "grey85": 253, "grey89": 254,
	"grey93": 255, "grey100": 231,
}

var namedColors = map[string]int{}

func init() {
	for i, name := range standardNames {
		namedColors[name] = i
	}
	namedColors["grey"] = 8
	namedColors["gray"] = 8
	for name, idx := range grayRamp {
		namedColors[name] = idx
		namedColors[strings.Replace(name, "grey", "gray", 1)] = idx
	}
}
