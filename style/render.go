package style

import (
	"strconv"
	"strings"

	"github.com/codalotl/termstyle/color"
)

var enableCodes = [numAttrs]string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "53"}

// disableCodes mirror enableCodes per bit. 22 clears both intensity
// attributes (bold, dim) and 25 clears both blink speeds, so those
// entries repeat and RenderANSI dedupes them.
var disableCodes = [numAttrs]string{"22", "22", "23", "24", "25", "25", "27", "28", "29", "55"}

// RenderANSI returns the SGR escape sequence for s, targeting the
// given color system: attribute codes in bit order (enable or disable
// per explicit state), then the foreground, then the background,
// colors downgraded first. A style that sets nothing yields the reset
// sequence \x1b[0m, never an empty sequence. When a hyperlink is
// attached, the OSC-8 opener follows the SGR sequence; the caller is
// responsible for the matching ANSILinkClose after its text.
func (s Style) RenderANSI(sys color.System) string {
	var codes []string
	lastDisable := ""
	for bit := 0; bit < numAttrs; bit++ {
		mask := Attr(1) << bit
		if s.set&mask == 0 {
			continue
		}
		if s.attrs&mask != 0 {
			codes = append(codes, enableCodes[bit])
			continue
		}
		if disableCodes[bit] == lastDisable {
			continue
		}
		lastDisable = disableCodes[bit]
		codes = append(codes, disableCodes[bit])
	}
	if s.fgSet {
		codes = appendColorCodes(codes, s.fg.Downgrade(sys), false)
	}
	if s.bgSet {
		codes = appendColorCodes(codes, s.bg.Downgrade(sys), true)
	}
	if len(codes) == 0 {
		codes = []string{"0"}
	}

	var b strings.Builder
	b.WriteString("\x1b[")
	b.WriteString(strings.Join(codes, ";"))
	b.WriteByte('m')
	if s.link != "" {
		b.WriteString("\x1b]8;;")
		b.WriteString(s.link)
		b.WriteString("\x1b\\")
	}
	return b.String()
}

func appendColorCodes(codes []string, c color.Color, background bool) []string {
	switch c.Kind() {
	case color.KindDefault:
		if background {
			return append(codes, "49")
		}
		return append(codes, "39")
	case color.KindStandard:
		idx := int(c.Index())
		base := 30
		if background {
			base = 40
		}
		if idx >= 8 {
			return append(codes, strconv.Itoa(base+60+idx-8))
		}
		return append(codes, strconv.Itoa(base+idx))
	case color.KindPalette:
		return append(codes, extended(background), "5", strconv.Itoa(int(c.Index())))
	default:
		t, _ := c.Triplet()
		return append(codes, extended(background), "2",
			strconv.Itoa(int(t.R)), strconv.Itoa(int(t.G)), strconv.Itoa(int(t.B)))
	}
}

func extended(background bool) string {
	if background {
		return "48"
	}
	return "38"
}
