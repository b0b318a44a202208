package ansi

import (
	"strings"

	"github.com/codalotl/termstyle/color"
	"github.com/codalotl/termstyle/style"
	"github.com/codalotl/termstyle/text"
)

// Decode parses src into styled text. SGR sequences fold into a running
// style; each run of literal text becomes a span carrying the style
// active when it was read. OSC sequences and non-SGR CSI sequences are
// discarded. Decoding never fails: anything malformed degrades to its
// printable text.
func Decode(src string) *text.Text {
	return DecodeStyled(src, style.New())
}

// DecodeStyled is Decode with a base style for the resulting text. The
// base sits under the decoded spans, it does not seed the SGR state.
func DecodeStyled(src string, base style.Style) *text.Text {
	out := text.NewStyled("", base)
	cur := style.New()
	var buf strings.Builder

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		out = out.AppendString(buf.String(), cur)
		buf.Reset()
	}

	for i := 0; i < len(src); {
		if src[i] != '\x1b' {
			buf.WriteByte(src[i])
			i++
			continue
		}
		n := sequenceLength(src[i:])
		if n == 0 {
			break
		}
		if params, ok := sgrParams(src[i : i+n]); ok {
			if next := foldSGR(cur, params); next != cur {
				flush()
				cur = next
			}
		}
		i += n
	}
	flush()
	return out
}

// sgrParams reports whether seq is an SGR sequence ("\x1b[...m") and
// returns its parameters. Empty parameters mean reset, so "\x1b[m"
// yields [0].
func sgrParams(seq string) ([]int, bool) {
	if len(seq) < 3 || seq[0] != '\x1b' || seq[1] != '[' || seq[len(seq)-1] != 'm' {
		return nil, false
	}
	return parseParams(seq[2 : len(seq)-1])
}

func parseParams(content string) ([]int, bool) {
	if content == "" {
		return []int{0}, true
	}
	params := make([]int, 0, 8)
	start := 0
	for start <= len(content) {
		end := start
		for end < len(content) && content[end] != ';' {
			end++
		}
		if end == start {
			params = append(params, 0)
		} else {
			val, ok := parseParamInt(content[start:end])
			if !ok {
				return nil, false
			}
			params = append(params, val)
		}
		if end == len(content) {
			break
		}
		start = end + 1
	}
	return params, true
}

func parseParamInt(seg string) (int, bool) {
	if len(seg) > 8 {
		return 0, false
	}
	val := 0
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		val = val*10 + int(c-'0')
	}
	return val, true
}

var sgrEnable = map[int]style.Attr{
	1:  style.Bold,
	2:  style.Dim,
	3:  style.Italic,
	4:  style.Underline,
	5:  style.Blink,
	6:  style.Blink2,
	7:  style.Reverse,
	8:  style.Conceal,
	9:  style.Strike,
	53: style.Overline,
}

var sgrDisable = map[int]style.Attr{
	22: style.Bold | style.Dim,
	23: style.Italic,
	24: style.Underline,
	25: style.Blink | style.Blink2,
	27: style.Reverse,
	28: style.Conceal,
	29: style.Strike,
	55: style.Overline,
}

// foldSGR applies SGR parameters to a running style. Unknown codes are
// skipped.
func foldSGR(cur style.Style, params []int) style.Style {
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			cur = style.New()
		case sgrEnable[p] != 0:
			cur = cur.WithAttr(sgrEnable[p], true)
		case sgrDisable[p] != 0:
			cur = cur.WithAttr(sgrDisable[p], false)
		case p >= 30 && p <= 37:
			cur = cur.WithForeground(color.Standard(uint8(p - 30)))
		case p >= 90 && p <= 97:
			cur = cur.WithForeground(color.Standard(uint8(p - 90 + 8)))
		case p >= 40 && p <= 47:
			cur = cur.WithBackground(color.Standard(uint8(p - 40)))
		case p >= 100 && p <= 107:
			cur = cur.WithBackground(color.Standard(uint8(p - 100 + 8)))
		case p == 39:
			cur = cur.WithoutForeground()
		case p == 49:
			cur = cur.WithoutBackground()
		case p == 38:
			if c, next, ok := extendedColor(params, i); ok {
				cur = cur.WithForeground(c)
				i = next
			}
		case p == 48:
			if c, next, ok := extendedColor(params, i); ok {
				cur = cur.WithBackground(c)
				i = next
			}
		}
	}
	return cur
}

// extendedColor reads the "5;N" or "2;R;G;B" tail after a 38 or 48 at
// params[idx], returning the color and the index of its last parameter.
func extendedColor(params []int, idx int) (color.Color, int, bool) {
	if idx+1 >= len(params) {
		return color.Color{}, idx, false
	}
	switch params[idx+1] {
	case 5:
		if idx+2 >= len(params) || params[idx+2] > 255 {
			return color.Color{}, idx, false
		}
		return color.Palette(uint8(params[idx+2])), idx + 2, true
	case 2:
		if idx+4 >= len(params) {
			return color.Color{}, idx, false
		}
		r, g, b := params[idx+2], params[idx+3], params[idx+4]
		if r > 255 || g > 255 || b > 255 {
			return color.Color{}, idx, false
		}
		return color.RGB(uint8(r), uint8(g), uint8(b)), idx + 4, true
	}
	return color.Color{}, idx, false
}
