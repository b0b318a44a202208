// Package ansi decodes and manipulates strings that contain ANSI escape
// sequences. Everything here is tolerant by design: unknown sequences
// are skipped, malformed input degrades to its printable text, and no
// operation returns an error.
package ansi

import (
	"strings"

	"github.com/codalotl/termstyle/uni"
)

// sequenceLength returns the byte length of the escape sequence starting
// at s[0], or 0 when the sequence is truncated by the end of input. A
// lone ESC before an unrecognized byte counts as a 2-byte sequence.
func sequenceLength(s string) int {
	if len(s) == 0 || s[0] != '\x1b' {
		return 0
	}
	if len(s) == 1 {
		return 1
	}

	switch s[1] {
	case '[': // CSI, terminated by a final byte in 0x40..0x7e
		for i := 2; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7e {
				return i + 1
			}
		}
		return 0
	case ']': // OSC, terminated by BEL or ST
		for i := 2; i < len(s); i++ {
			if s[i] == '\a' {
				return i + 1
			}
			if s[i] == '\\' && s[i-1] == '\x1b' {
				return i + 1
			}
		}
		return 0
	case 'P', '^', '_': // DCS, PM, APC, terminated by ST
		for i := 2; i < len(s); i++ {
			if s[i] == '\\' && s[i-1] == '\x1b' {
				return i + 1
			}
		}
		return 0
	default:
		return 2
	}
}

// Strip removes recognized escape sequences from src, keeping the
// literal text. A sequence truncated by the end of input is dropped
// without error.
func Strip(src string) string {
	if !strings.ContainsRune(src, '\x1b') {
		return src
	}
	var b strings.Builder
	b.Grow(len(src))
	for i := 0; i < len(src); {
		if src[i] != '\x1b' {
			b.WriteByte(src[i])
			i++
			continue
		}
		n := sequenceLength(src[i:])
		if n == 0 {
			break
		}
		i += n
	}
	return b.String()
}

// PrintableWidth returns the terminal cell width of src, not counting
// escape sequences. Width is measured over grapheme clusters, so ZWJ
// emoji and combining marks are sized as the terminal draws them.
func PrintableWidth(src string) int {
	if src == "" {
		return 0
	}
	width := 0
	segStart := 0
	for i := 0; i < len(src); {
		if src[i] != '\x1b' {
			i++
			continue
		}
		if segStart < i {
			width += uni.TextWidth(src[segStart:i], nil)
		}
		n := sequenceLength(src[i:])
		if n == 0 {
			// Truncated sequence: nothing printable remains.
			return width
		}
		i += n
		segStart = i
	}
	if segStart < len(src) {
		width += uni.TextWidth(src[segStart:], nil)
	}
	return width
}
