// Package cells measures strings in terminal cells and converts
// between cell positions and byte offsets.
//
// A code point occupies 0, 1, or 2 cells. The classification is
// intentionally self-contained (sorted range tables, no locale state)
// so that measurement is deterministic across platforms: callers that
// need grapheme-cluster semantics (emoji ZWJ sequences, regional
// indicator pairs) should measure with the uni package instead and use
// cells for the byte-offset arithmetic.
package cells

import "unicode/utf8"

// RuneWidth returns the number of terminal cells r occupies: 0 for
// zero-width code points, combining marks, and C0/C1 controls; 2 for
// East Asian wide/fullwidth code points and wide emoji; 1 otherwise.
func RuneWidth(r rune) int {
	if r < 0x80 {
		if r < 0x20 || r == 0x7F {
			return 0
		}
		return 1
	}
	switch {
	case inTable(r, zeroWidthTable):
		return 0
	case inTable(r, combiningTable):
		return 0
	case r >= 0x80 && r <= 0x9F: // C1 controls
		return 0
	case inTable(r, wideTable):
		return 2
	}
	return 1
}

// StringWidth returns the total cell width of s. Malformed UTF-8
// contributes no width: the scan skips one byte and continues.
func StringWidth(s string) int {
	width := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		width += RuneWidth(r)
		i += size
	}
	return width
}

// CellToByteIndex returns the smallest byte offset of s whose prefix
// has accumulated cell width >= cell. The offset always lands on a
// rune boundary: a cut falling inside a double-width rune resolves to
// the offset after it. Offsets beyond the string's total width clamp
// to len(s).
func CellToByteIndex(s string, cell int) int {
	if cell <= 0 {
		return 0
	}
	width := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		width += RuneWidth(r)
		i += size
		if width >= cell {
			return i
		}
	}
	return len(s)
}

// Truncate shortens s to at most maxCells cells, appending ellipsis in
// place of the removed tail. The ellipsis's own width is reserved out
// of the budget; if the ellipsis alone does not fit, the text is
// hard-cut with no ellipsis. Strings that already fit are returned
// unchanged.
func Truncate(s string, maxCells int, ellipsis string) string {
	if maxCells <= 0 {
		return ""
	}
	if StringWidth(s) <= maxCells {
		return s
	}
	ellWidth := StringWidth(ellipsis)
	if ellWidth > maxCells {
		return s[:PrefixByteIndex(s, maxCells)]
	}
	return s[:PrefixByteIndex(s, maxCells-ellWidth)] + ellipsis
}

// PrefixByteIndex returns the largest byte offset on a rune boundary
// whose prefix width does not exceed budget. It is the counterpart of
// CellToByteIndex for callers that must never exceed a width: a
// double-width rune straddling the budget is excluded rather than
// included.
func PrefixByteIndex(s string, budget int) int {
	width := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		w := RuneWidth(r)
		if width+w > budget {
			return i
		}
		width += w
		i += size
	}
	return len(s)
}
