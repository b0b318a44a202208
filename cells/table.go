package cells

// runeRange is an inclusive range of code points. Tables built from it
// must be sorted ascending by lo and must not overlap, so lookups can
// binary search.
type runeRange struct {
	lo, hi rune
}

func inTable(r rune, table []runeRange) bool {
	lo, hi := 0, len(table)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		rr := table[mid]
		switch {
		case r < rr.lo:
			hi = mid - 1
		case r > rr.hi:
			lo = mid + 1
		default:
			return true
		}
	}
	return false
}

// Zero-width joiners, spaces, and variation selectors. These never
// occupy a cell even when a terminal renders the cluster they modify.
var zeroWidthTable = []runeRange{
	{0x200B, 0x200D}, // zero-width space, non-joiner, joiner
	{0x2060, 0x2060}, // word joiner
	{0xFE00, 0xFE0F}, // variation selectors
	{0xFEFF, 0xFEFF}, // zero-width no-break space (BOM)
	{0xE0100, 0xE01EF}, // variation selectors supplement
}

// Combining marks: rendered onto the preceding base character.
var combiningTable = []runeRange{
	{0x0300, 0x036F}, // combining diacritical marks
	{0x1AB0, 0x1AFF}, // combining diacritical marks extended
	{0x1DC0, 0x1DFF}, // combining diacritical marks supplement
	{0x20D0, 0x20FF}, // combining diacritical marks for symbols
	{0xFE20, 0xFE2F}, // combining half marks
}

// East Asian Wide and Fullwidth code points, plus the emoji blocks
// terminals render two cells wide.
var wideTable = []runeRange{
	{0x1100, 0x115F}, // Hangul jamo (leading consonants)
	{0x11A3, 0x11A7},
	{0x11FA, 0x11FF},
	{0x2329, 0x232A}, // angle brackets
	{0x2E80, 0x2E99}, // CJK radicals supplement
	{0x2E9B, 0x2EF3},
	{0x2F00, 0x2FD5}, // Kangxi radicals
	{0x2FF0, 0x2FFB}, // ideographic description
	{0x3000, 0x303E}, // CJK symbols and punctuation
	{0x3041, 0x3096}, // hiragana
	{0x3099, 0x30FF}, // katakana
	{0x3105, 0x312F}, // bopomofo
	{0x3131, 0x318E}, // Hangul compatibility jamo
	{0x3190, 0x31E3},
	{0x31F0, 0x321E}, // katakana phonetic extensions
	{0x3220, 0x3247}, // enclosed CJK letters
	{0x3250, 0x4DBF}, // CJK extension A
	{0x4E00, 0xA48C}, // CJK unified ideographs, Yi syllables
	{0xA490, 0xA4C6}, // Yi radicals
	{0xA960, 0xA97C}, // Hangul jamo extended-A
	{0xAC00, 0xD7A3}, // Hangul syllables
	{0xD7B0, 0xD7C6}, // Hangul jamo extended-B
	{0xD7CB, 0xD7FB},
	{0xF900, 0xFAFF}, // CJK compatibility ideographs
	{0xFE10, 0xFE19}, // vertical forms
	{0xFE30, 0xFE52}, // CJK compatibility forms
	{0xFE54, 0xFE66}, // small form variants
	{0xFE68, 0xFE6B},
	{0xFF01, 0xFF60}, // fullwidth ASCII and punctuation
	{0xFFE0, 0xFFE6}, // fullwidth signs
	{0x16FE0, 0x16FE4}, // Tangut marks
	{0x16FF0, 0x16FF1},
	{0x17000, 0x187F7}, // Tangut
	{0x18800, 0x18CD5}, // Tangut components
	{0x18D00, 0x18D08},
	{0x1AFF0, 0x1B0FF}, // kana extended
	{0x1B150, 0x1B152}, // small kana extension
	{0x1B164, 0x1B167},
	{0x1B170, 0x1B2FB}, // Nushu
	{0x1F004, 0x1F004}, // mahjong tile red dragon
	{0x1F0CF, 0x1F0CF}, // playing card black joker
	{0x1F18E, 0x1F18E}, // negative squared AB
	{0x1F191, 0x1F19A}, // squared CL..VS
	{0x1F200, 0x1F320}, // enclosed ideographic supplement, early emoji
	{0x1F32D, 0x1F335},
	{0x1F337, 0x1F37C},
	{0x1F37E, 0x1F393},
	{0x1F3A0, 0x1F3CA},
	{0x1F3CF, 0x1F3D3},
	{0x1F3E0, 0x1F3F0},
	{0x1F3F4, 0x1F3F4}, // waving black flag
	{0x1F3F8, 0x1F3FF}, // sports symbols, skin tone modifiers
	{0x1F400, 0x1F6FF}, // emoji, transport, map symbols
	{0x1F7E0, 0x1F7EB}, // large colored circles and squares
	{0x1F90C, 0x1F9FF}, // supplemental symbols and pictographs
	{0x1FA70, 0x1FA74},
	{0x1FA78, 0x1FA7C},
	{0x1FA80, 0x1FA86},
	{0x1FA90, 0x1FAAC},
	{0x1FAB0, 0x1FABA},
	{0x1FAC0, 0x1FAC5},
	{0x1FAD0, 0x1FAD9},
	{0x1FAE0, 0x1FAE7},
	{0x1FAF0, 0x1FAF6},
	{0x20000, 0x2FFFD}, // CJK extension B and beyond
	{0x30000, 0x3FFFD}, // CJK extension G
}
