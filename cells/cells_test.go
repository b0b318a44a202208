package cells

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want int
	}{
		{name: "ascii", r: 'a', want: 1},
		{name: "space", r: ' ', want: 1},
		{name: "c0Control", r: '\x07', want: 0},
		{name: "del", r: '\x7f', want: 0},
		{name: "c1Control", r: '', want: 0},
		{name: "zeroWidthSpace", r: '​', want: 0},
		{name: "zeroWidthJoiner", r: '‍', want: 0},
		{name: "variationSelector", r: '️', want: 0},
		{name: "combiningGrave", r: '̀', want: 0},
		{name: "cjkIdeograph", r: '世', want: 2},
		{name: "hangulSyllable", r: '한', want: 2},
		{name: "fullwidthA", r: 'Ａ', want: 2},
		{name: "emoji", r: '🎉', want: 2},
		{name: "latin", r: 'é', want: 1},
		{name: "cyrillic", r: 'ж', want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RuneWidth(tt.r))
		})
	}
}

func TestStringWidth(t *testing.T) {
	assert.Equal(t, 0, StringWidth(""))
	assert.Equal(t, 5, StringWidth("hello"))
	assert.Equal(t, 4, StringWidth("世界"))
	assert.Equal(t, 7, StringWidth("go 世界!"))
	assert.Equal(t, 1, StringWidth("à"))
}

func TestStringWidthMalformedUTF8(t *testing.T) {
	// A stray continuation byte is skipped without contributing width.
	assert.Equal(t, 2, StringWidth("a\x80b"))
	assert.Equal(t, 0, StringWidth("\xff"))
}

func TestCellToByteIndex(t *testing.T) {
	tests := []struct {
		name string
		s    string
		cell int
		want int
	}{
		{name: "zero", s: "hello", cell: 0, want: 0},
		{name: "negative", s: "hello", cell: -1, want: 0},
		{name: "ascii", s: "hello", cell: 2, want: 2},
		{name: "end", s: "hello", cell: 5, want: 5},
		{name: "beyondEnd", s: "hello", cell: 9, want: 5},
		{name: "afterWideRune", s: "世x", cell: 2, want: 3},
		{name: "insideWideRuneResolvesAfter", s: "世x", cell: 1, want: 3},
		{name: "multibyteNarrow", s: "éx", cell: 1, want: 2},
		{name: "emptyString", s: "", cell: 3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CellToByteIndex(tt.s, tt.cell))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		maxCells int
		ellipsis string
		want     string
	}{
		{name: "fits", s: "hello", maxCells: 5, ellipsis: "…", want: "hello"},
		{name: "fitsWide", s: "世界", maxCells: 4, ellipsis: "…", want: "世界"},
		{name: "cutWithEllipsis", s: "hello world", maxCells: 8, ellipsis: "…", want: "hello w…"},
		{name: "cutWithAsciiEllipsis", s: "hello world", maxCells: 8, ellipsis: "...", want: "hello..."},
		{name: "wideRuneNotSplit", s: "世界世界", maxCells: 4, ellipsis: "…", want: "世…"},
		{name: "ellipsisTooWideHardCut", s: "hello", maxCells: 2, ellipsis: "...", want: "he"},
		{name: "zeroBudget", s: "hello", maxCells: 0, ellipsis: "…", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.s, tt.maxCells, tt.ellipsis))
		})
	}
}
