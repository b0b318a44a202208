// Package uni measures text by grapheme cluster. It sits alongside the
// cells package: cells classifies individual code points with fixed
// tables, while uni delegates to grapheme segmentation and East Asian
// Width rules, so it handles ZWJ emoji sequences and locale-dependent
// widths. Use uni when cluster integrity matters (cutting styled
// output, reporting user-facing widths) and cells for plain span
// arithmetic.
package uni

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// Options control width calculation. The zero value (or a nil pointer)
// assumes a non-East-Asian locale.
type Options struct {
	// EastAsianWidth treats ambiguous-width East Asian code points as
	// 2 cells wide. Use when the locale is CJK.
	EastAsianWidth bool
	// TreatEmojiAsWide treats emoji as 2 cells wide. Only considered
	// when EastAsianWidth is set.
	TreatEmojiAsWide bool
}

func (opts *Options) condition() *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true
	if opts == nil {
		return cond
	}
	cond.EastAsianWidth = opts.EastAsianWidth
	if opts.EastAsianWidth && opts.TreatEmojiAsWide {
		cond.StrictEmojiNeutral = false
	}
	return cond
}

// TextWidth returns the terminal cell width of str for monospace
// fonts.
func TextWidth[T string | []byte](str T, opts *Options) int {
	return textWidth(str, opts.condition())
}

// RuneWidth returns the terminal cell width of r for monospace fonts.
func RuneWidth(r rune, opts *Options) int {
	return opts.condition().RuneWidth(r)
}

// Iterator walks str one grapheme cluster at a time.
type Iterator[T string | []byte] struct {
	iter graphemes.Iterator[T]
	cond *runewidth.Condition
}

// NewIterator returns an iterator over the grapheme clusters of str.
func NewIterator[T string | []byte](str T, opts *Options) *Iterator[T] {
	return &Iterator[T]{
		iter: newGraphemes(str),
		cond: opts.condition(),
	}
}

// Next advances to the next cluster, reporting false at end of input.
func (it *Iterator[T]) Next() bool {
	return it.iter.Next()
}

// Value returns the current cluster.
func (it *Iterator[T]) Value() T {
	return it.iter.Value()
}

// Start returns the byte offset of the current cluster in str.
func (it *Iterator[T]) Start() int {
	return it.iter.Start()
}

// End returns the byte offset just past the current cluster, so the
// cluster occupies bytes [Start(), End()).
func (it *Iterator[T]) End() int {
	return it.iter.End()
}

// Width returns the terminal cell width of the current cluster.
func (it *Iterator[T]) Width() int {
	return textWidth(it.iter.Value(), it.cond)
}

// ByteOffsetAtWidth returns the largest grapheme-cluster boundary in
// str whose prefix is at most width cells wide. A cluster that would
// straddle the limit is excluded whole.
func ByteOffsetAtWidth[T string | []byte](str T, width int, opts *Options) int {
	if width <= 0 {
		return 0
	}
	it := NewIterator(str, opts)
	offset, used := 0, 0
	for it.Next() {
		w := it.Width()
		if used+w > width {
			break
		}
		used += w
		offset = it.End()
	}
	return offset
}

func newGraphemes[T string | []byte](text T) graphemes.Iterator[T] {
	switch v := any(text).(type) {
	case string:
		iter := graphemes.FromString(v)
		return any(iter).(graphemes.Iterator[T])
	case []byte:
		iter := graphemes.FromBytes(v)
		return any(iter).(graphemes.Iterator[T])
	default:
		panic("unsupported type")
	}
}

func textWidth[T string | []byte](text T, cond *runewidth.Condition) int {
	switch v := any(text).(type) {
	case string:
		return cond.StringWidth(v)
	case []byte:
		return cond.StringWidth(string(v))
	default:
		panic("unsupported type")
	}
}
