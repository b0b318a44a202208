package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codalotl/termstyle/color"
	"github.com/codalotl/termstyle/style"
)

var (
	tBold = style.New().WithBold(true)
	tRed  = style.New().WithForeground(color.Standard(1))
)

func TestAccessors(t *testing.T) {
	tx := NewStyled("héllo", tBold)
	assert.Equal(t, "héllo", tx.Plain())
	assert.Equal(t, 6, tx.Len())
	assert.Equal(t, 5, tx.CellLen())
	assert.Equal(t, tBold, tx.Base())
	assert.Nil(t, tx.Spans())
}

func TestCopyIsIndependent(t *testing.T) {
	a := New("abc").Highlight(0, 2, tBold)
	b := a.Copy()
	b = b.Highlight(1, 3, tRed)
	assert.Len(t, a.Spans(), 1)
	assert.Len(t, b.Spans(), 2)
}

func TestWithBase(t *testing.T) {
	tx := New("hi").WithBase(tRed)
	assert.Equal(t, tRed, tx.Base())
	assert.Equal(t, "hi", tx.Plain())
}

func TestAppend(t *testing.T) {
	t.Run("shiftsSpans", func(t *testing.T) {
		a := New("ab").Highlight(0, 1, tBold)
		b := New("cd").Highlight(1, 2, tRed)
		got := a.Append(b)
		assert.Equal(t, "abcd", got.Plain())
		assert.Equal(t, []Span{{0, 1, tBold}, {3, 4, tRed}}, got.Spans())
	})

	t.Run("otherBaseBecomesSpan", func(t *testing.T) {
		a := New("ab")
		b := NewStyled("cd", tRed).Highlight(0, 1, tBold)
		got := a.Append(b)
		assert.True(t, got.Base().IsZero())
		assert.Equal(t, []Span{{2, 4, tRed}, {2, 3, tBold}}, got.Spans())
	})

	t.Run("emptyOther", func(t *testing.T) {
		a := New("ab").Highlight(0, 2, tBold)
		got := a.Append(NewStyled("", tRed))
		assert.Equal(t, "ab", got.Plain())
		assert.Equal(t, []Span{{0, 2, tBold}}, got.Spans())
	})
}

func TestAppendString(t *testing.T) {
	got := New("a").AppendString("bc", tRed).AppendString("!")
	assert.Equal(t, "abc!", got.Plain())
	assert.Equal(t, []Span{{1, 3, tRed}}, got.Spans())
}

func TestSlice(t *testing.T) {
	tx := New("hello").Highlight(1, 4, tRed)

	t.Run("clipsAndRebases", func(t *testing.T) {
		got := tx.Slice(2, 5)
		assert.Equal(t, "llo", got.Plain())
		assert.Equal(t, []Span{{0, 2, tRed}}, got.Spans())
	})

	t.Run("clampsBounds", func(t *testing.T) {
		got := tx.Slice(-3, 99)
		assert.Equal(t, "hello", got.Plain())
		assert.Equal(t, []Span{{1, 4, tRed}}, got.Spans())
	})

	t.Run("dropsEmptiedSpans", func(t *testing.T) {
		got := tx.Slice(4, 5)
		assert.Equal(t, "o", got.Plain())
		assert.Nil(t, got.Spans())
	})

	t.Run("keepsBase", func(t *testing.T) {
		got := NewStyled("hello", tBold).Slice(0, 2)
		assert.Equal(t, tBold, got.Base())
	})
}

func TestHighlight(t *testing.T) {
	t.Run("clampsRange", func(t *testing.T) {
		got := New("ab").Highlight(-5, 99, tRed)
		assert.Equal(t, []Span{{0, 2, tRed}}, got.Spans())
	})

	t.Run("emptyRangeIsNoop", func(t *testing.T) {
		got := New("ab").Highlight(1, 1, tRed)
		assert.Nil(t, got.Spans())
	})

	t.Run("reversedRangeIsNoop", func(t *testing.T) {
		got := New("ab").Highlight(2, 0, tRed)
		assert.Nil(t, got.Spans())
	})

	t.Run("zeroStyleIsNoop", func(t *testing.T) {
		got := New("ab").Highlight(0, 2, style.New())
		assert.Nil(t, got.Spans())
	})
}

func TestHighlightPattern(t *testing.T) {
	t.Run("everyOccurrence", func(t *testing.T) {
		got := New("one two one").HighlightPattern("one", tRed)
		assert.Equal(t, []Span{{0, 3, tRed}, {8, 11, tRed}}, got.Spans())
	})

	t.Run("overlappingMatches", func(t *testing.T) {
		got := New("aaa").HighlightPattern("aa", tRed)
		assert.Equal(t, []Span{{0, 2, tRed}, {1, 3, tRed}}, got.Spans())
	})

	t.Run("emptyPatternIsNoop", func(t *testing.T) {
		got := New("abc").HighlightPattern("", tRed)
		assert.Nil(t, got.Spans())
	})
}

func TestTruncate(t *testing.T) {
	t.Run("fitsIsCopy", func(t *testing.T) {
		tx := New("Hello").Highlight(0, 5, tRed)
		got := tx.Truncate(5, "…")
		assert.Equal(t, "Hello", got.Plain())
		assert.Equal(t, tx.Spans(), got.Spans())
	})

	t.Run("cutsReservingEllipsis", func(t *testing.T) {
		got := New("Hello World").Highlight(0, 5, tBold).Truncate(8, "…")
		assert.Equal(t, "Hello W…", got.Plain())
		assert.Equal(t, 8, got.CellLen())
		assert.Equal(t, []Span{{0, 5, tBold}}, got.Spans())
	})

	t.Run("wideRuneNotSplit", func(t *testing.T) {
		got := New("世界世界").Truncate(4, "…")
		assert.Equal(t, "世…", got.Plain())
		assert.Equal(t, 3, got.CellLen())
	})

	t.Run("ellipsisTooWideHardCuts", func(t *testing.T) {
		got := New("abc").Truncate(1, "……")
		assert.Equal(t, "a", got.Plain())
	})

	t.Run("multiRuneEllipsis", func(t *testing.T) {
		got := New("abcdef").Truncate(5, "...")
		assert.Equal(t, "ab...", got.Plain())
	})
}

func TestAlign(t *testing.T) {
	t.Run("leftPadsTrailing", func(t *testing.T) {
		got := New("hi").Highlight(0, 2, tRed).AlignLeft(5)
		assert.Equal(t, "hi   ", got.Plain())
		assert.Equal(t, []Span{{0, 2, tRed}}, got.Spans())
	})

	t.Run("rightShiftsSpans", func(t *testing.T) {
		got := New("hi").Highlight(0, 2, tRed).AlignRight(5)
		assert.Equal(t, "   hi", got.Plain())
		assert.Equal(t, []Span{{3, 5, tRed}}, got.Spans())
	})

	t.Run("centerFloorsLeft", func(t *testing.T) {
		got := New("hi").Highlight(0, 2, tRed).AlignCenter(5)
		assert.Equal(t, " hi  ", got.Plain())
		assert.Equal(t, []Span{{1, 3, tRed}}, got.Spans())
	})

	t.Run("alreadyWideIsCopy", func(t *testing.T) {
		got := New("hello").AlignRight(3)
		assert.Equal(t, "hello", got.Plain())
	})

	t.Run("widthCountsCells", func(t *testing.T) {
		got := New("世界").AlignLeft(6)
		assert.Equal(t, "世界  ", got.Plain())
	})
}

func TestJustify(t *testing.T) {
	t.Run("singleGap", func(t *testing.T) {
		got := New("Hi World").Justify(12)
		assert.Equal(t, "Hi     World", got.Plain())
		assert.Equal(t, 12, got.CellLen())
	})

	t.Run("remainderGoesToLeftmostGaps", func(t *testing.T) {
		got := New("a b c d").Justify(12)
		assert.Equal(t, "a   b   c  d", got.Plain())
	})

	t.Run("spansStayOnWords", func(t *testing.T) {
		got := New("Hi World").Highlight(0, 2, tBold).Highlight(3, 8, tRed).Justify(12)
		assert.Equal(t, "Hi     World", got.Plain())
		assert.Equal(t, []Span{{0, 2, tBold}, {7, 12, tRed}}, got.Spans())
	})

	t.Run("singleWordAlignsLeft", func(t *testing.T) {
		got := New("Hi").Justify(5)
		assert.Equal(t, "Hi   ", got.Plain())
	})

	t.Run("alreadyWideIsCopy", func(t *testing.T) {
		got := New("Hi World").Justify(3)
		assert.Equal(t, "Hi World", got.Plain())
	})
}

func TestExpandTabs(t *testing.T) {
	t.Run("advancesToTabStop", func(t *testing.T) {
		got := New("a\tb").ExpandTabs(4)
		assert.Equal(t, "a   b", got.Plain())
	})

	t.Run("tabAtStop", func(t *testing.T) {
		got := New("abcd\te").ExpandTabs(4)
		assert.Equal(t, "abcd    e", got.Plain())
	})

	t.Run("columnCountsCells", func(t *testing.T) {
		got := New("世\tx").ExpandTabs(4)
		assert.Equal(t, "世  x", got.Plain())
	})

	t.Run("newlineResetsColumn", func(t *testing.T) {
		got := New("abc\n\tx").ExpandTabs(4)
		assert.Equal(t, "abc\n    x", got.Plain())
	})

	t.Run("remapsSpans", func(t *testing.T) {
		got := New("a\tb").Highlight(2, 3, tRed).ExpandTabs(4)
		assert.Equal(t, []Span{{4, 5, tRed}}, got.Spans())
	})

	t.Run("spanOverTabStretches", func(t *testing.T) {
		got := New("a\tb").Highlight(0, 2, tRed).ExpandTabs(4)
		assert.Equal(t, []Span{{0, 4, tRed}}, got.Spans())
	})

	t.Run("noTabsIsCopy", func(t *testing.T) {
		got := New("abc").ExpandTabs(4)
		assert.Equal(t, "abc", got.Plain())
	})
}

func TestSplit(t *testing.T) {
	t.Run("dropsSeparator", func(t *testing.T) {
		parts := New("a,b,c").Split(",")
		require.Len(t, parts, 3)
		assert.Equal(t, "a", parts[0].Plain())
		assert.Equal(t, "b", parts[1].Plain())
		assert.Equal(t, "c", parts[2].Plain())
	})

	t.Run("trailingSeparatorYieldsEmpty", func(t *testing.T) {
		parts := New("a,").Split(",")
		require.Len(t, parts, 2)
		assert.Equal(t, "", parts[1].Plain())
	})

	t.Run("spansClippedPerPiece", func(t *testing.T) {
		parts := New("a,b").Highlight(0, 3, tRed).Split(",")
		require.Len(t, parts, 2)
		assert.Equal(t, []Span{{0, 1, tRed}}, parts[0].Spans())
		assert.Equal(t, []Span{{0, 1, tRed}}, parts[1].Spans())
	})

	t.Run("emptySeparator", func(t *testing.T) {
		parts := New("ab").Split("")
		require.Len(t, parts, 1)
		assert.Equal(t, "ab", parts[0].Plain())
	})
}
