package segment

import (
	"strings"

	"github.com/codalotl/termstyle/cells"
	"github.com/codalotl/termstyle/color"
	"github.com/codalotl/termstyle/style"
)

// RenderString renders a segment sequence to one string.
func RenderString(segs []Segment, sys color.System) string {
	var b strings.Builder
	for _, s := range segs {
		// strings.Builder never returns a write error.
		_ = s.Render(&b, sys)
	}
	return b.String()
}

// CellLength returns the total cell width of a segment sequence.
func CellLength(segs []Segment) int {
	total := 0
	for _, s := range segs {
		total += s.CellLen()
	}
	return total
}

// Divide partitions a segment sequence at ascending cell-offset cut
// points, splitting segments that straddle a boundary. It returns
// len(cuts)+1 parts: part i holds the cells in [cuts[i-1], cuts[i]),
// with the first part starting at 0 and the last part unbounded.
// Control segments land in the part active where they appear.
func Divide(segs []Segment, cuts []int) [][]Segment {
	parts := make([][]Segment, len(cuts)+1)
	cur, pos := 0, 0

	for _, seg := range segs {
		if seg.Control != nil {
			parts[cur] = append(parts[cur], seg)
			continue
		}
		if seg.Text == "" {
			continue
		}
		for {
			for cur < len(cuts) && cuts[cur] <= pos {
				cur++
			}
			w := seg.CellLen()
			if cur >= len(cuts) || pos+w <= cuts[cur] {
				parts[cur] = append(parts[cur], seg)
				pos += w
				break
			}
			left, right := seg.SplitCells(cuts[cur] - pos)
			if left.Text != "" {
				parts[cur] = append(parts[cur], left)
				pos += left.CellLen()
			}
			seg = right
			if seg.Text == "" {
				break
			}
		}
	}
	return parts
}

// AdjustLineLength pads or truncates a segment sequence to exactly
// target cells. Padding appends spaces styled with pad (nil for
// unstyled). Truncation splits a straddling segment; when a
// double-width rune cannot fill the last cell, a padding space takes
// its place.
func AdjustLineLength(segs []Segment, target int, pad *style.Style) []Segment {
	total := CellLength(segs)
	switch {
	case total == target:
		out := make([]Segment, len(segs))
		copy(out, segs)
		return out
	case total < target:
		out := make([]Segment, len(segs), len(segs)+1)
		copy(out, segs)
		return append(out, Segment{Text: strings.Repeat(" ", target-total), Style: pad})
	}

	var out []Segment
	pos := 0
	for _, seg := range segs {
		if seg.Control != nil {
			out = append(out, seg)
			continue
		}
		w := seg.CellLen()
		if pos+w <= target {
			out = append(out, seg)
			pos += w
			continue
		}
		idx := cells.PrefixByteIndex(seg.Text, target-pos)
		if idx > 0 {
			cut := Segment{Text: seg.Text[:idx], Style: seg.Style}
			out = append(out, cut)
			pos += cut.CellLen()
		}
		break
	}
	if pos < target {
		out = append(out, Segment{Text: strings.Repeat(" ", target-pos), Style: pad})
	}
	return out
}

// SplitLines splits a segment sequence on newline characters in its
// text. The newlines are consumed; control segments stay on the line
// where they appear. A trailing newline does not produce a final
// empty line.
func SplitLines(segs []Segment) [][]Segment {
	var lines [][]Segment
	var line []Segment

	for _, seg := range segs {
		if seg.Control != nil || !strings.Contains(seg.Text, "\n") {
			if seg.Control != nil || seg.Text != "" {
				line = append(line, seg)
			}
			continue
		}
		pieces := strings.Split(seg.Text, "\n")
		for i, piece := range pieces {
			if i > 0 {
				lines = append(lines, line)
				line = nil
			}
			if piece != "" {
				line = append(line, Segment{Text: piece, Style: seg.Style})
			}
		}
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// Simplify merges adjacent text segments that carry equal styles.
func Simplify(segs []Segment) []Segment {
	var out []Segment
	for _, seg := range segs {
		if len(out) == 0 || seg.Control != nil || out[len(out)-1].Control != nil {
			out = append(out, seg)
			continue
		}
		last := &out[len(out)-1]
		if styleEqual(last.Style, seg.Style) {
			last.Text += seg.Text
			continue
		}
		out = append(out, seg)
	}
	return out
}

// StripStyles returns the sequence with all styles removed. Text and
// control segments are preserved.
func StripStyles(segs []Segment) []Segment {
	out := make([]Segment, len(segs))
	for i, seg := range segs {
		out[i] = Segment{Text: seg.Text, Control: seg.Control}
	}
	return out
}
