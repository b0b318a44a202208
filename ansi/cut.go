package ansi

import (
	"strings"

	"github.com/codalotl/termstyle/color"
	"github.com/codalotl/termstyle/style"
	"github.com/codalotl/termstyle/uni"
)

// Cut removes fromLeft terminal cells from the start of src and
// fromRight cells from the end, returning the remaining substring. src
// may contain escape sequences; they take no width.
//
// Removal is grapheme-cluster-aware: a 2-cell cluster straddling the
// boundary is removed whole. Styling is preserved: the SGR state active
// at the new left edge is re-emitted in front of the remainder, even
// when the sequences that established it were cut away, and a reset is
// appended when the result would otherwise leak styling into following
// output.
//
// Negative amounts count as 0. Removing all width returns "".
func Cut(src string, fromLeft, fromRight int) string {
	if src == "" {
		return ""
	}
	if fromLeft < 0 {
		fromLeft = 0
	}
	if fromRight < 0 {
		fromRight = 0
	}

	widths, total := clusterWidths(src)
	if total == 0 {
		return ""
	}

	leftDropped := 0
	leftClusters := 0
	for leftClusters < len(widths) && leftDropped < fromLeft {
		leftDropped += widths[leftClusters]
		leftClusters++
	}
	rightDropped := 0
	rightClusters := len(widths)
	for rightClusters > leftClusters && rightDropped < fromRight {
		rightClusters--
		rightDropped += widths[rightClusters]
	}
	keep := total - leftDropped - rightDropped
	if keep <= 0 {
		return ""
	}

	areaStart := leftDropped
	areaEnd := leftDropped + keep

	var middle strings.Builder
	cur := style.New()
	var startState, endState style.Style
	startCaptured, endCaptured := false, false
	col := 0

	capture := func() {
		if !startCaptured && col >= areaStart {
			startState = cur
			startCaptured = true
		}
		if !endCaptured && col >= areaEnd {
			endState = cur
			endCaptured = true
		}
	}

	for i := 0; i < len(src); {
		if src[i] == '\x1b' {
			n := sequenceLength(src[i:])
			if n == 0 {
				break
			}
			seq := src[i : i+n]
			if params, ok := sgrParams(seq); ok {
				cur = foldSGR(cur, params)
			}
			if col >= areaStart && col < areaEnd {
				middle.WriteString(seq)
			}
			i += n
			capture()
			continue
		}
		end := len(src)
		if next := strings.IndexByte(src[i:], '\x1b'); next >= 0 {
			end = i + next
		}
		it := uni.NewIterator(src[i:end], nil)
		for it.Next() {
			if col >= areaStart && col < areaEnd {
				middle.WriteString(it.Value())
			}
			col += it.Width()
			capture()
		}
		i = end
	}
	if !startCaptured {
		startState = cur
	}
	if !endCaptured {
		endState = cur
	}

	var b strings.Builder
	b.Grow(middle.Len() + 16)
	if leftDropped > 0 && !startState.IsZero() {
		b.WriteString(startState.RenderANSI(color.SystemTrueColor))
	}
	b.WriteString(middle.String())
	if !endState.IsZero() {
		b.WriteString(style.ANSIReset)
	}
	return b.String()
}

// clusterWidths measures every printable grapheme cluster in src,
// skipping escape sequences. A sequence truncated by end of input ends
// the scan.
func clusterWidths(src string) (widths []int, total int) {
	widths = make([]int, 0, len(src))
	for i := 0; i < len(src); {
		if src[i] == '\x1b' {
			n := sequenceLength(src[i:])
			if n == 0 {
				return widths, total
			}
			i += n
			continue
		}
		end := len(src)
		if next := strings.IndexByte(src[i:], '\x1b'); next >= 0 {
			end = i + next
		}
		it := uni.NewIterator(src[i:end], nil)
		for it.Next() {
			w := it.Width()
			widths = append(widths, w)
			total += w
		}
		i = end
	}
	return widths, total
}
