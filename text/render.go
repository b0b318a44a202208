package text

import (
	"sort"

	"github.com/codalotl/termstyle/color"
	"github.com/codalotl/termstyle/segment"
)

// Render flattens t into one segment per maximal constant-style run. Run
// boundaries fall on span starts and ends; each run's style is the base
// combined with every span covering it, in span order, so the span added
// last wins where two spans disagree. Runs whose combined style is zero
// come out unstyled.
func (t *Text) Render() []segment.Segment {
	if t.plain == "" {
		return nil
	}
	if len(t.spans) == 0 {
		if t.base.IsZero() {
			return []segment.Segment{segment.New(t.plain)}
		}
		return []segment.Segment{segment.NewStyled(t.plain, t.base)}
	}

	bounds := make([]int, 0, 2*len(t.spans)+2)
	bounds = append(bounds, 0, len(t.plain))
	for _, sp := range t.spans {
		bounds = append(bounds, clampOffset(sp.Start, len(t.plain)), clampOffset(sp.End, len(t.plain)))
	}
	sort.Ints(bounds)

	var segs []segment.Segment
	for idx := 1; idx < len(bounds); idx++ {
		lo, hi := bounds[idx-1], bounds[idx]
		if lo >= hi {
			continue
		}
		st := t.base
		for _, sp := range t.spans {
			if sp.Start <= lo && sp.End >= hi {
				st = st.Combine(sp.Style)
			}
		}
		if st.IsZero() {
			segs = append(segs, segment.New(t.plain[lo:hi]))
		} else {
			segs = append(segs, segment.NewStyled(t.plain[lo:hi], st))
		}
	}
	return segment.Simplify(segs)
}

// RenderANSI renders t for a terminal supporting the given color system.
func (t *Text) RenderANSI(sys color.System) string {
	return segment.RenderString(t.Render(), sys)
}

func clampOffset(v, n int) int {
	if v < 0 {
		return 0
	}
	if v > n {
		return n
	}
	return v
}
