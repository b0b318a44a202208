package text

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/codalotl/termstyle/style"
)

// Diff renders a rune-level diff of oldText against newText as a single
// Text: deleted runs styled removed, inserted runs styled added, common
// runs unstyled. Semantic cleanup keeps the edits word-shaped rather
// than scattering single-rune changes.
func Diff(oldText, newText string, removed, added style.Style) *Text {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes([]rune(oldText), []rune(newText), false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	diffs = dmp.DiffCleanupMerge(diffs)

	out := New("")
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			out = out.AppendString(d.Text, removed)
		case diffmatchpatch.DiffInsert:
			out = out.AppendString(d.Text, added)
		default:
			out = out.AppendString(d.Text)
		}
	}
	return out
}
