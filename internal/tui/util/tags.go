package util

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"evalbench/internal/tui/state"
)

// ComputeTags calculates the status tags for the input buffer given the
// snapshot taken at the last evaluation and the current text.
//
// The returned slice preserves a stable order:
//
//	Modified, Added, Removed, Len
//
// Rules:
//   - Modified appears whenever current differs from the snapshot.
//   - Added/Removed carry the rune counts inserted/deleted relative to the
//     snapshot, and only appear when non-zero.
//   - Len is always included (counter).
func ComputeTags(lastRun, current string) []state.Tag {
	tags := make([]state.Tag, 0, 4)

	if lastRun != current {
		tags = append(tags, state.Tag{Kind: state.MODIFIED})
		added, removed := diffCounts(lastRun, current)
		if added > 0 {
			tags = append(tags, state.Tag{Kind: state.ADDED, Value: added})
		}
		if removed > 0 {
			tags = append(tags, state.Tag{Kind: state.REMOVED, Value: removed})
		}
	}

	tags = append(tags, state.Tag{Kind: state.LEN, Value: runeLen(current)})
	return tags
}

func diffCounts(before, after string) (added, removed int) {
	dmp := diffmatchpatch.New()
	for _, d := range dmp.DiffMain(before, after, false) {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += runeLen(d.Text)
		case diffmatchpatch.DiffDelete:
			removed += runeLen(d.Text)
		}
	}
	return added, removed
}

// runeLen returns the length of s in runes (Unicode code points).
func runeLen(s string) int {
	return len([]rune(s))
}
