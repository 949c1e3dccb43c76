package worker

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// FileChange is the diff payload attached to a tool-result event for every
// tool-initiated write or edit. It feeds audit, replay, and the merge
// coordinator.
type FileChange struct {
	Path    string `json:"path"`
	Patch   string `json:"patch"`
	Added   int    `json:"added_lines"`
	Removed int    `json:"removed_lines"`
}

// ComputeFileChange produces a minimal patch between the old and new content
// of one file. Returns nil when nothing changed.
func ComputeFileChange(path, oldContent, newContent string) *FileChange {
	if oldContent == newContent {
		return nil
	}

	dmp := diffmatchpatch.New()
	oldRunes, newRunes, lines := dmp.DiffLinesToRunes(oldContent, newContent)
	diffs := dmp.DiffMainRunes(oldRunes, newRunes, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	added, removed := 0, 0
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += countLines(d.Text)
		case diffmatchpatch.DiffDelete:
			removed += countLines(d.Text)
		}
	}

	patches := dmp.PatchMake(oldContent, diffs)
	return &FileChange{
		Path:    path,
		Patch:   dmp.PatchToText(patches),
		Added:   added,
		Removed: removed,
	}
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := 0
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	if s[len(s)-1] != '\n' {
		n++
	}
	return n
}
