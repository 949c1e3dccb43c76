package scheduler

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// WorkspaceSnapshot lists the files of the target workspace at task start.
// Sibling disjointness is judged against this snapshot, not against live
// state, so two tasks admitted in the same cycle see the same universe.
type WorkspaceSnapshot func() ([]string, error)

// DirSnapshot returns a snapshot that walks root on each call, listing
// files relative to it. The .git directory is skipped.
func DirSnapshot(root string) WorkspaceSnapshot {
	return func() ([]string, error) {
		var files []string
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if d.Name() == ".git" {
					return filepath.SkipDir
				}
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			files = append(files, filepath.ToSlash(rel))
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to snapshot %s: %w", root, err)
		}
		return files, nil
	}
}

// ExpandOwnership resolves a task's owned_files glob patterns against the
// snapshot file list.
func ExpandOwnership(patterns, files []string) (map[string]bool, error) {
	owned := make(map[string]bool)
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid owned_files pattern %q", pattern)
		}
		for _, f := range files {
			ok, err := doublestar.Match(pattern, f)
			if err != nil {
				return nil, fmt.Errorf("failed to match %q against %q: %w", pattern, f, err)
			}
			if ok {
				owned[f] = true
			}
		}
	}
	return owned, nil
}

// OwnershipDisjoint reports whether two owned_files sets are disjoint under
// the snapshot, returning the first overlapping file when they are not.
func OwnershipDisjoint(a, b, files []string) (bool, string, error) {
	ownedA, err := ExpandOwnership(a, files)
	if err != nil {
		return false, "", err
	}
	ownedB, err := ExpandOwnership(b, files)
	if err != nil {
		return false, "", err
	}
	for f := range ownedA {
		if ownedB[f] {
			return false, f, nil
		}
	}
	return true, "", nil
}
