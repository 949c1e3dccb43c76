package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFileChangeNoChange(t *testing.T) {
	assert.Nil(t, ComputeFileChange("main.go", "same\n", "same\n"))
}

func TestComputeFileChangeCounts(t *testing.T) {
	oldContent := "line one\nline two\nline three\n"
	newContent := "line one\nline 2\nline three\nline four\n"

	change := ComputeFileChange("pkg/thing.go", oldContent, newContent)
	require.NotNil(t, change)

	assert.Equal(t, "pkg/thing.go", change.Path)
	assert.Equal(t, 2, change.Added, "one replaced line plus one appended line")
	assert.Equal(t, 1, change.Removed)
	assert.NotEmpty(t, change.Patch)
}

func TestComputeFileChangeNewFile(t *testing.T) {
	change := ComputeFileChange("README.md", "", "hello\nworld\n")
	require.NotNil(t, change)
	assert.Equal(t, 2, change.Added)
	assert.Equal(t, 0, change.Removed)
}

func TestComputeFileChangeDeletedFile(t *testing.T) {
	change := ComputeFileChange("old.txt", "a\nb\nc", "")
	require.NotNil(t, change)
	assert.Equal(t, 0, change.Added)
	assert.Equal(t, 3, change.Removed, "final line without newline still counts")
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 0, countLines(""))
	assert.Equal(t, 1, countLines("x"))
	assert.Equal(t, 1, countLines("x\n"))
	assert.Equal(t, 2, countLines("x\ny"))
}
