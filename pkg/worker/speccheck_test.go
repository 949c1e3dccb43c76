package worker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSpecFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestValidateSpecOutputsAccepts(t *testing.T) {
	dir := t.TempDir()
	writeSpecFile(t, dir, "EXPLORE.md", `---
id: SPEC-1
title: Exploration notes
status: draft
---

Findings.
`)
	writeSpecFile(t, dir, "PLAN.md", `---
id: SPEC-1
title: Plan
status: In Review
---

Steps.
`)

	assert.NoError(t, ValidateSpecOutputs(dir))
}

func TestValidateSpecOutputsRejectsMissingFrontmatter(t *testing.T) {
	dir := t.TempDir()
	writeSpecFile(t, dir, "EXPLORE.md", "no frontmatter here")

	err := ValidateSpecOutputs(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spec_validation")
	assert.Contains(t, err.Error(), "EXPLORE.md")
}

func TestValidateSpecOutputsRejectsBadStatus(t *testing.T) {
	dir := t.TempDir()
	writeSpecFile(t, dir, "DESIGN.md", `---
id: SPEC-1
title: Design
status: half-baked
---

Body.
`)

	err := ValidateSpecOutputs(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "half-baked")
}

func TestValidateSpecOutputsIgnoresNonMarkdown(t *testing.T) {
	dir := t.TempDir()
	writeSpecFile(t, dir, "scratch.txt", "not checked")

	assert.NoError(t, ValidateSpecOutputs(dir))
}
