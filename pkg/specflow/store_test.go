package specflow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSet() ArtifactSet {
	return ArtifactSet{
		Requirements: []Requirement{
			{ID: "REQ-API-MSG-001", Title: "Message ordering", Status: "Draft", Normative: "SHALL", Body: "Messages apply in order.\n"},
		},
		Designs: []DesignDoc{
			{ID: "DES-API-001", Title: "Poller design", Status: "Review",
				Requirements: []string{"REQ-API-MSG-001"}, Body: "Cursor-based polling.\n"},
		},
		Tasks: []TaskDoc{
			{ID: "TSK-001", Title: "Implement poller", Status: "Draft",
				Requirements: []string{"REQ-API-MSG-001"},
				OwnedFiles:   []string{"pkg/worker/poller.go"},
				Body:         "Do the thing.\n"},
			{ID: "TSK-002", Title: "Wire poller", Status: "Draft",
				DependsOn: []string{"TSK-001"},
				Body:      "Depends on the poller.\n"},
		},
		Tickets: []TicketDoc{
			{ID: "TKT-001", Title: "Message delivery", Status: "Draft",
				Tasks: []string{"TSK-001", "TSK-002"},
				Body:  "Ticket body.\n"},
		},
	}
}

func TestRequirementRoundTrip(t *testing.T) {
	want := sampleSet().Requirements[0]
	raw, err := RenderRequirement(want)
	require.NoError(t, err)

	got, err := ParseRequirement(raw)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDesignRoundTrip(t *testing.T) {
	want := sampleSet().Designs[0]
	raw, err := RenderDesign(want)
	require.NoError(t, err)

	got, err := ParseDesignDoc(raw)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTicketRoundTrip(t *testing.T) {
	want := TicketDoc{
		ID: "TKT-002", Title: "Blocked ticket", Status: "Draft",
		BlockedBy: []string{"TKT-001"},
		Blocks:    []string{"TKT-003"},
		Tasks:     []string{"TSK-009"},
		Body:      "Waiting.\n",
	}
	raw, err := RenderTicket(want)
	require.NoError(t, err)

	got, err := ParseTicketDoc(raw)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWriteDirLoadDirRoundTrip(t *testing.T) {
	root := t.TempDir()
	want := sampleSet()
	require.NoError(t, WriteDir(root, want))

	got, err := LoadDir(root)
	require.NoError(t, err)
	assert.Equal(t, want.Requirements, got.Requirements)
	assert.Equal(t, want.Designs, got.Designs)
	assert.ElementsMatch(t, want.Tasks, got.Tasks)
	assert.Equal(t, want.Tickets, got.Tickets)
}

func TestLoadDirRejectsUnknownKind(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, WriteDir(root, sampleSet()))

	raw, err := RenderDocument(Document{
		Frontmatter: map[string]interface{}{"id": "X-1", "kind": "mystery"},
		Body:        "?",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(root, "mystery.md"), []byte(raw), 0o644))

	_, err = LoadDir(root)
	assert.ErrorContains(t, err, "unknown artifact kind")
}
