package specflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSet() ArtifactSet {
	return ArtifactSet{
		Requirements: []Requirement{
			{ID: "REQ-API-MSG-001", Title: "Message ordering", Status: "Draft", Normative: "SHALL"},
			{ID: "REQ-API-MSG-002", Title: "Message dedup", Status: "Review", Normative: "MUST"},
		},
		Designs: []DesignDoc{
			{
				ID:           "DES-001",
				Title:        "Message pipeline",
				Status:       "Draft",
				Requirements: []string{"REQ-API-MSG-001"},
				Body:         "```mermaid\nflowchart LR\n  A --> B\n```\n",
			},
		},
		Tasks: []TaskDoc{
			{ID: "TSK-001", Title: "Cursor store", Status: "Draft", Requirements: []string{"REQ-API-MSG-001"}, Design: []string{"DES-001"}},
			{ID: "TSK-002", Title: "Poll endpoint", Status: "Draft", DependsOn: []string{"TSK-001"}},
		},
		Tickets: []TicketDoc{
			{ID: "TKT-001", Title: "Message injection", Status: "Draft", Tasks: []string{"TSK-001", "TSK-002"}},
			{ID: "TKT-002", Title: "Follow-up", Status: "Draft", BlockedBy: []string{"TKT-001"}},
		},
	}
}

func TestValidateArtifacts_ValidSetPasses(t *testing.T) {
	assert.NoError(t, ValidateArtifacts(validSet()))
}

func TestValidateArtifacts_RejectsTaskCycle(t *testing.T) {
	set := validSet()
	set.Tasks[0].DependsOn = []string{"TSK-002"}

	err := ValidateArtifacts(set)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "cycle")
}

func TestValidateArtifacts_RejectsUnresolvedReference(t *testing.T) {
	set := validSet()
	set.Tasks[0].Requirements = append(set.Tasks[0].Requirements, "REQ-API-MSG-999")

	err := ValidateArtifacts(set)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQ-API-MSG-999")
}

func TestValidateArtifacts_RejectsDuplicateIDs(t *testing.T) {
	set := validSet()
	set.Tasks = append(set.Tasks, TaskDoc{ID: "TSK-001", Title: "dup", Status: "Draft"})

	err := ValidateArtifacts(set)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate task id")
}

func TestValidateArtifacts_RejectsBadStatus(t *testing.T) {
	set := validSet()
	set.Tickets[0].Status = "wontfix"

	err := ValidateArtifacts(set)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "allowed set")
}

func TestValidateArtifacts_RejectsMalformedMermaid(t *testing.T) {
	set := validSet()
	set.Designs[0].Body = "```mermaid\nflowchart LR\n  A --> B\n"

	err := ValidateArtifacts(set)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not closed")
}

func TestStronglyConnected_FindsCycles(t *testing.T) {
	graph := map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": {"a"},
		"d": {"a"},
		"e": {},
	}

	comps := StronglyConnected(graph)
	require.Len(t, comps, 1)
	assert.Equal(t, []string{"a", "b", "c"}, comps[0])
}

func TestStronglyConnected_SelfLoopIgnored(t *testing.T) {
	// A single node pointing at itself is a size-1 component.
	comps := StronglyConnected(map[string][]string{"a": {"a"}})
	assert.Empty(t, comps)
}

func TestStronglyConnected_AcyclicGraph(t *testing.T) {
	graph := map[string][]string{
		"a": {"b", "c"},
		"b": {"c"},
		"c": {},
	}
	assert.Empty(t, StronglyConnected(graph))
}

func TestCheckMermaidFences(t *testing.T) {
	assert.NoError(t, CheckMermaidFences("no diagrams here"))
	assert.NoError(t, CheckMermaidFences("```mermaid\nsequenceDiagram\n  A->>B: hi\n```"))
	assert.Error(t, CheckMermaidFences("```mermaid\nnotadiagram\n```"))
	assert.Error(t, CheckMermaidFences("```mermaid\n```"))
}

func TestNormalizeStatus(t *testing.T) {
	for raw, want := range map[string]string{
		"draft":     "Draft",
		"Draft":     "Draft",
		"  REVIEW ": "Review",
		"done":      "Implemented",
		"obsolete":  "Archived",
	} {
		got, err := NormalizeStatus(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got)
	}

	_, err := NormalizeStatus("bogus")
	assert.Error(t, err)
}

func TestIDPatterns(t *testing.T) {
	assert.True(t, ValidRequirementID("REQ-API-MSG-001"))
	assert.False(t, ValidRequirementID("REQ-API-001"))
	assert.False(t, ValidRequirementID("REQ-api-msg-001"))

	assert.True(t, ValidTaskID("TSK-001"))
	assert.True(t, ValidTaskID("HLM-TSK-042"))
	assert.False(t, ValidTaskID("TSK-1"))

	assert.True(t, ValidTicketID("TKT-007"))
	assert.True(t, ValidTicketID("HLM-TKT-1234"))
	assert.False(t, ValidTicketID("TICKET-001"))
}
