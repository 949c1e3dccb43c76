package specflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderParse_RoundTrip(t *testing.T) {
	doc := Document{
		Frontmatter: map[string]interface{}{
			"id":     "TSK-001",
			"title":  "Wire the scheduler",
			"status": "Draft",
		},
		Body: "# Wire the scheduler\n\nDetails here.\n",
	}

	raw, err := RenderDocument(doc)
	require.NoError(t, err)

	parsed, err := ParseDocument(raw)
	require.NoError(t, err)
	assert.Equal(t, doc.Frontmatter, parsed.Frontmatter)
	assert.Equal(t, doc.Body, parsed.Body)
}

func TestParseDocument_MissingOpeningDelimiter(t *testing.T) {
	_, err := ParseDocument("# no frontmatter\n")
	assert.Error(t, err)
}

func TestParseDocument_UnclosedFrontmatter(t *testing.T) {
	_, err := ParseDocument("---\nid: TSK-001\n")
	assert.Error(t, err)
}

func TestParseDocument_InvalidYAML(t *testing.T) {
	_, err := ParseDocument("---\nid: [unclosed\n---\n\nbody")
	assert.Error(t, err)
}

func TestParseDocument_BodyWithDashes(t *testing.T) {
	doc := Document{
		Frontmatter: map[string]interface{}{"id": "REQ-API-MSG-001"},
		Body:        "before\n\n---\n\nafter a horizontal rule",
	}
	raw, err := RenderDocument(doc)
	require.NoError(t, err)

	parsed, err := ParseDocument(raw)
	require.NoError(t, err)
	assert.Equal(t, doc.Body, parsed.Body)
}

func TestFrontmatterString(t *testing.T) {
	fm := map[string]interface{}{"id": "TKT-001", "count": 3}

	id, err := FrontmatterString(fm, "id")
	require.NoError(t, err)
	assert.Equal(t, "TKT-001", id)

	_, err = FrontmatterString(fm, "missing")
	assert.Error(t, err)

	_, err = FrontmatterString(fm, "count")
	assert.Error(t, err)
}

func TestFrontmatterStrings(t *testing.T) {
	fm := map[string]interface{}{
		"deps":  []interface{}{"TSK-001", "TSK-002"},
		"mixed": []interface{}{"TSK-001", 7},
	}

	deps, err := FrontmatterStrings(fm, "deps")
	require.NoError(t, err)
	assert.Equal(t, []string{"TSK-001", "TSK-002"}, deps)

	absent, err := FrontmatterStrings(fm, "absent")
	require.NoError(t, err)
	assert.Nil(t, absent)

	_, err = FrontmatterStrings(fm, "mixed")
	assert.Error(t, err)
}
