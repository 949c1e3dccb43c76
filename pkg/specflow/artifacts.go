package specflow

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Artifact id patterns. Requirement ids carry an area and sub-area;
// task and ticket ids are plain sequences with an optional project prefix.
var (
	reqIDPattern    = regexp.MustCompile(`^REQ-[A-Z0-9]+-[A-Z0-9]+-\d{3}$`)
	taskIDPattern   = regexp.MustCompile(`^(?:[A-Z][A-Z0-9]*-)?TSK-\d{3,}$`)
	ticketIDPattern = regexp.MustCompile(`^(?:[A-Z][A-Z0-9]*-)?TKT-\d{3,}$`)
)

// Allowed artifact statuses after normalization.
var allowedStatuses = map[string]string{
	"draft":       "Draft",
	"review":      "Review",
	"in review":   "Review",
	"approved":    "Review",
	"implemented": "Implemented",
	"done":        "Implemented",
	"complete":    "Implemented",
	"completed":   "Implemented",
	"archived":    "Archived",
	"obsolete":    "Archived",
}

// NormalizeStatus maps free-form status values onto the allowed set.
func NormalizeStatus(raw string) (string, error) {
	normalized, ok := allowedStatuses[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", fmt.Errorf("status %q is not in the allowed set", raw)
	}
	return normalized, nil
}

// ValidRequirementID reports whether id matches REQ-<AREA>-<SUB>-<NNN>.
func ValidRequirementID(id string) bool { return reqIDPattern.MatchString(id) }

// ValidTaskID reports whether id matches TSK-<NNN> with optional prefix.
func ValidTaskID(id string) bool { return taskIDPattern.MatchString(id) }

// ValidTicketID reports whether id matches TKT-<NNN> with optional prefix.
func ValidTicketID(id string) bool { return ticketIDPattern.MatchString(id) }

// Requirement is one normative requirement artifact.
type Requirement struct {
	ID        string
	Title     string
	Status    string
	Normative string // SHALL | MUST | SHOULD | MAY
	Body      string
}

// DesignDoc is the design artifact; Body may contain Mermaid diagrams.
type DesignDoc struct {
	ID           string
	Title        string
	Status       string
	Requirements []string // referenced requirement ids
	Body         string
}

// TaskDoc is one task artifact produced by the TASKS/SYNC phases.
type TaskDoc struct {
	ID           string
	Title        string
	Status       string
	Requirements []string
	Design       []string
	DependsOn    []string // other task ids
	OwnedFiles   []string
	Body         string
}

// TicketDoc is one ticket artifact with its dependency sets.
type TicketDoc struct {
	ID        string
	Title     string
	Status    string
	BlockedBy []string
	Blocks    []string
	Tasks     []string
	Body      string
}

// ArtifactSet is everything the SYNC phase emits.
type ArtifactSet struct {
	Requirements []Requirement
	Designs      []DesignDoc
	Tasks        []TaskDoc
	Tickets      []TicketDoc
}

var normativeWords = map[string]bool{"SHALL": true, "MUST": true, "SHOULD": true, "MAY": true}

// RenderRequirement emits the markdown artifact for one requirement.
func RenderRequirement(r Requirement) (string, error) {
	if !ValidRequirementID(r.ID) {
		return "", fmt.Errorf("invalid requirement id %q", r.ID)
	}
	if !normativeWords[r.Normative] {
		return "", fmt.Errorf("requirement %s: %q is not a normative keyword", r.ID, r.Normative)
	}
	return RenderDocument(Document{
		Frontmatter: map[string]interface{}{
			"id":        r.ID,
			"title":     r.Title,
			"status":    r.Status,
			"normative": r.Normative,
			"kind":      "requirement",
		},
		Body: r.Body,
	})
}

// RenderTask emits the markdown artifact for one task.
func RenderTask(t TaskDoc) (string, error) {
	if !ValidTaskID(t.ID) {
		return "", fmt.Errorf("invalid task id %q", t.ID)
	}
	return RenderDocument(Document{
		Frontmatter: map[string]interface{}{
			"id":           t.ID,
			"title":        t.Title,
			"status":       t.Status,
			"kind":         "task",
			"requirements": toAnySlice(t.Requirements),
			"design":       toAnySlice(t.Design),
			"depends_on":   toAnySlice(t.DependsOn),
			"owned_files":  toAnySlice(t.OwnedFiles),
		},
		Body: t.Body,
	})
}

// RenderTicket emits the markdown artifact for one ticket.
func RenderTicket(t TicketDoc) (string, error) {
	if !ValidTicketID(t.ID) {
		return "", fmt.Errorf("invalid ticket id %q", t.ID)
	}
	return RenderDocument(Document{
		Frontmatter: map[string]interface{}{
			"id":     t.ID,
			"title":  t.Title,
			"status": t.Status,
			"kind":   "ticket",
			"dependencies": map[string]interface{}{
				"blocked_by": toAnySlice(t.BlockedBy),
				"blocks":     toAnySlice(t.Blocks),
			},
			"tasks": toAnySlice(t.Tasks),
		},
		Body: t.Body,
	})
}

// ParseTaskDoc rebuilds a TaskDoc from a rendered artifact.
func ParseTaskDoc(raw string) (TaskDoc, error) {
	doc, err := ParseDocument(raw)
	if err != nil {
		return TaskDoc{}, err
	}
	id, err := FrontmatterString(doc.Frontmatter, "id")
	if err != nil {
		return TaskDoc{}, err
	}
	title, err := FrontmatterString(doc.Frontmatter, "title")
	if err != nil {
		return TaskDoc{}, err
	}
	status, err := FrontmatterString(doc.Frontmatter, "status")
	if err != nil {
		return TaskDoc{}, err
	}
	requirements, err := FrontmatterStrings(doc.Frontmatter, "requirements")
	if err != nil {
		return TaskDoc{}, err
	}
	design, err := FrontmatterStrings(doc.Frontmatter, "design")
	if err != nil {
		return TaskDoc{}, err
	}
	dependsOn, err := FrontmatterStrings(doc.Frontmatter, "depends_on")
	if err != nil {
		return TaskDoc{}, err
	}
	ownedFiles, err := FrontmatterStrings(doc.Frontmatter, "owned_files")
	if err != nil {
		return TaskDoc{}, err
	}
	return TaskDoc{
		ID:           id,
		Title:        title,
		Status:       status,
		Requirements: requirements,
		Design:       design,
		DependsOn:    dependsOn,
		OwnedFiles:   ownedFiles,
		Body:         doc.Body,
	}, nil
}

// SortedIDs returns the ids of every artifact in the set, sorted, for
// deterministic output.
func (s ArtifactSet) SortedIDs() []string {
	ids := make([]string, 0, len(s.Requirements)+len(s.Designs)+len(s.Tasks)+len(s.Tickets))
	for _, r := range s.Requirements {
		ids = append(ids, r.ID)
	}
	for _, d := range s.Designs {
		ids = append(ids, d.ID)
	}
	for _, t := range s.Tasks {
		ids = append(ids, t.ID)
	}
	for _, t := range s.Tickets {
		ids = append(ids, t.ID)
	}
	sort.Strings(ids)
	return ids
}

func toAnySlice(in []string) []interface{} {
	out := make([]interface{}, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
