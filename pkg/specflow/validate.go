package specflow

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ValidationError collects everything wrong with an artifact set. SYNC may
// not report success while any issue remains.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("artifact validation failed: %s", strings.Join(e.Issues, "; "))
}

// ValidateArtifacts enforces the SYNC artifact rules: unique ids, valid id
// shapes, resolvable references, normalized statuses, acyclic task/ticket
// graphs, and syntactically valid Mermaid fences in design bodies.
func ValidateArtifacts(set ArtifactSet) error {
	var issues []string
	add := func(format string, args ...interface{}) {
		issues = append(issues, fmt.Sprintf(format, args...))
	}

	reqIDs := make(map[string]bool)
	designIDs := make(map[string]bool)
	taskIDs := make(map[string]bool)
	ticketIDs := make(map[string]bool)

	for _, r := range set.Requirements {
		if !ValidRequirementID(r.ID) {
			add("requirement id %q is malformed", r.ID)
		}
		if reqIDs[r.ID] {
			add("duplicate requirement id %q", r.ID)
		}
		reqIDs[r.ID] = true
		if _, err := NormalizeStatus(r.Status); err != nil {
			add("requirement %s: %v", r.ID, err)
		}
		if !normativeWords[r.Normative] {
			add("requirement %s: normative keyword %q not in SHALL/MUST/SHOULD/MAY", r.ID, r.Normative)
		}
	}

	for _, d := range set.Designs {
		if designIDs[d.ID] {
			add("duplicate design id %q", d.ID)
		}
		designIDs[d.ID] = true
		if _, err := NormalizeStatus(d.Status); err != nil {
			add("design %s: %v", d.ID, err)
		}
		for _, ref := range d.Requirements {
			if !reqIDs[ref] {
				add("design %s references unknown requirement %q", d.ID, ref)
			}
		}
		if err := CheckMermaidFences(d.Body); err != nil {
			add("design %s: %v", d.ID, err)
		}
	}

	for _, t := range set.Tasks {
		if !ValidTaskID(t.ID) {
			add("task id %q is malformed", t.ID)
		}
		if taskIDs[t.ID] {
			add("duplicate task id %q", t.ID)
		}
		taskIDs[t.ID] = true
		if _, err := NormalizeStatus(t.Status); err != nil {
			add("task %s: %v", t.ID, err)
		}
		for _, ref := range t.Requirements {
			if !reqIDs[ref] {
				add("task %s references unknown requirement %q", t.ID, ref)
			}
		}
		for _, ref := range t.Design {
			if !designIDs[ref] {
				add("task %s references unknown design %q", t.ID, ref)
			}
		}
	}
	for _, t := range set.Tasks {
		for _, dep := range t.DependsOn {
			if !taskIDs[dep] {
				add("task %s depends on unknown task %q", t.ID, dep)
			}
		}
	}

	for _, tk := range set.Tickets {
		if !ValidTicketID(tk.ID) {
			add("ticket id %q is malformed", tk.ID)
		}
		if ticketIDs[tk.ID] {
			add("duplicate ticket id %q", tk.ID)
		}
		ticketIDs[tk.ID] = true
		if _, err := NormalizeStatus(tk.Status); err != nil {
			add("ticket %s: %v", tk.ID, err)
		}
		for _, ref := range tk.Tasks {
			if !taskIDs[ref] {
				add("ticket %s references unknown task %q", tk.ID, ref)
			}
		}
	}
	for _, tk := range set.Tickets {
		for _, dep := range tk.BlockedBy {
			if !ticketIDs[dep] {
				add("ticket %s blocked_by unknown ticket %q", tk.ID, dep)
			}
		}
		for _, dep := range tk.Blocks {
			if !ticketIDs[dep] {
				add("ticket %s blocks unknown ticket %q", tk.ID, dep)
			}
		}
	}

	taskGraph := make(map[string][]string, len(set.Tasks))
	for _, t := range set.Tasks {
		taskGraph[t.ID] = t.DependsOn
	}
	for _, cycle := range StronglyConnected(taskGraph) {
		add("task dependency cycle: %s", strings.Join(cycle, " -> "))
	}

	ticketGraph := make(map[string][]string, len(set.Tickets))
	for _, tk := range set.Tickets {
		ticketGraph[tk.ID] = tk.BlockedBy
	}
	for _, cycle := range StronglyConnected(ticketGraph) {
		add("ticket dependency cycle: %s", strings.Join(cycle, " -> "))
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// StronglyConnected runs Tarjan's algorithm over the dependency graph and
// returns every component of size > 1, each sorted for determinism. Edges
// to unknown nodes are ignored; reference resolution reports those.
func StronglyConnected(graph map[string][]string) [][]string {
	nodes := make([]string, 0, len(graph))
	for n := range graph {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)

	index := make(map[string]int, len(graph))
	lowlink := make(map[string]int, len(graph))
	onStack := make(map[string]bool, len(graph))
	var stack []string
	next := 0
	var components [][]string

	var strongconnect func(v string)
	strongconnect = func(v string) {
		index[v] = next
		lowlink[v] = next
		next++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range graph[v] {
			if _, known := graph[w]; !known {
				continue
			}
			if _, visited := index[w]; !visited {
				strongconnect(w)
				lowlink[v] = min(lowlink[v], lowlink[w])
			} else if onStack[w] {
				lowlink[v] = min(lowlink[v], index[w])
			}
		}

		if lowlink[v] == index[v] {
			var comp []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			if len(comp) > 1 {
				sort.Strings(comp)
				components = append(components, comp)
			}
		}
	}

	for _, v := range nodes {
		if _, visited := index[v]; !visited {
			strongconnect(v)
		}
	}
	return components
}

var mermaidHeader = regexp.MustCompile(`^\s*(graph|flowchart|sequenceDiagram|classDiagram|stateDiagram(-v2)?|erDiagram|gantt|pie|journey)\b`)

// CheckMermaidFences validates every ```mermaid fence in the body: the fence
// must be closed and must open with a known diagram header.
func CheckMermaidFences(body string) error {
	lines := strings.Split(body, "\n")
	inFence := false
	fenceStart := 0
	var fenceLines []string

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case !inFence && strings.HasPrefix(trimmed, "```mermaid"):
			inFence = true
			fenceStart = i + 1
			fenceLines = nil
		case inFence && trimmed == "```":
			if err := checkMermaidBlock(fenceLines); err != nil {
				return fmt.Errorf("mermaid block at line %d: %w", fenceStart, err)
			}
			inFence = false
		case inFence:
			fenceLines = append(fenceLines, line)
		}
	}
	if inFence {
		return fmt.Errorf("mermaid block at line %d is not closed", fenceStart)
	}
	return nil
}

func checkMermaidBlock(lines []string) error {
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !mermaidHeader.MatchString(line) {
			return fmt.Errorf("unknown diagram type in %q", strings.TrimSpace(line))
		}
		return nil
	}
	return fmt.Errorf("empty diagram")
}
