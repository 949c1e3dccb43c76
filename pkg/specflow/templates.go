package specflow

import (
	"fmt"
	"strings"
	"text/template"
)

// PromptParams parameterize a phase prompt.
type PromptParams struct {
	Title        string
	Description  string
	PhaseContext string // accumulated phase_data summary from earlier phases
	Feedback     string // evaluator feedback from a failed attempt, if any
	OutputPath   string // file the executor must write its structured output to
}

var phaseTemplates = map[Phase]*template.Template{
	PhaseExplore: mustTemplate("explore", `You are exploring the codebase for the spec "{{.Title}}".

{{.Description}}

Survey the repository: entry points, key packages, data flow, and existing
conventions relevant to this spec. Write your findings as structured notes to
{{.OutputPath}}.
{{- if .Feedback}}

A previous attempt was rejected with this feedback, address it:
{{.Feedback}}
{{- end}}`),

	PhaseRequirements: mustTemplate("requirements", `Derive the requirements for the spec "{{.Title}}".

{{.Description}}

Context from earlier phases:
{{.PhaseContext}}

Write one requirement per section using normative language (SHALL, MUST,
SHOULD, MAY) with ids of the form REQ-<AREA>-<SUB>-<NNN>. Write the result to
{{.OutputPath}}.
{{- if .Feedback}}

A previous attempt was rejected with this feedback, address it:
{{.Feedback}}
{{- end}}`),

	PhaseDesign: mustTemplate("design", `Produce the technical design for the spec "{{.Title}}".

Context from earlier phases:
{{.PhaseContext}}

Cover architecture, data model, and interfaces. Include Mermaid diagrams for
component and sequence views. Reference requirement ids. Write the result to
{{.OutputPath}}.
{{- if .Feedback}}

A previous attempt was rejected with this feedback, address it:
{{.Feedback}}
{{- end}}`),

	PhaseTasks: mustTemplate("tasks", `Break the design for "{{.Title}}" into executable tasks.

Context from earlier phases:
{{.PhaseContext}}

Each task gets an id TSK-<NNN>, references to requirement and design ids,
explicit depends_on, and owned_files globs such that concurrent tasks touch
disjoint files. Write the result to {{.OutputPath}}.
{{- if .Feedback}}

A previous attempt was rejected with this feedback, address it:
{{.Feedback}}
{{- end}}`),

	PhaseSync: mustTemplate("sync", `Emit the final artifacts for the spec "{{.Title}}".

Context from earlier phases:
{{.PhaseContext}}

Write requirements, design, task, and ticket markdown files with strict YAML
frontmatter to {{.OutputPath}}. Ids must be unique, every reference must
resolve, and dependency graphs must be acyclic.
{{- if .Feedback}}

A previous attempt was rejected with this feedback, address it:
{{.Feedback}}
{{- end}}`),
}

func mustTemplate(name, body string) *template.Template {
	return template.Must(template.New(name).Parse(body))
}

// RenderPrompt produces the prompt for the given phase.
func RenderPrompt(phase Phase, params PromptParams) (string, error) {
	tmpl, ok := phaseTemplates[phase]
	if !ok {
		return "", fmt.Errorf("no prompt template for phase %s", phase)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, params); err != nil {
		return "", fmt.Errorf("failed to render %s prompt: %w", phase, err)
	}
	return b.String(), nil
}
