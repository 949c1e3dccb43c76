package specflow

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Artifact directory layout under a spec root. One file per artifact,
// named <id>.md.
const (
	dirRequirements = "requirements"
	dirDesign       = "design"
	dirTasks        = "tasks"
	dirTickets      = "tickets"
)

// RenderDesign emits the markdown artifact for one design doc.
func RenderDesign(d DesignDoc) (string, error) {
	if d.ID == "" {
		return "", fmt.Errorf("design doc has no id")
	}
	return RenderDocument(Document{
		Frontmatter: map[string]interface{}{
			"id":           d.ID,
			"title":        d.Title,
			"status":       d.Status,
			"kind":         "design",
			"requirements": toAnySlice(d.Requirements),
		},
		Body: d.Body,
	})
}

// ParseRequirement rebuilds a Requirement from a rendered artifact.
func ParseRequirement(raw string) (Requirement, error) {
	doc, err := ParseDocument(raw)
	if err != nil {
		return Requirement{}, err
	}
	var r Requirement
	if r.ID, err = FrontmatterString(doc.Frontmatter, "id"); err != nil {
		return Requirement{}, err
	}
	if r.Title, err = FrontmatterString(doc.Frontmatter, "title"); err != nil {
		return Requirement{}, err
	}
	if r.Status, err = FrontmatterString(doc.Frontmatter, "status"); err != nil {
		return Requirement{}, err
	}
	if r.Normative, err = FrontmatterString(doc.Frontmatter, "normative"); err != nil {
		return Requirement{}, err
	}
	r.Body = doc.Body
	return r, nil
}

// ParseDesignDoc rebuilds a DesignDoc from a rendered artifact.
func ParseDesignDoc(raw string) (DesignDoc, error) {
	doc, err := ParseDocument(raw)
	if err != nil {
		return DesignDoc{}, err
	}
	var d DesignDoc
	if d.ID, err = FrontmatterString(doc.Frontmatter, "id"); err != nil {
		return DesignDoc{}, err
	}
	if d.Title, err = FrontmatterString(doc.Frontmatter, "title"); err != nil {
		return DesignDoc{}, err
	}
	if d.Status, err = FrontmatterString(doc.Frontmatter, "status"); err != nil {
		return DesignDoc{}, err
	}
	if d.Requirements, err = FrontmatterStrings(doc.Frontmatter, "requirements"); err != nil {
		return DesignDoc{}, err
	}
	d.Body = doc.Body
	return d, nil
}

// ParseTicketDoc rebuilds a TicketDoc from a rendered artifact.
func ParseTicketDoc(raw string) (TicketDoc, error) {
	doc, err := ParseDocument(raw)
	if err != nil {
		return TicketDoc{}, err
	}
	var t TicketDoc
	if t.ID, err = FrontmatterString(doc.Frontmatter, "id"); err != nil {
		return TicketDoc{}, err
	}
	if t.Title, err = FrontmatterString(doc.Frontmatter, "title"); err != nil {
		return TicketDoc{}, err
	}
	if t.Status, err = FrontmatterString(doc.Frontmatter, "status"); err != nil {
		return TicketDoc{}, err
	}
	if t.Tasks, err = FrontmatterStrings(doc.Frontmatter, "tasks"); err != nil {
		return TicketDoc{}, err
	}

	if rawDeps, ok := doc.Frontmatter["dependencies"]; ok && rawDeps != nil {
		deps, ok := rawDeps.(map[string]interface{})
		if !ok {
			return TicketDoc{}, fmt.Errorf("ticket %s: dependencies is %T, want map", t.ID, rawDeps)
		}
		if t.BlockedBy, err = FrontmatterStrings(deps, "blocked_by"); err != nil {
			return TicketDoc{}, err
		}
		if t.Blocks, err = FrontmatterStrings(deps, "blocks"); err != nil {
			return TicketDoc{}, err
		}
	}
	t.Body = doc.Body
	return t, nil
}

// LoadDir reads every artifact under root into an ArtifactSet. Files are
// dispatched by their frontmatter "kind"; directory placement is just a
// convention.
func LoadDir(root string) (ArtifactSet, error) {
	var set ArtifactSet
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		doc, err := ParseDocument(string(data))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		kind, err := FrontmatterString(doc.Frontmatter, "kind")
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		switch kind {
		case "requirement":
			r, err := ParseRequirement(string(data))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			set.Requirements = append(set.Requirements, r)
		case "design":
			dd, err := ParseDesignDoc(string(data))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			set.Designs = append(set.Designs, dd)
		case "task":
			t, err := ParseTaskDoc(string(data))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			set.Tasks = append(set.Tasks, t)
		case "ticket":
			t, err := ParseTicketDoc(string(data))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			set.Tickets = append(set.Tickets, t)
		default:
			return fmt.Errorf("%s: unknown artifact kind %q", path, kind)
		}
		return nil
	})
	if err != nil {
		return ArtifactSet{}, err
	}
	return set, nil
}

// WriteDir renders the set into the conventional layout under root,
// creating directories as needed. Existing files are overwritten.
func WriteDir(root string, set ArtifactSet) error {
	write := func(dir, id, content string) error {
		full := filepath.Join(root, dir)
		if err := os.MkdirAll(full, 0o755); err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(full, id+".md"), []byte(content), 0o644)
	}

	for _, r := range set.Requirements {
		content, err := RenderRequirement(r)
		if err != nil {
			return err
		}
		if err := write(dirRequirements, r.ID, content); err != nil {
			return err
		}
	}
	for _, d := range set.Designs {
		content, err := RenderDesign(d)
		if err != nil {
			return err
		}
		if err := write(dirDesign, d.ID, content); err != nil {
			return err
		}
	}
	for _, t := range set.Tasks {
		content, err := RenderTask(t)
		if err != nil {
			return err
		}
		if err := write(dirTasks, t.ID, content); err != nil {
			return err
		}
	}
	for _, t := range set.Tickets {
		content, err := RenderTicket(t)
		if err != nil {
			return err
		}
		if err := write(dirTickets, t.ID, content); err != nil {
			return err
		}
	}
	return nil
}
