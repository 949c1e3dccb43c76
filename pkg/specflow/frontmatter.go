package specflow

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// Document is a markdown artifact with a YAML frontmatter block.
type Document struct {
	Frontmatter map[string]interface{}
	Body        string
}

// RenderDocument serializes a document as frontmatter + body. The body is
// emitted verbatim after the closing delimiter and one blank line.
func RenderDocument(doc Document) (string, error) {
	fm, err := yaml.Marshal(doc.Frontmatter)
	if err != nil {
		return "", fmt.Errorf("failed to encode frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString(frontmatterDelimiter)
	b.WriteByte('\n')
	b.Write(fm)
	b.WriteString(frontmatterDelimiter)
	b.WriteString("\n\n")
	b.WriteString(doc.Body)
	return b.String(), nil
}

// ParseDocument splits a rendered artifact back into frontmatter and body.
// parse(render(x)) == x for any document with a YAML-encodable frontmatter.
func ParseDocument(raw string) (Document, error) {
	content := strings.TrimPrefix(raw, "\ufeff")
	if !strings.HasPrefix(content, frontmatterDelimiter+"\n") {
		return Document{}, fmt.Errorf("missing frontmatter opening delimiter")
	}
	rest := content[len(frontmatterDelimiter)+1:]

	end := strings.Index(rest, "\n"+frontmatterDelimiter)
	if end < 0 {
		return Document{}, fmt.Errorf("missing frontmatter closing delimiter")
	}
	fmBlock := rest[:end+1]

	afterDelim := rest[end+1+len(frontmatterDelimiter):]
	body := strings.TrimPrefix(afterDelim, "\n")
	body = strings.TrimPrefix(body, "\n")

	var fm map[string]interface{}
	if err := yaml.Unmarshal([]byte(fmBlock), &fm); err != nil {
		return Document{}, fmt.Errorf("invalid frontmatter YAML: %w", err)
	}
	if fm == nil {
		fm = map[string]interface{}{}
	}
	return Document{Frontmatter: fm, Body: body}, nil
}

// FrontmatterString reads a required string field from a frontmatter map.
func FrontmatterString(fm map[string]interface{}, key string) (string, error) {
	v, ok := fm[key]
	if !ok {
		return "", fmt.Errorf("frontmatter missing %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("frontmatter field %q is %T, want string", key, v)
	}
	return s, nil
}

// FrontmatterStrings reads an optional string-list field.
func FrontmatterStrings(fm map[string]interface{}, key string) ([]string, error) {
	v, ok := fm[key]
	if !ok || v == nil {
		return nil, nil
	}
	raw, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("frontmatter field %q is %T, want list", key, v)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("frontmatter field %q has non-string entry %T", key, item)
		}
		out = append(out, s)
	}
	return out, nil
}
