package worker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/helmsman-ai/helmsman/pkg/specflow"
)

// requiredSpecFields are the frontmatter fields every spec output file must
// carry before the worker may report success.
var requiredSpecFields = []string{"id", "title", "status"}

// ValidateSpecOutputs checks every markdown file under dir for a parseable
// frontmatter block with the required fields and a normalized status. Any
// failure flips the run's final status to agent.failed(spec_validation).
func ValidateSpecOutputs(dir string) error {
	var issues []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		doc, err := specflow.ParseDocument(string(raw))
		if err != nil {
			issues = append(issues, fmt.Sprintf("%s: %v", path, err))
			return nil
		}
		for _, field := range requiredSpecFields {
			if _, err := specflow.FrontmatterString(doc.Frontmatter, field); err != nil {
				issues = append(issues, fmt.Sprintf("%s: %v", path, err))
			}
		}
		if status, err := specflow.FrontmatterString(doc.Frontmatter, "status"); err == nil {
			if _, err := specflow.NormalizeStatus(status); err != nil {
				issues = append(issues, fmt.Sprintf("%s: %v", path, err))
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("spec output walk failed: %w", err)
	}

	if len(issues) > 0 {
		return fmt.Errorf("spec_validation: %s", strings.Join(issues, "; "))
	}
	return nil
}
