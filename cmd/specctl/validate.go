package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helmsman-ai/helmsman/pkg/specflow"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check spec artifact invariants",
	Long: `Checks id uniqueness and shape, reference resolution, status
normalization, Mermaid fence syntax, and dependency-graph acyclicity.
Exits 0 iff every invariant holds.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	set, err := specflow.LoadDir(specDir)
	if err != nil {
		return fmt.Errorf("load %s: %w", specDir, err)
	}

	if err := specflow.ValidateArtifacts(set); err != nil {
		var vErr *specflow.ValidationError
		if errors.As(err, &vErr) {
			for _, issue := range vErr.Issues {
				fmt.Println("FAIL:", issue)
			}
			return fmt.Errorf("%d invariant violations", len(vErr.Issues))
		}
		return err
	}

	fmt.Printf("OK: %d requirements, %d designs, %d tasks, %d tickets\n",
		len(set.Requirements), len(set.Designs), len(set.Tasks), len(set.Tickets))
	return nil
}
