package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	specDir   string
	serverURL string
	apiKey    string
)

var rootCmd = &cobra.Command{
	Use:   "specctl",
	Short: "Inspect, validate, and sync spec artifacts",
	Long: `specctl works on a local spec artifact tree (requirements, designs,
tasks, tickets as markdown with YAML frontmatter) and the orchestrator API.

  specctl show all        list every artifact
  specctl validate        check graph and reference invariants
  specctl sync push       upload tickets and tasks to the orchestrator`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&specDir, "dir", "spec", "Spec artifact directory")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", envOr("HELMSMAN_URL", "http://localhost:8080"), "Orchestrator base URL")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", os.Getenv("HELMSMAN_API_KEY"), "API key (defaults to HELMSMAN_API_KEY)")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
