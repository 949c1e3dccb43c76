package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helmsman-ai/helmsman/pkg/specflow"
)

var showCmd = &cobra.Command{
	Use:       "show (all|tickets|tasks|ready|graph)",
	Short:     "List local spec artifacts",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"all", "tickets", "tasks", "ready", "graph"},
	RunE:      runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	set, err := specflow.LoadDir(specDir)
	if err != nil {
		return fmt.Errorf("load %s: %w", specDir, err)
	}

	switch args[0] {
	case "all":
		showTickets(set)
		showTasks(set)
		fmt.Printf("\n%d requirements, %d designs, %d tasks, %d tickets\n",
			len(set.Requirements), len(set.Designs), len(set.Tasks), len(set.Tickets))
	case "tickets":
		showTickets(set)
	case "tasks":
		showTasks(set)
	case "ready":
		showReady(set)
	case "graph":
		showGraph(set)
	default:
		return fmt.Errorf("unknown view %q", args[0])
	}
	return nil
}

func showTickets(set specflow.ArtifactSet) {
	for _, tk := range set.Tickets {
		fmt.Printf("%-12s %-40s %-12s tasks=%d blocked_by=%v\n",
			tk.ID, truncate(tk.Title, 40), tk.Status, len(tk.Tasks), tk.BlockedBy)
	}
}

func showTasks(set specflow.ArtifactSet) {
	for _, t := range set.Tasks {
		fmt.Printf("%-12s %-40s %-12s depends_on=%v\n",
			t.ID, truncate(t.Title, 40), t.Status, t.DependsOn)
	}
}

// showReady prints tasks whose dependencies are all implemented and that
// are not themselves finished.
func showReady(set specflow.ArtifactSet) {
	done := make(map[string]bool)
	for _, t := range set.Tasks {
		status, err := specflow.NormalizeStatus(t.Status)
		if err == nil && (status == "Implemented" || status == "Archived") {
			done[t.ID] = true
		}
	}

	for _, t := range set.Tasks {
		if done[t.ID] {
			continue
		}
		ready := true
		for _, dep := range t.DependsOn {
			if !done[dep] {
				ready = false
				break
			}
		}
		if ready {
			fmt.Printf("%-12s %s\n", t.ID, t.Title)
		}
	}
}

// showGraph prints dependency edges, one per line, in "from -> to" form.
func showGraph(set specflow.ArtifactSet) {
	for _, t := range set.Tasks {
		for _, dep := range t.DependsOn {
			fmt.Printf("%s -> %s\n", t.ID, dep)
		}
	}
	for _, tk := range set.Tickets {
		for _, dep := range tk.BlockedBy {
			fmt.Printf("%s -> %s\n", tk.ID, dep)
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
