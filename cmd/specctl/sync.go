package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/specflow"
)

var syncCmd = &cobra.Command{
	Use:   "sync (push|pull)",
	Short: "Mediate local artifacts with the orchestrator",
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload local tickets and tasks",
	Long: `Validates the local artifact tree, then creates its tickets and
tasks on the orchestrator. Entities that already exist are skipped.`,
	RunE: runSyncPush,
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Write the orchestrator's tickets and tasks into the local tree",
	RunE:  runSyncPull,
}

func init() {
	syncCmd.AddCommand(syncPushCmd, syncPullCmd)
	rootCmd.AddCommand(syncCmd)
}

func runSyncPush(cmd *cobra.Command, args []string) error {
	set, err := specflow.LoadDir(specDir)
	if err != nil {
		return fmt.Errorf("load %s: %w", specDir, err)
	}
	if err := specflow.ValidateArtifacts(set); err != nil {
		return fmt.Errorf("refusing to push invalid artifacts: %w", err)
	}

	ctx := context.Background()
	client := newAPIClient()

	var created, skipped int
	for _, tk := range set.Tickets {
		err := client.createTicket(ctx, models.CreateTicketRequest{
			TicketID:    tk.ID,
			Title:       tk.Title,
			Description: tk.Body,
			BlockedBy:   tk.BlockedBy,
			Blocks:      tk.Blocks,
		})
		switch {
		case errors.Is(err, errAlreadyExists):
			skipped++
		case err != nil:
			return fmt.Errorf("push ticket %s: %w", tk.ID, err)
		default:
			created++
		}
	}

	// Tickets first so tasks can reference them.
	taskTicket := make(map[string]string)
	for _, tk := range set.Tickets {
		for _, taskID := range tk.Tasks {
			taskTicket[taskID] = tk.ID
		}
	}
	for _, t := range set.Tasks {
		err := client.createTask(ctx, models.CreateTaskRequest{
			TaskID:      t.ID,
			TicketID:    taskTicket[t.ID],
			Title:       t.Title,
			Description: t.Body,
			DependsOn:   t.DependsOn,
			OwnedFiles:  t.OwnedFiles,
		})
		switch {
		case errors.Is(err, errAlreadyExists):
			skipped++
		case err != nil:
			return fmt.Errorf("push task %s: %w", t.ID, err)
		default:
			created++
		}
	}

	fmt.Printf("pushed %d entities (%d already existed)\n", created, skipped)
	return nil
}

// taskStatuses are the orchestrator-side statuses pulled in order.
var taskStatuses = []string{"pending", "assigned", "running", "succeeded", "failed", "canceled"}

func runSyncPull(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	client := newAPIClient()

	var set specflow.ArtifactSet

	tickets, err := client.listTickets(ctx)
	if err != nil {
		return fmt.Errorf("pull tickets: %w", err)
	}
	for _, tk := range tickets {
		set.Tickets = append(set.Tickets, specflow.TicketDoc{
			ID:        tk.ID,
			Title:     tk.Title,
			Status:    artifactStatus(tk.Status),
			BlockedBy: tk.BlockedBy,
			Blocks:    tk.Blocks,
			Body:      tk.Description,
		})
	}

	ticketTasks := make(map[string][]string)
	for _, status := range taskStatuses {
		tasks, err := client.listTasks(ctx, status)
		if err != nil {
			return fmt.Errorf("pull %s tasks: %w", status, err)
		}
		for _, t := range tasks {
			set.Tasks = append(set.Tasks, specflow.TaskDoc{
				ID:         t.ID,
				Title:      t.Title,
				Status:     artifactStatus(t.Status),
				DependsOn:  t.DependsOn,
				OwnedFiles: t.OwnedFiles,
				Body:       t.Description,
			})
			if t.TicketID != nil && *t.TicketID != "" {
				ticketTasks[*t.TicketID] = append(ticketTasks[*t.TicketID], t.ID)
			}
		}
	}
	for i := range set.Tickets {
		set.Tickets[i].Tasks = ticketTasks[set.Tickets[i].ID]
	}

	if err := specflow.WriteDir(specDir, set); err != nil {
		return fmt.Errorf("write %s: %w", specDir, err)
	}
	fmt.Printf("pulled %d tickets and %d tasks into %s\n", len(set.Tickets), len(set.Tasks), specDir)
	return nil
}

// artifactStatus maps orchestrator entity statuses onto the artifact
// status set.
func artifactStatus(status string) string {
	switch status {
	case "succeeded", "done":
		return "Implemented"
	case "canceled", "archived":
		return "Archived"
	case "review", "approved":
		return "Review"
	default:
		return "Draft"
	}
}
