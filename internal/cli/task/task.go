// Package task holds all cli commands related to project tasks
//
// e.g., riset task ...
package task

import (
	"strings"

	"github.com/spf13/cobra"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage project tasks",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// taskID reads the task ID from the first positional argument or --id
func taskID(cmd *cobra.Command, args []string) string {
	if len(args) > 0 {
		return strings.TrimSpace(args[0])
	}
	id, _ := cmd.Flags().GetString("id")
	return strings.TrimSpace(id)
}
