package task

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/tbtb-research/riset/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Long:  "Delete a task by ID (asks for confirmation on a terminal unless --force).",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().String("id", "", "Task ID (can also be provided as positional argument)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id := taskID(cmd, args)
	force, _ := cmd.Flags().GetBool("force")
	formatter := cli.FormatterFromFlags(cmd)

	if id == "" {
		return cli.UsageError(formatter, "task ID is required: riset task delete <id> or --id=<id>")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	sess, err := cliInstance.RequireSession(formatter)
	if err != nil {
		return err
	}

	confirmed, err := cli.ConfirmDelete(force || formatter.Quiet,
		fmt.Sprintf("Delete task %s?", id), "This cannot be undone.")
	if err != nil {
		return cli.Fail(formatter, "PROMPT_ERROR", err)
	}
	if !confirmed {
		return formatter.Message("Cancelled", map[string]interface{}{"deleted": false})
	}

	message, err := cliInstance.App.Repo.DeleteTask(ctx, sess.Token, id)
	if err != nil {
		return cli.Fail(formatter, "TASK_DELETE_ERROR", err)
	}
	if message == "" {
		message = fmt.Sprintf("Task %s deleted successfully", id)
	}

	return formatter.Message(message, map[string]interface{}{"task_id": id})
}
