package task

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/tbtb-research/riset/internal/cli"
	"github.com/tbtb-research/riset/internal/models"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a task",
		Long: `Update a task. Fields you do not pass keep their current value.

Examples:
  riset task update t1 --done
  riset task update --id=t1 --deadline=2026-12-01 --responsible=u2
  riset task update t1 --done=false --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Task ID (can also be provided as positional argument)")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("deadline", "", "New deadline as YYYY-MM-DD")
	cmd.Flags().String("responsible", "", "New responsible user ID")
	cmd.Flags().Bool("done", false, "Mark the task finished (--done=false reopens it)")

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id := taskID(cmd, args)
	formatter := cli.FormatterFromFlags(cmd)

	if id == "" {
		return cli.UsageError(formatter, "task ID is required: riset task update <id> or --id=<id>")
	}
	flags := cmd.Flags()
	if !flags.Changed("description") && !flags.Changed("deadline") &&
		!flags.Changed("responsible") && !flags.Changed("done") {
		return cli.UsageError(formatter, "nothing to update: pass at least one of --description, --deadline, --responsible, --done")
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

	// The endpoint replaces every editable field, so start from the current state
	current, err := cliInstance.App.Repo.GetTaskDetails(ctx, sess.Token, id)
	if err != nil {
		return cli.Fail(formatter, "TASK_FETCH_ERROR", err)
	}

	req := models.UpdateTaskRequest{
		Description:       current.Description,
		Deadline:          current.Deadline,
		IsFinished:        current.IsFinished,
		ResponsibleUserID: current.ResponsibleUserID,
	}
	if v := cli.StringFlagIfChanged(cmd, "description"); v != nil {
		req.Description = *v
	}
	if v := cli.StringFlagIfChanged(cmd, "deadline"); v != nil {
		deadline, err := cli.ParseDeadline(*v)
		if err != nil {
			return cli.UsageError(formatter, "invalid --deadline %q: expected YYYY-MM-DD", *v)
		}
		req.Deadline = deadline
	}
	if v := cli.StringFlagIfChanged(cmd, "responsible"); v != nil {
		req.ResponsibleUserID = *v
	}
	if flags.Changed("done") {
		req.IsFinished, _ = flags.GetBool("done")
	}

	if err := req.Validate(); err != nil {
		return cli.Fail(formatter, "VALIDATION_ERROR", err)
	}

	task, err := cliInstance.App.Repo.UpdateTask(ctx, sess.Token, id, req)
	if err != nil {
		return cli.Fail(formatter, "TASK_UPDATE_ERROR", err)
	}

	return formatter.Success(task, func(w io.Writer) error {
		state := "open"
		if task.IsFinished {
			state = "done"
		}
		_, err := fmt.Fprintf(w, "✓ Task %s updated (%s)\n", task.ID, state)
		return err
	})
}
