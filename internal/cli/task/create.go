package task

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/tbtb-research/riset/internal/cli"
	"github.com/tbtb-research/riset/internal/models"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task in a project",
		Long: `Create a task. The responsible user defaults to you.

Examples:
  riset task create --project=p1 --description="Collect samples" --deadline=2026-11-01
  TASK_ID=$(riset task create --project=p1 --description="Draft" --deadline=2026-11-15 --quiet)
  riset task create --project=p1 --description="Review" --deadline=2026-12-01 --responsible=u2 --json
`,
		RunE: runCreate,
	}

	cmd.Flags().String("project", "", "Project ID (required)")
	cmd.Flags().String("description", "", "Task description (required)")
	cmd.Flags().String("deadline", "", "Deadline as YYYY-MM-DD (required)")
	for _, name := range []string{"project", "description", "deadline"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}
	cmd.Flags().String("responsible", "", "Responsible user ID (defaults to you)")

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	projectID, _ := cmd.Flags().GetString("project")
	description, _ := cmd.Flags().GetString("description")
	deadlineStr, _ := cmd.Flags().GetString("deadline")
	responsible, _ := cmd.Flags().GetString("responsible")
	formatter := cli.FormatterFromFlags(cmd)

	deadline, err := cli.ParseDeadline(deadlineStr)
	if err != nil {
		return cli.UsageError(formatter, "invalid --deadline %q: expected YYYY-MM-DD", deadlineStr)
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

	if responsible == "" {
		responsible = sess.UserID
	}

	req := models.CreateTaskRequest{
		Description:       description,
		Deadline:          deadline,
		ResponsibleUserID: responsible,
		ProjectID:         projectID,
	}
	if err := req.Validate(); err != nil {
		return cli.Fail(formatter, "VALIDATION_ERROR", err)
	}

	task, err := cliInstance.App.Repo.CreateTask(ctx, sess.Token, req)
	if err != nil {
		return cli.Fail(formatter, "TASK_CREATE_ERROR", err)
	}

	return formatter.Success(task, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "✓ Task created (ID: %s) due %s\n", task.ID, task.Deadline)
		return err
	})
}
