package task

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/tbtb-research/riset/internal/cli"
	"github.com/tbtb-research/riset/internal/cli/styles"
	"github.com/tbtb-research/riset/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show task details",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().String("id", "", "Task ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id := taskID(cmd, args)
	formatter := cli.FormatterFromFlags(cmd)

	if id == "" {
		return cli.UsageError(formatter, "task ID is required: riset task show <id> or --id=<id>")
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

	task, err := cliInstance.App.Repo.GetTaskDetails(ctx, sess.Token, id)
	if err != nil {
		return cli.Fail(formatter, "TASK_FETCH_ERROR", err)
	}

	return formatter.Success(task, func(w io.Writer) error {
		return printTask(w, task, time.Now())
	})
}

func printTask(w io.Writer, t *models.Task, now time.Time) error {
	deadline := t.Deadline.String()
	if deadline == "" {
		deadline = "none"
	}
	card := styles.TitleStyle.Render("Task "+t.ID) + "  " + styles.TaskStatus(t, now) + "\n\n" +
		styles.Wrap(t.Description, styles.CardWidth-6) + "\n\n" +
		styles.Field("Deadline", deadline) + "\n" +
		styles.Field("Responsible", t.ResponsibleUserID) + "\n" +
		styles.Field("Project", t.ProjectID)
	_, err := fmt.Fprintln(w, styles.RenderCard(card))
	return err
}
