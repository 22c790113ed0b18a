package task

import (
	"fmt"
	"io"
	"log"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/tbtb-research/riset/internal/cli"
	"github.com/tbtb-research/riset/internal/cli/styles"
	"github.com/tbtb-research/riset/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tasks of a project",
		Long: `List the tasks of a project, earliest deadline first.

Examples:
  riset task list --project=p1
  riset task list --project=p1 --open --json
`,
		RunE: runList,
	}

	cmd.Flags().String("project", "", "Project ID (required)")
	if err := cmd.MarkFlagRequired("project"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().Bool("open", false, "Only tasks that are not finished")

	cli.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	projectID, _ := cmd.Flags().GetString("project")
	onlyOpen, _ := cmd.Flags().GetBool("open")
	formatter := cli.FormatterFromFlags(cmd)

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

	tasks, err := cliInstance.App.Repo.ListTasks(ctx, sess.Token, projectID)
	if err != nil {
		return cli.Fail(formatter, "TASK_LIST_ERROR", err)
	}

	tasks = filterTasks(tasks, onlyOpen)

	now := time.Now()
	width := cli.TermWidth()
	return formatter.Success(tasks, func(w io.Writer) error {
		if len(tasks) == 0 {
			_, err := fmt.Fprintln(w, "No tasks.")
			return err
		}
		fmt.Fprintln(w, styles.SectionStyle.Render(fmt.Sprintf("Tasks (%d)", len(tasks))))
		for i := range tasks {
			fmt.Fprintln(w, styles.RenderTaskLine(&tasks[i], now, width))
		}
		return nil
	})
}

// filterTasks drops finished tasks when onlyOpen is set and orders by deadline.
// Tasks without a deadline go last.
func filterTasks(tasks []models.Task, onlyOpen bool) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if onlyOpen && t.IsFinished {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Deadline, out[j].Deadline
		if a.IsZero() != b.IsZero() {
			return b.IsZero()
		}
		return a.Before(b.Time)
	})
	return out
}
