package project

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/tbtb-research/riset/internal/cli"
	"github.com/tbtb-research/riset/internal/cli/styles"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your projects",
		Long: `List every project you own or collaborate on.

Examples:
  riset project list
  riset project list --json
  riset project list --quiet | head -1
`,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
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

	projects, err := cliInstance.App.Repo.ListProjects(ctx, sess.Token)
	if err != nil {
		return cli.Fail(formatter, "PROJECT_LIST_ERROR", err)
	}

	return formatter.Success(projects, func(w io.Writer) error {
		if len(projects) == 0 {
			_, err := fmt.Fprintln(w, "No projects yet. Create one with 'riset project create'.")
			return err
		}
		fmt.Fprintf(w, "%s\n", styles.SectionStyle.Render(fmt.Sprintf("Projects (%d)", len(projects))))
		for i := range projects {
			fmt.Fprintln(w, styles.RenderProjectLine(&projects[i]))
		}
		return nil
	})
}
