package project

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/tbtb-research/riset/internal/cli"
	"github.com/tbtb-research/riset/internal/models"
)

// UpdateCmd returns the project update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a project",
		Long: `Update a project. Fields you do not pass keep their current value.

Examples:
  riset project update --id=p1 --name="Soil microbiome v2"
  riset project update --id=p1 --finished
  riset project update --id=p1 --finished=false --json
`,
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Project ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("name", "", "New project name")
	cmd.Flags().String("description", "", "New description (markdown)")
	cmd.Flags().String("object", "", "New research object")
	cmd.Flags().Bool("finished", false, "Mark the project finished (--finished=false reopens it)")

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	projectID, _ := cmd.Flags().GetString("id")
	formatter := cli.FormatterFromFlags(cmd)

	if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("description") &&
		!cmd.Flags().Changed("object") && !cmd.Flags().Changed("finished") {
		return cli.UsageError(formatter, "nothing to update: pass at least one of --name, --description, --object, --finished")
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
	current, err := cliInstance.App.Repo.GetProject(ctx, sess.Token, projectID)
	if err != nil {
		return cli.Fail(formatter, "PROJECT_FETCH_ERROR", err)
	}

	req := models.UpdateProjectRequest{
		Name:        current.Name,
		Description: current.Description,
		ObjectType:  current.ObjectType,
		IsFinished:  current.IsFinished,
	}
	if v := cli.StringFlagIfChanged(cmd, "name"); v != nil {
		req.Name = *v
	}
	if v := cli.StringFlagIfChanged(cmd, "description"); v != nil {
		req.Description = *v
	}
	if v := cli.StringFlagIfChanged(cmd, "object"); v != nil {
		req.ObjectType = *v
	}
	if cmd.Flags().Changed("finished") {
		req.IsFinished, _ = cmd.Flags().GetBool("finished")
	}

	if err := req.Validate(); err != nil {
		return cli.Fail(formatter, "VALIDATION_ERROR", err)
	}

	project, err := cliInstance.App.Repo.UpdateProject(ctx, sess.Token, projectID, req)
	if err != nil {
		return cli.Fail(formatter, "PROJECT_UPDATE_ERROR", err)
	}

	return formatter.Success(project, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "✓ Project '%s' updated (ID: %s)\n", project.Name, project.ID)
		return err
	})
}
