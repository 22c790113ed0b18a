package project

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/tbtb-research/riset/internal/cli"
)

// DeleteCmd returns the project delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a project",
		Long:  "Delete a project by ID (asks for confirmation on a terminal unless --force).",
		RunE:  runDelete,
	}

	// Required flags
	cmd.Flags().String("id", "", "Project ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	projectID, _ := cmd.Flags().GetString("id")
	force, _ := cmd.Flags().GetBool("force")
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

	confirmed, err := cli.ConfirmDelete(force || formatter.Quiet,
		fmt.Sprintf("Delete project %s?", projectID),
		"Its tasks and proposals are deleted with it.")
	if err != nil {
		return cli.Fail(formatter, "PROMPT_ERROR", err)
	}
	if !confirmed {
		return formatter.Message("Cancelled", map[string]interface{}{"deleted": false})
	}

	message, err := cliInstance.App.Repo.DeleteProject(ctx, sess.Token, projectID)
	if err != nil {
		return cli.Fail(formatter, "PROJECT_DELETE_ERROR", err)
	}
	if message == "" {
		message = fmt.Sprintf("Project %s deleted successfully", projectID)
	}

	return formatter.Message(message, map[string]interface{}{"project_id": projectID})
}
