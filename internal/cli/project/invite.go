package project

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/tbtb-research/riset/internal/cli"
	"github.com/tbtb-research/riset/internal/models"
)

// InviteCmd returns the project invite subcommand
func InviteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invite",
		Short: "Invite collaborators to a project by email",
		Long: `Invite one or more collaborators by email.

Examples:
  riset project invite --id=p1 --email=budi@example.com
  riset project invite --id=p1 --email=budi@example.com,citra@example.com --json
`,
		RunE: runInvite,
	}

	cmd.Flags().String("id", "", "Project ID (required)")
	cmd.Flags().StringSlice("email", nil, "Collaborator email, repeatable (required)")
	for _, name := range []string{"id", "email"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runInvite(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	projectID, _ := cmd.Flags().GetString("id")
	emails, _ := cmd.Flags().GetStringSlice("email")
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

	req := models.AddCollaboratorsRequest{ProjectID: projectID, Collaborators: emails}
	if err := req.Validate(); err != nil {
		return cli.Fail(formatter, "VALIDATION_ERROR", err)
	}

	sess, err := cliInstance.RequireSession(formatter)
	if err != nil {
		return err
	}

	message, err := cliInstance.App.Repo.AddCollaborators(ctx, sess.Token, projectID, emails)
	if err != nil {
		return cli.Fail(formatter, "PROJECT_INVITE_ERROR", err)
	}
	if message == "" {
		message = fmt.Sprintf("Invited %d collaborator(s) to project %s", len(emails), projectID)
	}

	return formatter.Message(message, map[string]interface{}{
		"project_id":    projectID,
		"collaborators": emails,
	})
}
