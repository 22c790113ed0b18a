package project

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/tbtb-research/riset/internal/cli"
	"github.com/tbtb-research/riset/internal/cli/styles"
	"github.com/tbtb-research/riset/internal/models"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new research project.

Examples:
  # Simple project (human-readable output)
  riset project create --name="Soil microbiome"

  # JSON output for agents
  riset project create --name="Soil microbiome" --json

  # Quiet mode for bash capture
  PROJECT_ID=$(riset project create --name="Soil microbiome" --quiet)

  # With collaborators
  riset project create \
    --name="Soil microbiome" \
    --description="Sampling plan for **three** sites" \
    --object="Field study" \
    --collaborator=budi@example.com --collaborator=citra@example.com
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Project name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Project description (markdown)")
	cmd.Flags().String("object", "", "Research object")
	cmd.Flags().StringSlice("collaborator", nil, "Collaborator email, repeatable")

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	object, _ := cmd.Flags().GetString("object")
	collaborators, _ := cmd.Flags().GetStringSlice("collaborator")
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

	req := models.CreateProjectRequest{
		Name:          name,
		Description:   description,
		ObjectType:    object,
		Collaborators: collaborators,
	}
	if err := req.Validate(); err != nil {
		return cli.Fail(formatter, "VALIDATION_ERROR", err)
	}

	sess, err := cliInstance.RequireSession(formatter)
	if err != nil {
		return err
	}

	project, err := cliInstance.App.Repo.CreateProject(ctx, sess.Token, req)
	if err != nil {
		return cli.Fail(formatter, "PROJECT_CREATE_ERROR", err)
	}

	return formatter.Success(project, func(w io.Writer) error {
		fmt.Fprintf(w, "✓ Project '%s' created successfully (ID: %s)\n", project.Name, project.ID)
		if project.InviteCode != "" {
			fmt.Fprintf(w, "  %s\n", styles.Field("Invite code", project.InviteCode))
		}
		if len(collaborators) > 0 {
			fmt.Fprintf(w, "  Invited %d collaborator(s)\n", len(collaborators))
		}
		return nil
	})
}
