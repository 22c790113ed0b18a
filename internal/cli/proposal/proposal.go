// Package proposal holds the proposal submission command
//
// e.g., riset proposal ...
package proposal

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/tbtb-research/riset/internal/cli"
	"github.com/tbtb-research/riset/internal/cli/styles"
	"github.com/tbtb-research/riset/internal/models"
)

// ProposalCmd returns the proposal parent command
func ProposalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proposal",
		Short: "Submit research proposals",
	}

	cmd.AddCommand(CreateCmd())

	return cmd
}

// CreateCmd returns the proposal create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Upload a proposal document to a project",
		Long: `Upload a proposal document to a project.

Examples:
  riset proposal create --project=p1 --title="Phase 1" --file=./proposal.pdf
  riset proposal create --project=p1 --title="Phase 1" --description="Budget draft" --file=./p.pdf --json
`,
		RunE: runCreate,
	}

	cmd.Flags().String("project", "", "Project ID (required)")
	cmd.Flags().String("title", "", "Proposal title (required)")
	cmd.Flags().String("file", "", "Path to the proposal document (required)")
	for _, name := range []string{"project", "title", "file"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}
	cmd.Flags().String("description", "", "Proposal description")

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	projectID, _ := cmd.Flags().GetString("project")
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	path, _ := cmd.Flags().GetString("file")
	formatter := cli.FormatterFromFlags(cmd)

	upload, f, err := cli.OpenUpload(path)
	if err != nil {
		return cli.UsageError(formatter, "%v", err)
	}
	defer func() { _ = f.Close() }()

	req := models.ProposalUpload{Title: title, Description: description, File: upload}
	if err := req.Validate(); err != nil {
		return cli.Fail(formatter, "VALIDATION_ERROR", err)
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

	proposal, err := cliInstance.App.Repo.CreateProposal(ctx, sess.Token, projectID, req)
	if err != nil {
		return cli.Fail(formatter, "PROPOSAL_CREATE_ERROR", err)
	}

	return formatter.Success(proposal, func(w io.Writer) error {
		fmt.Fprintf(w, "✓ Proposal '%s' submitted (ID: %s)\n", proposal.Title, proposal.ID)
		if proposal.FileReference != "" {
			fmt.Fprintf(w, "  %s\n", styles.Field("File", proposal.FileReference))
		}
		return nil
	})
}
