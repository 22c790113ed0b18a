package project

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/tbtb-research/riset/internal/cli"
	"github.com/tbtb-research/riset/internal/cli/styles"
)

// JoinCmd returns the project join subcommand
func JoinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join a project with an invite code",
		RunE:  runJoin,
	}

	cmd.Flags().String("code", "", "Invite code (required)")
	if err := cmd.MarkFlagRequired("code"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cli.AddOutputFlags(cmd, "Minimal output (project ID only)")

	return cmd
}

func runJoin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	code, _ := cmd.Flags().GetString("code")
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

	membership, err := cliInstance.App.Repo.JoinProject(ctx, sess.Token, code)
	if err != nil {
		return cli.Fail(formatter, "PROJECT_JOIN_ERROR", err)
	}

	if formatter.Quiet && !formatter.JSON {
		return formatter.PrintID(membership.ProjectID)
	}

	return formatter.Success(membership, func(w io.Writer) error {
		fmt.Fprintf(w, "✓ Joined project %s\n", membership.ProjectID)
		if membership.Status != "" {
			fmt.Fprintf(w, "  %s\n", styles.Field("Status", membership.Status))
		}
		return nil
	})
}
