package auth

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/tbtb-research/riset/internal/cli"
	"github.com/tbtb-research/riset/internal/cli/styles"
)

// LoginCmd returns the auth login subcommand
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		Long: `Sign in with email and password. The session token is stored in the
session file and used by every other command until it expires.

Examples:
  # Prompt for the password
  riset auth login --email=ana@example.com

  # Non-interactive, for scripts
  riset auth login --email=ana@example.com --password="$RISET_PASSWORD" --json
`,
		RunE: runLogin,
	}

	cmd.Flags().String("email", "", "Account email (required)")
	if err := cmd.MarkFlagRequired("email"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("password", "", "Account password (prompted when omitted)")

	cli.AddOutputFlags(cmd, "Minimal output (user ID only)")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
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

	if password == "" {
		if !cli.IsInteractive() {
			return cli.UsageError(formatter, "--password is required when stdin is not a terminal")
		}
		password, err = cli.PromptPassword("Password for " + email)
		if err != nil {
			return cli.Fail(formatter, "PROMPT_ERROR", err)
		}
	}

	sess, err := cliInstance.App.Repo.Login(ctx, email, password)
	if err != nil {
		return cli.Fail(formatter, "LOGIN_ERROR", err)
	}

	if err := cliInstance.App.Sessions.Save(sess); err != nil {
		return cli.Fail(formatter, "SESSION_SAVE_ERROR", err)
	}

	if formatter.Quiet && !formatter.JSON {
		return formatter.PrintID(sess.UserID)
	}

	return formatter.Success(map[string]interface{}{
		"user_id":      sess.UserID,
		"session_file": cliInstance.App.Sessions.Path(),
	}, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "✓ Logged in as %s\n  %s\n",
			email, styles.Field("User ID", sess.UserID))
		return err
	})
}
