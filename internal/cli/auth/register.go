package auth

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/tbtb-research/riset/internal/cli"
	"github.com/tbtb-research/riset/internal/cli/styles"
	"github.com/tbtb-research/riset/internal/models"
)

// RegisterCmd returns the auth register subcommand
func RegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Long: `Create an account. When the server issues a token with the new
account the session is stored right away.

Examples:
  riset auth register --name="Ana" --email=ana@example.com
  riset auth register --name="Ana" --email=ana@example.com --password=secret --json
`,
		RunE: runRegister,
	}

	cmd.Flags().String("name", "", "Display name (required)")
	cmd.Flags().String("email", "", "Account email (required)")
	cmd.Flags().String("password", "", "Account password (prompted when omitted)")
	for _, name := range []string{"name", "email"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	cli.AddOutputFlags(cmd, "Minimal output (user ID only)")

	return cmd
}

func runRegister(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	name, _ := cmd.Flags().GetString("name")
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
		password, err = cli.PromptPassword("Choose a password")
		if err != nil {
			return cli.Fail(formatter, "PROMPT_ERROR", err)
		}
	}

	result, err := cliInstance.App.Repo.Register(ctx, models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return cli.Fail(formatter, "REGISTER_ERROR", err)
	}

	loggedIn := false
	if result.Session.Valid() {
		if err := cliInstance.App.Sessions.Save(result.Session); err != nil {
			return cli.Fail(formatter, "SESSION_SAVE_ERROR", err)
		}
		loggedIn = true
	}

	if formatter.Quiet && !formatter.JSON {
		if result.User == nil {
			return nil
		}
		return formatter.PrintID(result.User.ID)
	}

	return formatter.Success(map[string]interface{}{
		"user":      result.User,
		"logged_in": loggedIn,
	}, func(w io.Writer) error {
		fmt.Fprintf(w, "✓ Account created for %s\n", email)
		if result.User != nil {
			fmt.Fprintf(w, "  %s\n", styles.Field("User ID", result.User.ID))
		}
		if !loggedIn {
			fmt.Fprintln(w, "  Run 'riset auth login' to sign in")
		}
		return nil
	})
}
