package auth

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/tbtb-research/riset/internal/cli"
	"github.com/tbtb-research/riset/internal/models"
)

// UpdateCmd returns the auth update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update your profile",
		Long: `Update profile fields. Only the flags you pass are sent.

Examples:
  riset auth update --name="Ana Maria"
  riset auth update --photo=./me.png --json
`,
		RunE: runUpdate,
	}

	cmd.Flags().String("email", "", "New email")
	cmd.Flags().String("name", "", "New display name")
	cmd.Flags().String("password", "", "New password")
	cmd.Flags().String("photo", "", "Path to a new profile photo")

	cli.AddOutputFlags(cmd, "Minimal output (user ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
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

	req := models.UpdateUserRequest{
		Email:    cli.StringFlagIfChanged(cmd, "email"),
		Name:     cli.StringFlagIfChanged(cmd, "name"),
		Password: cli.StringFlagIfChanged(cmd, "password"),
	}

	if photoPath := cli.StringFlagIfChanged(cmd, "photo"); photoPath != nil {
		upload, f, err := cli.OpenUpload(*photoPath)
		if err != nil {
			return cli.UsageError(formatter, "%v", err)
		}
		defer func() { _ = f.Close() }()
		req.Photo = upload
	}

	if err := req.Validate(); err != nil {
		return cli.Fail(formatter, "VALIDATION_ERROR", err)
	}

	sess, err := cliInstance.RequireSession(formatter)
	if err != nil {
		return err
	}

	user, err := cliInstance.App.Repo.UpdateUser(ctx, sess.Token, req)
	if err != nil {
		return cli.Fail(formatter, "USER_UPDATE_ERROR", err)
	}

	if formatter.Quiet && !formatter.JSON {
		return formatter.PrintID(user.ID)
	}

	return formatter.Success(user, func(w io.Writer) error {
		fmt.Fprintln(w, "✓ Profile updated")
		return printUser(w, user)
	})
}
