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

// WhoamiCmd returns the auth whoami subcommand
func WhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE:  runWhoami,
	}

	cli.AddOutputFlags(cmd, "Minimal output (user ID only)")

	return cmd
}

func runWhoami(cmd *cobra.Command, args []string) error {
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

	user, err := cliInstance.App.Repo.GetCurrentUser(ctx, sess.Token)
	if err != nil {
		return cli.Fail(formatter, "USER_FETCH_ERROR", err)
	}

	if formatter.Quiet && !formatter.JSON {
		return formatter.PrintID(user.ID)
	}

	return formatter.Success(user, func(w io.Writer) error {
		return printUser(w, user)
	})
}

func printUser(w io.Writer, user *models.User) error {
	lines := styles.TitleStyle.Render(user.Name) + "\n" +
		styles.Field("Email", user.Email) + "\n" +
		styles.Field("ID", user.ID)
	if user.PhotoURL != nil && *user.PhotoURL != "" {
		lines += "\n" + styles.Field("Photo", *user.PhotoURL)
	}
	_, err := fmt.Fprintln(w, styles.RenderCard(lines))
	return err
}
