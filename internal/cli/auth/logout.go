package auth

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/tbtb-research/riset/internal/cli"
)

// LogoutCmd returns the auth logout subcommand
func LogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE:  runLogout,
	}

	cli.AddOutputFlags(cmd, "No output")

	return cmd
}

func runLogout(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.Fail(formatter, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	if err := cliInstance.App.Sessions.Invalidate(); err != nil {
		return cli.Fail(formatter, "LOGOUT_ERROR", err)
	}

	return formatter.Message("Logged out", nil)
}
