// Package auth holds the account commands
//
// e.g., riset auth ...
package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd returns the auth parent command
func AuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign in, sign out and manage your account",
	}

	cmd.AddCommand(LoginCmd())
	cmd.AddCommand(RegisterCmd())
	cmd.AddCommand(LogoutCmd())
	cmd.AddCommand(WhoamiCmd())
	cmd.AddCommand(UpdateCmd())

	return cmd
}
