// Package project holds all cli commands related to projects
//
// e.g., riset project ...
package project

import (
	"github.com/spf13/cobra"
)

// ProjectCmd returns the project parent command
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage research projects",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(JoinCmd())
	cmd.AddCommand(InviteCmd())

	return cmd
}
